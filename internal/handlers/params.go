package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// parseIntArray parses "1,2,3" into ints, skipping blanks and junk.
func parseIntArray(s string) []int {
	if s == "" {
		return nil
	}
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.Atoi(part); err == nil {
			result = append(result, v)
		}
	}
	return result
}

func parseStringArray(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// userIDFromContext returns the authenticated user id set by the JWT
// middleware, or 0 when the request is anonymous.
func userIDFromContext(r *http.Request) int {
	if v, ok := r.Context().Value("user_id").(int); ok {
		return v
	}
	return 0
}
