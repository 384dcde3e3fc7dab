// Package filter composes the ad listing predicates. Field filters are
// membership tests (OR within a field's value set) and separate fields
// combine with AND.
package filter

import (
	"strings"

	"obmenBack/internal/models"
)

type Predicate func(models.Ad) bool

// All passes every ad. It is the identity for And.
func All(models.Ad) bool { return true }

func And(preds ...Predicate) Predicate {
	return func(ad models.Ad) bool {
		for _, p := range preds {
			if !p(ad) {
				return false
			}
		}
		return true
	}
}

func Or(preds ...Predicate) Predicate {
	return func(ad models.Ad) bool {
		for _, p := range preds {
			if p(ad) {
				return true
			}
		}
		return false
	}
}

// CategoryIn keeps ads whose category is a member of ids. An empty set means
// no constraint.
func CategoryIn(ids []int) Predicate {
	if len(ids) == 0 {
		return All
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(ad models.Ad) bool {
		_, ok := set[ad.CategoryID]
		return ok
	}
}

// ConditionIn keeps ads whose condition code is a member of codes. An empty
// set means no constraint.
func ConditionIn(codes []string) Predicate {
	if len(codes) == 0 {
		return All
	}
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return func(ad models.Ad) bool {
		_, ok := set[ad.Condition]
		return ok
	}
}

// Matches keeps ads containing query as a case-insensitive substring of the
// title or the description. An empty query passes everything.
func Matches(query string) Predicate {
	if query == "" {
		return All
	}
	q := strings.ToLower(query)
	return func(ad models.Ad) bool {
		return strings.Contains(strings.ToLower(ad.Title), q) ||
			strings.Contains(strings.ToLower(ad.Description), q)
	}
}

// Apply returns the ads satisfying p, preserving input order.
func Apply(ads []models.Ad, p Predicate) []models.Ad {
	var out []models.Ad
	for _, ad := range ads {
		if p(ad) {
			out = append(out, ad)
		}
	}
	return out
}
