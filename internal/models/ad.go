package models

import (
	"time"
)

type Ad struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	CategoryID  int        `json:"category_id"`
	Condition   string     `json:"condition"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AdFilters carries the recognized list filters. An empty slice means no
// constraint on that field.
type AdFilters struct {
	Categories []int    `json:"categories"`
	Conditions []string `json:"conditions"`
}

type AdListResponse struct {
	Ads []Ad `json:"ads"`
}
