package models

import (
	"time"
)

// PageStatus represents the publishing state of a landing page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// LandingPage is one marketing page for a course. Content holds the raw
// persisted document as-is: section data in one of the historical shapes
// plus any unknown keys, all of which must survive a write untouched.
// Only the format resolver interprets the map.
type LandingPage struct {
	ID       string     `json:"id" badgerhold:"key"`
	CourseID string     `json:"course_id" badgerholdIndex:"CourseID"`
	Slug     string     `json:"slug" badgerholdIndex:"Slug"`
	Status   PageStatus `json:"status"`

	Content map[string]any `json:"content"`
	Design  DesignConfig   `json:"design_config"`

	ViewCount       int64 `json:"view_count"`
	ConversionCount int64 `json:"conversion_count"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished reports whether the page renders on the public route.
func (p *LandingPage) IsPublished() bool {
	return p.Status == PageStatusPublished
}
