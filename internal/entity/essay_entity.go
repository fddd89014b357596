package entity

import "time"

// Essay is keyed by a human-chosen slug, which doubles as its route segment.
type Essay struct {
	Slug      string
	Title     string
	Excerpt   string
	Body      string // Markdown
	Date      string // publication date, YYYY-MM-DD
	Status    string // draft | published
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (e *Essay) IsPublished() bool {
	return e.Status == "published"
}
