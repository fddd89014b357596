package dto

import "time"

// EssayListItem is one card in the public listing. Drafts stay visible but
// carry Navigable=false and a "coming soon" annotation instead of a body.
type EssayListItem struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Navigable  bool   `json:"navigable"`
	Annotation string `json:"annotation,omitempty"`
}

type ShowEssayResponse struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Body      string     `json:"body"`      // Markdown source
	BodyHTML  string     `json:"body_html"` // rendered
	Date      string     `json:"date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpsertEssayRequest struct {
	Slug    string `json:"slug" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Excerpt string `json:"excerpt"`
	Body    string `json:"body"`
	Date    string `json:"date"`
	Status  string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpsertEssayResponse struct {
	Slug string `json:"slug"`
}

// AdminEssayItem lists every essay regardless of status.
type AdminEssayItem struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Date      string     `json:"date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
