package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to exactly one essay via ArticleId (the essay slug). There
// is deliberately no FK constraint: deleting an essay orphans its comments.
type Comment struct {
	Id        uuid.UUID
	ArticleId string
	Name      string
	Email     string // collected, never rendered
	Text      string
	CreatedAt time.Time
}
