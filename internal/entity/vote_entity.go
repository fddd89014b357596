package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one record per (essay, identity) pair. Totals are derived by
// counting records, never kept as an aggregate.
type Vote struct {
	EssaySlug string
	UserId    uuid.UUID
	Type      string // like | dislike
	CreatedAt time.Time
	UpdatedAt *time.Time
}
