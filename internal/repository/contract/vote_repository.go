package contract

import (
	"context"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VoteRepository interface {
	// Upsert writes the vote keyed by (essay, user); an existing row only has
	// its type changed (merge semantics).
	Upsert(ctx context.Context, vote *entity.Vote) error
	Delete(ctx context.Context, essaySlug string, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Vote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Vote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
