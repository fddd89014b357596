package contract

import (
	"context"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/repository/specification"
)

type EssayRepository interface {
	// Upsert writes the essay keyed by slug, silently overwriting any prior
	// record with the same slug.
	Upsert(ctx context.Context, essay *entity.Essay) error
	Delete(ctx context.Context, slug string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Essay, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Essay, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
