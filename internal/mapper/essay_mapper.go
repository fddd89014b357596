package mapper

import (
	"time"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/model"
)

type EssayMapper struct{}

func NewEssayMapper() *EssayMapper {
	return &EssayMapper{}
}

func (m *EssayMapper) ToEntity(e *model.Essay) *entity.Essay {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Essay{
		Slug:      e.Slug,
		Title:     e.Title,
		Excerpt:   e.Excerpt,
		Body:      e.Body,
		Date:      e.Date,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *EssayMapper) ToModel(e *entity.Essay) *model.Essay {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Essay{
		Slug:      e.Slug,
		Title:     e.Title,
		Excerpt:   e.Excerpt,
		Body:      e.Body,
		Date:      e.Date,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *EssayMapper) ToEntities(models []*model.Essay) []*entity.Essay {
	entities := make([]*entity.Essay, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
