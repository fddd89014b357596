package mapper

import (
	"time"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/model"
)

type VoteMapper struct{}

func NewVoteMapper() *VoteMapper {
	return &VoteMapper{}
}

func (m *VoteMapper) ToEntity(v *model.Vote) *entity.Vote {
	if v == nil {
		return nil
	}

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	return &entity.Vote{
		EssaySlug: v.EssaySlug,
		UserId:    v.UserId,
		Type:      v.Type,
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VoteMapper) ToModel(v *entity.Vote) *model.Vote {
	if v == nil {
		return nil
	}

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	return &model.Vote{
		EssaySlug: v.EssaySlug,
		UserId:    v.UserId,
		Type:      v.Type,
		CreatedAt: v.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *VoteMapper) ToEntities(models []*model.Vote) []*entity.Vote {
	entities := make([]*entity.Vote, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
