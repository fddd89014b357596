package mapper

import (
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		ArticleId: c.ArticleId,
		Name:      c.Name,
		Email:     c.Email,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		ArticleId: c.ArticleId,
		Name:      c.Name,
		Email:     c.Email,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToEntities(models []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
