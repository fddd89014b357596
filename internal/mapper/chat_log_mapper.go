package mapper

import (
	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/model"
)

type ChatLogMapper struct{}

func NewChatLogMapper() *ChatLogMapper {
	return &ChatLogMapper{}
}

func (m *ChatLogMapper) ToEntity(c *model.ChatLog) *entity.ChatLog {
	if c == nil {
		return nil
	}
	return &entity.ChatLog{
		Id:        c.Id,
		UserId:    c.UserId,
		EssaySlug: c.EssaySlug,
		Question:  c.Question,
		Answer:    c.Answer,
		Failed:    c.Failed,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatLogMapper) ToModel(c *entity.ChatLog) *model.ChatLog {
	if c == nil {
		return nil
	}
	return &model.ChatLog{
		Id:        c.Id,
		UserId:    c.UserId,
		EssaySlug: c.EssaySlug,
		Question:  c.Question,
		Answer:    c.Answer,
		Failed:    c.Failed,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatLogMapper) ToEntities(models []*model.ChatLog) []*entity.ChatLog {
	entities := make([]*entity.ChatLog, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
