package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEssaySlug struct {
	EssaySlug string
}

func (s ByEssaySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("essay_slug = ?", s.EssaySlug)
}

type ByVoter struct {
	UserId uuid.UUID
}

func (s ByVoter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

type ByVoteType struct {
	Type string
}

func (s ByVoteType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
