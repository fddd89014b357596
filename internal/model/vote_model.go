package model

import (
	"time"

	"github.com/google/uuid"
)

// Composite primary key enforces at most one vote per identity per essay.
type Vote struct {
	EssaySlug string    `gorm:"type:varchar(128);primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(8);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Vote) TableName() string {
	return "votes"
}
