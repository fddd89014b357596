package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	EssaySlug string    `gorm:"type:varchar(128);not null;index"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text"`
	Failed    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
