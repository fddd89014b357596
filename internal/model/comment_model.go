package model

import (
	"time"

	"github.com/google/uuid"
)

// No foreign key on ArticleId: comments survive essay deletion (orphaned, not
// cascaded).
type Comment struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleId string    `gorm:"type:varchar(128);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Comment) TableName() string {
	return "comments"
}
