package model

import "time"

type Essay struct {
	Slug      string    `gorm:"type:varchar(128);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Excerpt   string    `gorm:"type:text"`
	Body      string    `gorm:"type:text"`
	Date      string    `gorm:"type:varchar(10);not null;index"`
	Status    string    `gorm:"type:varchar(16);not null;default:draft"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Essay) TableName() string {
	return "essays"
}
