package specification

import "gorm.io/gorm"

type ByArticleId struct {
	ArticleId string
}

func (s ByArticleId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("article_id = ?", s.ArticleId)
}

type OrderByCreatedAtDesc struct{}

func (s OrderByCreatedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
