package specification

import "gorm.io/gorm"

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// OrderByDateDesc is the authoritative listing order: publication date
// descending, tie-broken by creation time so the feed is stable.
type OrderByDateDesc struct{}

func (s OrderByDateDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC")
}
