package specification

import "gorm.io/gorm"

type Limit struct {
	Limit  int
	Offset int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
