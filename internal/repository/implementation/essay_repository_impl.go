package implementation

import (
	"context"
	"errors"

	"degrondvraag-be/internal/entity"
	"degrondvraag-be/internal/mapper"
	"degrondvraag-be/internal/model"
	"degrondvraag-be/internal/repository/contract"
	"degrondvraag-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EssayRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EssayMapper
}

func NewEssayRepository(db *gorm.DB) contract.EssayRepository {
	return &EssayRepositoryImpl{
		db:     db,
		mapper: mapper.NewEssayMapper(),
	}
}

func (r *EssayRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EssayRepositoryImpl) Upsert(ctx context.Context, essay *entity.Essay) error {
	m := r.mapper.ToModel(essay)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "excerpt", "body", "date", "status", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*essay = *r.mapper.ToEntity(m)
	return nil
}

func (r *EssayRepositoryImpl) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Essay{}).Error
}

func (r *EssayRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Essay, error) {
	var m model.Essay
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EssayRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Essay, error) {
	var models []*model.Essay
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EssayRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Essay{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
