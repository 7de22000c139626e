package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"gorm.io/gorm"
)

// CategoryOptionRepositoryImpl manages the Category-Option join rows.
// Attach checks existence first so attaching an already-linked pair is a
// no-op rather than a constraint error.
type CategoryOptionRepositoryImpl interface {
	Attach(ctx context.Context, categoryID, optionID uint) error
	Detach(ctx context.Context, categoryID, optionID uint) error
	DetachAllForCategory(ctx context.Context, categoryID uint) error
	DetachAllForOption(ctx context.Context, optionID uint) error
	Exists(ctx context.Context, categoryID, optionID uint) (bool, error)
}

type categoryOptionRepository struct {
	db *gorm.DB
}

func NewCategoryOptionRepository(db *gorm.DB) CategoryOptionRepositoryImpl {
	return &categoryOptionRepository{db: db}
}

func (r *categoryOptionRepository) Attach(ctx context.Context, categoryID, optionID uint) error {
	exists, err := r.Exists(ctx, categoryID, optionID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	link := models.CategoryOption{CategoryID: categoryID, OptionID: optionID}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *categoryOptionRepository) Detach(ctx context.Context, categoryID, optionID uint) error {
	return r.db.WithContext(ctx).
		Where("category_id = ? AND option_id = ?", categoryID, optionID).
		Delete(&models.CategoryOption{}).Error
}

func (r *categoryOptionRepository) DetachAllForCategory(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&models.CategoryOption{}).Error
}

func (r *categoryOptionRepository) DetachAllForOption(ctx context.Context, optionID uint) error {
	return r.db.WithContext(ctx).
		Where("option_id = ?", optionID).
		Delete(&models.CategoryOption{}).Error
}

func (r *categoryOptionRepository) Exists(ctx context.Context, categoryID, optionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CategoryOption{}).
		Where("category_id = ? AND option_id = ?", categoryID, optionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
