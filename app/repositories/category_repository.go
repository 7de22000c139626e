package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/utils/names"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetByIDWithOptions(ctx context.Context, id uint) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetAllWithOptions(ctx context.Context) ([]models.Category, error)
	FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

// Create persists the folded form and returns the caller's struct in
// display form, mirroring the read paths.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	encodeCategory(category)
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return err
	}
	decodeCategory(category)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeCategory(&category)
	return &category, nil
}

func (r *categoryRepository) GetByIDWithOptions(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Options").First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeCategory(&category)
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	for i := range categories {
		decodeCategory(&categories[i])
	}
	return categories, nil
}

func (r *categoryRepository) GetAllWithOptions(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Preload("Options").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	for i := range categories {
		decodeCategory(&categories[i])
	}
	return categories, nil
}

// FindByEitherName mirrors optionRepository.FindByEitherName: name_en is
// checked before name_fr so the English match wins any ambiguity, and an
// empty name is never a match key.
func (r *categoryRepository) FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Category, error) {
	foldedEN := names.Fold(nameEN)
	foldedFR := names.Fold(nameFR)

	var category models.Category
	if foldedEN != "" {
		err := r.db.WithContext(ctx).Where("LOWER(name_en) = ?", foldedEN).First(&category).Error
		if err == nil {
			decodeCategory(&category)
			return &category, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if foldedFR == "" {
		return nil, nil
	}
	err := r.db.WithContext(ctx).Where("LOWER(name_fr) = ?", foldedFR).First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeCategory(&category)
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	encodeCategory(category)
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return err
	}
	decodeCategory(category)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}
