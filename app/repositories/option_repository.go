package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/aplamondon/go-restomenu/app/utils/names"
	"gorm.io/gorm"
)

type OptionRepositoryImpl interface {
	Create(ctx context.Context, option *models.Option) error
	GetByID(ctx context.Context, id uint) (*models.Option, error)
	GetByIDWithCategories(ctx context.Context, id uint) (*models.Option, error)
	GetAll(ctx context.Context) ([]models.Option, error)
	GetAllWithCategories(ctx context.Context) ([]models.Option, error)
	FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Option, error)
	Update(ctx context.Context, option *models.Option) error
	Delete(ctx context.Context, id uint) error
	ClearThumbnail(ctx context.Context, id uint) error
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepositoryImpl {
	return &optionRepository{db: db}
}

// Create persists the folded form, then hands the caller's struct back in
// display form like every read path does.
func (r *optionRepository) Create(ctx context.Context, option *models.Option) error {
	encodeOption(option)
	if err := r.db.WithContext(ctx).Create(option).Error; err != nil {
		return err
	}
	decodeOption(option)
	return nil
}

func (r *optionRepository) GetByID(ctx context.Context, id uint) (*models.Option, error) {
	var option models.Option
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeOption(&option)
	return &option, nil
}

func (r *optionRepository) GetByIDWithCategories(ctx context.Context, id uint) (*models.Option, error) {
	var option models.Option
	err := r.db.WithContext(ctx).Preload("Categories").First(&option, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeOption(&option)
	return &option, nil
}

func (r *optionRepository) GetAll(ctx context.Context) ([]models.Option, error) {
	var options []models.Option
	err := r.db.WithContext(ctx).Find(&options).Error
	if err != nil {
		return nil, err
	}
	for i := range options {
		decodeOption(&options[i])
	}
	return options, nil
}

func (r *optionRepository) GetAllWithCategories(ctx context.Context) ([]models.Option, error) {
	var options []models.Option
	err := r.db.WithContext(ctx).Preload("Categories").Find(&options).Error
	if err != nil {
		return nil, err
	}
	for i := range options {
		decodeOption(&options[i])
	}
	return options, nil
}

// FindByEitherName matches case-insensitively on either language. The
// English name is checked first so an exact name_en hit always wins over a
// name_fr hit on a different row. An empty name is never a match key:
// rows stored without a French name must not collide with each other.
func (r *optionRepository) FindByEitherName(ctx context.Context, nameEN, nameFR string) (*models.Option, error) {
	foldedEN := names.Fold(nameEN)
	foldedFR := names.Fold(nameFR)

	var option models.Option
	if foldedEN != "" {
		err := r.db.WithContext(ctx).Where("LOWER(name_en) = ?", foldedEN).First(&option).Error
		if err == nil {
			decodeOption(&option)
			return &option, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if foldedFR == "" {
		return nil, nil
	}
	err := r.db.WithContext(ctx).Where("LOWER(name_fr) = ?", foldedFR).First(&option).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeOption(&option)
	return &option, nil
}

func (r *optionRepository) Update(ctx context.Context, option *models.Option) error {
	encodeOption(option)
	if err := r.db.WithContext(ctx).Save(option).Error; err != nil {
		return err
	}
	decodeOption(option)
	return nil
}

func (r *optionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Option{}, "id = ?", id).Error
}

func (r *optionRepository) ClearThumbnail(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Option{}).Where("id = ?", id).Update("thumbnail", "").Error
}
