package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductOptionRepositoryImpl manages Product-Option join rows and their
// extra_price pivot. Attach is create-only for pivot data: re-attaching an
// existing pair is a no-op and the stored extra_price is left untouched.
// Changing it means detach then attach again.
type ProductOptionRepositoryImpl interface {
	Attach(ctx context.Context, productID, optionID uint, extraPrice decimal.Decimal) error
	Detach(ctx context.Context, productID, optionID uint) error
	DetachAllForProduct(ctx context.Context, productID uint) error
	DetachAllForOption(ctx context.Context, optionID uint) error
	Exists(ctx context.Context, productID, optionID uint) (bool, error)
	ListForProducts(ctx context.Context, productIDs []uint) ([]models.ProductOption, error)
}

type productOptionRepository struct {
	db *gorm.DB
}

func NewProductOptionRepository(db *gorm.DB) ProductOptionRepositoryImpl {
	return &productOptionRepository{db: db}
}

func (r *productOptionRepository) Attach(ctx context.Context, productID, optionID uint, extraPrice decimal.Decimal) error {
	exists, err := r.Exists(ctx, productID, optionID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	link := models.ProductOption{ProductID: productID, OptionID: optionID, ExtraPrice: extraPrice}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *productOptionRepository) Detach(ctx context.Context, productID, optionID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND option_id = ?", productID, optionID).
		Delete(&models.ProductOption{}).Error
}

func (r *productOptionRepository) DetachAllForProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductOption{}).Error
}

func (r *productOptionRepository) DetachAllForOption(ctx context.Context, optionID uint) error {
	return r.db.WithContext(ctx).
		Where("option_id = ?", optionID).
		Delete(&models.ProductOption{}).Error
}

// ListForProducts loads the join rows for a set of products, so callers
// can surface the extra_price pivot next to each attached option.
func (r *productOptionRepository) ListForProducts(ctx context.Context, productIDs []uint) ([]models.ProductOption, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var links []models.ProductOption
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *productOptionRepository) Exists(ctx context.Context, productID, optionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductOption{}).
		Where("product_id = ? AND option_id = ?", productID, optionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
