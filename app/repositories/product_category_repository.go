package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"gorm.io/gorm"
)

type ProductCategoryRepositoryImpl interface {
	Attach(ctx context.Context, productID, categoryID uint) error
	Detach(ctx context.Context, productID, categoryID uint) error
	DetachAllForProduct(ctx context.Context, productID uint) error
	DetachAllForCategory(ctx context.Context, categoryID uint) error
	Exists(ctx context.Context, productID, categoryID uint) (bool, error)
}

type productCategoryRepository struct {
	db *gorm.DB
}

func NewProductCategoryRepository(db *gorm.DB) ProductCategoryRepositoryImpl {
	return &productCategoryRepository{db: db}
}

func (r *productCategoryRepository) Attach(ctx context.Context, productID, categoryID uint) error {
	exists, err := r.Exists(ctx, productID, categoryID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	link := models.ProductCategory{ProductID: productID, CategoryID: categoryID}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *productCategoryRepository) Detach(ctx context.Context, productID, categoryID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Delete(&models.ProductCategory{}).Error
}

func (r *productCategoryRepository) DetachAllForProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.ProductCategory{}).Error
}

func (r *productCategoryRepository) DetachAllForCategory(ctx context.Context, categoryID uint) error {
	return r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&models.ProductCategory{}).Error
}

func (r *productCategoryRepository) Exists(ctx context.Context, productID, categoryID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductCategory{}).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
