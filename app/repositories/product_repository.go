package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetAllWithAssociations(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

// Create persists the folded form and returns the caller's struct in
// display form, mirroring the read paths.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	encodeProduct(product)
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return err
	}
	decodeProduct(product)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	decodeProduct(&product)
	return &product, nil
}

func (r *productRepository) GetAllWithAssociations(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Options").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	for i := range products {
		decodeProduct(&products[i])
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	encodeProduct(product)
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return err
	}
	decodeProduct(product)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
