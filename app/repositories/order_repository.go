package repositories

import (
	"context"

	"github.com/aplamondon/go-restomenu/app/models"
	"gorm.io/gorm"
)

// Orders keep the soft-delete schema variant: rows carry a delete_date
// marker instead of being removed, and reads filter it out.
type OrderRepositoryImpl interface {
	GetAllWithDetails(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetAllWithDetails(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Preload("Details.Product").
		Where("delete_date IS NULL").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		for j := range orders[i].Details {
			if orders[i].Details[j].Product != nil {
				decodeProduct(orders[i].Details[j].Product)
			}
		}
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details").
		Where("delete_date IS NULL").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
