package migrations

import (
	"github.com/aplamondon/go-restomenu/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Option{},
		&models.Category{},
		&models.ProductOption{},
		&models.ProductCategory{},
		&models.CategoryOption{},
		&models.Customer{},
		&models.Order{},
		&models.OrderDetail{},
	)
}
