package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint            `gorm:"index" json:"customer_id"`
	Customer   *Customer       `json:"customer,omitempty"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total"`
	Status     string          `gorm:"size:50" json:"status"`
	PlacedAt   *time.Time      `gorm:"column:placed_at" json:"placed_at,omitempty"`
	Details    []OrderDetail   `json:"details,omitempty"`
	CreateDate time.Time       `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	DeleteDate *time.Time      `gorm:"column:delete_date" json:"delete_date,omitempty"`
}

type OrderDetail struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint            `gorm:"index" json:"order_id"`
	ProductID  uint            `gorm:"index" json:"product_id"`
	Product    *Product        `json:"product,omitempty"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2);default:0" json:"unit_price"`
	Options    datatypes.JSON  `gorm:"type:json" json:"options,omitempty"`
	CreateDate time.Time       `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	DeleteDate *time.Time      `gorm:"column:delete_date" json:"delete_date,omitempty"`
}

type Customer struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string     `gorm:"size:100" json:"first_name"`
	LastName   string     `gorm:"size:100" json:"last_name"`
	Email      string     `gorm:"size:255;index" json:"email"`
	Phone      string     `gorm:"size:50" json:"phone"`
	Address    string     `gorm:"size:255" json:"address"`
	City       string     `gorm:"size:100" json:"city"`
	Province   string     `gorm:"size:100" json:"province"`
	PostalCode string     `gorm:"size:20" json:"postal_code"`
	Orders     []Order    `json:"orders,omitempty"`
	CreateDate time.Time  `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	DeleteDate *time.Time `gorm:"column:delete_date" json:"delete_date,omitempty"`
}
