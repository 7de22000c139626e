package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEN        string          `gorm:"column:name_en;size:255" json:"name_en"`
	NameFR        string          `gorm:"column:name_fr;size:255" json:"name_fr"`
	DescriptionEN string          `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionFR string          `gorm:"column:description_fr;type:text" json:"description_fr"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	Thumbnail     string          `gorm:"type:text" json:"thumbnail"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	Options       []Option        `gorm:"many2many:product_options;" json:"options,omitempty"`
	Categories    []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CreateDate    time.Time       `gorm:"column:create_date;autoCreateTime" json:"create_date"`
	DeleteDate    *time.Time      `gorm:"column:delete_date" json:"delete_date,omitempty"`
}

// ProductOption is the Product-Option join row. extra_price lives on the
// link itself, not on either side.
type ProductOption struct {
	ProductID  uint            `gorm:"primaryKey" json:"product_id"`
	OptionID   uint            `gorm:"primaryKey" json:"option_id"`
	ExtraPrice decimal.Decimal `gorm:"column:extra_price;type:decimal(10,2);default:0" json:"extra_price"`
}

type ProductCategory struct {
	ProductID  uint `gorm:"primaryKey" json:"product_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}
