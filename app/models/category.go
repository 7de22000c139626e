package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEN   string    `gorm:"column:name_en;size:255;uniqueIndex:categories_name_en_unique" json:"name_en"`
	NameFR   string    `gorm:"column:name_fr;size:255;uniqueIndex:categories_name_fr_unique" json:"name_fr"`
	Options  []Option  `gorm:"many2many:category_option;" json:"options,omitempty"`
	Products []Product `gorm:"many2many:product_categories;" json:"products,omitempty"`
}

// CategoryOption links categories to the options offered under them.
type CategoryOption struct {
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
	OptionID   uint `gorm:"primaryKey" json:"option_id"`
}

// TableName keeps the join table aligned with the many2many relation tag.
func (CategoryOption) TableName() string {
	return "category_option"
}
