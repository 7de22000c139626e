package models

// Option is a menu add-on (sauce, side, size...). Names are stored
// lower-cased; uniqueness is case-insensitive per language.
type Option struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEN        string     `gorm:"column:name_en;size:255;uniqueIndex:options_name_en_unique" json:"name_en"`
	NameFR        string     `gorm:"column:name_fr;size:255;uniqueIndex:options_name_fr_unique" json:"name_fr"`
	DescriptionEN string     `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionFR string     `gorm:"column:description_fr;type:text" json:"description_fr"`
	Thumbnail     string     `gorm:"type:text" json:"thumbnail"`
	Categories    []Category `gorm:"many2many:category_option;" json:"categories,omitempty"`
	Products      []Product  `gorm:"many2many:product_options;" json:"products,omitempty"`
}
