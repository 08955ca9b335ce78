package models

import "gorm.io/gorm"

// Category classifies a closed ticket's resolution.
type Category struct {
	gorm.Model
	Name      string `gorm:"unique;not null" json:"name"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

// SubCategory always belongs to exactly one parent Category.
type SubCategory struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"index;not null" json:"categoryId"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
