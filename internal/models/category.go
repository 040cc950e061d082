package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products in the storefront catalog.
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
