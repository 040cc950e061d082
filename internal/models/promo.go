package models

import (
	"time"

	"gorm.io/gorm"
)

// Promo is a marketing campaign shown in the storefront, independent of the
// per-product discount fields on Product.
type Promo struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Title      string         `gorm:"type:varchar(200);not null" json:"title"`
	Subtitle   string         `gorm:"type:varchar(300)" json:"subtitle,omitempty"`
	Conditions string         `gorm:"type:text" json:"conditions,omitempty"`
	StartsAt   *time.Time     `gorm:"index" json:"starts_at,omitempty"`
	EndsAt     *time.Time     `gorm:"index" json:"ends_at,omitempty"`
	ImageURL   string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Promo) TableName() string {
	return "promos"
}
