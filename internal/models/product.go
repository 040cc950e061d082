package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item. ProductType decides which price column applies:
// standard/combo sell per unit (Price), weighted sells per kilogram
// (PricePerKg). PromoPrice, when set, overrides the base price everywhere.
type Product struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	CategoryID         *uint          `gorm:"index" json:"category_id,omitempty"`
	Name               string         `gorm:"type:varchar(200);not null" json:"name"`
	Slug               string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description        string         `gorm:"type:text" json:"description,omitempty"`
	ProductType        string         `gorm:"type:varchar(20);not null;default:'standard';index" json:"product_type"`
	Price              Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	PricePerKg         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_per_kg"`
	PromoPrice         *Money         `gorm:"type:decimal(20,2)" json:"promo_price,omitempty"`
	PromoDiscountType  string         `gorm:"type:varchar(20)" json:"promo_discount_type,omitempty"` // fixed / percentage / ""
	PromoDiscountValue Money          `gorm:"type:decimal(20,2);not null;default:0" json:"promo_discount_value"`
	PromoBadge         string         `gorm:"type:varchar(100)" json:"promo_badge,omitempty"`
	Images             StringArray    `gorm:"type:json" json:"images"`
	Tags               StringArray    `gorm:"type:json" json:"tags"`
	IsActive           bool           `gorm:"default:true;index" json:"is_active"`
	IsFeatured         bool           `gorm:"default:false" json:"is_featured"`
	IsPromo            bool           `gorm:"default:false" json:"is_promo"`
	IsOffer            bool           `gorm:"default:false" json:"is_offer"`
	HasStock           bool           `gorm:"default:true" json:"has_stock"`
	SortOrder          int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// BasePrice returns the undiscounted price basis for the product type.
func (p *Product) BasePrice() Money {
	if p.ProductType == "weighted" {
		return p.PricePerKg
	}
	return p.Price
}
