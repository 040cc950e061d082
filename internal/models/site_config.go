package models

import "time"

// SiteConfig is a singleton row (ID always 1) with storefront branding and
// the WhatsApp number order messages are sent to.
type SiteConfig struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	BrandName       string      `gorm:"type:varchar(200);not null" json:"brand_name"`
	BrandTagline    string      `gorm:"type:varchar(300)" json:"brand_tagline,omitempty"`
	WhatsAppNumber  string      `gorm:"type:varchar(50)" json:"whatsapp_number,omitempty"`
	Currency        string      `gorm:"type:varchar(10);not null;default:'ARS'" json:"currency"`
	DeliveryOptions JSON        `gorm:"type:json" json:"delivery_options,omitempty"`
	PaymentMethods  StringArray `gorm:"type:json" json:"payment_methods"`
	Theme           JSON        `gorm:"type:json" json:"theme,omitempty"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName sets the table name.
func (SiteConfig) TableName() string {
	return "site_config"
}

// SiteConfigID is the fixed primary key of the singleton row.
const SiteConfigID uint = 1
