package models

import (
	"time"

	"gorm.io/gorm"
)

// Branch is a physical store customers can pick orders up from.
type Branch struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	AddressText string         `gorm:"type:varchar(300)" json:"address_text,omitempty"`
	MapQuery    string         `gorm:"type:varchar(300)" json:"map_query,omitempty"`
	Phone       string         `gorm:"type:varchar(50)" json:"phone,omitempty"`
	WhatsApp    string         `gorm:"type:varchar(50)" json:"whatsapp,omitempty"`
	HoursJSON   JSON           `gorm:"type:json" json:"hours,omitempty"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Branch) TableName() string {
	return "branches"
}
