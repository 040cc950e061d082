package models

import "time"

// OrderNote is a free-text note staff sends to the customer over WhatsApp.
type OrderNote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (OrderNote) TableName() string {
	return "order_notes"
}
