package models

import "time"

// OrderEvent is an immutable lifecycle record attached to an order.
type OrderEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	Status    string    `gorm:"type:varchar(30);not null" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (OrderEvent) TableName() string {
	return "order_events"
}
