package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// OrderItem is the immutable per-line snapshot stored inside an order.
// Price is always the pre-multiplied line total (unit price x quantity, or
// per-kg rate x weight); UnitPrice keeps the rate it was derived from.
type OrderItem struct {
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	ProductType string  `json:"product_type"`
	Quantity    int     `json:"quantity,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	UnitPrice   Money   `json:"unit_price"`
	Price       Money   `json:"price"`
}

// OrderItemList stores the item snapshots as a JSON column.
type OrderItemList []OrderItem

// Value implements driver.Valuer.
func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *OrderItemList) Scan(value interface{}) error {
	if value == nil {
		*l = OrderItemList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Order is a submitted storefront order. The WhatsApp message is persisted
// verbatim so what staff sends always matches what was stored.
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	OrderNumber       int            `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerFirstName string         `gorm:"type:varchar(100);not null" json:"customer_first_name"`
	CustomerLastName  string         `gorm:"type:varchar(100);not null" json:"customer_last_name"`
	CustomerEmail     string         `gorm:"type:varchar(200);not null" json:"customer_email"`
	CustomerPhone     string         `gorm:"type:varchar(50);not null" json:"customer_phone"`
	PaymentMethod     string         `gorm:"type:varchar(30);not null" json:"payment_method"`
	DeliveryType      string         `gorm:"type:varchar(20);not null" json:"delivery_type"`
	DeliveryAddress   string         `gorm:"type:varchar(300)" json:"delivery_address,omitempty"`
	DeliveryZone      string         `gorm:"type:varchar(100)" json:"delivery_zone,omitempty"`
	BranchID          *uint          `gorm:"index" json:"branch_id,omitempty"`
	Items             OrderItemList  `gorm:"type:json;not null" json:"items"`
	Subtotal          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	Total             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	WhatsAppMessage   string         `gorm:"type:text" json:"whatsapp_message,omitempty"`
	Notes             string         `gorm:"type:text" json:"notes,omitempty"`
	Status            string         `gorm:"type:varchar(30);not null;default:'new';index" json:"status"`
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	Events []OrderEvent `gorm:"foreignKey:OrderID" json:"events,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
