package repository

import (
	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// OrderEventRepository is the order status history data access interface.
type OrderEventRepository interface {
	Create(event *models.OrderEvent) error
	ListByOrder(orderID uint) ([]models.OrderEvent, error)
	WithTx(tx *gorm.DB) *GormOrderEventRepository
}

// GormOrderEventRepository is the GORM implementation.
type GormOrderEventRepository struct {
	db *gorm.DB
}

// NewOrderEventRepository creates the order event repository.
func NewOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderEventRepository) WithTx(tx *gorm.DB) *GormOrderEventRepository {
	if tx == nil {
		return r
	}
	return &GormOrderEventRepository{db: tx}
}

// Create inserts an event.
func (r *GormOrderEventRepository) Create(event *models.OrderEvent) error {
	return r.db.Create(event).Error
}

// ListByOrder returns an order's events, newest first.
func (r *GormOrderEventRepository) ListByOrder(orderID uint) ([]models.OrderEvent, error) {
	var events []models.OrderEvent
	err := r.db.Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
