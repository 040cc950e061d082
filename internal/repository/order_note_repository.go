package repository

import (
	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// OrderNoteRepository is the order note data access interface.
type OrderNoteRepository interface {
	Create(note *models.OrderNote) error
	ListByOrder(orderID uint) ([]models.OrderNote, error)
}

// GormOrderNoteRepository is the GORM implementation.
type GormOrderNoteRepository struct {
	db *gorm.DB
}

// NewOrderNoteRepository creates the order note repository.
func NewOrderNoteRepository(db *gorm.DB) *GormOrderNoteRepository {
	return &GormOrderNoteRepository{db: db}
}

// Create inserts a note.
func (r *GormOrderNoteRepository) Create(note *models.OrderNote) error {
	return r.db.Create(note).Error
}

// ListByOrder returns an order's notes, newest first.
func (r *GormOrderNoteRepository) ListByOrder(orderID uint) ([]models.OrderNote, error) {
	var notes []models.OrderNote
	err := r.db.Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
