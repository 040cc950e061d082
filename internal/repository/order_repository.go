package repository

import (
	"errors"
	"strings"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber int) (*models.Order, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	Update(order *models.Order) error
	NextOrderNumber() (int, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create inserts an order. The unique index on order_number surfaces a
// concurrent allocation of the same number as gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID fetches an order with its events, newest event first.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC, id DESC")
	})
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNumber fetches an order by its customer-facing number.
func (r *GormOrderRepository) GetByOrderNumber(orderNumber int) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListAdmin returns the back-office listing with the total count.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"customer_first_name LIKE ? OR customer_last_name LIKE ? OR customer_email LIKE ? OR customer_phone LIKE ?",
			like, like, like, like,
		)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")
	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update saves an order.
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// NextOrderNumber returns MAX(order_number)+1, or the baseline when no order
// exists yet. Soft-deleted orders still count so their numbers are never
// reissued. Call inside the insert transaction; uniqueness is enforced by the
// index, callers retry on duplicate key.
func (r *GormOrderRepository) NextOrderNumber() (int, error) {
	var max int
	err := r.db.Model(&models.Order{}).
		Unscoped().
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return constants.OrderNumberBaseline, nil
	}
	return max + 1, nil
}
