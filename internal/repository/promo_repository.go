package repository

import (
	"errors"
	"time"

	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// PromoRepository is the marketing banner data access interface.
type PromoRepository interface {
	List(onlyActive bool, now *time.Time) ([]models.Promo, error)
	GetByID(id uint) (*models.Promo, error)
	Create(promo *models.Promo) error
	Update(promo *models.Promo) error
	Delete(id uint) error
}

// GormPromoRepository is the GORM implementation.
type GormPromoRepository struct {
	db *gorm.DB
}

// NewPromoRepository creates the promo repository.
func NewPromoRepository(db *gorm.DB) *GormPromoRepository {
	return &GormPromoRepository{db: db}
}

// List returns promos. With a non-nil now, only promos valid at that instant
// are returned (nil start/end means unbounded on that side).
func (r *GormPromoRepository) List(onlyActive bool, now *time.Time) ([]models.Promo, error) {
	query := r.db.Order("id DESC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if now != nil {
		query = query.
			Where("starts_at IS NULL OR starts_at <= ?", *now).
			Where("ends_at IS NULL OR ends_at >= ?", *now)
	}
	var promos []models.Promo
	if err := query.Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// GetByID fetches a promo by id.
func (r *GormPromoRepository) GetByID(id uint) (*models.Promo, error) {
	var promo models.Promo
	if err := r.db.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

// Create inserts a promo.
func (r *GormPromoRepository) Create(promo *models.Promo) error {
	return r.db.Create(promo).Error
}

// Update saves a promo.
func (r *GormPromoRepository) Update(promo *models.Promo) error {
	return r.db.Save(promo).Error
}

// Delete removes a promo.
func (r *GormPromoRepository) Delete(id uint) error {
	return r.db.Delete(&models.Promo{}, id).Error
}
