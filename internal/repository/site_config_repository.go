package repository

import (
	"errors"

	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// SiteConfigRepository accesses the singleton site configuration row.
type SiteConfigRepository interface {
	Get() (*models.SiteConfig, error)
	Save(cfg *models.SiteConfig) error
}

// GormSiteConfigRepository is the GORM implementation.
type GormSiteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository creates the site config repository.
func NewSiteConfigRepository(db *gorm.DB) *GormSiteConfigRepository {
	return &GormSiteConfigRepository{db: db}
}

// Get returns the singleton row, or nil when it was never written.
func (r *GormSiteConfigRepository) Get() (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := r.db.First(&cfg, models.SiteConfigID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Save upserts the singleton row.
func (r *GormSiteConfigRepository) Save(cfg *models.SiteConfig) error {
	cfg.ID = models.SiteConfigID
	return r.db.Save(cfg).Error
}
