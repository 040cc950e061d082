package repository

import (
	"errors"

	"github.com/delipedidos/api/internal/models"

	"gorm.io/gorm"
)

// BranchRepository is the branch data access interface.
type BranchRepository interface {
	List(onlyActive bool) ([]models.Branch, error)
	GetByID(id uint) (*models.Branch, error)
	Create(branch *models.Branch) error
	Update(branch *models.Branch) error
	Delete(id uint) error
}

// GormBranchRepository is the GORM implementation.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates the branch repository.
func NewBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// List returns branches.
func (r *GormBranchRepository) List(onlyActive bool) ([]models.Branch, error) {
	query := r.db.Order("id ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var branches []models.Branch
	if err := query.Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// GetByID fetches a branch by id.
func (r *GormBranchRepository) GetByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	if err := r.db.First(&branch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// Create inserts a branch.
func (r *GormBranchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

// Update saves a branch.
func (r *GormBranchRepository) Update(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

// Delete removes a branch.
func (r *GormBranchRepository) Delete(id uint) error {
	return r.db.Delete(&models.Branch{}, id).Error
}
