package service

import (
	"strings"

	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"
)

// BranchService manages pickup branches.
type BranchService struct {
	repo repository.BranchRepository
}

// NewBranchService creates the branch service.
func NewBranchService(repo repository.BranchRepository) *BranchService {
	return &BranchService{repo: repo}
}

// BranchInput is the create/update payload.
type BranchInput struct {
	Name        string
	AddressText string
	MapQuery    string
	Phone       string
	WhatsApp    string
	Hours       map[string]interface{}
	IsActive    *bool
}

// List returns branches; the storefront asks for active ones only.
func (s *BranchService) List(onlyActive bool) ([]models.Branch, error) {
	return s.repo.List(onlyActive)
}

// Get returns one branch.
func (s *BranchService) Get(id uint) (*models.Branch, error) {
	branch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrNotFound
	}
	return branch, nil
}

// Create adds a branch.
func (s *BranchService) Create(input BranchInput) (*models.Branch, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name")
	}
	branch := models.Branch{IsActive: true}
	applyBranchInput(&branch, input)
	if err := s.repo.Create(&branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

// Update edits a branch.
func (s *BranchService) Update(id uint, input BranchInput) (*models.Branch, error) {
	branch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name")
	}
	applyBranchInput(branch, input)
	if err := s.repo.Update(branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Delete removes a branch.
func (s *BranchService) Delete(id uint) error {
	branch, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func applyBranchInput(branch *models.Branch, input BranchInput) {
	branch.Name = strings.TrimSpace(input.Name)
	branch.AddressText = strings.TrimSpace(input.AddressText)
	branch.MapQuery = strings.TrimSpace(input.MapQuery)
	branch.Phone = strings.TrimSpace(input.Phone)
	branch.WhatsApp = strings.TrimSpace(input.WhatsApp)
	if input.Hours != nil {
		branch.HoursJSON = models.JSON(input.Hours)
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}
}
