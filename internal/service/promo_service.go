package service

import (
	"strings"
	"time"

	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"
)

// PromoService manages the marketing banners shown on the storefront home.
// These are independent of per-product discounts.
type PromoService struct {
	repo repository.PromoRepository
}

// NewPromoService creates the promo service.
func NewPromoService(repo repository.PromoRepository) *PromoService {
	return &PromoService{repo: repo}
}

// PromoInput is the create/update payload.
type PromoInput struct {
	Title      string
	Subtitle   string
	Conditions string
	StartsAt   *time.Time
	EndsAt     *time.Time
	ImageURL   string
	IsActive   *bool
}

// ListPublic returns active promos valid right now.
func (s *PromoService) ListPublic() ([]models.Promo, error) {
	now := time.Now()
	return s.repo.List(true, &now)
}

// ListAdmin returns every promo for the back-office.
func (s *PromoService) ListAdmin() ([]models.Promo, error) {
	return s.repo.List(false, nil)
}

// Get returns one promo.
func (s *PromoService) Get(id uint) (*models.Promo, error) {
	promo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrNotFound
	}
	return promo, nil
}

// Create adds a promo.
func (s *PromoService) Create(input PromoInput) (*models.Promo, error) {
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}
	promo := models.Promo{
		Title:      strings.TrimSpace(input.Title),
		Subtitle:   strings.TrimSpace(input.Subtitle),
		Conditions: strings.TrimSpace(input.Conditions),
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		ImageURL:   strings.TrimSpace(input.ImageURL),
		IsActive:   true,
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

// Update edits a promo.
func (s *PromoService) Update(id uint, input PromoInput) (*models.Promo, error) {
	promo, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrNotFound
	}
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}

	promo.Title = strings.TrimSpace(input.Title)
	promo.Subtitle = strings.TrimSpace(input.Subtitle)
	promo.Conditions = strings.TrimSpace(input.Conditions)
	promo.StartsAt = input.StartsAt
	promo.EndsAt = input.EndsAt
	promo.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if err := s.repo.Update(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Delete removes a promo.
func (s *PromoService) Delete(id uint) error {
	promo, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if promo == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func validatePromoInput(input PromoInput) error {
	var fields []string
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, "title")
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		fields = append(fields, "ends_at")
	}
	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}
