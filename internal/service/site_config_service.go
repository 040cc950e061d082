package service

import (
	"strings"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"
)

// SiteConfigService manages the singleton storefront configuration.
type SiteConfigService struct {
	repo repository.SiteConfigRepository
}

// NewSiteConfigService creates the site config service.
func NewSiteConfigService(repo repository.SiteConfigRepository) *SiteConfigService {
	return &SiteConfigService{repo: repo}
}

// SiteConfigInput is the update payload.
type SiteConfigInput struct {
	BrandName       string
	BrandTagline    string
	WhatsAppNumber  string
	Currency        string
	DeliveryOptions map[string]interface{}
	PaymentMethods  []string
	Theme           map[string]interface{}
}

// Get returns the configuration, falling back to defaults when the row was
// never written so the storefront always has something to render.
func (s *SiteConfigService) Get() (*models.SiteConfig, error) {
	cfg, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return defaultSiteConfig(), nil
	}
	return cfg, nil
}

// Update overwrites the configuration.
func (s *SiteConfigService) Update(input SiteConfigInput) (*models.SiteConfig, error) {
	if strings.TrimSpace(input.BrandName) == "" {
		return nil, NewValidationError("brand_name")
	}

	cfg, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaultSiteConfig()
	}

	cfg.BrandName = strings.TrimSpace(input.BrandName)
	cfg.BrandTagline = strings.TrimSpace(input.BrandTagline)
	cfg.WhatsAppNumber = strings.TrimSpace(input.WhatsAppNumber)
	if currency := strings.TrimSpace(input.Currency); currency != "" {
		cfg.Currency = currency
	}
	if input.DeliveryOptions != nil {
		cfg.DeliveryOptions = models.JSON(input.DeliveryOptions)
	}
	if input.PaymentMethods != nil {
		cfg.PaymentMethods = models.StringArray(input.PaymentMethods)
	}
	if input.Theme != nil {
		cfg.Theme = models.JSON(input.Theme)
	}

	if err := s.repo.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WhatsAppNumber returns the configured order destination number, or "".
func (s *SiteConfigService) WhatsAppNumber() (string, error) {
	cfg, err := s.repo.Get()
	if err != nil {
		return "", err
	}
	if cfg == nil {
		return "", nil
	}
	return strings.TrimSpace(cfg.WhatsAppNumber), nil
}

func defaultSiteConfig() *models.SiteConfig {
	return &models.SiteConfig{
		ID:        models.SiteConfigID,
		BrandName: "Delipedidos",
		Currency:  "ARS",
		PaymentMethods: models.StringArray{
			constants.PaymentMethodCash,
			constants.PaymentMethodTransfer,
			constants.PaymentMethodMercadoPago,
		},
	}
}
