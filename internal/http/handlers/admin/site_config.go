package admin

import (
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// SiteConfigRequest is the update payload.
type SiteConfigRequest struct {
	BrandName       string                 `json:"brand_name"`
	BrandTagline    string                 `json:"brand_tagline"`
	WhatsAppNumber  string                 `json:"whatsapp_number"`
	Currency        string                 `json:"currency"`
	DeliveryOptions map[string]interface{} `json:"delivery_options"`
	PaymentMethods  []string               `json:"payment_methods"`
	Theme           map[string]interface{} `json:"theme"`
}

// GetSiteConfig returns the storefront configuration for editing.
func (h *Handler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.SiteConfigService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "config fetch failed", err)
		return
	}
	response.Success(c, cfg)
}

// UpdateSiteConfig overwrites the storefront configuration.
func (h *Handler) UpdateSiteConfig(c *gin.Context) {
	var req SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	cfg, err := h.SiteConfigService.Update(service.SiteConfigInput{
		BrandName:       req.BrandName,
		BrandTagline:    req.BrandTagline,
		WhatsAppNumber:  req.WhatsAppNumber,
		Currency:        req.Currency,
		DeliveryOptions: req.DeliveryOptions,
		PaymentMethods:  req.PaymentMethods,
		Theme:           req.Theme,
	})
	if err != nil {
		respondServiceError(c, err, "config not found")
		return
	}
	response.Success(c, cfg)
}
