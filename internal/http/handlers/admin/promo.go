package admin

import (
	"time"

	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// PromoRequest is the create/update payload.
type PromoRequest struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Conditions string     `json:"conditions"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	ImageURL   string     `json:"image_url"`
	IsActive   *bool      `json:"is_active"`
}

func (r PromoRequest) toInput() service.PromoInput {
	return service.PromoInput{
		Title:      r.Title,
		Subtitle:   r.Subtitle,
		Conditions: r.Conditions,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		ImageURL:   r.ImageURL,
		IsActive:   r.IsActive,
	}
}

// ListPromos returns every promo regardless of window or active flag.
func (h *Handler) ListPromos(c *gin.Context) {
	promos, err := h.PromoService.ListAdmin()
	if err != nil {
		respondError(c, response.CodeInternal, "promo fetch failed", err)
		return
	}
	response.Success(c, promos)
}

// CreatePromo adds a promo.
func (h *Handler) CreatePromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	promo, err := h.PromoService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "promo not found")
		return
	}
	response.Success(c, promo)
}

// UpdatePromo replaces a promo's fields.
func (h *Handler) UpdatePromo(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid promo id")
		return
	}
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	promo, err := h.PromoService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "promo not found")
		return
	}
	response.Success(c, promo)
}

// DeletePromo removes a promo.
func (h *Handler) DeletePromo(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid promo id")
		return
	}
	if err := h.PromoService.Delete(id); err != nil {
		respondServiceError(c, err, "promo not found")
		return
	}
	response.SuccessWithMsg(c, "promo deleted", nil)
}
