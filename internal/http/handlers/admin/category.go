package admin

import (
	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryRequest is the create/update payload.
type CategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:      r.Name,
		Slug:      r.Slug,
		SortOrder: r.SortOrder,
		IsActive:  r.IsActive,
	}
}

// ListCategories returns every category, inactive ones included.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	category, err := h.CategoryService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, category)
}

// UpdateCategory replaces a category's fields.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	category, err := h.CategoryService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category. Categories that still hold products are
// refused.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondServiceError(c, err, "category not found")
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}
