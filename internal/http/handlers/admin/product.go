package admin

import (
	"strconv"

	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/repository"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest is the create/update payload. Amounts arrive as JSON numbers
// or numeric strings; both parse into decimals.
type ProductRequest struct {
	CategoryID         *uint            `json:"category_id"`
	Name               string           `json:"name"`
	Slug               string           `json:"slug"`
	Description        string           `json:"description"`
	ProductType        string           `json:"product_type"`
	Price              decimal.Decimal  `json:"price"`
	PricePerKg         decimal.Decimal  `json:"price_per_kg"`
	PromoPrice         *decimal.Decimal `json:"promo_price"`
	PromoDiscountType  string           `json:"promo_discount_type"`
	PromoDiscountValue decimal.Decimal  `json:"promo_discount_value"`
	PromoBadge         string           `json:"promo_badge"`
	Images             []string         `json:"images"`
	Tags               []string         `json:"tags"`
	IsActive           *bool            `json:"is_active"`
	IsFeatured         bool             `json:"is_featured"`
	IsPromo            bool             `json:"is_promo"`
	IsOffer            bool             `json:"is_offer"`
	HasStock           *bool            `json:"has_stock"`
	SortOrder          int              `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		CategoryID:         r.CategoryID,
		Name:               r.Name,
		Slug:               r.Slug,
		Description:        r.Description,
		ProductType:        r.ProductType,
		Price:              r.Price,
		PricePerKg:         r.PricePerKg,
		PromoPrice:         r.PromoPrice,
		PromoDiscountType:  r.PromoDiscountType,
		PromoDiscountValue: r.PromoDiscountValue,
		PromoBadge:         r.PromoBadge,
		Images:             r.Images,
		Tags:               r.Tags,
		IsActive:           r.IsActive,
		IsFeatured:         r.IsFeatured,
		IsPromo:            r.IsPromo,
		IsOffer:            r.IsOffer,
		HasStock:           r.HasStock,
		SortOrder:          r.SortOrder,
	}
}

// ListProducts returns the catalog for the back-office, inactive products
// included.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		ProductType:  c.Query("product_type"),
		WithCategory: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	switch c.Query("active") {
	case "true":
		filter.OnlyActive = true
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct returns one product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondServiceError(c, err, "product not found")
		return
	}
	response.Success(c, product)
}

// CreateProduct adds a product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "product not found")
		return
	}
	response.Success(c, product)
}

// UpdateProduct replaces a product's fields.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "product not found")
		return
	}
	response.Success(c, product)
}

// DeleteProduct soft-deletes a product. Past orders keep their snapshots.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err, "product not found")
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}
