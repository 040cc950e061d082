package public

import (
	"strconv"

	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the storefront configuration.
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.SiteConfigService.Get()
	if err != nil {
		respondError(c, response.CodeInternal, "config fetch failed", err)
		return
	}
	response.Success(c, cfg)
}

// GetProducts returns the active catalog with optional filters.
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)

	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       c.Query("search"),
		ProductType:  c.Query("product_type"),
		OnlyActive:   true,
		OnlyFeatured: c.Query("featured") == "true",
		OnlyPromo:    c.Query("promo") == "true",
		OnlyOffer:    c.Query("offer") == "true",
		WithCategory: true,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
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

// GetProductBySlug returns one product for the detail page.
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	product, err := h.ProductService.GetBySlug(slug)
	if err != nil {
		respondServiceError(c, err, "product not found")
		return
	}
	if !product.IsActive {
		response.NotFound(c, "product not found")
		return
	}
	response.Success(c, product)
}

// GetCategories returns the active categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(true)
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}

// GetPromos returns the marketing promos valid right now.
func (h *Handler) GetPromos(c *gin.Context) {
	promos, err := h.PromoService.ListPublic()
	if err != nil {
		respondError(c, response.CodeInternal, "promo fetch failed", err)
		return
	}
	response.Success(c, promos)
}

// GetBranches returns the active branches.
func (h *Handler) GetBranches(c *gin.Context) {
	branches, err := h.BranchService.List(true)
	if err != nil {
		respondError(c, response.CodeInternal, "branch fetch failed", err)
		return
	}
	response.Success(c, branches)
}
