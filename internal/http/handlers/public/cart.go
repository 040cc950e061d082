package public

import (
	"github.com/delipedidos/api/internal/cart"
	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// QuoteCartRequest is the client's cart, identified by product ids only.
// Prices always come from the catalog so a stale or tampered client cannot
// change what an item costs.
type QuoteCartRequest struct {
	Items []QuoteCartItem `json:"items" binding:"required"`
}

// QuoteCartItem is one requested line.
type QuoteCartItem struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity"`
	Weight    float64 `json:"weight"`
}

// QuoteCartLine is one priced line in the response.
type QuoteCartLine struct {
	ProductID   uint         `json:"product_id"`
	Name        string       `json:"name"`
	Image       string       `json:"image,omitempty"`
	ProductType string       `json:"product_type"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity,omitempty"`
	Weight      float64      `json:"weight,omitempty"`
	LineTotal   models.Money `json:"line_total"`
}

// QuoteCartResponse is the server-priced cart.
type QuoteCartResponse struct {
	Items     []QuoteCartLine `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  models.Money    `json:"subtotal"`
	Total     models.Money    `json:"total"`
}

// QuoteCart reprices the submitted cart against the current catalog. Lines
// for unknown, inactive or out-of-stock products are dropped, duplicated
// product ids are merged, and weighted lines without a weight are dropped.
func (h *Handler) QuoteCart(c *gin.Context) {
	var req QuoteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := h.ProductRepo.GetByIDs(ids)
	if err != nil {
		respondError(c, response.CodeInternal, "cart quote failed", err)
		return
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var quoted cart.Cart
	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive || !product.HasStock {
			continue
		}
		line := cart.Line{
			ProductID:   product.ID,
			Name:        product.Name,
			ProductType: product.ProductType,
			UnitPrice:   h.ProductService.EffectivePrice(product),
			Quantity:    item.Quantity,
			Weight:      decimal.NewFromFloat(item.Weight),
		}
		if len(product.Images) > 0 {
			line.Image = product.Images[0]
		}
		if product.ProductType == constants.ProductTypeWeighted && line.Weight.LessThanOrEqual(decimal.Zero) {
			continue
		}
		quoted = cart.Add(quoted, line)
	}

	resp := QuoteCartResponse{
		Items:     make([]QuoteCartLine, 0, len(quoted)),
		ItemCount: cart.ItemCount(quoted),
	}
	subtotal := cart.Total(quoted)
	resp.Subtotal = models.NewMoneyFromDecimal(subtotal)
	resp.Total = resp.Subtotal
	for _, line := range quoted {
		out := QuoteCartLine{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Image:       line.Image,
			ProductType: line.ProductType,
			UnitPrice:   models.NewMoneyFromDecimal(line.UnitPrice),
			Quantity:    line.Quantity,
		}
		if line.ProductType == constants.ProductTypeWeighted {
			out.Weight, _ = line.Weight.Float64()
		}
		if total, err := pricing.LineTotal(line.ProductType, line.UnitPrice, line.Quantity, line.Weight); err == nil {
			out.LineTotal = models.NewMoneyFromDecimal(total)
		}
		resp.Items = append(resp.Items, out)
	}

	response.Success(c, resp)
}
