package public

import (
	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the checkout payload. Items reference products by id;
// unit prices are resolved server-side from the catalog.
type CreateOrderRequest struct {
	CustomerFirstName string                   `json:"customer_first_name"`
	CustomerLastName  string                   `json:"customer_last_name"`
	CustomerEmail     string                   `json:"customer_email"`
	CustomerPhone     string                   `json:"customer_phone"`
	PaymentMethod     string                   `json:"payment_method"`
	DeliveryType      string                   `json:"delivery_type"`
	DeliveryAddress   string                   `json:"delivery_address"`
	DeliveryZone      string                   `json:"delivery_zone"`
	BranchID          *uint                    `json:"branch_id"`
	Items             []CreateOrderItemRequest `json:"items"`
	Notes             string                   `json:"notes"`
}

// CreateOrderItemRequest is one checkout line.
type CreateOrderItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Weight    float64 `json:"weight"`
}

// CreateOrderResponse carries the persisted order and the WhatsApp handoff.
type CreateOrderResponse struct {
	Order       *models.Order `json:"order"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// CreateOrder submits a checkout. Items are repriced from the catalog before
// the order service validates and persists them.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	items, err := h.buildOrderItems(req.Items)
	if err != nil {
		respondServiceError(c, err, "product not found")
		return
	}

	result, err := h.OrderService.Submit(service.SubmitOrderInput{
		CustomerFirstName: req.CustomerFirstName,
		CustomerLastName:  req.CustomerLastName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		PaymentMethod:     req.PaymentMethod,
		DeliveryType:      req.DeliveryType,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryZone:      req.DeliveryZone,
		BranchID:          req.BranchID,
		Items:             items,
		Notes:             req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}

	response.Success(c, CreateOrderResponse{
		Order:       result.Order,
		WhatsAppURL: result.WhatsAppURL,
	})
}

// buildOrderItems resolves every requested line against the catalog. Unknown,
// inactive and out-of-stock products fail the whole checkout rather than
// silently shrinking the order the customer reviewed.
func (h *Handler) buildOrderItems(reqItems []CreateOrderItemRequest) ([]service.SubmitOrderItemInput, error) {
	if len(reqItems) == 0 {
		return nil, service.NewValidationError("items")
	}

	ids := make([]uint, 0, len(reqItems))
	for _, item := range reqItems {
		ids = append(ids, item.ProductID)
	}
	products, err := h.ProductRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]service.SubmitOrderItemInput, 0, len(reqItems))
	for _, item := range reqItems {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive || !product.HasStock {
			return nil, service.NewValidationError("items")
		}
		input := service.SubmitOrderItemInput{
			ProductID:   product.ID,
			Name:        product.Name,
			ProductType: product.ProductType,
			UnitPrice:   h.ProductService.EffectivePrice(product),
		}
		if product.ProductType == constants.ProductTypeWeighted {
			input.Weight = item.Weight
		} else {
			input.Quantity = item.Quantity
		}
		items = append(items, input)
	}
	return items, nil
}
