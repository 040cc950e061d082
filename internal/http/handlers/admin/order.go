package admin

import (
	"time"

	"github.com/delipedidos/api/internal/http/handlers/shared"
	"github.com/delipedidos/api/internal/http/response"
	"github.com/delipedidos/api/internal/repository"
	"github.com/delipedidos/api/internal/service"

	"github.com/gin-gonic/gin"
)

// parseDateQuery accepts RFC3339 timestamps and plain dates.
func parseDateQuery(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// ListOrders returns orders for the back-office, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)

	filter := repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		CreatedFrom: parseDateQuery(c.Query("created_from")),
		CreatedTo:   parseDateQuery(c.Query("created_to")),
	}

	orders, total, err := h.OrderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder returns one order with its event history.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}
	response.Success(c, order)
}

// UpdateOrderRequest is a partial patch; absent fields keep their value.
type UpdateOrderRequest struct {
	Status            *string `json:"status"`
	EventNote         *string `json:"event_note"`
	Notes             *string `json:"notes"`
	CustomerFirstName *string `json:"customer_first_name"`
	CustomerLastName  *string `json:"customer_last_name"`
	CustomerEmail     *string `json:"customer_email"`
	CustomerPhone     *string `json:"customer_phone"`
	PaymentMethod     *string `json:"payment_method"`
	DeliveryType      *string `json:"delivery_type"`
	DeliveryAddress   *string `json:"delivery_address"`
	DeliveryZone      *string `json:"delivery_zone"`
	BranchID          *uint   `json:"branch_id"`
}

// UpdateOrder patches an order. A status change appends a history event; the
// stored WhatsApp message is rebuilt from the merged order either way.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.OrderService.UpdateOrder(id, service.UpdateOrderInput{
		Status:            req.Status,
		EventNote:         req.EventNote,
		Notes:             req.Notes,
		CustomerFirstName: req.CustomerFirstName,
		CustomerLastName:  req.CustomerLastName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		PaymentMethod:     req.PaymentMethod,
		DeliveryType:      req.DeliveryType,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryZone:      req.DeliveryZone,
		BranchID:          req.BranchID,
	})
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}
	response.Success(c, order)
}

// AddOrderNoteRequest carries the note text.
type AddOrderNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

// AddOrderNote stores a staff note and returns a WhatsApp deep link to send
// it to the customer.
func (h *Handler) AddOrderNote(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	var req AddOrderNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "note is required")
		return
	}

	result, err := h.OrderService.AddNote(id, req.Note)
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}
	response.Success(c, gin.H{
		"note":         result.Note,
		"whatsapp_url": result.WhatsAppURL,
	})
}

// ListOrderNotes returns the staff notes for an order, newest first.
func (h *Handler) ListOrderNotes(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	notes, err := h.OrderService.Notes(id)
	if err != nil {
		respondServiceError(c, err, "order not found")
		return
	}
	response.Success(c, notes)
}
