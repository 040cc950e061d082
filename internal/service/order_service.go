package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/pricing"
	"github.com/delipedidos/api/internal/repository"
	"github.com/delipedidos/api/internal/whatsapp"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderNumberMaxRetries bounds how often a submission retries after losing
// an order-number race to a concurrent insert.
const orderNumberMaxRetries = 3

// OrderService owns order submission and the back-office order workflow.
type OrderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	eventRepo     repository.OrderEventRepository
	noteRepo      repository.OrderNoteRepository
	branchRepo    repository.BranchRepository
	siteConfigSvc *SiteConfigService
}

// NewOrderService creates the order service.
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	eventRepo repository.OrderEventRepository,
	noteRepo repository.OrderNoteRepository,
	branchRepo repository.BranchRepository,
	siteConfigSvc *SiteConfigService,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		eventRepo:     eventRepo,
		noteRepo:      noteRepo,
		branchRepo:    branchRepo,
		siteConfigSvc: siteConfigSvc,
	}
}

// SubmitOrderItemInput is one cart line at checkout. UnitPrice is the per-kg
// rate for weighted items and the per-unit price otherwise.
type SubmitOrderItemInput struct {
	ProductID   uint
	Name        string
	ProductType string
	Quantity    int
	Weight      float64
	UnitPrice   decimal.Decimal
}

// SubmitOrderInput is the checkout payload.
type SubmitOrderInput struct {
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	PaymentMethod     string
	DeliveryType      string
	DeliveryAddress   string
	DeliveryZone      string
	BranchID          *uint
	Items             []SubmitOrderItemInput
	Notes             string
}

// SubmitOrderResult is what the storefront needs to hand over to WhatsApp.
type SubmitOrderResult struct {
	Order       *models.Order
	WhatsAppURL string
}

// Submit validates the checkout, prices it, allocates the next order number
// and persists the order with its message. The number is allocated inside the
// insert transaction; the unique index catches a concurrent winner and the
// whole transaction is retried.
func (s *OrderService) Submit(input SubmitOrderInput) (*SubmitOrderResult, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	items, subtotal, err := priceItems(input.Items)
	if err != nil {
		return nil, err
	}

	branchName := s.resolveBranchName(input.BranchID)

	var order *models.Order
	for attempt := 0; ; attempt++ {
		order, err = s.insertOrder(input, items, subtotal, branchName)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < orderNumberMaxRetries {
			logger.Warnw("order_number_conflict_retry", "attempt", attempt+1)
			continue
		}
		return nil, err
	}

	// The initial event is best effort: the order is already committed and a
	// history gap must not cancel a sale.
	event := models.OrderEvent{
		OrderID: order.ID,
		Status:  constants.OrderStatusNew,
		Notes:   "Orden creada",
	}
	if err := s.eventRepo.Create(&event); err != nil {
		logger.Errorw("order_event_create_failed", "order_id", order.ID, "error", err)
	}

	number, err := s.siteConfigSvc.WhatsAppNumber()
	if err != nil {
		logger.Errorw("order_whatsapp_number_lookup_failed", "order_id", order.ID, "error", err)
		number = ""
	}

	logger.Infow("order_submitted",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"total", order.Total.String(),
	)
	return &SubmitOrderResult{
		Order:       order,
		WhatsAppURL: whatsapp.BuildLink(number, order.WhatsAppMessage),
	}, nil
}

func (s *OrderService) insertOrder(input SubmitOrderInput, items []models.OrderItem, subtotal decimal.Decimal, branchName string) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		orderNumber, err := repo.NextOrderNumber()
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber:       orderNumber,
			CustomerFirstName: strings.TrimSpace(input.CustomerFirstName),
			CustomerLastName:  strings.TrimSpace(input.CustomerLastName),
			CustomerEmail:     strings.TrimSpace(input.CustomerEmail),
			CustomerPhone:     strings.TrimSpace(input.CustomerPhone),
			PaymentMethod:     input.PaymentMethod,
			DeliveryType:      input.DeliveryType,
			DeliveryAddress:   strings.TrimSpace(input.DeliveryAddress),
			DeliveryZone:      strings.TrimSpace(input.DeliveryZone),
			BranchID:          input.BranchID,
			Items:             items,
			Subtotal:          models.NewMoneyFromDecimal(subtotal),
			Total:             models.NewMoneyFromDecimal(subtotal),
			Notes:             strings.TrimSpace(input.Notes),
			Status:            constants.OrderStatusNew,
		}
		order.WhatsAppMessage = whatsapp.BuildOrderMessage(messageData(&order, branchName))
		return repo.Create(&order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderInput is the back-office patch. Nil pointers leave fields alone.
// The status set is open on purpose: staff may move an order to any label in
// any direction.
type UpdateOrderInput struct {
	Status            *string
	EventNote         *string
	Notes             *string
	CustomerFirstName *string
	CustomerLastName  *string
	CustomerEmail     *string
	CustomerPhone     *string
	PaymentMethod     *string
	DeliveryType      *string
	DeliveryAddress   *string
	DeliveryZone      *string
	BranchID          *uint
}

// UpdateOrder applies the patch, rebuilds the stored message from the merged
// order, and appends a history event when the status changed.
func (s *OrderService) UpdateOrder(id uint, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	previousStatus := order.Status
	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		if status == "" {
			return nil, NewValidationError("status")
		}
		order.Status = status
	}
	if input.Notes != nil {
		order.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.CustomerFirstName != nil {
		order.CustomerFirstName = strings.TrimSpace(*input.CustomerFirstName)
	}
	if input.CustomerLastName != nil {
		order.CustomerLastName = strings.TrimSpace(*input.CustomerLastName)
	}
	if input.CustomerEmail != nil {
		order.CustomerEmail = strings.TrimSpace(*input.CustomerEmail)
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.PaymentMethod != nil {
		order.PaymentMethod = *input.PaymentMethod
	}
	if input.DeliveryType != nil {
		deliveryType := *input.DeliveryType
		if deliveryType != constants.DeliveryTypePickup && deliveryType != constants.DeliveryTypeDelivery {
			return nil, NewValidationError("delivery_type")
		}
		order.DeliveryType = deliveryType
	}
	if input.DeliveryAddress != nil {
		order.DeliveryAddress = strings.TrimSpace(*input.DeliveryAddress)
	}
	if input.DeliveryZone != nil {
		order.DeliveryZone = strings.TrimSpace(*input.DeliveryZone)
	}
	if input.BranchID != nil {
		order.BranchID = input.BranchID
	}

	branchName := s.resolveBranchName(order.BranchID)
	order.WhatsAppMessage = whatsapp.BuildOrderMessage(messageData(order, branchName))

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if order.Status != previousStatus {
		note := fmt.Sprintf("Estado cambiado de %s a %s", previousStatus, order.Status)
		if input.EventNote != nil && strings.TrimSpace(*input.EventNote) != "" {
			note = strings.TrimSpace(*input.EventNote)
		}
		event := models.OrderEvent{
			OrderID: order.ID,
			Status:  order.Status,
			Notes:   note,
		}
		if err := s.eventRepo.Create(&event); err != nil {
			logger.Errorw("order_event_create_failed", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

// AddNoteResult is a saved note plus the deep link to send it.
type AddNoteResult struct {
	Note        *models.OrderNote
	WhatsAppURL string
}

// AddNote stores a staff note and returns a deep link that opens WhatsApp to
// the customer with the note pre-filled.
func (s *OrderService) AddNote(orderID uint, text string) (*AddNoteResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError("note")
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	note := models.OrderNote{
		OrderID: order.ID,
		Note:    text,
	}
	if err := s.noteRepo.Create(&note); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Hola %s! %s", order.CustomerFirstName, text)
	return &AddNoteResult{
		Note:        &note,
		WhatsAppURL: whatsapp.BuildLink(order.CustomerPhone, message),
	}, nil
}

// List returns the back-office order listing.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// Get returns one order with its events.
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// Notes returns an order's staff notes.
func (s *OrderService) Notes(orderID uint) ([]models.OrderNote, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return s.noteRepo.ListByOrder(orderID)
}

func (s *OrderService) resolveBranchName(branchID *uint) string {
	if branchID == nil {
		return ""
	}
	branch, err := s.branchRepo.GetByID(*branchID)
	if err != nil {
		logger.Warnw("order_branch_lookup_failed", "branch_id", *branchID, "error", err)
		return ""
	}
	if branch == nil {
		return ""
	}
	return branch.Name
}

func validateSubmitInput(input SubmitOrderInput) error {
	var fields []string
	if strings.TrimSpace(input.CustomerFirstName) == "" {
		fields = append(fields, "customer_first_name")
	}
	if strings.TrimSpace(input.CustomerLastName) == "" {
		fields = append(fields, "customer_last_name")
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		fields = append(fields, "customer_email")
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		fields = append(fields, "customer_phone")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		fields = append(fields, "payment_method")
	}
	switch input.DeliveryType {
	case constants.DeliveryTypePickup:
		if input.BranchID == nil {
			fields = append(fields, "branch_id")
		}
	case constants.DeliveryTypeDelivery:
		if strings.TrimSpace(input.DeliveryAddress) == "" {
			fields = append(fields, "delivery_address")
		}
	default:
		fields = append(fields, "delivery_type")
	}
	if len(input.Items) == 0 {
		fields = append(fields, "items")
	}
	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

// priceItems turns checkout lines into order snapshots with pre-multiplied
// line totals and returns the subtotal.
func priceItems(inputs []SubmitOrderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	subtotal := decimal.Zero
	for _, in := range inputs {
		quantity := in.Quantity
		if in.ProductType != constants.ProductTypeWeighted && quantity <= 0 {
			quantity = 1
		}
		lineTotal, err := pricing.LineTotal(in.ProductType, in.UnitPrice, quantity, decimal.NewFromFloat(in.Weight))
		if err != nil {
			return nil, decimal.Zero, NewValidationError("items")
		}
		items = append(items, models.OrderItem{
			ProductID:   in.ProductID,
			Name:        strings.TrimSpace(in.Name),
			ProductType: in.ProductType,
			Quantity:    quantity,
			Weight:      in.Weight,
			UnitPrice:   models.NewMoneyFromDecimal(in.UnitPrice),
			Price:       models.NewMoneyFromDecimal(lineTotal),
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return items, subtotal, nil
}

func messageData(order *models.Order, branchName string) whatsapp.OrderData {
	items := make([]whatsapp.Item, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, whatsapp.Item{
			Name:        item.Name,
			ProductType: item.ProductType,
			Quantity:    item.Quantity,
			Weight:      item.Weight,
			Price:       item.Price.Decimal,
		})
	}
	return whatsapp.OrderData{
		OrderNumber:       order.OrderNumber,
		CustomerFirstName: order.CustomerFirstName,
		CustomerLastName:  order.CustomerLastName,
		CustomerEmail:     order.CustomerEmail,
		CustomerPhone:     order.CustomerPhone,
		PaymentMethod:     order.PaymentMethod,
		DeliveryType:      order.DeliveryType,
		DeliveryAddress:   order.DeliveryAddress,
		DeliveryZone:      order.DeliveryZone,
		BranchName:        branchName,
		Items:             items,
		Subtotal:          order.Subtotal.Decimal,
		Total:             order.Total.Decimal,
		Notes:             order.Notes,
	}
}
