package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	// Single connection, like the sqlite production pool: concurrent
	// transactions serialize instead of failing with a busy database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.Branch{},
		&models.SiteConfig{},
		&models.Order{},
		&models.OrderEvent{},
		&models.OrderNote{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newOrderService(t *testing.T, name string) (*OrderService, *gorm.DB) {
	t.Helper()

	db := newOrderTestDB(t, name)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewOrderEventRepository(db),
		repository.NewOrderNoteRepository(db),
		repository.NewBranchRepository(db),
		NewSiteConfigService(repository.NewSiteConfigRepository(db)),
	)
	return svc, db
}

func validSubmitInput(branchID uint) SubmitOrderInput {
	return SubmitOrderInput{
		CustomerFirstName: "Ana",
		CustomerLastName:  "Pérez",
		CustomerEmail:     "ana@example.com",
		CustomerPhone:     "+54 9 11 2345-6789",
		PaymentMethod:     constants.PaymentMethodCash,
		DeliveryType:      constants.DeliveryTypePickup,
		BranchID:          &branchID,
		Items: []SubmitOrderItemInput{
			{ProductID: 1, Name: "Empanadas", ProductType: constants.ProductTypeStandard, Quantity: 3, UnitPrice: decimal.NewFromInt(1200)},
			{ProductID: 2, Name: "Jamón crudo", ProductType: constants.ProductTypeWeighted, Weight: 0.5, UnitPrice: decimal.NewFromInt(8500)},
		},
	}
}

func mustCreateBranch(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	branch := models.Branch{Name: name, IsActive: true}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("create branch failed: %v", err)
	}
	return branch.ID
}

func TestSubmitValidationListsMissingFields(t *testing.T) {
	svc, _ := newOrderService(t, "order_validation")

	_, err := svc.Submit(SubmitOrderInput{})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	want := []string{
		"customer_first_name",
		"customer_last_name",
		"customer_email",
		"customer_phone",
		"payment_method",
		"delivery_type",
		"items",
	}
	if len(vErr.Fields) != len(want) {
		t.Fatalf("field list mismatch: want %v, got %v", want, vErr.Fields)
	}
	for i, field := range want {
		if vErr.Fields[i] != field {
			t.Fatalf("field %d want %q, got %q", i, field, vErr.Fields[i])
		}
	}
}

func TestSubmitPickupRequiresBranch(t *testing.T) {
	svc, db := newOrderService(t, "order_pickup_branch")
	branchID := mustCreateBranch(t, db, "Central")

	input := validSubmitInput(branchID)
	input.BranchID = nil

	_, err := svc.Submit(input)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	found := false
	for _, field := range vErr.Fields {
		if field == "branch_id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("want branch_id in fields, got %v", vErr.Fields)
	}
}

func TestSubmitFirstOrderGetsBaselineNumber(t *testing.T) {
	svc, db := newOrderService(t, "order_baseline")
	branchID := mustCreateBranch(t, db, "Central")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Order.OrderNumber != constants.OrderNumberBaseline {
		t.Fatalf("first order number want %d, got %d", constants.OrderNumberBaseline, result.Order.OrderNumber)
	}

	second, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if second.Order.OrderNumber != constants.OrderNumberBaseline+1 {
		t.Fatalf("second order number want %d, got %d", constants.OrderNumberBaseline+1, second.Order.OrderNumber)
	}
}

func TestSubmitComputesTotalsAndMessage(t *testing.T) {
	svc, db := newOrderService(t, "order_totals")
	branchID := mustCreateBranch(t, db, "Rivadavia & Belgrano")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	order := result.Order

	// 1200 x 3 + 8500 x 0.5
	if order.Subtotal.String() != "7850.00" {
		t.Fatalf("subtotal want 7850.00, got %s", order.Subtotal.String())
	}
	if order.Total.String() != order.Subtotal.String() {
		t.Fatalf("total want %s, got %s", order.Subtotal.String(), order.Total.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("want 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Price.String() != "3600.00" {
		t.Fatalf("standard line total want 3600.00, got %s", order.Items[0].Price.String())
	}
	if order.Items[1].Price.String() != "4250.00" {
		t.Fatalf("weighted line total want 4250.00, got %s", order.Items[1].Price.String())
	}

	for _, want := range []string{
		fmt.Sprintf("*Pedido #%d*", order.OrderNumber),
		"Retiro en sucursal: Rivadavia & Belgrano",
		"Efectivo",
	} {
		if !strings.Contains(order.WhatsAppMessage, want) {
			t.Fatalf("message missing %q:\n%s", want, order.WhatsAppMessage)
		}
	}

	var events []models.OrderEvent
	if err := db.Where("order_id = ?", order.ID).Find(&events).Error; err != nil {
		t.Fatalf("load events failed: %v", err)
	}
	if len(events) != 1 || events[0].Status != constants.OrderStatusNew || events[0].Notes != "Orden creada" {
		t.Fatalf("initial event wrong: %+v", events)
	}
}

func TestSubmitConcurrentOrdersGetDistinctNumbers(t *testing.T) {
	svc, db := newOrderService(t, "order_concurrent")
	branchID := mustCreateBranch(t, db, "Central")

	const submissions = 4
	var wg sync.WaitGroup
	results := make([]*SubmitOrderResult, submissions)
	errs := make([]error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Submit(validSubmitInput(branchID))
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for i := 0; i < submissions; i++ {
		if errs[i] != nil {
			t.Fatalf("submission %d failed: %v", i, errs[i])
		}
		number := results[i].Order.OrderNumber
		if seen[number] {
			t.Fatalf("order number %d issued twice", number)
		}
		seen[number] = true
	}
}

func TestUpdateOrderStatusChangeAppendsEvent(t *testing.T) {
	svc, db := newOrderService(t, "order_status_event")
	branchID := mustCreateBranch(t, db, "Central")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	status := constants.OrderStatusConfirmed
	updated, err := svc.UpdateOrder(result.Order.ID, UpdateOrderInput{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("status want confirmed, got %s", updated.Status)
	}

	var events []models.OrderEvent
	err = db.Where("order_id = ?", result.Order.ID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		t.Fatalf("load events failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2 events, got %d", len(events))
	}
	wantNote := "Estado cambiado de new a confirmed"
	if events[1].Notes != wantNote {
		t.Fatalf("event note want %q, got %q", wantNote, events[1].Notes)
	}
}

func TestUpdateOrderRebuildsMessage(t *testing.T) {
	svc, db := newOrderService(t, "order_rebuild_message")
	branchID := mustCreateBranch(t, db, "Central")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	firstName := "Carla"
	updated, err := svc.UpdateOrder(result.Order.ID, UpdateOrderInput{CustomerFirstName: &firstName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !strings.Contains(updated.WhatsAppMessage, "Carla Pérez") {
		t.Fatalf("message not rebuilt:\n%s", updated.WhatsAppMessage)
	}
	if updated.Status != constants.OrderStatusNew {
		t.Fatalf("status should be unchanged, got %s", updated.Status)
	}
}

func TestAddNoteBuildsCustomerLink(t *testing.T) {
	svc, db := newOrderService(t, "order_add_note")
	branchID := mustCreateBranch(t, db, "Central")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	noteResult, err := svc.AddNote(result.Order.ID, "Tu pedido está listo")
	if err != nil {
		t.Fatalf("add note failed: %v", err)
	}
	if noteResult.Note.ID == 0 {
		t.Fatalf("note not persisted")
	}
	if !strings.HasPrefix(noteResult.WhatsAppURL, "https://wa.me/5491123456789?text=") {
		t.Fatalf("link not addressed to customer: %s", noteResult.WhatsAppURL)
	}
	if !strings.Contains(noteResult.WhatsAppURL, "Hola%20Ana!") {
		t.Fatalf("link missing greeting: %s", noteResult.WhatsAppURL)
	}
}

func TestAddNoteUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t, "order_note_missing")

	if _, err := svc.AddNote(12345, "hola"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLookupByOrderNumber(t *testing.T) {
	svc, db := newOrderService(t, "order_lookup_number")
	branchID := mustCreateBranch(t, db, "Central")

	result, err := svc.Submit(validSubmitInput(branchID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	repo := repository.NewOrderRepository(db)
	order, err := repo.GetByOrderNumber(result.Order.OrderNumber)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if order == nil || order.ID != result.Order.ID {
		t.Fatalf("lookup returned wrong order: %+v", order)
	}

	missing, err := repo.GetByOrderNumber(result.Order.OrderNumber + 999)
	if err != nil {
		t.Fatalf("missing lookup errored: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown number, got %+v", missing)
	}
}
