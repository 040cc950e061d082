package whatsapp

import (
	"strings"
	"testing"

	"github.com/delipedidos/api/internal/constants"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleOrder() OrderData {
	return OrderData{
		OrderNumber:       1042,
		CustomerFirstName: "Ana",
		CustomerLastName:  "Pérez",
		CustomerEmail:     "ana@example.com",
		CustomerPhone:     "+54 9 11 2345-6789",
		PaymentMethod:     constants.PaymentMethodCash,
		DeliveryType:      constants.DeliveryTypePickup,
		BranchName:        "Rivadavia & Belgrano",
		Items: []Item{
			{Name: "Jamón crudo", ProductType: constants.ProductTypeWeighted, Weight: 0.5, Price: d("4250")},
			{Name: "Empanadas", ProductType: constants.ProductTypeStandard, Quantity: 12, Price: d("7200")},
			{Name: "Picada familiar", ProductType: constants.ProductTypeCombo, Price: d("15500")},
		},
		Subtotal: d("26950"),
		Total:    d("26950"),
	}
}

func TestBuildOrderMessageDeterministic(t *testing.T) {
	order := sampleOrder()
	first := BuildOrderMessage(order)
	second := BuildOrderMessage(order)
	if first != second {
		t.Fatalf("message not deterministic:\n%s\n---\n%s", first, second)
	}
}

func TestBuildOrderMessagePickupCash(t *testing.T) {
	msg := BuildOrderMessage(sampleOrder())

	for _, want := range []string{
		"*Pedido #1042*",
		"*Cliente:*",
		"Ana Pérez",
		"📧 ana@example.com",
		"📱 +54 9 11 2345-6789",
		"• Jamón crudo - 0.5kg - $4.250",
		"• Empanadas x12 - $7.200",
		"• Picada familiar - $15.500",
		"Subtotal: $26.950",
		"Total: $26.950",
		"Retiro en sucursal: Rivadavia & Belgrano",
		"Gracias por tu pedido! 🛒",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	payIdx := strings.Index(msg, "*Pago:*\nEfectivo")
	if payIdx < 0 {
		t.Fatalf("payment section wrong:\n%s", msg)
	}
	if strings.Index(msg, "*Items:*") > strings.Index(msg, "*Totales:*") {
		t.Fatalf("sections out of order:\n%s", msg)
	}
}

func TestBuildOrderMessageDeliveryWithNotes(t *testing.T) {
	order := sampleOrder()
	order.DeliveryType = constants.DeliveryTypeDelivery
	order.DeliveryAddress = "Av. Siempreviva 742"
	order.DeliveryZone = "Centro"
	order.BranchName = "Sucursal Norte"
	order.Notes = "Tocar timbre dos veces"

	msg := BuildOrderMessage(order)
	for _, want := range []string{
		"Envío a domicilio",
		"Dirección: Av. Siempreviva 742",
		"Zona: Centro",
		"Sucursal de referencia: Sucursal Norte",
		"*Notas:*\nTocar timbre dos veces",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildOrderMessagePickupWithoutBranch(t *testing.T) {
	order := sampleOrder()
	order.BranchName = ""
	msg := BuildOrderMessage(order)
	if !strings.Contains(msg, "Retiro en sucursal: No especificada") {
		t.Fatalf("missing branch fallback:\n%s", msg)
	}
}

func TestPaymentLabelUnknownPassesThrough(t *testing.T) {
	if got := PaymentLabel("crypto"); got != "crypto" {
		t.Fatalf("unknown code want passthrough, got %q", got)
	}
	if got := PaymentLabel(constants.PaymentMethodWalletsQR); got != "Billeteras/QR" {
		t.Fatalf("wallets_qr label wrong: %q", got)
	}
}

func TestBuildLinkStripsNonDigits(t *testing.T) {
	link := BuildLink("+54 9 11 2345-6789", "Hola!")
	if !strings.HasPrefix(link, "https://wa.me/5491123456789?text=") {
		t.Fatalf("link phone not normalized: %s", link)
	}
	if !strings.HasSuffix(link, "text=Hola!") {
		t.Fatalf("unexpected encoding of message: %s", link)
	}
}

func TestBuildLinkEncodesMessage(t *testing.T) {
	link := BuildLink("5491123456789", "Pedido #7 listo: envío & total $1.500")
	want := "https://wa.me/5491123456789?text=Pedido%20%237%20listo%3A%20env%C3%ADo%20%26%20total%20%241.500"
	if link != want {
		t.Fatalf("link mismatch:\nwant %s\ngot  %s", want, link)
	}
}

func TestBuildLinkEmptyPhone(t *testing.T) {
	link := BuildLink("", "hola")
	if link != "https://wa.me/?text=hola" {
		t.Fatalf("empty phone link wrong: %s", link)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1.000"},
		{"4250", "4.250"},
		{"4250.50", "4.250,5"},
		{"1234567.89", "1.234.567,89"},
		{"-1500", "-1.500"},
	}
	for _, tc := range cases {
		if got := FormatAmount(d(tc.in)); got != tc.want {
			t.Fatalf("FormatAmount(%s) want %q, got %q", tc.in, tc.want, got)
		}
	}
}
