// Package whatsapp builds the order message sent to the shop's WhatsApp line
// and the wa.me deep links used by the storefront and the back-office. The
// message is persisted with the order, so the output must be deterministic:
// same order data, same bytes.
package whatsapp

import (
	"strconv"
	"strings"

	"github.com/delipedidos/api/internal/constants"

	"github.com/shopspring/decimal"
)

// Item is one order line as it appears in the message.
type Item struct {
	Name        string
	ProductType string
	Quantity    int
	Weight      float64
	Price       decimal.Decimal // pre-multiplied line total
}

// OrderData carries everything the message template needs.
type OrderData struct {
	OrderNumber       int
	CustomerFirstName string
	CustomerLastName  string
	CustomerEmail     string
	CustomerPhone     string
	PaymentMethod     string
	DeliveryType      string
	DeliveryAddress   string
	DeliveryZone      string
	BranchName        string
	Items             []Item
	Subtotal          decimal.Decimal
	Total             decimal.Decimal
	Notes             string
}

var paymentLabels = map[string]string{
	constants.PaymentMethodCash:        "Efectivo",
	constants.PaymentMethodTransfer:    "Transferencia",
	constants.PaymentMethodMercadoPago: "Mercado Pago",
	constants.PaymentMethodCards:       "Tarjetas",
	constants.PaymentMethodWalletsQR:   "Billeteras/QR",
}

// PaymentLabel maps a payment method code to its customer-facing label.
// Unknown codes pass through verbatim so a new method never breaks messages.
func PaymentLabel(code string) string {
	if label, ok := paymentLabels[code]; ok {
		return label
	}
	return code
}

// BuildOrderMessage renders the order confirmation message. Section order and
// wording are fixed; staff and customers read these daily and the back-office
// resend button must reproduce the stored text exactly.
func BuildOrderMessage(order OrderData) string {
	var lines []string

	lines = append(lines, "*Pedido #"+strconv.Itoa(order.OrderNumber)+"*")
	lines = append(lines, "")
	lines = append(lines, "*Cliente:*")
	lines = append(lines, order.CustomerFirstName+" "+order.CustomerLastName)
	lines = append(lines, "\U0001F4E7 "+order.CustomerEmail)
	lines = append(lines, "\U0001F4F1 "+order.CustomerPhone)
	lines = append(lines, "")

	lines = append(lines, "*Items:*")
	for _, item := range order.Items {
		switch item.ProductType {
		case constants.ProductTypeWeighted:
			lines = append(lines, "• "+item.Name+" - "+formatWeight(item.Weight)+"kg - $"+FormatAmount(item.Price))
		case constants.ProductTypeCombo:
			lines = append(lines, "• "+item.Name+" - $"+FormatAmount(item.Price))
		default:
			lines = append(lines, "• "+item.Name+" x"+strconv.Itoa(item.Quantity)+" - $"+FormatAmount(item.Price))
		}
	}
	lines = append(lines, "")

	lines = append(lines, "*Totales:*")
	lines = append(lines, "Subtotal: $"+FormatAmount(order.Subtotal))
	lines = append(lines, "Total: $"+FormatAmount(order.Total))
	lines = append(lines, "")

	lines = append(lines, "*Pago:*")
	lines = append(lines, PaymentLabel(order.PaymentMethod))
	lines = append(lines, "")

	lines = append(lines, "*Entrega:*")
	if order.DeliveryType == constants.DeliveryTypePickup {
		branch := order.BranchName
		if branch == "" {
			branch = "No especificada"
		}
		lines = append(lines, "Retiro en sucursal: "+branch)
	} else {
		lines = append(lines, "Envío a domicilio")
		if order.DeliveryAddress != "" {
			lines = append(lines, "Dirección: "+order.DeliveryAddress)
		}
		if order.DeliveryZone != "" {
			lines = append(lines, "Zona: "+order.DeliveryZone)
		}
		if order.BranchName != "" {
			lines = append(lines, "Sucursal de referencia: "+order.BranchName)
		}
	}
	lines = append(lines, "")

	if order.Notes != "" {
		lines = append(lines, "*Notas:*")
		lines = append(lines, order.Notes)
		lines = append(lines, "")
	}

	lines = append(lines, "Gracias por tu pedido! \U0001F6D2")

	return strings.Join(lines, "\n")
}

// BuildLink assembles a wa.me deep link. The phone keeps only its digits;
// the message is percent-encoded. An empty phone still yields a URL.
func BuildLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + encodeComponent(message)
}

// FormatAmount renders a monetary amount the way the storefront shows prices:
// thousands separated with dots, comma as the decimal mark, trailing zeros
// trimmed ("4250" -> "4.250", "4250.50" -> "4.250,5").
func FormatAmount(amount decimal.Decimal) string {
	s := amount.Round(2).String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// formatWeight renders a weight in kg with a plain decimal point and no
// trailing zeros, matching how the storefront shows it ("0.5", "0.75").
func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// encodeComponent percent-encodes a string for use in a URL query value,
// leaving the characters WhatsApp's link parser expects unescaped
// (alphanumerics and -_.!~*'()).
func encodeComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' || c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"
