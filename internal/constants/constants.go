package constants

// Product types
const (
	ProductTypeStandard = "standard" // priced per unit
	ProductTypeWeighted = "weighted" // priced per kilogram
	ProductTypeCombo    = "combo"    // fixed bundle, single price
)

// Promo discount types
const (
	DiscountTypeFixed      = "fixed"
	DiscountTypePercentage = "percentage"
)

// Delivery types
const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
)

// Payment method codes
const (
	PaymentMethodCash        = "cash"
	PaymentMethodTransfer    = "transfer"
	PaymentMethodMercadoPago = "mercadopago"
	PaymentMethodCards       = "cards"
	PaymentMethodWalletsQR   = "wallets_qr"
)

// Order statuses. The set is open: the back-office may move an order to any
// label in any direction, and unknown labels are stored as-is.
const (
	OrderStatusNew       = "new"
	OrderStatusContacted = "contacted"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// OrderNumberBaseline is assigned to the first order ever created.
const OrderNumberBaseline = 1000
