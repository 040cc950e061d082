// Package pricing holds the money arithmetic shared by the cart, the catalog
// and order submission. All results are decimal and rounded to 2 places only
// when converted to models.Money at the edges.
package pricing

import (
	"errors"

	"github.com/delipedidos/api/internal/constants"

	"github.com/shopspring/decimal"
)

// ErrWeightRequired is returned when a weighted line carries no weight.
// Weight is chosen by the customer at add-time, so there is no safe default.
var ErrWeightRequired = errors.New("weighted item requires a positive weight")

var oneHundred = decimal.NewFromInt(100)

// ResolveEffectivePrice derives the price basis used everywhere else.
// An explicitly set promo price wins over any configured discount; otherwise
// the discount is applied to the base price. The result is never negative.
func ResolveEffectivePrice(basePrice decimal.Decimal, promoPrice *decimal.Decimal, discountType string, discountValue decimal.Decimal) decimal.Decimal {
	if promoPrice != nil {
		return *promoPrice
	}
	switch discountType {
	case constants.DiscountTypePercentage:
		factor := oneHundred.Sub(discountValue)
		if factor.LessThan(decimal.Zero) {
			factor = decimal.Zero
		}
		return basePrice.Mul(factor).Div(oneHundred)
	case constants.DiscountTypeFixed:
		discounted := basePrice.Sub(discountValue)
		if discounted.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return discounted
	default:
		return basePrice
	}
}

// LineTotal computes the pre-multiplied total for one line. Weighted lines
// multiply the per-kg rate by weight; everything else multiplies the unit
// price by quantity, defaulting quantity to 1 when absent.
func LineTotal(productType string, unitPrice decimal.Decimal, quantity int, weight decimal.Decimal) (decimal.Decimal, error) {
	if productType == constants.ProductTypeWeighted {
		if weight.LessThanOrEqual(decimal.Zero) {
			return decimal.Decimal{}, ErrWeightRequired
		}
		return unitPrice.Mul(weight), nil
	}
	if quantity <= 0 {
		quantity = 1
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}
