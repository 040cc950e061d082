// Package cart implements the storefront shopping cart as a pure reducer.
// The cart itself lives in the customer's browsing session; every operation
// takes a cart value and returns a new one, so the caller owns all state.
package cart

import (
	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/pricing"

	"github.com/shopspring/decimal"
)

// Line is one product's presence in the cart. Exactly one of Quantity and
// Weight is the active measure, selected by ProductType.
type Line struct {
	ProductID   uint            `json:"product_id"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	ProductType string          `json:"product_type"`
	UnitPrice   decimal.Decimal `json:"unit_price"` // per kg for weighted, per unit otherwise
	Quantity    int             `json:"quantity,omitempty"`
	Weight      decimal.Decimal `json:"weight,omitempty"`
}

// Cart holds at most one line per product id.
type Cart []Line

// Add merges the new line into the cart. A line for the same product sums
// the active measure and takes the incoming unit price (last write wins);
// otherwise the line is appended unchanged.
func Add(c Cart, line Line) Cart {
	next := make(Cart, 0, len(c)+1)
	merged := false
	for _, existing := range c {
		if existing.ProductID == line.ProductID {
			if existing.ProductType == constants.ProductTypeWeighted {
				existing.Weight = existing.Weight.Add(line.Weight)
			} else {
				quantity := line.Quantity
				if quantity <= 0 {
					quantity = 1
				}
				existing.Quantity += quantity
			}
			existing.UnitPrice = line.UnitPrice
			merged = true
		}
		next = append(next, existing)
	}
	if !merged {
		if line.ProductType != constants.ProductTypeWeighted && line.Quantity <= 0 {
			line.Quantity = 1
		}
		next = append(next, line)
	}
	return next
}

// Remove drops the line with the given product id. Absent ids are a no-op.
func Remove(c Cart, productID uint) Cart {
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID == productID {
			continue
		}
		next = append(next, line)
	}
	return next
}

// SetQuantity replaces the line's quantity. Zero or negative removes the line.
func SetQuantity(c Cart, productID uint, quantity int) Cart {
	if quantity <= 0 {
		return Remove(c, productID)
	}
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID == productID {
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	return next
}

// SetWeight replaces the line's weight. Zero or negative removes the line.
func SetWeight(c Cart, productID uint, weight decimal.Decimal) Cart {
	if weight.LessThanOrEqual(decimal.Zero) {
		return Remove(c, productID)
	}
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.ProductID == productID {
			line.Weight = weight
		}
		next = append(next, line)
	}
	return next
}

// Total sums the line totals across the cart.
func Total(c Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c {
		total, err := pricing.LineTotal(line.ProductType, line.UnitPrice, line.Quantity, line.Weight)
		if err != nil {
			// A weighted line without weight contributes nothing; the line
			// only reaches this state through direct construction, never
			// through Add/SetWeight.
			continue
		}
		sum = sum.Add(total)
	}
	return sum
}

// ItemCount counts cart items the way the storefront badge does: a weighted
// line is one item regardless of weight, other lines count their quantity.
func ItemCount(c Cart) int {
	count := 0
	for _, line := range c {
		if line.ProductType == constants.ProductTypeWeighted {
			count++
			continue
		}
		if line.Quantity > 0 {
			count += line.Quantity
		} else {
			count++
		}
	}
	return count
}
