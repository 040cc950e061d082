package cart

import (
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

func standardLine(id uint, price string, quantity int) Line {
	return Line{
		ProductID:   id,
		Name:        "producto",
		ProductType: constants.ProductTypeStandard,
		UnitPrice:   d(price),
		Quantity:    quantity,
	}
}

func weightedLine(id uint, pricePerKg, weight string) Line {
	return Line{
		ProductID:   id,
		Name:        "fiambre",
		ProductType: constants.ProductTypeWeighted,
		UnitPrice:   d(pricePerKg),
		Weight:      d(weight),
	}
}

func TestAddMergesQuantity(t *testing.T) {
	c := Add(nil, standardLine(1, "1200", 2))
	c = Add(c, standardLine(1, "1100", 3))

	if len(c) != 1 {
		t.Fatalf("want 1 line, got %d", len(c))
	}
	if c[0].Quantity != 5 {
		t.Fatalf("quantity want 5, got %d", c[0].Quantity)
	}
	if !c[0].UnitPrice.Equal(d("1100")) {
		t.Fatalf("unit price want last write 1100, got %s", c[0].UnitPrice)
	}
}

func TestAddMergesWeightAndKeepsLatestPrice(t *testing.T) {
	c := Add(nil, weightedLine(7, "8500", "0.5"))
	c = Add(c, weightedLine(7, "8700", "0.25"))

	if len(c) != 1 {
		t.Fatalf("want 1 line, got %d", len(c))
	}
	if !c[0].Weight.Equal(d("0.75")) {
		t.Fatalf("weight want 0.75, got %s", c[0].Weight)
	}
	if !c[0].UnitPrice.Equal(d("8700")) {
		t.Fatalf("unit price want 8700, got %s", c[0].UnitPrice)
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	c := Add(nil, standardLine(1, "100", 1))
	c = Remove(c, 99)
	if len(c) != 1 {
		t.Fatalf("want 1 line after removing missing id, got %d", len(c))
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	base := Add(nil, standardLine(1, "100", 2))
	base = Add(base, standardLine(2, "200", 1))

	viaSet := SetQuantity(base, 1, 0)
	viaRemove := Remove(base, 1)

	if len(viaSet) != len(viaRemove) {
		t.Fatalf("carts differ in length: %d vs %d", len(viaSet), len(viaRemove))
	}
	for i := range viaSet {
		if viaSet[i].ProductID != viaRemove[i].ProductID {
			t.Fatalf("carts differ at %d: %v vs %v", i, viaSet[i], viaRemove[i])
		}
	}
}

func TestSetWeightNegativeRemoves(t *testing.T) {
	c := Add(nil, weightedLine(3, "9000", "0.5"))
	c = SetWeight(c, 3, d("-1"))
	if len(c) != 0 {
		t.Fatalf("want empty cart, got %d lines", len(c))
	}
}

func TestTotalCommutesForDistinctProducts(t *testing.T) {
	a := standardLine(1, "1200", 3)
	b := weightedLine(2, "8500", "0.5")
	ab := Add(Add(nil, a), b)
	ba := Add(Add(nil, b), a)

	if !Total(ab).Equal(Total(ba)) {
		t.Fatalf("total not commutative: %s vs %s", Total(ab), Total(ba))
	}
}

func TestScenarioStandardCart(t *testing.T) {
	c := Add(nil, standardLine(1, "1200", 3))
	if got := Total(c); !got.Equal(d("3600")) {
		t.Fatalf("total want 3600, got %s", got)
	}
	if got := ItemCount(c); got != 3 {
		t.Fatalf("item count want 3, got %d", got)
	}
}

func TestScenarioWeightedCartMerge(t *testing.T) {
	c := Add(nil, weightedLine(5, "8500", "0.5"))
	if got := Total(c); !got.Equal(d("4250")) {
		t.Fatalf("total want 4250, got %s", got)
	}
	if got := ItemCount(c); got != 1 {
		t.Fatalf("item count want 1, got %d", got)
	}

	c = Add(c, weightedLine(5, "8500", "0.25"))
	if !c[0].Weight.Equal(d("0.75")) {
		t.Fatalf("weight want 0.75, got %s", c[0].Weight)
	}
	if got := Total(c); !got.Equal(d("6375")) {
		t.Fatalf("total want 6375, got %s", got)
	}
	if got := ItemCount(c); got != 1 {
		t.Fatalf("item count want 1, got %d", got)
	}
}
