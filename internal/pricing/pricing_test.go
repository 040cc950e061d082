package pricing

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

func TestResolveEffectivePricePromoOverrideWins(t *testing.T) {
	promo := d("999")
	got := ResolveEffectivePrice(d("1500"), &promo, constants.DiscountTypePercentage, d("50"))
	if !got.Equal(d("999")) {
		t.Fatalf("effective price want 999, got %s", got)
	}
}

func TestResolveEffectivePricePercentage(t *testing.T) {
	got := ResolveEffectivePrice(d("1000"), nil, constants.DiscountTypePercentage, d("25"))
	if !got.Equal(d("750")) {
		t.Fatalf("effective price want 750, got %s", got)
	}
}

func TestResolveEffectivePriceFixed(t *testing.T) {
	got := ResolveEffectivePrice(d("1000"), nil, constants.DiscountTypeFixed, d("300"))
	if !got.Equal(d("700")) {
		t.Fatalf("effective price want 700, got %s", got)
	}
}

func TestResolveEffectivePriceNeverNegative(t *testing.T) {
	cases := []struct {
		name         string
		discountType string
		value        string
	}{
		{"fixed larger than base", constants.DiscountTypeFixed, "5000"},
		{"percentage over 100", constants.DiscountTypePercentage, "150"},
	}
	for _, tc := range cases {
		got := ResolveEffectivePrice(d("1000"), nil, tc.discountType, d(tc.value))
		if got.LessThan(decimal.Zero) {
			t.Fatalf("%s: effective price went negative: %s", tc.name, got)
		}
		if !got.Equal(decimal.Zero) {
			t.Fatalf("%s: want clamp to zero, got %s", tc.name, got)
		}
	}
}

func TestResolveEffectivePriceNoDiscountReturnsBase(t *testing.T) {
	got := ResolveEffectivePrice(d("1234.56"), nil, "", d("0"))
	if !got.Equal(d("1234.56")) {
		t.Fatalf("effective price want base 1234.56, got %s", got)
	}
}

func TestLineTotalStandard(t *testing.T) {
	got, err := LineTotal(constants.ProductTypeStandard, d("1200"), 3, decimal.Zero)
	if err != nil {
		t.Fatalf("line total failed: %v", err)
	}
	if !got.Equal(d("3600")) {
		t.Fatalf("line total want 3600, got %s", got)
	}
}

func TestLineTotalQuantityDefaultsToOne(t *testing.T) {
	got, err := LineTotal(constants.ProductTypeCombo, d("4500"), 0, decimal.Zero)
	if err != nil {
		t.Fatalf("line total failed: %v", err)
	}
	if !got.Equal(d("4500")) {
		t.Fatalf("line total want 4500, got %s", got)
	}
}

func TestLineTotalWeighted(t *testing.T) {
	got, err := LineTotal(constants.ProductTypeWeighted, d("8500"), 0, d("0.5"))
	if err != nil {
		t.Fatalf("line total failed: %v", err)
	}
	if !got.Equal(d("4250")) {
		t.Fatalf("line total want 4250, got %s", got)
	}
}

func TestLineTotalWeightedRequiresWeight(t *testing.T) {
	if _, err := LineTotal(constants.ProductTypeWeighted, d("8500"), 2, decimal.Zero); err == nil {
		t.Fatalf("expected error for weighted line without weight")
	}
}
