package service

import (
	"errors"
	"testing"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/repository"

	"github.com/shopspring/decimal"
)

func newProductService(t *testing.T, name string) *ProductService {
	t.Helper()
	db := newCatalogTestDB(t, name)
	return NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
}

func TestProductCreateDerivesPromoPrice(t *testing.T) {
	svc := newProductService(t, "product_promo_derive")

	product, err := svc.Create(ProductInput{
		Name:               "Queso Tybo",
		ProductType:        constants.ProductTypeStandard,
		Price:              decimal.NewFromInt(1000),
		IsPromo:            true,
		PromoDiscountType:  constants.DiscountTypePercentage,
		PromoDiscountValue: decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.PromoPrice == nil {
		t.Fatalf("promo price not derived")
	}
	if product.PromoPrice.String() != "750.00" {
		t.Fatalf("promo price want 750.00, got %s", product.PromoPrice.String())
	}
}

func TestProductExplicitPromoPriceWins(t *testing.T) {
	svc := newProductService(t, "product_promo_explicit")

	explicit := decimal.NewFromInt(888)
	product, err := svc.Create(ProductInput{
		Name:               "Queso Sardo",
		ProductType:        constants.ProductTypeStandard,
		Price:              decimal.NewFromInt(1000),
		PromoPrice:         &explicit,
		IsPromo:            true,
		PromoDiscountType:  constants.DiscountTypePercentage,
		PromoDiscountValue: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.PromoPrice == nil || product.PromoPrice.String() != "888.00" {
		t.Fatalf("explicit promo price should win, got %v", product.PromoPrice)
	}
	if got := svc.EffectivePrice(product); !got.Equal(decimal.NewFromInt(888)) {
		t.Fatalf("effective price want 888, got %s", got)
	}
}

func TestProductWeightedRequiresPricePerKg(t *testing.T) {
	svc := newProductService(t, "product_weighted_price")

	_, err := svc.Create(ProductInput{
		Name:        "Bondiola",
		ProductType: constants.ProductTypeWeighted,
		Price:       decimal.NewFromInt(1000),
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0] != "price_per_kg" {
		t.Fatalf("fields want [price_per_kg], got %v", vErr.Fields)
	}
}

func TestProductSlugConflict(t *testing.T) {
	svc := newProductService(t, "product_slug_conflict")

	if _, err := svc.Create(ProductInput{Name: "Salame Milán", Price: decimal.NewFromInt(500)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "Salame Milán", Price: decimal.NewFromInt(700)}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists, got %v", err)
	}
}

func TestProductUnknownCategoryRejected(t *testing.T) {
	svc := newProductService(t, "product_unknown_category")

	missing := uint(999)
	_, err := svc.Create(ProductInput{
		Name:       "Aceitunas",
		Price:      decimal.NewFromInt(300),
		CategoryID: &missing,
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestProductEffectivePriceIgnoresPromoWhenDisabled(t *testing.T) {
	svc := newProductService(t, "product_promo_disabled")

	product, err := svc.Create(ProductInput{
		Name:               "Mortadela",
		ProductType:        constants.ProductTypeStandard,
		Price:              decimal.NewFromInt(1000),
		IsPromo:            false,
		PromoDiscountType:  constants.DiscountTypePercentage,
		PromoDiscountValue: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got := svc.EffectivePrice(product); !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("effective price want base 1000, got %s", got)
	}
}
