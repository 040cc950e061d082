package service

import (
	"strings"

	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/pricing"
	"github.com/delipedidos/api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService manages the catalog.
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductInput is the create/update payload.
type ProductInput struct {
	CategoryID         *uint
	Name               string
	Slug               string
	Description        string
	ProductType        string
	Price              decimal.Decimal
	PricePerKg         decimal.Decimal
	PromoPrice         *decimal.Decimal
	PromoDiscountType  string
	PromoDiscountValue decimal.Decimal
	PromoBadge         string
	Images             []string
	Tags               []string
	IsActive           *bool
	IsFeatured         bool
	IsPromo            bool
	IsOffer            bool
	HasStock           *bool
	SortOrder          int
}

func validProductType(t string) bool {
	switch t {
	case constants.ProductTypeStandard, constants.ProductTypeWeighted, constants.ProductTypeCombo:
		return true
	}
	return false
}

// List returns products matching the filter with the total count.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Get returns one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// GetBySlug returns one product by slug, the storefront detail lookup.
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create adds a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product := models.Product{IsActive: true, HasStock: true}
	if err := s.apply(&product, input, nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update edits a product.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if err := s.apply(product, input, &id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// apply validates the input and copies it onto the product. excludeID is set
// on updates so the slug uniqueness check skips the product itself.
func (s *ProductService) apply(product *models.Product, input ProductInput, excludeID *uint) error {
	var fields []string

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fields = append(fields, "name")
	}
	productType := strings.TrimSpace(input.ProductType)
	if productType == "" {
		productType = constants.ProductTypeStandard
	}
	if !validProductType(productType) {
		fields = append(fields, "product_type")
	}
	if productType == constants.ProductTypeWeighted {
		if input.PricePerKg.LessThanOrEqual(decimal.Zero) {
			fields = append(fields, "price_per_kg")
		}
	} else if input.Price.LessThanOrEqual(decimal.Zero) {
		fields = append(fields, "price")
	}
	if input.PromoDiscountType != "" &&
		input.PromoDiscountType != constants.DiscountTypeFixed &&
		input.PromoDiscountType != constants.DiscountTypePercentage {
		fields = append(fields, "promo_discount_type")
	}
	if len(fields) > 0 {
		return NewValidationError(fields...)
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return NewValidationError("category_id")
		}
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = slugify(name)
	}
	count, err := s.repo.CountBySlug(slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	product.CategoryID = input.CategoryID
	product.Name = name
	product.Slug = slug
	product.Description = strings.TrimSpace(input.Description)
	product.ProductType = productType
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.PricePerKg = models.NewMoneyFromDecimal(input.PricePerKg)
	product.PromoDiscountType = input.PromoDiscountType
	product.PromoDiscountValue = models.NewMoneyFromDecimal(input.PromoDiscountValue)
	product.PromoBadge = strings.TrimSpace(input.PromoBadge)
	product.Images = models.StringArray(input.Images)
	product.Tags = models.StringArray(input.Tags)
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.IsFeatured = input.IsFeatured
	product.IsPromo = input.IsPromo
	product.IsOffer = input.IsOffer
	if input.HasStock != nil {
		product.HasStock = *input.HasStock
	}
	product.SortOrder = input.SortOrder

	// The stored promo price is derived server side so every consumer (the
	// storefront, the cart quote and order submission) sees the same number.
	product.PromoPrice = nil
	if input.PromoPrice != nil {
		promo := models.NewMoneyFromDecimal(*input.PromoPrice)
		product.PromoPrice = &promo
	} else if product.IsPromo && product.PromoDiscountType != "" {
		base := product.BasePrice().Decimal
		derived := pricing.ResolveEffectivePrice(base, nil, product.PromoDiscountType, product.PromoDiscountValue.Decimal)
		promo := models.NewMoneyFromDecimal(derived)
		product.PromoPrice = &promo
	}
	return nil
}

// EffectivePrice resolves the price basis the storefront charges right now.
func (s *ProductService) EffectivePrice(product *models.Product) decimal.Decimal {
	var promoPrice *decimal.Decimal
	discountType := ""
	if product.IsPromo {
		if product.PromoPrice != nil {
			v := product.PromoPrice.Decimal
			promoPrice = &v
		}
		discountType = product.PromoDiscountType
	}
	return pricing.ResolveEffectivePrice(product.BasePrice().Decimal, promoPrice, discountType, product.PromoDiscountValue.Decimal)
}
