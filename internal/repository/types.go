package repository

import "time"

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	ProductType  string
	OnlyActive   bool
	OnlyFeatured bool
	OnlyPromo    bool
	OnlyOffer    bool
	WithCategory bool
}

// OrderListFilter narrows the back-office order listing.
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
