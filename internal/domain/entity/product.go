package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	// ProductStatusDraft is the default state of a newly created product.
	ProductStatusDraft ProductStatus = "DRAFT"
	// ProductStatusPublished products are visible in listings.
	ProductStatusPublished ProductStatus = "PUBLISHED"
	// ProductStatusArchived products are hidden from listings but still reachable by slug.
	ProductStatusArchived ProductStatus = "ARCHIVED"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a known value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusPublished, ProductStatusArchived:
		return true
	default:
		return false
	}
}

// Product is a sellable item owned by a vendor and filed under one category.
// It exclusively owns its variants and images.
type Product struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	CategoryID  uuid.UUID         `json:"category_id"`
	VendorID    uuid.UUID         `json:"vendor_id"`
	BasePrice   float64           `json:"base_price"` // Minimum variant price at creation time.
	Status      ProductStatus     `json:"status"`
	Variants    []*ProductVariant `json:"variants,omitempty"`
	Images      []*ProductImage   `json:"images,omitempty"`
	Vendor      *VendorSummary    `json:"vendor,omitempty"`
	Category    *CategorySummary  `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductVariant is a purchasable configuration of a product (e.g. color/size).
// Stock may only be changed through an atomic delta at the store.
type ProductVariant struct {
	ID         uuid.UUID         `json:"id"`
	ProductID  uuid.UUID         `json:"product_id"`
	SKU        string            `json:"sku"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ProductImage is an image attached to a product, displayed by Order.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	URL       string    `json:"url"`
	Alt       *string   `json:"alt,omitempty"`
	IsMain    bool      `json:"is_main"`
	Order     int       `json:"order"`
}

// MinVariantPrice returns the lowest variant price and false when there are no variants.
func MinVariantPrice(variants []*ProductVariant) (float64, bool) {
	if len(variants) == 0 {
		return 0, false
	}

	lowest := variants[0].Price
	for _, v := range variants[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}

	return lowest, true
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Data []*Product `json:"data"`
	Meta PageMeta   `json:"meta"`
}

// PageMeta describes the pagination window of a listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPageMeta computes TotalPages as ceil(total/limit).
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
