package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// VariantInput describes one variant of a new product
type VariantInput struct {
	SKU        string
	Price      float64
	Stock      int
	Attributes map[string]string
}

// ImageInput describes one image of a new product. Order defaults to the image's position.
type ImageInput struct {
	URL    string
	Alt    *string
	IsMain bool
	Order  *int
}

// CreateProductInput holds the fields of a new product
type CreateProductInput struct {
	Name        string
	Slug        string
	Description string
	CategoryID  uuid.UUID
	Status      entity.ProductStatus // Empty means DRAFT.
	Variants    []VariantInput
	Images      []ImageInput
}

// ProductFilter narrows the public product listing
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Page       int // 1-based; values below 1 mean 1.
	Limit      int // Values below 1 mean the configured default.
}

// ProductUsecase defines the product catalog use cases
type ProductUsecase interface {
	// CreateProduct stores a product with its variants and images in one transaction
	CreateProduct(ctx context.Context, vendorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// ListProducts returns one page of published products, newest first
	ListProducts(ctx context.Context, filter *ProductFilter) (*entity.ProductPage, error)

	// GetProduct returns the full product detail by slug, served from cache when possible
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	// UpdateStock atomically adds delta to a variant's stock and returns the variant
	UpdateStock(ctx context.Context, variantID uuid.UUID, delta int) (*entity.ProductVariant, error)

	// VariantVendorID returns the vendor that owns a variant's product
	VariantVendorID(ctx context.Context, variantID uuid.UUID) (uuid.UUID, error)
}
