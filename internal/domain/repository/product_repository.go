package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
	// ErrDuplicateProductSlug is returned when the slug is already taken by another product.
	ErrDuplicateProductSlug = errors.New("product slug already exists")
	// ErrInvalidProductReference is returned when the category or vendor of a product does not exist.
	ErrInvalidProductReference = errors.New("product references a missing category or vendor")
)

// ProductQuery filters the published product listing.
type ProductQuery struct {
	Search     string     // Case-insensitive substring of the product name.
	CategoryID *uuid.UUID // Exact category match.
	MinPrice   *float64   // At least one variant priced >= MinPrice.
	MaxPrice   *float64   // At least one variant priced <= MaxPrice.
	Offset     int
	Limit      int
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists the product row only.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// CreateVariants persists the given variants in one statement.
	CreateVariants(ctx context.Context, variants []*entity.ProductVariant) error

	// CreateImages persists the given images in one statement.
	CreateImages(ctx context.Context, images []*entity.ProductImage) error

	// ExistsBySlug reports whether a product already uses the slug.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// FindProductBySlug retrieves a product of any status with variants, images ordered by
	// display order, vendor summary and category summary.
	FindProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindPublishedProducts returns one page of published products, newest first,
	// with main images and vendor summary only.
	FindPublishedProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// CountPublishedProducts counts published products matching the query, ignoring pagination.
	CountPublishedProducts(ctx context.Context, query ProductQuery) (int64, error)

	// IncrementVariantStock adds delta to the stock of a variant in a single UPDATE.
	IncrementVariantStock(ctx context.Context, variantID uuid.UUID, delta int) error

	// FindVariantByID retrieves a single variant.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// FindProductSlugByID resolves the slug of a product.
	FindProductSlugByID(ctx context.Context, id uuid.UUID) (string, error)

	// FindVariantVendorID resolves the vendor owning the product of a variant.
	FindVariantVendorID(ctx context.Context, variantID uuid.UUID) (uuid.UUID, error)
}
