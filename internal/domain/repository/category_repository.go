// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategorySlug is returned when the slug is already taken by another category.
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
	// ErrInvalidCategoryParent is returned when the referenced parent does not exist.
	ErrInvalidCategoryParent = errors.New("category parent does not exist")
	// ErrCategoryInUse is returned when a delete is blocked by products referencing the category or a descendant.
	ErrCategoryInUse = errors.New("category is referenced by products")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// CreateCategory persists a new category. ID and timestamps are filled in.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoryBySlug retrieves a category by its slug.
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// FindAllCategories returns every category ordered by name ascending.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)

	// FindChildren returns the immediate children of a category ordered by name.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)

	// UpdateCategory overwrites the mutable columns (name, slug, description, parent) of a category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategory removes a category; descendants are removed by the store's cascade.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// CountProductsByCategory counts products that reference the category directly.
	CountProductsByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
