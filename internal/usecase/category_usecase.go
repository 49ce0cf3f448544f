package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput holds the fields of a new category
type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description *string
	ParentID    *uuid.UUID
}

// UpdateCategoryInput is a partial update; nil fields are left unchanged.
// DetachParent moves the category to the root level and wins over ParentID.
type UpdateCategoryInput struct {
	Name         *string
	Slug         *string
	Description  *string
	ParentID     *uuid.UUID
	DetachParent bool
}

// RemoveCategoryOutput confirms a category deletion
type RemoveCategoryOutput struct {
	Message string `json:"message"`
}

// CategoryUsecase defines the category hierarchy use cases
type CategoryUsecase interface {
	// CreateCategory inserts a category under an optional parent, enforcing the depth limit
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// GetTree returns the whole hierarchy as a forest of root nodes, served from cache when possible
	GetTree(ctx context.Context) ([]*entity.CategoryNode, error)

	// FindBySlug returns a category with its immediate children
	FindBySlug(ctx context.Context, slug string) (*entity.CategoryDetail, error)

	// FindByID returns a category with its immediate children and its parent
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryDetail, error)

	// UpdateCategory applies a partial update, including parent reassignment
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)

	// RemoveCategory deletes a category and its subtree
	RemoveCategory(ctx context.Context, id uuid.UUID) (*RemoveCategoryOutput, error)
}
