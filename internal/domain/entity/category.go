// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node of the self-referencing catalog hierarchy.
// Children are never stored; they are derived from ParentID when reading.
type Category struct {
	ID          uuid.UUID  `json:"id"`                    // Unique identifier of the category.
	Name        string     `json:"name"`                  // Display name.
	Slug        string     `json:"slug"`                  // Globally unique, lowercase-kebab URL key.
	Description *string    `json:"description,omitempty"` // Optional free text.
	ParentID    *uuid.UUID `json:"parent_id"`             // Nil for root categories.
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category rendered inside the tree with its nested children.
// Leaves carry an empty, non-nil Children slice.
type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

// CategoryDetail is the result of a point lookup: the category with its
// immediate children and, when requested, its parent.
type CategoryDetail struct {
	Category
	Parent   *Category   `json:"parent,omitempty"`
	Children []*Category `json:"children"`
}

// CategorySummary is the reduced category projection embedded in products.
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
