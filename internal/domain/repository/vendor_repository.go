package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor profile is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when the user already owns a vendor profile.
	ErrDuplicateVendor = errors.New("vendor already exists for user")
)

// VendorRepository defines the interface for vendor-related database operations.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// FindVendorsByStatus lists vendors in the given status, oldest first.
	FindVendorsByStatus(ctx context.Context, status entity.VendorStatus) ([]*entity.Vendor, error)

	// UpdateVendorStatus sets the status and returns the updated vendor.
	UpdateVendorStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) (*entity.Vendor, error)
}
