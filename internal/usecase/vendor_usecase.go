package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorUsecase defines the vendor onboarding and moderation use cases
type VendorUsecase interface {
	// Onboard creates a PENDING vendor profile for the user
	Onboard(ctx context.Context, userID uuid.UUID, storeName string) (*entity.Vendor, error)

	// UpdateStatus moderates a vendor profile
	UpdateStatus(ctx context.Context, vendorID uuid.UUID, status entity.VendorStatus) (*entity.Vendor, error)

	// ListPending returns vendors waiting for moderation
	ListPending(ctx context.Context) ([]*entity.Vendor, error)

	// GetByUser returns the caller's own vendor profile
	GetByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// RequireApproved returns the user's vendor profile only when it is APPROVED
	RequireApproved(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)
}
