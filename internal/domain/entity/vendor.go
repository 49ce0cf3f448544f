package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus is the moderation state of a vendor profile.
type VendorStatus string

const (
	// VendorStatusPending is the state right after onboarding.
	VendorStatusPending VendorStatus = "PENDING"
	// VendorStatusApproved vendors may list products.
	VendorStatusApproved VendorStatus = "APPROVED"
	// VendorStatusRejected vendors were declined by an admin.
	VendorStatusRejected VendorStatus = "REJECTED"
)

// String returns the string representation of the VendorStatus.
func (s VendorStatus) String() string {
	return string(s)
}

// IsValid checks if the VendorStatus is a known value.
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusRejected:
		return true
	default:
		return false
	}
}

// Vendor is the store profile of a user. Each user owns at most one.
type Vendor struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	StoreName string       `json:"store_name"`
	Status    VendorStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// VendorSummary is the reduced vendor projection embedded in products.
type VendorSummary struct {
	ID        uuid.UUID `json:"id"`
	StoreName string    `json:"store_name"`
}
