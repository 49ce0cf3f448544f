package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a caller can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular shopper.
	RoleCustomer Role = "CUSTOMER"
	// RoleVendor indicates a user that sells through a vendor profile.
	RoleVendor Role = "VENDOR"
	// RoleAdmin indicates a catalog administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Caller is the already-authenticated identity attached to a request.
// The catalog trusts it without re-verifying credentials.
type Caller struct {
	UserID uuid.UUID
	Roles  Roles
}

// HasRole reports whether the caller holds the role.
func (c Caller) HasRole(role Role) bool {
	return c.Roles.Contains(role)
}
