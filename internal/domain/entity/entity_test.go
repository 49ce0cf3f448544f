package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"shoes", "mens-shoes", "a1-b2-c3", "2024"}
	invalid := []string{"", "Shoes", "mens--shoes", "-shoes", "shoes-", "mens_shoes", "mens shoes"}

	for _, s := range valid {
		assert.True(t, IsValidSlug(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), s)
	}
}

func TestMinVariantPrice(t *testing.T) {
	_, ok := MinVariantPrice(nil)
	assert.False(t, ok)

	price, ok := MinVariantPrice([]*ProductVariant{{Price: 30}, {Price: 10}, {Price: 20}})
	assert.True(t, ok)
	assert.Equal(t, 10.0, price)
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{total: 0, limit: 10, want: 0},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 5, limit: 0, want: 0},
	}

	for _, tt := range tests {
		meta := NewPageMeta(tt.total, 2, tt.limit)
		assert.Equal(t, tt.want, meta.TotalPages)
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, tt.total, meta.Total)
	}
}

func TestStatusAndRoleValidity(t *testing.T) {
	assert.True(t, ProductStatusArchived.IsValid())
	assert.False(t, ProductStatus("SOLD").IsValid())
	assert.True(t, VendorStatusRejected.IsValid())
	assert.False(t, VendorStatus("").IsValid())

	roles := RolesFromStrings([]string{"ADMIN", "root", "VENDOR"})
	assert.Equal(t, Roles{RoleAdmin, RoleVendor}, roles)
	assert.True(t, Caller{Roles: roles}.HasRole(RoleVendor))
	assert.False(t, Caller{Roles: roles}.HasRole(RoleCustomer))
}
