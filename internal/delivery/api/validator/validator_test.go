package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slugRequest struct {
	Slug  string   `validate:"required,slug,max=100"`
	Price *float64 `validate:"omitempty,gte=0"`
}

func TestCustomValidator_Slug(t *testing.T) {
	v := New()

	tests := []struct {
		slug  string
		valid bool
	}{
		{slug: "phones", valid: true},
		{slug: "smart-phones-2024", valid: true},
		{slug: "Phones", valid: false},
		{slug: "smart--phones", valid: false},
		{slug: "-phones", valid: false},
		{slug: "phones-", valid: false},
		{slug: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			err := v.Validate(&slugRequest{Slug: tt.slug})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCustomValidator_NegativePrice(t *testing.T) {
	price := -1.0
	assert.Error(t, New().Validate(&slugRequest{Slug: "ok", Price: &price}))
}
