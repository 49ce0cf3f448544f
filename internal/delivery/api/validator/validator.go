// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"catalog/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs through their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the catalog's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// slug: lowercase words separated by single hyphens.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return entity.IsValidSlug(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
