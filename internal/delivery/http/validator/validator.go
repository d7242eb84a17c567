// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "webshop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and reports failures as a validation
// error the error handler can render.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
