// Package validator adapts go-playground/validator to echo's Validator
// interface, translating failures into the domain's validation error.
package validator

import (
	domainerrors "bistro/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validatorlib.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validatorlib.New()}
}

// Validate checks the bound request struct and converts failures into a
// ValidationError carrying per-field violations.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validatorlib.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:  fieldErr.Field(),
			Rule:   fieldErr.Tag(),
			Detail: fieldErr.Error(),
		})
	}

	return domainerrors.NewValidationError(violations...)
}
