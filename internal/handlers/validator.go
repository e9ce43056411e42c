package handlers

import (
	"finhub/internal/validation"
)

// CustomValidator wraps the shared validator for use as Echo's request validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewCustomValidator creates an Echo-compatible validator backed by the
// shared validation instance with all custom tags registered
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{
		validator: validation.GetValidator(),
	}
}

// Validate implements echo.Validator. Validation failures propagate as
// validator.ValidationErrors and are formatted by the HTTP error handler.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.GetValidate().Struct(i)
}
