package validation

import (
	"reflect"
	"regexp"
	"strings"

	"finhub/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("provider_type", validateProviderType)
	_ = v.RegisterValidation("tenant_type", validateTenantType)
	_ = v.RegisterValidation("tenant_id", validateTenantID)
	_ = v.RegisterValidation("account_selection_id", validateAccountSelectionID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateProviderType validates that the value names a supported provider
func validateProviderType(fl validator.FieldLevel) bool {
	return models.IsValidProviderType(models.ProviderType(fl.Field().String()))
}

// validateTenantType validates that the value is one of the allowed tenant types
func validateTenantType(fl validator.FieldLevel) bool {
	return models.IsValidTenantType(fl.Field().String())
}

// validateTenantID validates that a tenant ID is a valid UUID
func validateTenantID(fl validator.FieldLevel) bool {
	tenantID := fl.Field().String()
	if tenantID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, tenantID)
	return matched
}

// validateAccountSelectionID validates a provider-local account id used in
// selection requests: non-empty, no whitespace, reasonable length
func validateAccountSelectionID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" || len(id) > 128 {
		return false
	}
	return !strings.ContainsAny(id, " \t\n")
}
