package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Tenant error codes (TENANT_*)
const (
	TenantNotFound  ErrorCode = "TENANT_001"
	TenantInactive  ErrorCode = "TENANT_002"
	TenantInvalidID ErrorCode = "TENANT_003"
	TenantExists    ErrorCode = "TENANT_004"
)

// Connection error codes (CONNECTION_*)
const (
	ConnectionNotFound        ErrorCode = "CONNECTION_001"
	ConnectionNotConfigured   ErrorCode = "CONNECTION_002"
	ConnectionInvalidProvider ErrorCode = "CONNECTION_003"
	ConnectionNotConnected    ErrorCode = "CONNECTION_004"
)

// Provider error codes (PROVIDER_*)
const (
	ProviderUnavailable ErrorCode = "PROVIDER_001"
	ProviderUnsupported ErrorCode = "PROVIDER_002"
	ProviderCircuitOpen ErrorCode = "PROVIDER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemDatabaseError     ErrorCode = "SYSTEM_002"
	SystemAggregationError  ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_004"
	SystemAssistantError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid session credentials",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	// Tenant errors
	TenantNotFound:  "Tenant not found",
	TenantInactive:  "Tenant is inactive",
	TenantInvalidID: "Invalid tenant ID format",
	TenantExists:    "A tenant with this name already exists",

	// Connection errors
	ConnectionNotFound:        "Connection not found",
	ConnectionNotConfigured:   "Connection is missing required credentials",
	ConnectionInvalidProvider: "Unknown provider type",
	ConnectionNotConnected:    "Provider is not connected",

	// Provider errors
	ProviderUnavailable: "Provider is temporarily unavailable",
	ProviderUnsupported: "Provider does not support this capability",
	ProviderCircuitOpen: "Provider is cooling down after repeated failures",

	// System errors
	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:     "Database connection error",
	SystemAggregationError:  "Failed to aggregate provider data",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
	SystemAssistantError:    "Assistant is temporarily unavailable",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
