package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the standardized API error envelope. Success is always
// false; callers distinguish error classes by Code and HTTP status. Partial
// provider failures never use this envelope; they ride inside a 200 payload.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error
// code and trace ID. Optional details can be added using functional options.
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Message: GetErrorMessage(code),
		Code:    string(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific
// error details. fieldErrors is a map of field names to their error messages.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return &ErrorResponse{
		Success: false,
		Message: GetErrorMessage(ValidationGeneral),
		Code:    string(ValidationGeneral),
		Details: details,
		TraceID: traceID,
	}
}

// WrapSystemError wraps an internal error with a generic system error message.
// This prevents exposure of internal implementation details to clients; the
// internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Success: false,
		Message: GetErrorMessage(SystemInternalError),
		Code:    string(SystemInternalError),
		TraceID: traceID,
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - Validation errors, malformed requests
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		TenantInvalidID, ConnectionInvalidProvider:
		return http.StatusBadRequest

	// 401 Unauthorized - Authentication failures
	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	// 404 Not Found - Resource not found
	case TenantNotFound, ConnectionNotFound:
		return http.StatusNotFound

	// 422 Unprocessable Entity - Semantic validation failures
	case TenantInactive, TenantExists, ConnectionNotConfigured,
		ConnectionNotConnected, ProviderUnsupported:
		return http.StatusUnprocessableEntity

	// 429 Too Many Requests - Rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable - Provider/assistant outage surfaced directly
	case ProviderUnavailable, ProviderCircuitOpen, SystemAssistantError:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - System errors (default)
	case SystemInternalError, SystemDatabaseError, SystemAggregationError:
		return http.StatusInternalServerError

	default:
		// Unknown error codes default to 500
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Message, er.TraceID)
}
