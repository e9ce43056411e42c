package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	response := NewErrorResponse(TenantNotFound, "trace-123")

	assert.False(t, response.Success)
	assert.Equal(t, string(TenantNotFound), response.Code)
	assert.Equal(t, "Tenant not found", response.Message)
	assert.Equal(t, "trace-123", response.TraceID)
	assert.Empty(t, response.Details)
}

func TestNewErrorResponse_Options(t *testing.T) {
	response := NewErrorResponse(ValidationGeneral, "trace-123",
		WithMessage("custom message"),
		WithDetails("field a", "field b"))

	assert.Equal(t, "custom message", response.Message)
	assert.Equal(t, []string{"field a", "field b"}, response.Details)
}

func TestNewValidationError(t *testing.T) {
	response := NewValidationError(map[string]string{"name": "is required"}, "trace-123")

	assert.Equal(t, string(ValidationGeneral), response.Code)
	assert.Equal(t, []string{"name: is required"}, response.Details)
	assert.Equal(t, http.StatusBadRequest, response.GetHTTPStatus())
}

func TestWrapSystemError(t *testing.T) {
	internal := stderrors.New("pq: connection refused")
	response, err := WrapSystemError(internal, "trace-123")

	assert.Same(t, internal, err, "the internal error comes back for logging")
	assert.Equal(t, string(SystemInternalError), response.Code)
	assert.NotContains(t, response.Message, "connection refused")
}

func TestGetHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ValidationGeneral:         http.StatusBadRequest,
		TenantInvalidID:           http.StatusBadRequest,
		ConnectionInvalidProvider: http.StatusBadRequest,
		AuthMissingToken:          http.StatusUnauthorized,
		AuthExpiredToken:          http.StatusUnauthorized,
		TenantNotFound:            http.StatusNotFound,
		ConnectionNotFound:        http.StatusNotFound,
		TenantExists:              http.StatusUnprocessableEntity,
		ConnectionNotConfigured:   http.StatusUnprocessableEntity,
		SystemRateLimitExceeded:   http.StatusTooManyRequests,
		ProviderUnavailable:       http.StatusServiceUnavailable,
		ProviderCircuitOpen:       http.StatusServiceUnavailable,
		SystemAssistantError:      http.StatusServiceUnavailable,
		SystemAggregationError:    http.StatusInternalServerError,
		ErrorCode("UNREGISTERED"): http.StatusInternalServerError,
	}

	for code, expected := range cases {
		assert.Equal(t, expected, GetHTTPStatus(code), "code %s", code)
	}
}

func TestErrorClassPredicates(t *testing.T) {
	assert.True(t, NewErrorResponse(TenantNotFound, "").IsClientError())
	assert.False(t, NewErrorResponse(TenantNotFound, "").IsServerError())
	assert.True(t, NewErrorResponse(SystemInternalError, "").IsServerError())
}

func TestErrorResponseJSON(t *testing.T) {
	data, err := NewErrorResponse(TenantNotFound, "trace-123").ToJSON()
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, false, raw["success"])
	assert.Equal(t, "TENANT_001", raw["code"])
	assert.Equal(t, "trace-123", raw["trace_id"])
	assert.NotContains(t, raw, "details", "empty details are omitted")
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(TenantNotFound))
	assert.False(t, IsValidErrorCode("NOPE_001"))
}
