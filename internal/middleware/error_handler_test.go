package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finhub/internal/dto"
	apperrors "finhub/internal/errors"
	"finhub/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorHandlerContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCustomHTTPErrorHandler_EchoError(t *testing.T) {
	c, rec := errorHandlerContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, string(apperrors.TenantNotFound), body.Code)
	assert.False(t, body.Success)
}

func TestCustomHTTPErrorHandler_ValidationErrors(t *testing.T) {
	c, rec := errorHandlerContext(t)

	err := validation.GetValidator().GetValidate().Struct(dto.CreateTenantRequest{
		Name: "A",
		Type: "conglomerate",
	})
	require.Error(t, err)

	CustomHTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, string(apperrors.ValidationGeneral), body.Code)
	assert.Len(t, body.Details, 2, "one detail per failing field")
	assert.Contains(t, rec.Body.String(), "name", "details use json field names")
}

func TestCustomHTTPErrorHandler_UnknownError(t *testing.T) {
	c, rec := errorHandlerContext(t)

	CustomHTTPErrorHandler(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, string(apperrors.SystemInternalError), body.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCustomHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	c, rec := errorHandlerContext(t)
	require.NoError(t, c.NoContent(http.StatusOK))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	cases := map[int]apperrors.ErrorCode{
		http.StatusBadRequest:         apperrors.ValidationGeneral,
		http.StatusUnauthorized:       apperrors.AuthMissingToken,
		http.StatusNotFound:           apperrors.TenantNotFound,
		http.StatusMethodNotAllowed:   apperrors.ValidationGeneral,
		http.StatusTooManyRequests:    apperrors.SystemRateLimitExceeded,
		http.StatusServiceUnavailable: apperrors.ProviderUnavailable,
		http.StatusTeapot:             apperrors.SystemInternalError,
	}

	for status, expected := range cases {
		assert.Equal(t, expected, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
