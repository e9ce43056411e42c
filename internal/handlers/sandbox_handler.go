package handlers

import (
	"net/http"
	"strconv"

	apperrors "finhub/internal/errors"
	"finhub/internal/models"
	"finhub/internal/services"

	"github.com/labstack/echo/v4"
)

// SandboxHandler serves generated demo data. Registered only in development
// environments; nothing it emits touches a real provider or the database.
type SandboxHandler struct{}

func NewSandboxHandler() *SandboxHandler {
	return &SandboxHandler{}
}

// GenerateSandboxData emits fake normalized transactions and recurring
// charges for a provider.
//
// Method: GET /api/dev/sandbox
// Environment: Development only
//
// Query parameters:
//   - provider: provider type to stamp as the source (default: mercury_bank)
//   - seed: generator seed; equal seeds produce equal output (default: 1)
//   - count: number of transactions (default: 100, max: 1000)
//   - days: days of history (default: 30, max: 365)
//   - subscriptions: number of recurring charges (default: 4)
func (h *SandboxHandler) GenerateSandboxData(c echo.Context) error {
	provider := models.ProviderMercuryBank
	if raw := c.QueryParam("provider"); raw != "" {
		provider = models.ProviderType(raw)
		if !models.IsValidProviderType(provider) {
			return SendError(c, apperrors.ConnectionInvalidProvider)
		}
	}

	seed := uint64(1)
	if raw := c.QueryParam("seed"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			seed = parsed
		}
	}

	count := clampIntQueryParam(c, "count", 100, 1, 1000)
	days := clampIntQueryParam(c, "days", 30, 1, 365)
	subscriptions := clampIntQueryParam(c, "subscriptions", 4, 0, 8)

	generator := services.NewSandboxGenerator(seed)
	return SendSuccess(c, http.StatusOK, map[string]interface{}{
		"provider":         provider,
		"seed":             seed,
		"transactions":     generator.GenerateTransactions(provider, days, count),
		"recurringCharges": generator.GenerateRecurringCharges(provider, subscriptions),
	})
}

func clampIntQueryParam(c echo.Context, key string, defaultValue, min, max int) int {
	raw := c.QueryParam(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
