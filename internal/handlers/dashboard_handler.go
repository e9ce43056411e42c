package handlers

import (
	"errors"
	"net/http"
	"time"

	"finhub/internal/dto"
	apperrors "finhub/internal/errors"
	"finhub/internal/llm"
	"finhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the operator-facing dashboard API: the raw merged
// snapshot and the assistant question endpoint.
type DashboardHandler struct {
	tenantService     services.TenantServiceInterface
	aggregatorService services.AggregatorServiceInterface
	metrics           services.MetricsRecorderInterface
	assistant         llm.Assistant
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	tenantService services.TenantServiceInterface,
	aggregatorService services.AggregatorServiceInterface,
	metrics services.MetricsRecorderInterface,
	assistant llm.Assistant,
) *DashboardHandler {
	return &DashboardHandler{
		tenantService:     tenantService,
		aggregatorService: aggregatorService,
		metrics:           metrics,
		assistant:         assistant,
	}
}

// GetSnapshot handles GET /api/dashboard/:tenantId
// Returns the merged snapshot without the connector envelope. Partial
// provider failures are listed in the payload, not surfaced as errors.
func (h *DashboardHandler) GetSnapshot(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	if _, err := h.tenantService.GetTenant(tenantID); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return SendError(c, apperrors.TenantNotFound)
		}
		return SendSystemError(c, err)
	}

	snapshot, err := h.aggregatorService.BuildSnapshot(c.Request().Context(), tenantID)
	if err != nil {
		return SendError(c, apperrors.SystemAggregationError)
	}

	return SendSuccess(c, http.StatusOK, snapshot)
}

// AskAssistant handles POST /api/dashboard/:tenantId/ask
// Builds a fresh snapshot as grounding context and forwards the free-text
// question to the assistant. The assistant is a consumed capability; an
// outage surfaces as 503 without affecting the rest of the dashboard.
func (h *DashboardHandler) AskAssistant(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	var req dto.AskRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.tenantService.GetTenant(tenantID); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return SendError(c, apperrors.TenantNotFound)
		}
		return SendSystemError(c, err)
	}

	snapshot, err := h.aggregatorService.BuildSnapshot(c.Request().Context(), tenantID)
	if err != nil {
		return SendError(c, apperrors.SystemAggregationError)
	}

	start := time.Now()
	answer, err := h.assistant.Ask(c.Request().Context(), req.Question, snapshot)
	h.metrics.RecordProcessingTime("assistant.request", time.Since(start))
	if err != nil {
		h.metrics.IncrementCounter("assistant.request", map[string]string{"status": "error"})
		return SendError(c, apperrors.SystemAssistantError)
	}
	h.metrics.IncrementCounter("assistant.request", map[string]string{"status": "ok"})

	return SendSuccess(c, http.StatusOK, dto.AskResponse{Answer: answer})
}
