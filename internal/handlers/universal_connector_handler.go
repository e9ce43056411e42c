package handlers

import (
	"errors"
	"log/slog"

	apperrors "finhub/internal/errors"
	"finhub/internal/models"
	"finhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// authInfoContextKey mirrors the middleware context key. Duplicated here to
// avoid an import cycle (middleware imports handlers for SendError).
const authInfoContextKey = "auth_info"

// UniversalConnectorHandler serves the published connector contract: the
// merged snapshot for a tenant projected into the versioned envelope. The
// public and secured variants share the same data payload; only the presence
// of authInfo differs.
type UniversalConnectorHandler struct {
	tenantService     services.TenantServiceInterface
	connectionService services.ConnectionRegistryServiceInterface
	aggregatorService services.AggregatorServiceInterface
	formatterService  services.FormatterServiceInterface
	scope             models.TenantScope
}

// NewUniversalConnectorHandler creates a new universal connector handler
func NewUniversalConnectorHandler(
	tenantService services.TenantServiceInterface,
	connectionService services.ConnectionRegistryServiceInterface,
	aggregatorService services.AggregatorServiceInterface,
	formatterService services.FormatterServiceInterface,
	scope models.TenantScope,
) *UniversalConnectorHandler {
	return &UniversalConnectorHandler{
		tenantService:     tenantService,
		connectionService: connectionService,
		aggregatorService: aggregatorService,
		formatterService:  formatterService,
		scope:             scope,
	}
}

// GetConnectorData handles GET /api/universal-connector
// Public variant: the response never carries authInfo.
func (h *UniversalConnectorHandler) GetConnectorData(c echo.Context) error {
	return h.serve(c, nil)
}

// GetSecuredConnectorData handles GET /api/universal-connector/secured
// Requires a valid session; the authInfo block set by the auth middleware is
// stamped onto the response.
func (h *UniversalConnectorHandler) GetSecuredConnectorData(c echo.Context) error {
	authInfo, ok := c.Get(authInfoContextKey).(*models.AuthInfo)
	if !ok || authInfo == nil {
		return SendError(c, apperrors.AuthMissingToken)
	}
	return h.serve(c, authInfo)
}

func (h *UniversalConnectorHandler) serve(c echo.Context, authInfo *models.AuthInfo) error {
	tenant, err := h.resolveTenant(c)
	if tenant == nil {
		// Error response already written by resolveTenant.
		return err
	}

	snapshot, err := h.aggregatorService.BuildSnapshot(c.Request().Context(), tenant.ID)
	if err != nil {
		// Partial provider failures never reach here; they ride inside the
		// snapshot. An error means the merge itself failed.
		slog.Error("Snapshot build failed",
			"tenant_id", tenant.ID,
			"error", err.Error(),
		)
		return SendError(c, apperrors.SystemAggregationError)
	}

	connections, err := h.connectionService.ListConnections(tenant.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := h.formatterService.Format(tenant, snapshot, connections, authInfo)
	return c.JSON(200, response)
}

// resolveTenant determines which tenant the request targets. Standalone
// deployments serve exactly one tenant and reject requests for any other;
// system deployments require an explicit tenant_id query parameter.
func (h *UniversalConnectorHandler) resolveTenant(c echo.Context) (*models.Tenant, error) {
	tenantIDParam := c.QueryParam("tenant_id")

	var tenantID uuid.UUID
	switch {
	case tenantIDParam == "" && h.scope.Mode == models.TenantScopeStandalone:
		tenantID = h.scope.TenantID
	case tenantIDParam == "":
		return nil, SendError(c, apperrors.TenantInvalidID,
			apperrors.WithMessage("tenant_id query parameter is required"))
	default:
		parsed, err := uuid.Parse(tenantIDParam)
		if err != nil {
			return nil, SendError(c, apperrors.TenantInvalidID)
		}
		tenantID = parsed
	}

	if !h.scope.Allows(tenantID) {
		return nil, SendError(c, apperrors.TenantNotFound)
	}

	tenant, err := h.tenantService.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return nil, SendError(c, apperrors.TenantNotFound)
		}
		return nil, SendSystemError(c, err)
	}

	return tenant, nil
}
