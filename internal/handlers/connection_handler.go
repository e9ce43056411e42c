package handlers

import (
	"errors"
	"net/http"

	"finhub/internal/dto"
	apperrors "finhub/internal/errors"
	"finhub/internal/models"
	"finhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ConnectionHandler serves the per-tenant provider connection API. Credential
// payloads are sealed by the registry before they touch the database and are
// never echoed back.
type ConnectionHandler struct {
	connectionService services.ConnectionRegistryServiceInterface
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connectionService services.ConnectionRegistryServiceInterface) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// ListConnections handles GET /api/tenants/:tenantId/connections
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	connections, err := h.connectionService.ListConnections(tenantID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ConnectionResponse, 0, len(connections))
	for i := range connections {
		responses = append(responses, dto.ToConnectionResponse(&connections[i]))
	}

	return SendSuccess(c, http.StatusOK, dto.ConnectionListResponse{
		Connections: responses,
		Total:       len(responses),
	})
}

// Connect handles POST /api/tenants/:tenantId/connections/:providerType
// Stores sealed credentials and marks the provider connected. Re-connecting
// an existing provider replaces its credentials.
func (h *ConnectionHandler) Connect(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	providerType := models.ProviderType(c.Param("providerType"))
	if !models.IsValidProviderType(providerType) {
		return SendError(c, apperrors.ConnectionInvalidProvider)
	}

	var req dto.ConnectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	connection, err := h.connectionService.UpsertConnection(tenantID, providerType, dto.ConnectionPatch{
		Credentials: req.Credentials,
		Settings:    req.Settings,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedProvider):
			return SendError(c, apperrors.ConnectionInvalidProvider)
		case errors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, apperrors.ConnectionNotConfigured)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, dto.ToConnectionResponse(connection))
}

// Disconnect handles DELETE /api/tenants/:tenantId/connections/:providerType
// The connection row survives with credentials cleared, so re-connecting
// keeps its selection settings.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	providerType := models.ProviderType(c.Param("providerType"))
	if !models.IsValidProviderType(providerType) {
		return SendError(c, apperrors.ConnectionInvalidProvider)
	}

	disconnected := false
	connection, err := h.connectionService.UpsertConnection(tenantID, providerType, dto.ConnectionPatch{
		Connected: &disconnected,
	})
	if err != nil {
		if errors.Is(err, services.ErrConnectionNotFound) {
			return SendError(c, apperrors.ConnectionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToConnectionResponse(connection))
}

// SelectAccounts handles PUT /api/tenants/:tenantId/connections/mercury_bank/accounts
// Replaces the Mercury selected-account set wholesale.
func (h *ConnectionHandler) SelectAccounts(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	var req dto.SelectAccountsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	connection, err := h.connectionService.SetSelectedAccounts(tenantID, req.AccountIDs)
	if err != nil {
		if errors.Is(err, services.ErrConnectionNotFound) {
			return SendError(c, apperrors.ConnectionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToConnectionResponse(connection))
}
