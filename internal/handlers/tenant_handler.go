package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"finhub/internal/dto"
	apperrors "finhub/internal/errors"
	"finhub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TenantHandler serves the tenant lifecycle API
type TenantHandler struct {
	tenantService services.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService services.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles POST /api/tenants
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req dto.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tenant, err := h.tenantService.CreateTenant(req.Name, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTenantAlreadyExists):
			return SendError(c, apperrors.TenantExists)
		case errors.Is(err, services.ErrInvalidTenantType):
			return SendError(c, apperrors.ValidationGeneral,
				apperrors.WithMessage("Invalid tenant type"))
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusCreated, dto.ToTenantResponse(tenant))
}

// GetTenant handles GET /api/tenants/:tenantId
func (h *TenantHandler) GetTenant(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	tenant, err := h.tenantService.GetTenant(tenantID)
	if err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return SendError(c, apperrors.TenantNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToTenantResponse(tenant))
}

// ListTenants handles GET /api/tenants
func (h *TenantHandler) ListTenants(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	tenants, total, err := h.tenantService.ListTenants(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, dto.ToTenantResponse(&tenants[i]))
	}

	return SendSuccessWithMeta(c, http.StatusOK,
		dto.TenantListResponse{
			Tenants: responses,
			Total:   total,
			Offset:  offset,
			Limit:   limit,
		},
		PaginationMeta{Total: total, Offset: offset, Limit: limit},
	)
}

// UpdateTenantActivation handles PATCH /api/tenants/:tenantId/activation
func (h *TenantHandler) UpdateTenantActivation(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	var req dto.UpdateTenantActivationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral,
			apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.tenantService.SetTenantActive(tenantID, *req.Active); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return SendError(c, apperrors.TenantNotFound)
		}
		return SendSystemError(c, err)
	}

	tenant, err := h.tenantService.GetTenant(tenantID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToTenantResponse(tenant))
}

// DeleteTenant handles DELETE /api/tenants/:tenantId
// Connections cascade with the tenant.
func (h *TenantHandler) DeleteTenant(c echo.Context) error {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		return SendError(c, apperrors.TenantInvalidID)
	}

	if err := h.tenantService.DeleteTenant(tenantID); err != nil {
		if errors.Is(err, services.ErrTenantNotFound) {
			return SendError(c, apperrors.TenantNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
