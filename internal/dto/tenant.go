package dto

import (
	"time"

	"finhub/internal/models"

	"github.com/google/uuid"
)

// CreateTenantRequest represents the payload for registering a tenant
type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,oneof=holding series property management personal"`
}

// UpdateTenantActivationRequest flips the tenant activation flag
type UpdateTenantActivationRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// TenantResponse is the API projection of a tenant
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantListResponse wraps a paginated tenant listing
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	Total   int64            `json:"total"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// ToTenantResponse converts a tenant model to its API projection
func ToTenantResponse(tenant *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Type:      tenant.Type,
		Active:    tenant.Active,
		CreatedAt: tenant.CreatedAt,
	}
}
