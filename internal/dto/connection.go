package dto

import (
	"time"

	"finhub/internal/models"

	"github.com/google/uuid"
)

// ConnectRequest authorizes (or re-authorizes) a provider for a tenant.
// Credentials are provider-specific opaque key/value pairs; most adapters
// only need "token".
type ConnectRequest struct {
	Credentials map[string]string      `json:"credentials" validate:"required,min=1"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
}

// SelectAccountsRequest narrows a bank connection to a subset of accounts
type SelectAccountsRequest struct {
	AccountIDs []string `json:"account_ids" validate:"required,min=1,dive,required"`
}

// ConnectionPatch carries the registry-level mutation derived from a
// connect/disconnect request. Nil fields are left untouched.
type ConnectionPatch struct {
	Connected   *bool
	Credentials map[string]string
	Settings    map[string]interface{}
}

// ConnectionResponse is the API projection of a connection. Credentials
// never leave the registry.
type ConnectionResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProviderType string     `json:"provider_type"`
	ProviderName string     `json:"provider_name"`
	Connected    bool       `json:"connected"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ConnectionListResponse wraps a tenant's connection listing
type ConnectionListResponse struct {
	Connections []ConnectionResponse `json:"connections"`
	Total       int                  `json:"total"`
}

// ToConnectionResponse converts a connection model to its API projection
func ToConnectionResponse(connection *models.Connection) ConnectionResponse {
	return ConnectionResponse{
		ID:           connection.ID,
		ProviderType: string(connection.ProviderType),
		ProviderName: connection.ProviderType.DisplayName(),
		Connected:    connection.Connected,
		LastSyncedAt: connection.LastSyncedAt,
		CreatedAt:    connection.CreatedAt,
	}
}
