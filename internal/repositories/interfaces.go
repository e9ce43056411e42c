package repositories

import (
	"time"

	"finhub/internal/models"

	"github.com/google/uuid"
)

// TenantRepositoryInterface defines the contract for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	List(offset, limit int) ([]models.Tenant, int64, error)
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

// ConnectionRepositoryInterface defines the contract for connection repository
// operations. Uniqueness of (tenant, provider type) is enforced here as a
// contract, backed by the unique index.
type ConnectionRepositoryInterface interface {
	GetByTenant(tenantID uuid.UUID) ([]models.Connection, error)
	GetByTenantAndProvider(tenantID uuid.UUID, providerType models.ProviderType) (*models.Connection, error)
	Upsert(connection *models.Connection) error
	UpdateSettings(connectionID uuid.UUID, settings models.JSONBMap) error
	TouchLastSynced(connectionID uuid.UUID, syncedAt time.Time) error
	DeleteByTenant(tenantID uuid.UUID) error
}
