package services

import (
	"context"
	"time"

	"finhub/internal/dto"
	"finhub/internal/models"
	"finhub/internal/providers"

	"github.com/google/uuid"
)

// TenantServiceInterface defines tenant lifecycle operations
type TenantServiceInterface interface {
	CreateTenant(name, tenantType string) (*models.Tenant, error)
	GetTenant(tenantID uuid.UUID) (*models.Tenant, error)
	ListTenants(offset, limit int) ([]models.Tenant, int64, error)
	SetTenantActive(tenantID uuid.UUID, active bool) error
	DeleteTenant(tenantID uuid.UUID) error
}

// ConnectionRegistryServiceInterface tracks which providers each tenant has
// connected, their credentials and selection state, and sync timestamps.
// It enforces the one-connection-per-(tenant, provider) contract and never
// talks to providers itself.
type ConnectionRegistryServiceInterface interface {
	ListConnections(tenantID uuid.UUID) ([]models.Connection, error)
	GetConnection(tenantID uuid.UUID, providerType models.ProviderType) (*models.Connection, error)
	UpsertConnection(tenantID uuid.UUID, providerType models.ProviderType, patch dto.ConnectionPatch) (*models.Connection, error)
	SetSelectedAccounts(tenantID uuid.UUID, accountIDs []string) (*models.Connection, error)
	UnsealCredentials(connection *models.Connection) (providers.Credentials, error)
	MarkSynced(connectionID uuid.UUID, syncedAt time.Time) error
}

// AggregatorServiceInterface builds the request-scoped merged snapshot for a
// tenant by fanning out to all connected provider adapters.
type AggregatorServiceInterface interface {
	BuildSnapshot(ctx context.Context, tenantID uuid.UUID) (*models.Snapshot, error)
}

// OptimizationServiceInterface derives cost-saving suggestions from the
// merged recurring-charge set using the versioned rule catalog.
type OptimizationServiceInterface interface {
	Suggest(charges []models.NormalizedRecurringCharge) []models.OptimizationSuggestion
	CatalogVersion() string
}

// FormatterServiceInterface projects a snapshot plus registry state into the
// published Universal Connector contract.
type FormatterServiceInterface interface {
	Format(tenant *models.Tenant, snapshot *models.Snapshot, connections []models.Connection, authInfo *models.AuthInfo) *models.UniversalConnectorResponse
}

// SessionServiceInterface issues and validates the session tokens behind
// the secured connector variant.
type SessionServiceInterface interface {
	IssueToken(userID, authMethod string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	AuthInfo(claims *models.SessionClaims) *models.AuthInfo
}

// CredentialVaultInterface seals provider credential blobs for storage and
// unseals them just before adapter dispatch.
type CredentialVaultInterface interface {
	Seal(credentials providers.Credentials) (string, error)
	Unseal(sealed string) (providers.Credentials, error)
}

// MetricsRecorderInterface is the indirection between services and the
// Prometheus registry so tests can run without one.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	RecordProviderFetch(provider, capability string, duration time.Duration, err error)
}

// CircuitBreakerState represents the current state of a circuit breaker
type CircuitBreakerState int

// CircuitBreakerInterface short-circuits calls to providers that keep
// failing, for a cool-down period.
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// SandboxGeneratorInterface produces realistic fake financial data for demo
// tenants and tests.
type SandboxGeneratorInterface interface {
	GenerateTransactions(source models.ProviderType, days, count int) []models.NormalizedTransaction
	GenerateRecurringCharges(source models.ProviderType, count int) []models.NormalizedRecurringCharge
}
