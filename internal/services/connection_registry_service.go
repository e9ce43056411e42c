package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finhub/internal/dto"
	"finhub/internal/models"
	"finhub/internal/providers"
	"finhub/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrUnsupportedProvider = errors.New("unsupported provider type")
	ErrInvalidCredentials  = errors.New("credentials must not be empty")
)

// ConnectionRegistryService is the system of record for which providers a
// tenant has authorized. It seals credentials on the way in and never hands
// plaintext to anything but the aggregator.
type ConnectionRegistryService struct {
	connectionRepo repositories.ConnectionRepositoryInterface
	tenantRepo     repositories.TenantRepositoryInterface
	vault          CredentialVaultInterface
	logger         *slog.Logger
}

// NewConnectionRegistryService creates a new connection registry service
func NewConnectionRegistryService(
	connectionRepo repositories.ConnectionRepositoryInterface,
	tenantRepo repositories.TenantRepositoryInterface,
	vault CredentialVaultInterface,
	logger *slog.Logger,
) ConnectionRegistryServiceInterface {
	return &ConnectionRegistryService{
		connectionRepo: connectionRepo,
		tenantRepo:     tenantRepo,
		vault:          vault,
		logger:         logger,
	}
}

// ListConnections returns all connections for a tenant, connected or not,
// ordered by provider type
func (s *ConnectionRegistryService) ListConnections(tenantID uuid.UUID) ([]models.Connection, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, repositories.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to check tenant: %w", err)
	}

	connections, err := s.connectionRepo.GetByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return connections, nil
}

// GetConnection returns the single connection for a (tenant, provider) pair
func (s *ConnectionRegistryService) GetConnection(tenantID uuid.UUID, providerType models.ProviderType) (*models.Connection, error) {
	if !models.IsValidProviderType(providerType) {
		return nil, ErrUnsupportedProvider
	}

	connection, err := s.connectionRepo.GetByTenantAndProvider(tenantID, providerType)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}
	return connection, nil
}

// UpsertConnection authorizes, re-authorizes or disconnects a provider for
// a tenant. At most one connection per (tenant, provider) pair exists; a
// repeat authorization overwrites credentials and settings in place.
func (s *ConnectionRegistryService) UpsertConnection(tenantID uuid.UUID, providerType models.ProviderType, patch dto.ConnectionPatch) (*models.Connection, error) {
	if !models.IsValidProviderType(providerType) {
		return nil, ErrUnsupportedProvider
	}
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, repositories.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to check tenant: %w", err)
	}

	connection, err := s.connectionRepo.GetByTenantAndProvider(tenantID, providerType)
	if err != nil {
		if !errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, fmt.Errorf("failed to look up connection: %w", err)
		}
		connection = &models.Connection{
			TenantID:     tenantID,
			ProviderType: providerType,
		}
	}

	if patch.Credentials != nil {
		if len(patch.Credentials) == 0 {
			return nil, ErrInvalidCredentials
		}
		sealed, sealErr := s.vault.Seal(providers.Credentials(patch.Credentials))
		if sealErr != nil {
			return nil, fmt.Errorf("failed to seal credentials: %w", sealErr)
		}
		connection.SealedCredentials = sealed
		connection.Connected = true
	}
	if patch.Settings != nil {
		connection.Settings = models.JSONBMap(patch.Settings)
	}
	if patch.Connected != nil {
		if *patch.Connected {
			connection.Connected = true
		} else {
			connection.Disconnect()
		}
	}

	if err := s.connectionRepo.Upsert(connection); err != nil {
		return nil, fmt.Errorf("failed to save connection: %w", err)
	}

	s.logger.Info("connection updated",
		slog.String("tenant_id", tenantID.String()),
		slog.String("provider", string(providerType)),
		slog.Bool("connected", connection.Connected))

	return connection, nil
}

// SetSelectedAccounts narrows the bank connection to a subset of account
// IDs. Only meaningful for the bank provider; stored in settings either way.
func (s *ConnectionRegistryService) SetSelectedAccounts(tenantID uuid.UUID, accountIDs []string) (*models.Connection, error) {
	connection, err := s.GetConnection(tenantID, models.ProviderMercuryBank)
	if err != nil {
		return nil, err
	}

	connection.SetSelectedAccountIDs(accountIDs)
	if err := s.connectionRepo.UpdateSettings(connection.ID, connection.Settings); err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to save account selection: %w", err)
	}

	return connection, nil
}

// UnsealCredentials recovers the plaintext credential map for a connection
func (s *ConnectionRegistryService) UnsealCredentials(connection *models.Connection) (providers.Credentials, error) {
	if connection == nil || !connection.Connected || connection.SealedCredentials == "" {
		return nil, ErrConnectionNotFound
	}
	return s.vault.Unseal(connection.SealedCredentials)
}

// MarkSynced records the advisory sync timestamp after a successful pull
func (s *ConnectionRegistryService) MarkSynced(connectionID uuid.UUID, syncedAt time.Time) error {
	if err := s.connectionRepo.TouchLastSynced(connectionID, syncedAt); err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return ErrConnectionNotFound
		}
		return fmt.Errorf("failed to mark connection synced: %w", err)
	}
	return nil
}
