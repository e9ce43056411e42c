package repositories

import (
	"errors"
	"fmt"
	"time"

	"finhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrConnectionNotFound = errors.New("connection not found")
)

// ConnectionRepository handles database operations for provider connections
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepositoryInterface {
	return &ConnectionRepository{
		db: db,
	}
}

// GetByTenant retrieves all connections for a tenant ordered by provider type
func (r *ConnectionRepository) GetByTenant(tenantID uuid.UUID) ([]models.Connection, error) {
	var connections []models.Connection

	if err := r.db.Where("tenant_id = ?", tenantID).Order("provider_type ASC").Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to get connections for tenant: %w", err)
	}

	return connections, nil
}

// GetByTenantAndProvider retrieves the single connection for a (tenant,
// provider type) pair
func (r *ConnectionRepository) GetByTenantAndProvider(tenantID uuid.UUID, providerType models.ProviderType) (*models.Connection, error) {
	var connection models.Connection

	err := r.db.Where("tenant_id = ? AND provider_type = ?", tenantID, providerType).First(&connection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return &connection, nil
}

// Upsert creates the connection on first authorization or updates the
// existing row for the (tenant, provider type) pair. Uniqueness of the pair
// is this method's contract; the unique index backs it.
func (r *ConnectionRepository) Upsert(connection *models.Connection) error {
	if connection == nil {
		return errors.New("connection cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Connection
		err := tx.Where("tenant_id = ? AND provider_type = ?", connection.TenantID, connection.ProviderType).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if createErr := tx.Create(connection).Error; createErr != nil {
				return fmt.Errorf("failed to create connection: %w", createErr)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up connection: %w", err)
		}

		connection.ID = existing.ID
		connection.CreatedAt = existing.CreatedAt
		if saveErr := tx.Save(connection).Error; saveErr != nil {
			return fmt.Errorf("failed to update connection: %w", saveErr)
		}
		return nil
	})
}

// UpdateSettings replaces the provider-specific settings blob
func (r *ConnectionRepository) UpdateSettings(connectionID uuid.UUID, settings models.JSONBMap) error {
	result := r.db.Model(&models.Connection{}).Where("id = ?", connectionID).Update("settings", settings)
	if result.Error != nil {
		return fmt.Errorf("failed to update connection settings: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// TouchLastSynced records the advisory sync timestamp after a successful
// pull. Concurrent writers race last-writer-wins by design of the contract.
func (r *ConnectionRepository) TouchLastSynced(connectionID uuid.UUID, syncedAt time.Time) error {
	result := r.db.Model(&models.Connection{}).Where("id = ?", connectionID).Update("last_synced_at", syncedAt)
	if result.Error != nil {
		return fmt.Errorf("failed to update last synced timestamp: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// DeleteByTenant removes all connections for a tenant (tenant-removal cascade)
func (r *ConnectionRepository) DeleteByTenant(tenantID uuid.UUID) error {
	if err := r.db.Where("tenant_id = ?", tenantID).Delete(&models.Connection{}).Error; err != nil {
		return fmt.Errorf("failed to delete connections for tenant: %w", err)
	}
	return nil
}
