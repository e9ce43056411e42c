package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantAlreadyExists = errors.New("tenant already exists")
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) TenantRepositoryInterface {
	return &TenantRepository{
		db: db,
	}
}

// Create creates a new tenant in the database
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	if tenant == nil {
		return errors.New("tenant cannot be nil")
	}

	if err := r.db.Create(tenant).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrTenantAlreadyExists
		}
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

// GetByID retrieves a tenant by its ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	tenant := &models.Tenant{ID: id}
	if err := r.db.First(tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by ID: %w", err)
	}

	return tenant, nil
}

// GetByName retrieves a tenant by its name
func (r *TenantRepository) GetByName(name string) (*models.Tenant, error) {
	var tenant models.Tenant

	if err := r.db.Where("name = ?", name).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by name: %w", err)
	}

	return &tenant, nil
}

// List returns tenants ordered by creation time with a total count
func (r *TenantRepository) List(offset, limit int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := r.db.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	if err := r.db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&tenants).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	return tenants, total, nil
}

// SetActive flips the activation flag; the only mutation tenants support
// besides deletion.
func (r *TenantRepository) SetActive(id uuid.UUID, active bool) error {
	result := r.db.Model(&models.Tenant{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update tenant activation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTenantNotFound
	}
	return nil
}

// Delete removes a tenant and cascades to its connections
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&models.Connection{}).Error; err != nil {
			return fmt.Errorf("failed to delete tenant connections: %w", err)
		}

		result := tx.Delete(&models.Tenant{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete tenant: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTenantNotFound
		}
		return nil
	})
}

// isDuplicateKeyError detects unique constraint violations across postgres
// and sqlite
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
