package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finhub/internal/models"
	"finhub/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantAlreadyExists = errors.New("tenant already exists")
	ErrInvalidTenantType   = errors.New("invalid tenant type")
)

// TenantService manages the entities financial data is scoped to
type TenantService struct {
	tenantRepo repositories.TenantRepositoryInterface
	logger     *slog.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo repositories.TenantRepositoryInterface, logger *slog.Logger) TenantServiceInterface {
	return &TenantService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// CreateTenant registers a new tenant
func (s *TenantService) CreateTenant(name, tenantType string) (*models.Tenant, error) {
	tenant := &models.Tenant{
		Name:   name,
		Type:   tenantType,
		Active: true,
	}

	if err := tenant.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTenantType, err)
	}

	if err := s.tenantRepo.Create(tenant); err != nil {
		if errors.Is(err, repositories.ErrTenantAlreadyExists) {
			return nil, ErrTenantAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Info("tenant created",
		slog.String("tenant_id", tenant.ID.String()),
		slog.String("type", tenant.Type))

	return tenant, nil
}

// GetTenant retrieves a tenant by ID
func (s *TenantService) GetTenant(tenantID uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

// ListTenants returns a page of tenants and the total count
func (s *TenantService) ListTenants(offset, limit int) ([]models.Tenant, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	tenants, total, err := s.tenantRepo.List(offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, total, nil
}

// SetTenantActive flips the activation flag. Deactivated tenants keep
// their connections but stop appearing in aggregation.
func (s *TenantService) SetTenantActive(tenantID uuid.UUID, active bool) error {
	if err := s.tenantRepo.SetActive(tenantID, active); err != nil {
		if errors.Is(err, repositories.ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to update tenant activation: %w", err)
	}

	s.logger.Info("tenant activation changed",
		slog.String("tenant_id", tenantID.String()),
		slog.Bool("active", active))

	return nil
}

// DeleteTenant removes a tenant and all its provider connections
func (s *TenantService) DeleteTenant(tenantID uuid.UUID) error {
	if err := s.tenantRepo.Delete(tenantID); err != nil {
		if errors.Is(err, repositories.ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.logger.Info("tenant deleted", slog.String("tenant_id", tenantID.String()))
	return nil
}
