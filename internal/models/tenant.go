package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TenantTypeHolding    = "holding"
	TenantTypeSeries     = "series"
	TenantTypeProperty   = "property"
	TenantTypeManagement = "management"
	TenantTypePersonal   = "personal"
)

var (
	ErrInvalidTenantType = errors.New("invalid tenant type")
)

// Tenant represents an isolated financial context (business entity, property,
// or personal account) under which provider connections live.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tenants_name_unique" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Connections []Connection `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Tenant
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

// Validate validates the tenant fields
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return errors.New("tenant name is required")
	}
	if !IsValidTenantType(t.Type) {
		return ErrInvalidTenantType
	}
	return nil
}

// TableName returns the table name for Tenant
func (t *Tenant) TableName() string {
	return "tenants"
}

// IsValidTenantType checks if the tenant type is valid
func IsValidTenantType(tenantType string) bool {
	switch tenantType {
	case TenantTypeHolding, TenantTypeSeries, TenantTypeProperty, TenantTypeManagement, TenantTypePersonal:
		return true
	default:
		return false
	}
}

// TenantScopeMode selects between the multi-entity console and a standalone
// single-tenant deployment. The scope is passed explicitly to the registry and
// aggregator at construction; nothing reads it from ambient state.
type TenantScopeMode string

const (
	TenantScopeSystem     TenantScopeMode = "system"
	TenantScopeStandalone TenantScopeMode = "standalone"
)

// TenantScope carries the deployment mode and, for standalone deployments,
// the single tenant the process serves.
type TenantScope struct {
	Mode     TenantScopeMode
	TenantID uuid.UUID
}

// Allows reports whether the scope permits operating on the given tenant.
func (s TenantScope) Allows(tenantID uuid.UUID) bool {
	if s.Mode == TenantScopeStandalone {
		return s.TenantID == tenantID
	}
	return true
}
