package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderType identifies one external financial/service provider.
type ProviderType string

const (
	ProviderMercuryBank ProviderType = "mercury_bank"
	ProviderWaveApps    ProviderType = "wavapps"
	ProviderStripe      ProviderType = "stripe"
	ProviderDoorLoop    ProviderType = "doorloop"
	ProviderQuickBooks  ProviderType = "quickbooks"
	ProviderXero        ProviderType = "xero"
	ProviderBrex        ProviderType = "brex"
	ProviderGusto       ProviderType = "gusto"
	ProviderGitHub      ProviderType = "github"
)

var (
	ErrInvalidProviderType = errors.New("invalid provider type")
)

// providerShortCodes maps each provider to the id prefix used to keep
// normalized record ids globally unique when results are merged.
var providerShortCodes = map[ProviderType]string{
	ProviderMercuryBank: "merc",
	ProviderWaveApps:    "wave",
	ProviderStripe:      "stripe",
	ProviderDoorLoop:    "dl",
	ProviderQuickBooks:  "qb",
	ProviderXero:        "xero",
	ProviderBrex:        "brex",
	ProviderGusto:       "gusto",
	ProviderGitHub:      "gh",
}

// providerDisplayNames maps each provider to its human-readable name used in
// the connectedServices list.
var providerDisplayNames = map[ProviderType]string{
	ProviderMercuryBank: "Mercury",
	ProviderWaveApps:    "Wave",
	ProviderStripe:      "Stripe",
	ProviderDoorLoop:    "DoorLoop",
	ProviderQuickBooks:  "QuickBooks",
	ProviderXero:        "Xero",
	ProviderBrex:        "Brex",
	ProviderGusto:       "Gusto",
	ProviderGitHub:      "GitHub",
}

// AllProviderTypes lists every supported provider in a stable order.
func AllProviderTypes() []ProviderType {
	return []ProviderType{
		ProviderMercuryBank,
		ProviderWaveApps,
		ProviderStripe,
		ProviderDoorLoop,
		ProviderQuickBooks,
		ProviderXero,
		ProviderBrex,
		ProviderGusto,
		ProviderGitHub,
	}
}

// IsValidProviderType checks if the provider type is a supported provider
func IsValidProviderType(providerType ProviderType) bool {
	_, ok := providerShortCodes[providerType]
	return ok
}

// ShortCode returns the id prefix for the provider
func (p ProviderType) ShortCode() string {
	return providerShortCodes[p]
}

// DisplayName returns the human-readable provider name
func (p ProviderType) DisplayName() string {
	if name, ok := providerDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// Connection represents a tenant's link to one external provider.
// At most one connection exists per (tenant, provider type) pair; disconnects
// flip the Connected flag rather than deleting the row so the history remains.
type Connection struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	TenantID     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_connections_tenant_provider" json:"tenant_id"`
	ProviderType ProviderType `gorm:"type:varchar(20);not null;uniqueIndex:idx_connections_tenant_provider" json:"provider_type"`
	Connected    bool         `gorm:"not null;default:false" json:"connected"`

	// SealedCredentials holds the provider credential blob sealed by the
	// credential vault. The aggregator never interprets it beyond handing it
	// to the matching adapter.
	SealedCredentials string `gorm:"type:text" json:"-"`

	// Settings holds provider-specific selection state, e.g. the selected
	// Mercury account ids. Kept separate from credentials so it can be
	// returned to the UI layer.
	Settings JSONBMap `gorm:"type:jsonb" json:"settings,omitempty"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate hook for Connection
func (c *Connection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the connection fields
func (c *Connection) Validate() error {
	if c.TenantID == uuid.Nil {
		return errors.New("tenant ID is required")
	}
	if !IsValidProviderType(c.ProviderType) {
		return ErrInvalidProviderType
	}
	return nil
}

// TableName returns the table name for Connection
func (c *Connection) TableName() string {
	return "connections"
}

const selectedAccountsKey = "selected_account_ids"

// SelectedAccountIDs returns the provider-local sub-account selection, if any.
// Mercury connections use this to scope balance and transaction pulls.
func (c *Connection) SelectedAccountIDs() []string {
	raw, ok := c.Settings[selectedAccountsKey]
	if !ok {
		return nil
	}
	values, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

// SetSelectedAccountIDs replaces the full selection set. Callers needing
// incremental toggling read-modify-write the full set client-side.
func (c *Connection) SetSelectedAccountIDs(ids []string) {
	if c.Settings == nil {
		c.Settings = make(JSONBMap)
	}
	values := make([]interface{}, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	c.Settings[selectedAccountsKey] = values
}

// Disconnect flips the connected flag and clears the sealed credentials while
// retaining the row for history.
func (c *Connection) Disconnect() {
	c.Connected = false
	c.SealedCredentials = ""
}
