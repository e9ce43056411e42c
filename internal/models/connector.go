package models

import (
	"time"

	"github.com/google/uuid"
)

// ConnectorVersion is the published contract version. Bump only with a
// compatible envelope change.
const ConnectorVersion = "1.0"

// ConnectorSource identifies this system in the response envelope.
const ConnectorSource = "finhub"

// AuthInfo describes the authenticated caller on the secured connector
// variant. Its presence is the only structural difference from the public
// response; the data payload is identical.
type AuthInfo struct {
	AuthenticatedUserID string    `json:"authenticatedUserId"`
	AuthenticatedAt     time.Time `json:"authenticatedAt"`
	AuthMethod          string    `json:"authMethod"`
}

// ConnectedService is the per-connection entry of the connectedServices list.
type ConnectedService struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Type       ProviderType `json:"type"`
	LastSynced *time.Time   `json:"lastSynced,omitempty"`
}

// ConnectorData is the data payload shared by both response variants.
type ConnectorData struct {
	Summary          FinancialSummary            `json:"summary"`
	Transactions     []NormalizedTransaction     `json:"transactions"`
	RecurringCharges []NormalizedRecurringCharge `json:"recurringCharges"`
	Optimizations    []OptimizationSuggestion    `json:"optimizations"`
	Payroll          *PayrollSnapshot            `json:"payroll,omitempty"`
	DevActivity      *DevActivity                `json:"devActivity,omitempty"`
	ProviderFailures []ProviderFailure           `json:"providerFailures,omitempty"`
}

// UniversalConnectorResponse is the externally published, versioned envelope.
// It is a pure projection with no lifecycle of its own; Timestamp is stamped
// at format time so callers can distinguish cache age from snapshot age.
type UniversalConnectorResponse struct {
	Version           string             `json:"version"`
	Timestamp         time.Time          `json:"timestamp"`
	Source            string             `json:"source"`
	AccountID         uuid.UUID          `json:"accountId"`
	AuthInfo          *AuthInfo          `json:"authInfo,omitempty"`
	Data              ConnectorData      `json:"data"`
	ConnectedServices []ConnectedService `json:"connectedServices"`
}
