package services

import (
	"encoding/json"
	"testing"
	"time"

	"finhub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatterFixtures() (*models.Tenant, *models.Snapshot, []models.Connection) {
	tenant := &models.Tenant{
		ID:     uuid.New(),
		Name:   "Acme Holdings",
		Type:   models.TenantTypeHolding,
		Active: true,
	}

	synced := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	connections := []models.Connection{
		{ID: uuid.New(), TenantID: tenant.ID, ProviderType: models.ProviderStripe, Connected: true, LastSyncedAt: &synced},
		{ID: uuid.New(), TenantID: tenant.ID, ProviderType: models.ProviderMercuryBank, Connected: true},
		{ID: uuid.New(), TenantID: tenant.ID, ProviderType: models.ProviderXero, Connected: false},
	}

	snapshot := &models.Snapshot{
		TenantID: tenant.ID.String(),
		Summary: models.FinancialSummary{
			CashOnHand: decimal.NewFromInt(10000),
			Metrics:    models.FinancialMetrics{Runway: models.UnboundedRunway()},
		},
		Transactions: []models.NormalizedTransaction{
			{ID: "stripe-1", Amount: decimal.NewFromFloat(49.99), Type: models.TransactionTypeIncome, Status: models.TransactionStatusCompleted, Date: synced, Source: models.ProviderStripe},
		},
		RecurringCharges: []models.NormalizedRecurringCharge{
			{ID: "merc-1", MerchantName: "Adobe Creative Cloud", Amount: decimal.NewFromFloat(52.99), Recurring: true, Source: models.ProviderMercuryBank},
		},
		GeneratedAt: synced,
	}

	return tenant, snapshot, connections
}

func TestFormat_EnvelopeShape(t *testing.T) {
	tenant, snapshot, connections := formatterFixtures()
	service := NewFormatterService(NewOptimizationService(nil))

	response := service.Format(tenant, snapshot, connections, nil)

	assert.Equal(t, "1.0", response.Version)
	assert.Equal(t, "finhub", response.Source)
	assert.Equal(t, tenant.ID, response.AccountID)
	assert.Nil(t, response.AuthInfo, "public variant carries no authInfo")
	assert.Equal(t, snapshot.Summary, response.Data.Summary)
	assert.Equal(t, snapshot.Transactions, response.Data.Transactions)
	require.Len(t, response.Data.Optimizations, 1, "the Adobe charge matches the catalog")
	assert.WithinDuration(t, time.Now().UTC(), response.Timestamp, 5*time.Second,
		"timestamp is stamped at format time, not snapshot time")
}

func TestFormat_ConnectedServicesSortedAndFiltered(t *testing.T) {
	tenant, snapshot, connections := formatterFixtures()
	service := NewFormatterService(NewOptimizationService(nil))

	response := service.Format(tenant, snapshot, connections, nil)

	require.Len(t, response.ConnectedServices, 2, "disconnected providers are excluded")
	assert.Equal(t, models.ProviderMercuryBank, response.ConnectedServices[0].Type)
	assert.Equal(t, models.ProviderStripe, response.ConnectedServices[1].Type)
	assert.Equal(t, "Mercury", response.ConnectedServices[0].Name)
	assert.NotNil(t, response.ConnectedServices[1].LastSynced)
}

func TestFormat_StableUnderConnectionReordering(t *testing.T) {
	tenant, snapshot, connections := formatterFixtures()
	service := NewFormatterService(NewOptimizationService(nil))

	forward := service.Format(tenant, snapshot, connections, nil)

	reversed := make([]models.Connection, 0, len(connections))
	for i := len(connections) - 1; i >= 0; i-- {
		reversed = append(reversed, connections[i])
	}
	backward := service.Format(tenant, snapshot, reversed, nil)

	assert.Equal(t, forward.ConnectedServices, backward.ConnectedServices)
	assert.Equal(t, forward.Data, backward.Data)
}

func TestFormat_RoundTripOnlyTimestampDiffers(t *testing.T) {
	tenant, snapshot, connections := formatterFixtures()
	service := NewFormatterService(NewOptimizationService(nil))

	first := service.Format(tenant, snapshot, connections, nil)
	second := service.Format(tenant, snapshot, connections, nil)

	firstData, err := json.Marshal(first.Data)
	require.NoError(t, err)
	secondData, err := json.Marshal(second.Data)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstData), string(secondData))
	assert.Equal(t, first.ConnectedServices, second.ConnectedServices)
}

func TestFormat_SecuredVariantCarriesAuthInfo(t *testing.T) {
	tenant, snapshot, connections := formatterFixtures()
	service := NewFormatterService(NewOptimizationService(nil))

	authInfo := &models.AuthInfo{
		AuthenticatedUserID: "user-42",
		AuthenticatedAt:     time.Now().UTC(),
		AuthMethod:          "session_token",
	}

	public := service.Format(tenant, snapshot, connections, nil)
	secured := service.Format(tenant, snapshot, connections, authInfo)

	require.NotNil(t, secured.AuthInfo)
	assert.Equal(t, "user-42", secured.AuthInfo.AuthenticatedUserID)
	assert.Equal(t, public.Data.Summary, secured.Data.Summary,
		"the data payload is identical across variants")
}
