package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finhub/internal/models"
	"finhub/internal/providers"
	"finhub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// nopMetrics satisfies MetricsRecorderInterface without touching the global
// Prometheus registry.
type nopMetrics struct{}

func (nopMetrics) IncrementCounter(string, map[string]string)                 {}
func (nopMetrics) RecordProcessingTime(string, time.Duration)                {}
func (nopMetrics) RecordGauge(string, float64, map[string]string)            {}
func (nopMetrics) RecordProviderFetch(string, string, time.Duration, error) {}

// fakeBankAdapter exposes balance, transactions, and recurring charges.
type fakeBankAdapter struct {
	providerType models.ProviderType
	balance      decimal.Decimal
	transactions []models.NormalizedTransaction
	charges      []models.NormalizedRecurringCharge
	err          error
}

func (a *fakeBankAdapter) Type() models.ProviderType { return a.providerType }

func (a *fakeBankAdapter) FetchTransactions(ctx context.Context, conn providers.Conn) ([]models.NormalizedTransaction, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.transactions, nil
}

func (a *fakeBankAdapter) FetchRecurringCharges(ctx context.Context, conn providers.Conn) ([]models.NormalizedRecurringCharge, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.charges, nil
}

func (a *fakeBankAdapter) FetchBalance(ctx context.Context, conn providers.Conn) (decimal.Decimal, error) {
	if a.err != nil {
		return decimal.Zero, a.err
	}
	return a.balance, nil
}

// fakeSlowAdapter blocks until the fetch context expires.
type fakeSlowAdapter struct {
	providerType models.ProviderType
}

func (a *fakeSlowAdapter) Type() models.ProviderType { return a.providerType }

func (a *fakeSlowAdapter) FetchTransactions(ctx context.Context, conn providers.Conn) ([]models.NormalizedTransaction, error) {
	<-ctx.Done()
	return nil, providers.Unavailable(a.providerType, ctx.Err())
}

// fakeHalfPulledAdapter returns transactions but fails on balance, exercising
// the partial-data discard rule.
type fakeHalfPulledAdapter struct {
	providerType models.ProviderType
	transactions []models.NormalizedTransaction
}

func (a *fakeHalfPulledAdapter) Type() models.ProviderType { return a.providerType }

func (a *fakeHalfPulledAdapter) FetchTransactions(ctx context.Context, conn providers.Conn) ([]models.NormalizedTransaction, error) {
	return a.transactions, nil
}

func (a *fakeHalfPulledAdapter) FetchBalance(ctx context.Context, conn providers.Conn) (decimal.Decimal, error) {
	return decimal.Zero, providers.Unavailable(a.providerType, errors.New("upstream 500"))
}

type AggregatorServiceSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	connectionService *service_mocks.MockConnectionRegistryServiceInterface
	tenantID          uuid.UUID
	credentials       providers.Credentials
}

func (s *AggregatorServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.connectionService = service_mocks.NewMockConnectionRegistryServiceInterface(s.ctrl)
	s.tenantID = uuid.New()
	s.credentials = providers.Credentials{"token": "test-token"}
}

func (s *AggregatorServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAggregatorServiceSuite(t *testing.T) {
	suite.Run(t, new(AggregatorServiceSuite))
}

func (s *AggregatorServiceSuite) newService(registry *providers.Registry, fetchTimeout time.Duration) AggregatorServiceInterface {
	return NewAggregatorService(registry, s.connectionService, nopMetrics{}, fetchTimeout, 30, slog.Default())
}

func (s *AggregatorServiceSuite) connection(providerType models.ProviderType) models.Connection {
	return models.Connection{
		ID:                uuid.New(),
		TenantID:          s.tenantID,
		ProviderType:      providerType,
		Connected:         true,
		SealedCredentials: "sealed",
	}
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_NoConnections() {
	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{}, nil)

	service := s.newService(providers.NewRegistryWith(), time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.Empty(snapshot.Transactions)
	s.Empty(snapshot.RecurringCharges)
	s.Empty(snapshot.Failures)
	s.True(snapshot.Summary.CashOnHand.IsZero())
	s.True(snapshot.Summary.MonthlyRevenue.IsZero())
	s.True(snapshot.Summary.MonthlyExpenses.IsZero())
	s.True(snapshot.Summary.OutstandingInvoices.IsZero())
	s.True(snapshot.Summary.Metrics.Runway.Unbounded)
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_MercuryBalancePlusStripeIncome() {
	mercury := s.connection(models.ProviderMercuryBank)
	stripe := s.connection(models.ProviderStripe)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderMercuryBank,
			balance:      decimal.NewFromInt(10000),
		},
		&fakeBankAdapter{
			providerType: models.ProviderStripe,
			transactions: []models.NormalizedTransaction{
				{
					ID:     "stripe-ch_1",
					Title:  "Customer payment",
					Amount: decimal.NewFromFloat(49.99),
					Type:   models.TransactionTypeIncome,
					Status: models.TransactionStatusCompleted,
					Date:   time.Now().Add(-24 * time.Hour),
					Source: models.ProviderStripe,
				},
			},
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{mercury, stripe}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil).Times(2)
	s.connectionService.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.Empty(snapshot.Failures)
	s.True(snapshot.Summary.CashOnHand.Equal(decimal.NewFromInt(10000)),
		"cashOnHand = %s", snapshot.Summary.CashOnHand)
	s.True(snapshot.Summary.MonthlyRevenue.Equal(decimal.NewFromFloat(49.99)))
	s.True(snapshot.Summary.MonthlyExpenses.IsZero())
	s.True(snapshot.Summary.OutstandingInvoices.IsZero())
	s.True(snapshot.Summary.Metrics.Runway.Unbounded, "positive cashflow means no burn")
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_TimeoutIsolatedToOneProvider() {
	mercury := s.connection(models.ProviderMercuryBank)
	xero := s.connection(models.ProviderXero)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderMercuryBank,
			balance:      decimal.NewFromInt(5000),
		},
		&fakeSlowAdapter{providerType: models.ProviderXero},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{mercury, xero}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil).Times(2)
	s.connectionService.EXPECT().MarkSynced(mercury.ID, gomock.Any()).Return(nil)

	service := s.newService(registry, 50*time.Millisecond)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.True(snapshot.Summary.CashOnHand.Equal(decimal.NewFromInt(5000)),
		"healthy provider data must survive a sibling timeout")
	s.Require().Len(snapshot.Failures, 1)
	s.Equal(models.ProviderXero, snapshot.Failures[0].Provider)
	s.Equal("timed out", snapshot.Failures[0].Reason)
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_PartialDataDiscardedOnFailure() {
	brex := s.connection(models.ProviderBrex)

	registry := providers.NewRegistryWith(
		&fakeHalfPulledAdapter{
			providerType: models.ProviderBrex,
			transactions: []models.NormalizedTransaction{
				{
					ID:     "brex-1",
					Amount: decimal.NewFromInt(-900),
					Type:   models.TransactionTypeExpense,
					Status: models.TransactionStatusCompleted,
					Date:   time.Now(),
					Source: models.ProviderBrex,
				},
			},
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{brex}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.Empty(snapshot.Transactions, "a half-pulled provider must not skew the summary")
	s.True(snapshot.Summary.MonthlyExpenses.IsZero())
	s.Require().Len(snapshot.Failures, 1)
	s.Equal(models.ProviderBrex, snapshot.Failures[0].Provider)
	s.Equal("provider unavailable", snapshot.Failures[0].Reason)
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_NotConfiguredIsZeroContribution() {
	wave := s.connection(models.ProviderWaveApps)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderWaveApps,
			err:          providers.ErrNotConfigured,
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{wave}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil)
	s.connectionService.EXPECT().MarkSynced(wave.ID, gomock.Any()).Return(nil)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.Empty(snapshot.Transactions)
	s.Empty(snapshot.Failures, "not-configured is benign, never a failure marker")
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_DisconnectedProvidersSkipped() {
	mercury := s.connection(models.ProviderMercuryBank)
	mercury.Connected = false

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{mercury}, nil)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{providerType: models.ProviderMercuryBank, balance: decimal.NewFromInt(777)},
	)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.True(snapshot.Summary.CashOnHand.IsZero())
}

func (s *AggregatorServiceSuite) TestMerge_TransactionOrderingDeterministic() {
	day0 := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	day1 := day0.AddDate(0, 0, -1)

	brex := s.connection(models.ProviderBrex)
	stripe := s.connection(models.ProviderStripe)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderBrex,
			transactions: []models.NormalizedTransaction{
				{ID: "brex-2", Amount: decimal.NewFromInt(-5), Type: models.TransactionTypeExpense, Status: models.TransactionStatusCompleted, Date: day1, Source: models.ProviderBrex},
				{ID: "brex-1", Amount: decimal.NewFromInt(-5), Type: models.TransactionTypeExpense, Status: models.TransactionStatusCompleted, Date: day0, Source: models.ProviderBrex},
			},
		},
		&fakeBankAdapter{
			providerType: models.ProviderStripe,
			transactions: []models.NormalizedTransaction{
				{ID: "stripe-1", Amount: decimal.NewFromInt(20), Type: models.TransactionTypeIncome, Status: models.TransactionStatusCompleted, Date: day0, Source: models.ProviderStripe},
			},
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{brex, stripe}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil).Times(2)
	s.connectionService.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.Require().Len(snapshot.Transactions, 3)
	// Date descending; equal dates tie-break on id ascending.
	s.Equal("brex-1", snapshot.Transactions[0].ID)
	s.Equal("stripe-1", snapshot.Transactions[1].ID)
	s.Equal("brex-2", snapshot.Transactions[2].ID)
}

func (s *AggregatorServiceSuite) TestComputeSummary_PendingIncomeIsOutstanding() {
	stripe := s.connection(models.ProviderStripe)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderStripe,
			transactions: []models.NormalizedTransaction{
				// Old pending invoice, outside any revenue window.
				{ID: "stripe-old", Amount: decimal.NewFromInt(1200), Type: models.TransactionTypeIncome, Status: models.TransactionStatusPending, Date: time.Now().AddDate(0, -6, 0), Source: models.ProviderStripe},
			},
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{stripe}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil)
	s.connectionService.EXPECT().MarkSynced(stripe.ID, gomock.Any()).Return(nil)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	s.True(snapshot.Summary.OutstandingInvoices.Equal(decimal.NewFromInt(1200)),
		"pending income counts regardless of window")
	s.True(snapshot.Summary.MonthlyRevenue.IsZero())
}

func (s *AggregatorServiceSuite) TestComputeSummary_BurnRateAndRunway() {
	brex := s.connection(models.ProviderBrex)
	mercury := s.connection(models.ProviderMercuryBank)

	registry := providers.NewRegistryWith(
		&fakeBankAdapter{
			providerType: models.ProviderMercuryBank,
			balance:      decimal.NewFromInt(20000),
		},
		&fakeBankAdapter{
			providerType: models.ProviderBrex,
			transactions: []models.NormalizedTransaction{
				{ID: "brex-1", Amount: decimal.NewFromInt(-4000), Type: models.TransactionTypeExpense, Status: models.TransactionStatusCompleted, Date: time.Now().AddDate(0, 0, -3), Source: models.ProviderBrex},
			},
		},
	)

	s.connectionService.EXPECT().ListConnections(s.tenantID).Return([]models.Connection{brex, mercury}, nil)
	s.connectionService.EXPECT().UnsealCredentials(gomock.Any()).Return(s.credentials, nil).Times(2)
	s.connectionService.EXPECT().MarkSynced(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := s.newService(registry, time.Second)
	snapshot, err := service.BuildSnapshot(context.Background(), s.tenantID)

	s.Require().NoError(err)
	metrics := snapshot.Summary.Metrics
	s.True(metrics.BurnRate.Equal(decimal.NewFromInt(4000)))
	s.False(metrics.Runway.Unbounded)
	s.True(metrics.Runway.Months.Equal(decimal.NewFromInt(5)),
		"runway = 20000 / 4000 months, got %s", metrics.Runway.Months)
	s.True(metrics.Cashflow.Equal(decimal.NewFromInt(-4000)))
}

func (s *AggregatorServiceSuite) TestBuildSnapshot_ListConnectionsFails() {
	s.connectionService.EXPECT().ListConnections(s.tenantID).Return(nil, errors.New("db down"))

	service := s.newService(providers.NewRegistryWith(), time.Second)
	_, err := service.BuildSnapshot(context.Background(), s.tenantID)
	s.Error(err)
}
