package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"finhub/internal/models"
	"finhub/internal/providers"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAggregationFailed = errors.New("aggregation failed")
)

// AggregatorService fans out to every connected provider adapter in parallel
// and merges the results into one request-scoped snapshot. Provider outages
// degrade the snapshot instead of failing it: the failing provider
// contributes nothing and rides along as a partial-failure marker.
type AggregatorService struct {
	registry          *providers.Registry
	connectionService ConnectionRegistryServiceInterface
	breakers          map[models.ProviderType]CircuitBreakerInterface
	metrics           MetricsRecorderInterface
	fetchTimeout      time.Duration
	summaryWindowDays int
	logger            *slog.Logger
	now               func() time.Time
}

// NewAggregatorService creates a new aggregator service. One circuit breaker
// per provider type is shared across tenants because upstream outages are
// global, not per tenant.
func NewAggregatorService(
	registry *providers.Registry,
	connectionService ConnectionRegistryServiceInterface,
	metrics MetricsRecorderInterface,
	fetchTimeout time.Duration,
	summaryWindowDays int,
	logger *slog.Logger,
) AggregatorServiceInterface {
	breakers := make(map[models.ProviderType]CircuitBreakerInterface, len(models.AllProviderTypes()))
	for _, providerType := range models.AllProviderTypes() {
		breakers[providerType] = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}

	return &AggregatorService{
		registry:          registry,
		connectionService: connectionService,
		breakers:          breakers,
		metrics:           metrics,
		fetchTimeout:      fetchTimeout,
		summaryWindowDays: summaryWindowDays,
		logger:            logger,
		now:               time.Now,
	}
}

// providerResult carries one provider's contribution out of its goroutine.
type providerResult struct {
	provider         models.ProviderType
	connectionID     uuid.UUID
	transactions     []models.NormalizedTransaction
	recurringCharges []models.NormalizedRecurringCharge
	balance          *decimal.Decimal
	payroll          *models.PayrollSnapshot
	activity         *models.DevActivity
	failure          *models.ProviderFailure
}

// BuildSnapshot pulls from all connected providers for the tenant and merges
// the results. A tenant with zero connected providers gets a valid all-zero
// snapshot, not an error.
func (s *AggregatorService) BuildSnapshot(ctx context.Context, tenantID uuid.UUID) (*models.Snapshot, error) {
	started := s.now()

	connections, err := s.connectionService.ListConnections(tenantID)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	results := make(chan providerResult, len(connections))

	for i := range connections {
		connection := connections[i]
		if !connection.Connected {
			continue
		}
		adapter, ok := s.registry.Get(connection.ProviderType)
		if !ok {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.pull(ctx, adapter, &connection)
		}()
	}

	wg.Wait()
	close(results)

	snapshot := s.merge(tenantID, results)

	s.metrics.IncrementCounter("snapshot.built", nil)
	s.metrics.RecordProcessingTime("snapshot.build", s.now().Sub(started))

	s.logger.Info("snapshot built",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("transactions", len(snapshot.Transactions)),
		slog.Int("recurring_charges", len(snapshot.RecurringCharges)),
		slog.Int("failures", len(snapshot.Failures)))

	return snapshot, nil
}

// pull fetches every capability one adapter exposes, under a single
// per-provider timeout. The first unavailable capability marks the whole
// provider failed for this snapshot; NotConfigured is a silent zero
// contribution.
func (s *AggregatorService) pull(ctx context.Context, adapter providers.Adapter, connection *models.Connection) providerResult {
	providerType := adapter.Type()
	result := providerResult{provider: providerType, connectionID: connection.ID}

	breaker := s.breakers[providerType]
	if breaker != nil && breaker.IsOpen() {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"provider": string(providerType)})
		result.failure = &models.ProviderFailure{
			Provider: providerType,
			Reason:   "circuit breaker open",
		}
		return result
	}

	credentials, err := s.connectionService.UnsealCredentials(connection)
	if err != nil {
		result.failure = &models.ProviderFailure{
			Provider: providerType,
			Reason:   "credentials unavailable",
		}
		return result
	}

	conn := providers.Conn{Connection: connection, Credentials: credentials}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	started := s.now()
	fetchErr := s.fetchCapabilities(fetchCtx, adapter, conn, &result)
	duration := s.now().Sub(started)
	s.metrics.RecordProviderFetch(string(providerType), "all", duration, fetchErr)

	if fetchErr != nil {
		if breaker != nil {
			breaker.RecordFailure()
		}
		s.metrics.IncrementCounter("provider.unavailable", map[string]string{
			"provider": string(providerType),
			"reason":   "fetch_failed",
		})
		s.logger.Warn("provider pull failed",
			slog.String("provider", string(providerType)),
			slog.String("error", fetchErr.Error()))

		// The provider's partial data is discarded with the failure marker
		// so a half-pulled provider never skews the summary.
		result = providerResult{
			provider:     providerType,
			connectionID: connection.ID,
			failure: &models.ProviderFailure{
				Provider: providerType,
				Reason:   unavailableReason(fetchErr),
			},
		}
		return result
	}

	if breaker != nil {
		breaker.RecordSuccess()
	}

	// Advisory only; concurrent snapshots race last-writer-wins.
	if err := s.connectionService.MarkSynced(connection.ID, s.now()); err != nil {
		s.logger.Warn("failed to mark connection synced",
			slog.String("provider", string(providerType)),
			slog.String("error", err.Error()))
	}

	return result
}

// fetchCapabilities invokes every capability interface the adapter
// implements. NotConfigured and CapabilityUnsupported are zero
// contributions; anything else fails the provider.
func (s *AggregatorService) fetchCapabilities(ctx context.Context, adapter providers.Adapter, conn providers.Conn, result *providerResult) error {
	if fetcher, ok := adapter.(providers.TransactionFetcher); ok {
		transactions, err := fetcher.FetchTransactions(ctx, conn)
		if classified := classifyFetchError(err); classified != nil {
			return classified
		} else if err == nil {
			result.transactions = transactions
		}
	}

	if fetcher, ok := adapter.(providers.RecurringChargeFetcher); ok {
		charges, err := fetcher.FetchRecurringCharges(ctx, conn)
		if classified := classifyFetchError(err); classified != nil {
			return classified
		} else if err == nil {
			result.recurringCharges = charges
		}
	}

	if fetcher, ok := adapter.(providers.BalanceFetcher); ok {
		balance, err := fetcher.FetchBalance(ctx, conn)
		if classified := classifyFetchError(err); classified != nil {
			return classified
		} else if err == nil {
			result.balance = &balance
		}
	}

	if fetcher, ok := adapter.(providers.PayrollFetcher); ok {
		payroll, err := fetcher.FetchPayroll(ctx, conn)
		if classified := classifyFetchError(err); classified != nil {
			return classified
		} else if err == nil {
			result.payroll = payroll
		}
	}

	if fetcher, ok := adapter.(providers.ActivityFetcher); ok {
		activity, err := fetcher.FetchActivity(ctx, conn)
		if classified := classifyFetchError(err); classified != nil {
			return classified
		} else if err == nil {
			result.activity = activity
		}
	}

	return nil
}

// classifyFetchError maps adapter errors onto the aggregation policy:
// nil and the benign sentinels pass, everything else fails the provider.
func classifyFetchError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, providers.ErrNotConfigured) || errors.Is(err, providers.ErrCapabilityUnsupported) {
		return nil
	}
	return err
}

// unavailableReason renders a caller-visible failure reason without leaking
// upstream response bodies.
func unavailableReason(err error) string {
	if ue, ok := providers.AsUnavailable(err); ok {
		if errors.Is(ue.Cause, context.DeadlineExceeded) {
			return "timed out"
		}
		return "provider unavailable"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timed out"
	}
	return "provider unavailable"
}

// merge folds per-provider results into the canonical snapshot shape with
// deterministic ordering.
func (s *AggregatorService) merge(tenantID uuid.UUID, results <-chan providerResult) *models.Snapshot {
	snapshot := &models.Snapshot{
		TenantID:         tenantID.String(),
		Transactions:     []models.NormalizedTransaction{},
		RecurringCharges: []models.NormalizedRecurringCharge{},
		Balances:         make(map[models.ProviderType]decimal.Decimal),
		GeneratedAt:      s.now(),
	}

	for result := range results {
		if result.failure != nil {
			snapshot.Failures = append(snapshot.Failures, *result.failure)
			continue
		}
		snapshot.Transactions = append(snapshot.Transactions, result.transactions...)
		snapshot.RecurringCharges = append(snapshot.RecurringCharges, result.recurringCharges...)
		if result.balance != nil {
			snapshot.Balances[result.provider] = *result.balance
		}
		if result.payroll != nil && snapshot.Payroll == nil {
			snapshot.Payroll = result.payroll
		}
		if result.activity != nil && snapshot.DevActivity == nil {
			snapshot.DevActivity = result.activity
		}
	}

	sort.Slice(snapshot.Transactions, func(i, j int) bool {
		a, b := snapshot.Transactions[i], snapshot.Transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID < b.ID
	})

	sort.Slice(snapshot.RecurringCharges, func(i, j int) bool {
		a, b := snapshot.RecurringCharges[i], snapshot.RecurringCharges[j]
		if a.MerchantName != b.MerchantName {
			return a.MerchantName < b.MerchantName
		}
		return a.ID < b.ID
	})

	sort.Slice(snapshot.Failures, func(i, j int) bool {
		return snapshot.Failures[i].Provider < snapshot.Failures[j].Provider
	})

	snapshot.Summary = s.computeSummary(snapshot)
	return snapshot
}

// computeSummary derives the financial summary from the merged transaction
// set plus provider-reported balances. Everything here is recomputed per
// request; nothing is persisted.
func (s *AggregatorService) computeSummary(snapshot *models.Snapshot) models.FinancialSummary {
	windowStart := snapshot.GeneratedAt.AddDate(0, 0, -s.summaryWindowDays)
	previousStart := windowStart.AddDate(0, 0, -s.summaryWindowDays)

	cashOnHand := decimal.Zero
	for _, balance := range snapshot.Balances {
		cashOnHand = cashOnHand.Add(balance)
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	previousRevenue := decimal.Zero
	outstanding := decimal.Zero

	for _, tx := range snapshot.Transactions {
		if tx.Type == models.TransactionTypeIncome && tx.Status == models.TransactionStatusPending {
			outstanding = outstanding.Add(tx.Amount)
		}

		if !tx.Date.Before(windowStart) {
			if tx.Amount.IsPositive() {
				revenue = revenue.Add(tx.Amount)
			} else {
				expenses = expenses.Add(tx.Amount.Abs())
			}
		} else if !tx.Date.Before(previousStart) && tx.Amount.IsPositive() {
			previousRevenue = previousRevenue.Add(tx.Amount)
		}
	}

	cashflow := revenue.Sub(expenses)

	burnRate := decimal.Zero
	if cashflow.IsNegative() {
		burnRate = expenses
	}

	runway := models.UnboundedRunway()
	if burnRate.IsPositive() {
		runway = models.BoundedRunway(cashOnHand.DivRound(burnRate, 2))
	}

	growthRate := decimal.Zero
	if previousRevenue.IsPositive() {
		growthRate = revenue.Sub(previousRevenue).DivRound(previousRevenue, 4)
	}

	return models.FinancialSummary{
		CashOnHand:          cashOnHand,
		MonthlyRevenue:      revenue,
		MonthlyExpenses:     expenses,
		OutstandingInvoices: outstanding,
		Metrics: models.FinancialMetrics{
			Cashflow:   cashflow,
			Runway:     runway,
			BurnRate:   burnRate,
			GrowthRate: growthRate,
			// No customer-count signal flows through the connector yet, so
			// acquisition cost and lifetime value stay at zero.
			CustomerAcquisitionCost: decimal.Zero,
			LifetimeValue:           decimal.Zero,
		},
	}
}
