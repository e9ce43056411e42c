// Package providers contains the normalization boundary between external
// financial/service providers and the canonical shapes the aggregator merges.
// Each adapter translates one provider's native schema, sign convention, and
// field names into NormalizedTransaction / NormalizedRecurringCharge /
// balance values; dispatch is by provider-type tag through the Registry.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotConfigured is returned when a connection lacks required
	// credentials or is not connected. Adapters fail fast with this before
	// any network call; the aggregator treats it as a zero contribution.
	ErrNotConfigured = errors.New("connection is not configured")

	// ErrCapabilityUnsupported is returned when a provider does not expose
	// the requested capability.
	ErrCapabilityUnsupported = errors.New("provider does not support this capability")
)

// UnavailableError marks a transient provider/network failure. It is isolated
// to the failing provider: aggregation continues with the other adapters and
// the failure rides along as a partial-failure marker.
type UnavailableError struct {
	Provider models.ProviderType
	Cause    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Unavailable wraps cause into an UnavailableError for the given provider.
func Unavailable(provider models.ProviderType, cause error) error {
	return &UnavailableError{Provider: provider, Cause: cause}
}

// AsUnavailable extracts an UnavailableError from err, if present.
func AsUnavailable(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Credentials is the unsealed provider credential blob. Keys are
// provider-specific; adapters read only the keys they understand.
type Credentials map[string]string

// Token returns the bearer token / API key most providers authenticate with.
func (c Credentials) Token() string {
	return c["token"]
}

// Conn bundles a connection row with its unsealed credentials for one adapter
// call. The credential vault unseals just before dispatch; nothing else in
// the system sees plaintext credentials.
type Conn struct {
	*models.Connection
	Credentials Credentials
}

// Ready reports whether the connection may be used for a provider call.
func (c Conn) Ready() bool {
	return c.Connection != nil && c.Connected && len(c.Credentials) > 0 && c.Credentials.Token() != ""
}

// Adapter is the minimal surface every provider adapter implements. The
// financial and activity capabilities are optional per provider and are
// discovered with type assertions against the interfaces below.
type Adapter interface {
	Type() models.ProviderType
}

// TransactionFetcher pulls provider-native transactions normalized into the
// canonical signed-amount shape.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error)
}

// RecurringChargeFetcher pulls detected repeating charges.
type RecurringChargeFetcher interface {
	FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error)
}

// BalanceFetcher pulls the current cash balance the provider reports.
type BalanceFetcher interface {
	FetchBalance(ctx context.Context, conn Conn) (decimal.Decimal, error)
}

// PayrollFetcher pulls a payroll snapshot from payroll-capable providers.
type PayrollFetcher interface {
	FetchPayroll(ctx context.Context, conn Conn) (*models.PayrollSnapshot, error)
}

// ActivityFetcher pulls development activity. This is a read-only capability
// distinct from the financial set; GitHub implements only this one.
type ActivityFetcher interface {
	FetchActivity(ctx context.Context, conn Conn) (*models.DevActivity, error)
}

// HasFinancialCapability reports whether the adapter exposes at least one of
// the financial capabilities the aggregator fans out to.
func HasFinancialCapability(a Adapter) bool {
	if _, ok := a.(TransactionFetcher); ok {
		return true
	}
	if _, ok := a.(RecurringChargeFetcher); ok {
		return true
	}
	if _, ok := a.(BalanceFetcher); ok {
		return true
	}
	return false
}

// httpFetcher is the shared outbound-call plumbing embedded by every adapter.
// Adapters perform read-only GETs and never write back to the provider.
type httpFetcher struct {
	provider models.ProviderType
	baseURL  string
	client   *http.Client
}

// getJSON performs an authenticated GET and decodes the JSON body into out.
// Network, timeout, and non-2xx failures all surface as UnavailableError for
// this provider so one outage never aborts the whole aggregation.
func (f *httpFetcher) getJSON(ctx context.Context, path string, creds Credentials, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return Unavailable(f.provider, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.Token())

	resp, err := f.client.Do(req)
	if err != nil {
		return Unavailable(f.provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Unavailable(f.provider, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return Unavailable(f.provider, fmt.Errorf("malformed response: %w", err))
	}

	return nil
}

// requireReady fails fast with ErrNotConfigured before any network call.
func (f *httpFetcher) requireReady(conn Conn) error {
	if !conn.Ready() {
		return ErrNotConfigured
	}
	return nil
}

// prefixID applies the provider short-code prefix that keeps ids globally
// unique across merged provider lists.
func prefixID(provider models.ProviderType, localID string) string {
	return provider.ShortCode() + "-" + localID
}
