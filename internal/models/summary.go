package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Runway is the typed "months of cash remaining" value. A zero burn rate
// yields an unbounded runway; the flag keeps NaN/Inf artifacts out of the
// contract.
type Runway struct {
	Months    decimal.Decimal
	Unbounded bool
}

// UnboundedRunway returns the sentinel runway for a zero burn rate.
func UnboundedRunway() Runway {
	return Runway{Unbounded: true}
}

// BoundedRunway returns a runway of the given number of months.
func BoundedRunway(months decimal.Decimal) Runway {
	return Runway{Months: months}
}

type runwayJSON struct {
	Months    *decimal.Decimal `json:"months,omitempty"`
	Unbounded bool             `json:"unbounded"`
}

func (r Runway) MarshalJSON() ([]byte, error) {
	if r.Unbounded {
		return json.Marshal(runwayJSON{Unbounded: true})
	}
	months := r.Months
	return json.Marshal(runwayJSON{Months: &months})
}

func (r *Runway) UnmarshalJSON(data []byte) error {
	var raw runwayJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Unbounded = raw.Unbounded
	if raw.Months != nil {
		r.Months = *raw.Months
	} else {
		r.Months = decimal.Zero
	}
	return nil
}

// FinancialMetrics is the derived metrics sub-object of the summary.
type FinancialMetrics struct {
	Cashflow                decimal.Decimal `json:"cashflow"`
	Runway                  Runway          `json:"runway"`
	BurnRate                decimal.Decimal `json:"burnRate"`
	GrowthRate              decimal.Decimal `json:"growthRate"`
	CustomerAcquisitionCost decimal.Decimal `json:"customerAcquisitionCost"`
	LifetimeValue           decimal.Decimal `json:"lifetimeValue"`
}

// FinancialSummary is recomputed per request from the merged transaction set
// plus provider-reported balances. Nothing here is persisted.
type FinancialSummary struct {
	CashOnHand          decimal.Decimal  `json:"cashOnHand"`
	MonthlyRevenue      decimal.Decimal  `json:"monthlyRevenue"`
	MonthlyExpenses     decimal.Decimal  `json:"monthlyExpenses"`
	OutstandingInvoices decimal.Decimal  `json:"outstandingInvoices"`
	Metrics             FinancialMetrics `json:"metrics"`
}

// Snapshot is the ephemeral, request-scoped merged result of all adapter
// pulls for one tenant.
type Snapshot struct {
	TenantID         string                           `json:"tenantId"`
	Summary          FinancialSummary                 `json:"summary"`
	Transactions     []NormalizedTransaction          `json:"transactions"`
	RecurringCharges []NormalizedRecurringCharge      `json:"recurringCharges"`
	Payroll          *PayrollSnapshot                 `json:"payroll,omitempty"`
	DevActivity      *DevActivity                     `json:"devActivity,omitempty"`
	Balances         map[ProviderType]decimal.Decimal `json:"-"`
	Failures         []ProviderFailure                `json:"providerFailures,omitempty"`
	GeneratedAt      time.Time                        `json:"generatedAt"`
}
