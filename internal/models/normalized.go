package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// NormalizedTransaction is the canonical transaction shape every provider
// adapter projects its native records into. Ids carry the provider short-code
// prefix so merged lists stay globally unique. The external provider remains
// the system of record; these values are regenerated on every pull.
type NormalizedTransaction struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category,omitempty"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Source        ProviderType    `json:"source"`
}

// IsIncome reports whether the transaction is income. The sign convention is
// canonical: positive amounts are income, negative amounts are expenses, and
// the type enum must agree with the sign.
func (t NormalizedTransaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// NormalizedRecurringCharge is a detected repeating payment to a merchant.
type NormalizedRecurringCharge struct {
	ID             string          `json:"id"`
	MerchantName   string          `json:"merchantName"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Category       string          `json:"category,omitempty"`
	Recurring      bool            `json:"recurring"`
	NextChargeDate time.Time       `json:"nextChargeDate"`
	SubscriptionID string          `json:"subscriptionId,omitempty"`
	Source         ProviderType    `json:"source"`
}

// PayrollSnapshot summarizes payroll state from a payroll-capable provider.
type PayrollSnapshot struct {
	NextPayday     *time.Time      `json:"nextPayday,omitempty"`
	MonthlyPayroll decimal.Decimal `json:"monthlyPayroll"`
	EmployeeCount  int             `json:"employeeCount"`
	Source         ProviderType    `json:"source"`
}

// DevActivity summarizes repository activity from a development provider.
// It is a read-only capability distinct from the financial ones.
type DevActivity struct {
	Repositories int          `json:"repositories"`
	Commits      int          `json:"commits"`
	OpenPRs      int          `json:"openPullRequests"`
	OpenIssues   int          `json:"openIssues"`
	Source       ProviderType `json:"source"`
}

// ProviderFailure records one provider's unavailability during an aggregation
// pull. It is carried alongside partial results, never as a hard error.
type ProviderFailure struct {
	Provider ProviderType `json:"provider"`
	Reason   string       `json:"reason"`
}
