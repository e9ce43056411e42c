package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// StripeAdapter normalizes Stripe payments data. Stripe reports amounts in
// minor units (cents) with signed values on balance transactions; recurring
// charges come straight from the subscriptions API rather than detection.
type StripeAdapter struct {
	httpFetcher
}

func NewStripeAdapter(baseURL string, client *http.Client) *StripeAdapter {
	return &StripeAdapter{httpFetcher{
		provider: models.ProviderStripe,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *StripeAdapter) Type() models.ProviderType {
	return models.ProviderStripe
}

type stripeBalanceTransaction struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Created     int64  `json:"created"`
}

type stripeList[T any] struct {
	Data []T `json:"data"`
}

type stripeSubscriptionItem struct {
	Plan struct {
		Amount   int64  `json:"amount"`
		Interval string `json:"interval"`
		Product  string `json:"product"`
		Nickname string `json:"nickname"`
	} `json:"plan"`
}

type stripeSubscription struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
	Items            struct {
		Data []stripeSubscriptionItem `json:"data"`
	} `json:"items"`
}

type stripeBalance struct {
	Available []struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"available"`
}

func (a *StripeAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list stripeList[stripeBalanceTransaction]
	if err := a.getJSON(ctx, "/balance_transactions", conn.Credentials, &list); err != nil {
		return nil, err
	}

	normalized := make([]models.NormalizedTransaction, 0, len(list.Data))
	for _, txn := range list.Data {
		normalized = append(normalized, a.normalize(txn))
	}
	return normalized, nil
}

func (a *StripeAdapter) FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list stripeList[stripeSubscription]
	if err := a.getJSON(ctx, "/subscriptions", conn.Credentials, &list); err != nil {
		return nil, err
	}

	now := time.Now()
	charges := make([]models.NormalizedRecurringCharge, 0, len(list.Data))
	for _, sub := range list.Data {
		if sub.Status != "active" || len(sub.Items.Data) == 0 {
			continue
		}
		plan := sub.Items.Data[0].Plan
		name := plan.Nickname
		if name == "" {
			name = plan.Product
		}
		charges = append(charges, models.NormalizedRecurringCharge{
			ID:             prefixID(a.provider, sub.ID),
			MerchantName:   name,
			Amount:         fromMinorUnits(plan.Amount).Abs(),
			Date:           now,
			Category:       "subscriptions",
			Recurring:      true,
			NextChargeDate: time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
			SubscriptionID: sub.ID,
			Source:         a.provider,
		})
	}
	return charges, nil
}

func (a *StripeAdapter) FetchBalance(ctx context.Context, conn Conn) (decimal.Decimal, error) {
	if err := a.requireReady(conn); err != nil {
		return decimal.Zero, err
	}

	var balance stripeBalance
	if err := a.getJSON(ctx, "/balance", conn.Credentials, &balance); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, available := range balance.Available {
		total = total.Add(fromMinorUnits(available.Amount))
	}
	return total, nil
}

func (a *StripeAdapter) normalize(txn stripeBalanceTransaction) models.NormalizedTransaction {
	amount := fromMinorUnits(txn.Amount)

	txnType := models.TransactionTypeIncome
	if amount.IsNegative() {
		txnType = models.TransactionTypeExpense
	}

	status := models.TransactionStatusCompleted
	if txn.Status == "pending" {
		status = models.TransactionStatusPending
	}

	title := txn.Description
	if title == "" {
		title = txn.Type
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, txn.ID),
		Title:         title,
		Description:   txn.Description,
		Amount:        amount,
		Type:          txnType,
		Date:          time.Unix(txn.Created, 0).UTC(),
		Category:      "payments",
		Status:        status,
		PaymentMethod: "stripe",
		Source:        a.provider,
	}
}

// fromMinorUnits converts cent-denominated amounts to major units.
func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100))
}
