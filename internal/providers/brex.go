package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// BrexAdapter normalizes Brex corporate-card data. Brex reports card
// transactions as positive minor-unit magnitudes with a debit/credit marker,
// so the adapter flips debits to the canonical negative sign.
type BrexAdapter struct {
	httpFetcher
}

func NewBrexAdapter(baseURL string, client *http.Client) *BrexAdapter {
	return &BrexAdapter{httpFetcher{
		provider: models.ProviderBrex,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *BrexAdapter) Type() models.ProviderType {
	return models.ProviderBrex
}

type brexTransaction struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"amount"`
	MerchantName string    `json:"merchant_name"`
	Type         string    `json:"type"` // PURCHASE, REFUND, PAYMENT
	PostedAt     time.Time `json:"posted_at_date"`
}

type brexTransactionList struct {
	Items []brexTransaction `json:"items"`
}

type brexCashAccount struct {
	ID               string `json:"id"`
	AvailableBalance struct {
		Amount int64 `json:"amount"`
	} `json:"available_balance"`
	Status string `json:"status"`
}

type brexCashAccountList struct {
	Items []brexCashAccount `json:"items"`
}

func (a *BrexAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list brexTransactionList
	if err := a.getJSON(ctx, "/transactions/card/primary", conn.Credentials, &list); err != nil {
		return nil, err
	}

	normalized := make([]models.NormalizedTransaction, 0, len(list.Items))
	for _, txn := range list.Items {
		normalized = append(normalized, a.normalize(txn))
	}
	return normalized, nil
}

func (a *BrexAdapter) FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error) {
	txns, err := a.FetchTransactions(ctx, conn)
	if err != nil {
		return nil, err
	}
	return detectRecurringCharges(txns), nil
}

func (a *BrexAdapter) FetchBalance(ctx context.Context, conn Conn) (decimal.Decimal, error) {
	if err := a.requireReady(conn); err != nil {
		return decimal.Zero, err
	}

	var list brexCashAccountList
	if err := a.getJSON(ctx, "/accounts/cash", conn.Credentials, &list); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range list.Items {
		if account.Status != "" && account.Status != "ACTIVE" {
			continue
		}
		total = total.Add(fromMinorUnits(account.AvailableBalance.Amount))
	}
	return total, nil
}

func (a *BrexAdapter) normalize(txn brexTransaction) models.NormalizedTransaction {
	// Brex magnitudes are unsigned; PURCHASE is spend, REFUND/PAYMENT credit
	// the account.
	amount := fromMinorUnits(txn.Amount.Amount).Abs()
	txnType := models.TransactionTypeExpense
	if txn.Type == "REFUND" || txn.Type == "PAYMENT" {
		txnType = models.TransactionTypeIncome
	} else {
		amount = amount.Neg()
	}

	title := txn.MerchantName
	if title == "" {
		title = txn.Description
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, txn.ID),
		Title:         title,
		Description:   txn.Description,
		Amount:        amount,
		Type:          txnType,
		Date:          txn.PostedAt,
		Category:      "corporate-card",
		Status:        models.TransactionStatusCompleted,
		PaymentMethod: "card",
		Source:        a.provider,
	}
}
