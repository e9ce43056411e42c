package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// MercuryAdapter normalizes Mercury business-banking accounts. Mercury
// reports signed amounts (credits positive, debits negative), so the sign
// carries over and only the type enum is derived. When a connection carries a
// selected-accounts list, balance and transaction pulls are scoped to it.
type MercuryAdapter struct {
	httpFetcher
}

func NewMercuryAdapter(baseURL string, client *http.Client) *MercuryAdapter {
	return &MercuryAdapter{httpFetcher{
		provider: models.ProviderMercuryBank,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *MercuryAdapter) Type() models.ProviderType {
	return models.ProviderMercuryBank
}

type mercuryAccount struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
}

type mercuryAccountList struct {
	Accounts []mercuryAccount `json:"accounts"`
}

type mercuryTransaction struct {
	ID               string          `json:"id"`
	CounterpartyName string          `json:"counterpartyName"`
	Amount           decimal.Decimal `json:"amount"`
	Kind             string          `json:"kind"`
	Note             string          `json:"note"`
	Status           string          `json:"status"`
	PostedAt         time.Time       `json:"postedAt"`
}

type mercuryTransactionList struct {
	Transactions []mercuryTransaction `json:"transactions"`
}

func (a *MercuryAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	accountIDs, err := a.resolveAccountIDs(ctx, conn)
	if err != nil {
		return nil, err
	}

	var normalized []models.NormalizedTransaction
	for _, accountID := range accountIDs {
		var list mercuryTransactionList
		if err := a.getJSON(ctx, "/account/"+accountID+"/transactions", conn.Credentials, &list); err != nil {
			return nil, err
		}
		for _, txn := range list.Transactions {
			normalized = append(normalized, a.normalize(txn))
		}
	}

	return normalized, nil
}

func (a *MercuryAdapter) FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error) {
	txns, err := a.FetchTransactions(ctx, conn)
	if err != nil {
		return nil, err
	}
	return detectRecurringCharges(txns), nil
}

func (a *MercuryAdapter) FetchBalance(ctx context.Context, conn Conn) (decimal.Decimal, error) {
	if err := a.requireReady(conn); err != nil {
		return decimal.Zero, err
	}

	var list mercuryAccountList
	if err := a.getJSON(ctx, "/accounts", conn.Credentials, &list); err != nil {
		return decimal.Zero, err
	}

	selected := toSet(conn.SelectedAccountIDs())

	total := decimal.Zero
	for _, account := range list.Accounts {
		if len(selected) > 0 {
			if _, ok := selected[account.ID]; !ok {
				continue
			}
		}
		total = total.Add(account.CurrentBalance)
	}

	return total, nil
}

// resolveAccountIDs returns the selected sub-accounts, or every account when
// no selection has been made.
func (a *MercuryAdapter) resolveAccountIDs(ctx context.Context, conn Conn) ([]string, error) {
	if ids := conn.SelectedAccountIDs(); len(ids) > 0 {
		return ids, nil
	}

	var list mercuryAccountList
	if err := a.getJSON(ctx, "/accounts", conn.Credentials, &list); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(list.Accounts))
	for _, account := range list.Accounts {
		ids = append(ids, account.ID)
	}
	return ids, nil
}

func (a *MercuryAdapter) normalize(txn mercuryTransaction) models.NormalizedTransaction {
	txnType := models.TransactionTypeIncome
	if txn.Amount.IsNegative() {
		txnType = models.TransactionTypeExpense
	}

	status := models.TransactionStatusCompleted
	switch txn.Status {
	case "pending":
		status = models.TransactionStatusPending
	case "failed", "cancelled":
		status = models.TransactionStatusFailed
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, txn.ID),
		Title:         txn.CounterpartyName,
		Description:   txn.Note,
		Amount:        txn.Amount,
		Type:          txnType,
		Date:          txn.PostedAt,
		Category:      "banking",
		Status:        status,
		PaymentMethod: txn.Kind,
		Source:        a.provider,
	}
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
