package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// XeroAdapter normalizes Xero accounting data. Bank transactions carry a
// SPEND/RECEIVE direction with unsigned totals; repeating invoices of type
// ACCPAY map directly to recurring charges.
type XeroAdapter struct {
	httpFetcher
}

func NewXeroAdapter(baseURL string, client *http.Client) *XeroAdapter {
	return &XeroAdapter{httpFetcher{
		provider: models.ProviderXero,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *XeroAdapter) Type() models.ProviderType {
	return models.ProviderXero
}

type xeroBankTransaction struct {
	BankTransactionID string          `json:"BankTransactionID"`
	Type              string          `json:"Type"` // SPEND or RECEIVE
	Total             decimal.Decimal `json:"Total"`
	Status            string          `json:"Status"` // AUTHORISED, DELETED
	Reference         string          `json:"Reference"`
	Date              time.Time       `json:"DateUTC"`
	Contact           struct {
		Name string `json:"Name"`
	} `json:"Contact"`
}

type xeroBankTransactionList struct {
	BankTransactions []xeroBankTransaction `json:"BankTransactions"`
}

type xeroRepeatingInvoice struct {
	RepeatingInvoiceID string          `json:"RepeatingInvoiceID"`
	Type               string          `json:"Type"` // ACCPAY (bill) or ACCREC
	Total              decimal.Decimal `json:"Total"`
	Status             string          `json:"Status"`
	Contact            struct {
		Name string `json:"Name"`
	} `json:"Contact"`
	Schedule struct {
		NextScheduledDate time.Time `json:"NextScheduledDateUTC"`
	} `json:"Schedule"`
}

type xeroRepeatingInvoiceList struct {
	RepeatingInvoices []xeroRepeatingInvoice `json:"RepeatingInvoices"`
}

func (a *XeroAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list xeroBankTransactionList
	if err := a.getJSON(ctx, "/BankTransactions", conn.Credentials, &list); err != nil {
		return nil, err
	}

	normalized := make([]models.NormalizedTransaction, 0, len(list.BankTransactions))
	for _, txn := range list.BankTransactions {
		if txn.Status == "DELETED" {
			continue
		}
		normalized = append(normalized, a.normalize(txn))
	}
	return normalized, nil
}

func (a *XeroAdapter) FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list xeroRepeatingInvoiceList
	if err := a.getJSON(ctx, "/RepeatingInvoices", conn.Credentials, &list); err != nil {
		return nil, err
	}

	var charges []models.NormalizedRecurringCharge
	for _, invoice := range list.RepeatingInvoices {
		// Only bills (money out) are optimization candidates.
		if invoice.Type != "ACCPAY" || invoice.Status != "AUTHORISED" {
			continue
		}
		charges = append(charges, models.NormalizedRecurringCharge{
			ID:             prefixID(a.provider, invoice.RepeatingInvoiceID),
			MerchantName:   invoice.Contact.Name,
			Amount:         invoice.Total.Abs(),
			Date:           invoice.Schedule.NextScheduledDate.AddDate(0, -1, 0),
			Category:       "bills",
			Recurring:      true,
			NextChargeDate: invoice.Schedule.NextScheduledDate,
			Source:         a.provider,
		})
	}
	return charges, nil
}

func (a *XeroAdapter) normalize(txn xeroBankTransaction) models.NormalizedTransaction {
	amount := txn.Total.Abs()
	txnType := models.TransactionTypeIncome
	if txn.Type == "SPEND" {
		amount = amount.Neg()
		txnType = models.TransactionTypeExpense
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, txn.BankTransactionID),
		Title:         txn.Contact.Name,
		Description:   txn.Reference,
		Amount:        amount,
		Type:          txnType,
		Date:          txn.Date,
		Category:      "accounting",
		Status:        models.TransactionStatusCompleted,
		PaymentMethod: "bank",
		Source:        a.provider,
	}
}
