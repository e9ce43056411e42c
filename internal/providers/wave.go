package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// WaveAdapter normalizes Wave accounting data. Wave's useful signal for the
// dashboard is invoices: paid invoices become completed income, while sent
// and overdue invoices become pending income that the aggregator counts as
// outstanding.
type WaveAdapter struct {
	httpFetcher
}

func NewWaveAdapter(baseURL string, client *http.Client) *WaveAdapter {
	return &WaveAdapter{httpFetcher{
		provider: models.ProviderWaveApps,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *WaveAdapter) Type() models.ProviderType {
	return models.ProviderWaveApps
}

type waveInvoice struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	Memo         string          `json:"memo"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
}

type waveInvoiceList struct {
	Invoices []waveInvoice `json:"invoices"`
}

func (a *WaveAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list waveInvoiceList
	if err := a.getJSON(ctx, "/invoices", conn.Credentials, &list); err != nil {
		return nil, err
	}

	normalized := make([]models.NormalizedTransaction, 0, len(list.Invoices))
	for _, invoice := range list.Invoices {
		if invoice.Status == "DRAFT" || invoice.Status == "VOIDED" {
			continue
		}
		normalized = append(normalized, a.normalize(invoice))
	}
	return normalized, nil
}

func (a *WaveAdapter) normalize(invoice waveInvoice) models.NormalizedTransaction {
	// Invoice totals are unsigned magnitudes; invoicing is always income.
	status := models.TransactionStatusPending
	date := invoice.InvoiceDate
	if invoice.Status == "PAID" {
		status = models.TransactionStatusCompleted
		if invoice.PaidAt != nil {
			date = *invoice.PaidAt
		}
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, invoice.ID),
		Title:         "Invoice - " + invoice.CustomerName,
		Description:   invoice.Memo,
		Amount:        invoice.Total.Abs(),
		Type:          models.TransactionTypeIncome,
		Date:          date,
		Category:      "invoicing",
		Status:        status,
		PaymentMethod: "invoice",
		Source:        a.provider,
	}
}
