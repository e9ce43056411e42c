package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// QuickBooksAdapter normalizes QuickBooks accounting data. Purchases carry
// unsigned totals with an implicit debit meaning, so they flip to negative;
// sales receipts are income and keep the positive sign.
type QuickBooksAdapter struct {
	httpFetcher
}

func NewQuickBooksAdapter(baseURL string, client *http.Client) *QuickBooksAdapter {
	return &QuickBooksAdapter{httpFetcher{
		provider: models.ProviderQuickBooks,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *QuickBooksAdapter) Type() models.ProviderType {
	return models.ProviderQuickBooks
}

type quickBooksPurchase struct {
	ID          string          `json:"Id"`
	TotalAmt    decimal.Decimal `json:"TotalAmt"`
	TxnDate     string          `json:"TxnDate"`
	PaymentType string          `json:"PaymentType"`
	EntityRef   struct {
		Name string `json:"name"`
	} `json:"EntityRef"`
	PrivateNote string `json:"PrivateNote"`
}

type quickBooksSalesReceipt struct {
	ID           string          `json:"Id"`
	TotalAmt     decimal.Decimal `json:"TotalAmt"`
	TxnDate      string          `json:"TxnDate"`
	CustomerRef  struct {
		Name string `json:"name"`
	} `json:"CustomerRef"`
	PrivateNote string `json:"PrivateNote"`
}

type quickBooksQueryResponse struct {
	QueryResponse struct {
		Purchase     []quickBooksPurchase     `json:"Purchase"`
		SalesReceipt []quickBooksSalesReceipt `json:"SalesReceipt"`
	} `json:"QueryResponse"`
}

func (a *QuickBooksAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var purchases quickBooksQueryResponse
	if err := a.getJSON(ctx, "/query?query=select+*+from+Purchase", conn.Credentials, &purchases); err != nil {
		return nil, err
	}

	var receipts quickBooksQueryResponse
	if err := a.getJSON(ctx, "/query?query=select+*+from+SalesReceipt", conn.Credentials, &receipts); err != nil {
		return nil, err
	}

	var normalized []models.NormalizedTransaction
	for _, purchase := range purchases.QueryResponse.Purchase {
		normalized = append(normalized, models.NormalizedTransaction{
			ID:            prefixID(a.provider, "purchase-"+purchase.ID),
			Title:         purchase.EntityRef.Name,
			Description:   purchase.PrivateNote,
			Amount:        purchase.TotalAmt.Abs().Neg(),
			Type:          models.TransactionTypeExpense,
			Date:          parseQuickBooksDate(purchase.TxnDate),
			Category:      "accounting",
			Status:        models.TransactionStatusCompleted,
			PaymentMethod: purchase.PaymentType,
			Source:        a.provider,
		})
	}
	for _, receipt := range receipts.QueryResponse.SalesReceipt {
		normalized = append(normalized, models.NormalizedTransaction{
			ID:            prefixID(a.provider, "sale-"+receipt.ID),
			Title:         "Sale - " + receipt.CustomerRef.Name,
			Description:   receipt.PrivateNote,
			Amount:        receipt.TotalAmt.Abs(),
			Type:          models.TransactionTypeIncome,
			Date:          parseQuickBooksDate(receipt.TxnDate),
			Category:      "accounting",
			Status:        models.TransactionStatusCompleted,
			PaymentMethod: "sales_receipt",
			Source:        a.provider,
		})
	}

	return normalized, nil
}

func (a *QuickBooksAdapter) FetchRecurringCharges(ctx context.Context, conn Conn) ([]models.NormalizedRecurringCharge, error) {
	txns, err := a.FetchTransactions(ctx, conn)
	if err != nil {
		return nil, err
	}
	return detectRecurringCharges(txns), nil
}

func parseQuickBooksDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
