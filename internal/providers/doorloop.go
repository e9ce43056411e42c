package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// DoorLoopAdapter normalizes DoorLoop property-management data. Lease
// payments arrive as unsigned magnitudes and are always rent income;
// outstanding balances surface as pending income.
type DoorLoopAdapter struct {
	httpFetcher
}

func NewDoorLoopAdapter(baseURL string, client *http.Client) *DoorLoopAdapter {
	return &DoorLoopAdapter{httpFetcher{
		provider: models.ProviderDoorLoop,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *DoorLoopAdapter) Type() models.ProviderType {
	return models.ProviderDoorLoop
}

type doorLoopPayment struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	TenantName    string          `json:"tenantName"`
	PropertyName  string          `json:"propertyName"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"` // RECEIVED, PENDING, RETURNED
	Date          time.Time       `json:"date"`
}

type doorLoopPaymentList struct {
	Data []doorLoopPayment `json:"data"`
}

func (a *DoorLoopAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var list doorLoopPaymentList
	if err := a.getJSON(ctx, "/lease-payments", conn.Credentials, &list); err != nil {
		return nil, err
	}

	normalized := make([]models.NormalizedTransaction, 0, len(list.Data))
	for _, payment := range list.Data {
		normalized = append(normalized, a.normalize(payment))
	}
	return normalized, nil
}

func (a *DoorLoopAdapter) normalize(payment doorLoopPayment) models.NormalizedTransaction {
	status := models.TransactionStatusCompleted
	switch payment.Status {
	case "PENDING":
		status = models.TransactionStatusPending
	case "RETURNED":
		status = models.TransactionStatusFailed
	}

	return models.NormalizedTransaction{
		ID:            prefixID(a.provider, payment.ID),
		Title:         "Rent - " + payment.PropertyName,
		Description:   payment.TenantName,
		Amount:        payment.Amount.Abs(),
		Type:          models.TransactionTypeIncome,
		Date:          payment.Date,
		Category:      "rent",
		Status:        status,
		PaymentMethod: payment.PaymentMethod,
		Source:        a.provider,
	}
}
