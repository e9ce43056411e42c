package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripeConn() Conn {
	return Conn{
		Connection: &models.Connection{
			ProviderType: models.ProviderStripe,
			Connected:    true,
		},
		Credentials: Credentials{"token": "sk_test_123"},
	}
}

func stripeTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance_transactions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"txn_1","amount":4999,"description":"Invoice payment","type":"charge","status":"available","created":1755000000},
			{"id":"txn_2","amount":-250,"description":"","type":"stripe_fee","status":"pending","created":1755086400}
		]}`))
	})
	mux.HandleFunc("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"sub_1","status":"active","current_period_end":1758000000,
				"items":{"data":[{"plan":{"amount":2999,"interval":"month","product":"prod_team","nickname":"Team plan"}}]}},
			{"id":"sub_2","status":"canceled","current_period_end":1758000000,
				"items":{"data":[{"plan":{"amount":999,"interval":"month","product":"prod_solo","nickname":""}}]}},
			{"id":"sub_3","status":"active","current_period_end":1758000000,
				"items":{"data":[{"plan":{"amount":1500,"interval":"month","product":"prod_basic","nickname":""}}]}}
		]}`))
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"available":[
			{"amount":125000,"currency":"usd"},
			{"amount":3050,"currency":"eur"}
		]}`))
	})
	return httptest.NewServer(mux)
}

func TestStripeAdapter_FetchTransactionsConvertsMinorUnits(t *testing.T) {
	server := stripeTestServer()
	defer server.Close()

	adapter := NewStripeAdapter(server.URL, server.Client())
	transactions, err := adapter.FetchTransactions(context.Background(), stripeConn())

	require.NoError(t, err)
	require.Len(t, transactions, 2)

	charge := transactions[0]
	assert.Equal(t, "stripe-txn_1", charge.ID)
	assert.True(t, charge.Amount.Equal(decimal.NewFromFloat(49.99)), "got %s", charge.Amount)
	assert.Equal(t, models.TransactionTypeIncome, charge.Type)
	assert.Equal(t, models.TransactionStatusCompleted, charge.Status)
	assert.Equal(t, time.Unix(1755000000, 0).UTC(), charge.Date)

	fee := transactions[1]
	assert.True(t, fee.Amount.Equal(decimal.NewFromFloat(-2.50)), "got %s", fee.Amount)
	assert.Equal(t, models.TransactionTypeExpense, fee.Type)
	assert.Equal(t, models.TransactionStatusPending, fee.Status)
	assert.Equal(t, "stripe_fee", fee.Title, "title falls back to type when description is blank")
}

func TestStripeAdapter_FetchRecurringChargesFiltersInactive(t *testing.T) {
	server := stripeTestServer()
	defer server.Close()

	adapter := NewStripeAdapter(server.URL, server.Client())
	charges, err := adapter.FetchRecurringCharges(context.Background(), stripeConn())

	require.NoError(t, err)
	require.Len(t, charges, 2, "canceled subscriptions are dropped")

	team := charges[0]
	assert.Equal(t, "Team plan", team.MerchantName)
	assert.True(t, team.Amount.Equal(decimal.NewFromFloat(29.99)))
	assert.True(t, team.Recurring)
	assert.Equal(t, "sub_1", team.SubscriptionID)
	assert.Equal(t, time.Unix(1758000000, 0).UTC(), team.NextChargeDate)

	basic := charges[1]
	assert.Equal(t, "prod_basic", basic.MerchantName, "merchant falls back to product when nickname is blank")
}

func TestStripeAdapter_FetchBalanceSumsAvailable(t *testing.T) {
	server := stripeTestServer()
	defer server.Close()

	adapter := NewStripeAdapter(server.URL, server.Client())
	balance, err := adapter.FetchBalance(context.Background(), stripeConn())

	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromFloat(1280.50)), "got %s", balance)
}

func TestStripeAdapter_NotConfigured(t *testing.T) {
	adapter := NewStripeAdapter("http://unused", http.DefaultClient)

	_, err := adapter.FetchTransactions(context.Background(), Conn{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = adapter.FetchRecurringCharges(context.Background(), Conn{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = adapter.FetchBalance(context.Background(), Conn{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestStripeAdapter_RateLimitedIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"rate_limit_error"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	adapter := NewStripeAdapter(server.URL, server.Client())
	_, err := adapter.FetchTransactions(context.Background(), stripeConn())

	unavailable, ok := AsUnavailable(err)
	require.True(t, ok)
	assert.Equal(t, models.ProviderStripe, unavailable.Provider)
	assert.Contains(t, unavailable.Error(), "429")
}
