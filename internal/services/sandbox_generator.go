package services

import (
	"fmt"
	"math/rand"
	"time"

	"finhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// sandboxGenerator produces realistic fake provider data for demo tenants.
// Nothing it emits ever reaches a real provider; ids carry a sandbox prefix
// so merged output remains distinguishable.
type sandboxGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
}

const (
	sandboxIncomeShare = 0.35
	sandboxPendingPc   = 10
)

var sandboxCategories = []string{
	"software", "payroll", "rent", "marketing", "travel",
	"office", "contractors", "insurance", "utilities",
}

var sandboxSubscriptions = []struct {
	Merchant string
	Amount   float64
}{
	{"Adobe Creative Cloud", 52.99},
	{"Slack", 8.75},
	{"Notion", 10.00},
	{"Zoom", 13.33},
	{"Dropbox", 19.99},
	{"GitHub", 21.00},
	{"Figma", 15.00},
	{"Linear", 8.00},
}

// NewSandboxGenerator creates a generator with the given seed. Equal seeds
// produce equal output, which is what the demo fixtures rely on.
func NewSandboxGenerator(seed uint64) SandboxGeneratorInterface {
	return &sandboxGenerator{
		faker: gofakeit.New(int64(seed)),
		rng:   rand.New(rand.NewSource(int64(seed))),
	}
}

// GenerateTransactions emits count transactions spread over the trailing
// days, signed per the canonical convention.
func (g *sandboxGenerator) GenerateTransactions(source models.ProviderType, days, count int) []models.NormalizedTransaction {
	now := time.Now().UTC()
	transactions := make([]models.NormalizedTransaction, 0, count)

	for i := 0; i < count; i++ {
		isIncome := g.rng.Float64() < sandboxIncomeShare
		amount := decimal.NewFromFloat(g.faker.Price(5, 2500)).Round(2)

		txType := models.TransactionTypeExpense
		title := "Payment to " + g.faker.Company()
		if isIncome {
			txType = models.TransactionTypeIncome
			title = "Payment from " + g.faker.Company()
		} else {
			amount = amount.Neg()
		}

		status := models.TransactionStatusCompleted
		if g.rng.Intn(100) < sandboxPendingPc {
			status = models.TransactionStatusPending
		}

		date := now.AddDate(0, 0, -g.rng.Intn(days)).Add(-time.Duration(g.rng.Intn(24)) * time.Hour)

		transactions = append(transactions, models.NormalizedTransaction{
			ID:            fmt.Sprintf("%s-sandbox-%06d", source.ShortCode(), i),
			Title:         title,
			Description:   g.faker.Sentence(6),
			Amount:        amount,
			Type:          txType,
			Date:          date,
			Category:      sandboxCategories[g.rng.Intn(len(sandboxCategories))],
			Status:        status,
			PaymentMethod: "ach",
			Source:        source,
		})
	}

	return transactions
}

// GenerateRecurringCharges emits count subscription-style charges drawn from
// a fixed merchant pool so the optimization advisor has rules to match.
func (g *sandboxGenerator) GenerateRecurringCharges(source models.ProviderType, count int) []models.NormalizedRecurringCharge {
	now := time.Now().UTC()
	if count > len(sandboxSubscriptions) {
		count = len(sandboxSubscriptions)
	}

	charges := make([]models.NormalizedRecurringCharge, 0, count)
	for i := 0; i < count; i++ {
		sub := sandboxSubscriptions[i]
		lastCharge := now.AddDate(0, 0, -g.rng.Intn(28))
		nextCharge := lastCharge.AddDate(0, 1, 0)

		charges = append(charges, models.NormalizedRecurringCharge{
			ID:             fmt.Sprintf("%s-sandbox-sub-%03d", source.ShortCode(), i),
			MerchantName:   sub.Merchant,
			Amount:         decimal.NewFromFloat(sub.Amount),
			Date:           lastCharge,
			Category:       "software",
			Recurring:      true,
			NextChargeDate: nextCharge,
			Source:         source,
		})
	}

	return charges
}
