package providers

import (
	"sort"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// Recurring-charge detection for providers that expose only a transaction
// stream (banks and card programs). A merchant is considered recurring when
// it shows up in at least minOccurrences distinct months with a roughly
// stable charge amount.
const (
	minOccurrences    = 2
	amountTolerancePc = 15
	chargeIntervalDay = 30
)

// detectRecurringCharges scans normalized expense transactions and derives
// recurring charges. The newest charge per merchant wins; nextChargeDate is
// projected one interval past the last seen charge.
func detectRecurringCharges(txns []models.NormalizedTransaction) []models.NormalizedRecurringCharge {
	type merchantHistory struct {
		latest models.NormalizedTransaction
		months map[string]struct{}
	}

	histories := make(map[string]*merchantHistory)
	for _, txn := range txns {
		if txn.Type != models.TransactionTypeExpense || txn.Title == "" {
			continue
		}

		h, ok := histories[txn.Title]
		if !ok {
			h = &merchantHistory{latest: txn, months: make(map[string]struct{})}
			histories[txn.Title] = h
		}

		// Amounts drifting beyond tolerance break the recurring pattern.
		if !withinTolerance(h.latest.Amount.Abs(), txn.Amount.Abs()) {
			continue
		}

		h.months[txn.Date.Format("2006-01")] = struct{}{}
		if txn.Date.After(h.latest.Date) {
			h.latest = txn
		}
	}

	var charges []models.NormalizedRecurringCharge
	for merchant, h := range histories {
		if len(h.months) < minOccurrences {
			continue
		}
		charges = append(charges, models.NormalizedRecurringCharge{
			ID:             h.latest.ID,
			MerchantName:   merchant,
			Amount:         h.latest.Amount.Abs(),
			Date:           h.latest.Date,
			Category:       h.latest.Category,
			Recurring:      true,
			NextChargeDate: h.latest.Date.AddDate(0, 0, chargeIntervalDay),
			Source:         h.latest.Source,
		})
	}

	sort.Slice(charges, func(i, j int) bool {
		if charges[i].MerchantName != charges[j].MerchantName {
			return charges[i].MerchantName < charges[j].MerchantName
		}
		return charges[i].ID < charges[j].ID
	})

	return charges
}

func withinTolerance(a, b decimal.Decimal) bool {
	if a.IsZero() && b.IsZero() {
		return true
	}
	larger := decimal.Max(a, b)
	diff := a.Sub(b).Abs()
	limit := larger.Mul(decimal.NewFromInt(amountTolerancePc)).Div(decimal.NewFromInt(100))
	return diff.LessThanOrEqual(limit)
}
