package providers

import (
	"context"
	"net/http"
	"time"

	"finhub/internal/models"

	"github.com/shopspring/decimal"
)

// GustoAdapter normalizes Gusto payroll data. Payroll runs become expense
// transactions, and the payroll capability summarizes headcount, monthly
// cost, and the next payday for the dashboard.
type GustoAdapter struct {
	httpFetcher
}

func NewGustoAdapter(baseURL string, client *http.Client) *GustoAdapter {
	return &GustoAdapter{httpFetcher{
		provider: models.ProviderGusto,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *GustoAdapter) Type() models.ProviderType {
	return models.ProviderGusto
}

type gustoPayroll struct {
	ID        string `json:"payroll_uuid"`
	CheckDate string `json:"check_date"`
	Processed bool   `json:"processed"`
	Totals    struct {
		GrossPay      decimal.Decimal `json:"gross_pay"`
		NetPay        decimal.Decimal `json:"net_pay"`
		EmployerTaxes decimal.Decimal `json:"employer_taxes"`
	} `json:"totals"`
	EmployeeCompensations []struct {
		EmployeeUUID string `json:"employee_uuid"`
	} `json:"employee_compensations"`
}

func (a *GustoAdapter) FetchTransactions(ctx context.Context, conn Conn) ([]models.NormalizedTransaction, error) {
	payrolls, err := a.fetchPayrolls(ctx, conn)
	if err != nil {
		return nil, err
	}

	var normalized []models.NormalizedTransaction
	for _, payroll := range payrolls {
		if !payroll.Processed {
			continue
		}
		// Total payroll cost: gross pay plus the employer side of taxes.
		cost := payroll.Totals.GrossPay.Add(payroll.Totals.EmployerTaxes)
		normalized = append(normalized, models.NormalizedTransaction{
			ID:            prefixID(a.provider, payroll.ID),
			Title:         "Payroll run",
			Description:   "Payroll for " + payroll.CheckDate,
			Amount:        cost.Abs().Neg(),
			Type:          models.TransactionTypeExpense,
			Date:          parseGustoDate(payroll.CheckDate),
			Category:      "payroll",
			Status:        models.TransactionStatusCompleted,
			PaymentMethod: "ach",
			Source:        a.provider,
		})
	}
	return normalized, nil
}

func (a *GustoAdapter) FetchPayroll(ctx context.Context, conn Conn) (*models.PayrollSnapshot, error) {
	payrolls, err := a.fetchPayrolls(ctx, conn)
	if err != nil {
		return nil, err
	}

	snapshot := &models.PayrollSnapshot{
		MonthlyPayroll: decimal.Zero,
		Source:         a.provider,
	}

	now := time.Now()
	windowStart := now.AddDate(0, -1, 0)

	for _, payroll := range payrolls {
		checkDate := parseGustoDate(payroll.CheckDate)

		if payroll.Processed {
			if count := len(payroll.EmployeeCompensations); count > snapshot.EmployeeCount {
				snapshot.EmployeeCount = count
			}
			if checkDate.After(windowStart) && !checkDate.After(now) {
				cost := payroll.Totals.GrossPay.Add(payroll.Totals.EmployerTaxes)
				snapshot.MonthlyPayroll = snapshot.MonthlyPayroll.Add(cost)
			}
			continue
		}

		// The earliest unprocessed run is the next payday.
		if checkDate.After(now) {
			if snapshot.NextPayday == nil || checkDate.Before(*snapshot.NextPayday) {
				next := checkDate
				snapshot.NextPayday = &next
			}
		}
	}

	return snapshot, nil
}

func (a *GustoAdapter) fetchPayrolls(ctx context.Context, conn Conn) ([]gustoPayroll, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var payrolls []gustoPayroll
	if err := a.getJSON(ctx, "/payrolls", conn.Credentials, &payrolls); err != nil {
		return nil, err
	}
	return payrolls, nil
}

func parseGustoDate(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
