// Package billing holds the pure derived-total calculators: quote and
// invoice totals, employee earnings and balances. No I/O happens here; the
// same functions are used by services and by read-path enrichment.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/tbensalah/gestion_chantier_app/internal/core/domain"
)

// LineTotal returns quantity × unit price.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// InvoiceTotal sums quantity × unit price over the invoice lines.
func InvoiceTotal(lines []domain.InvoiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line.Quantity, line.UnitPrice))
	}
	return total
}

// MaterialStepTotal sums quantity × price over the step descriptions.
// A missing quantity or price counts as zero.
func MaterialStepTotal(descriptions []domain.MaterialDescription) decimal.Decimal {
	total := decimal.Zero
	for _, desc := range descriptions {
		if desc.Quantity == nil || desc.Price == nil {
			continue
		}
		total = total.Add(desc.Quantity.Mul(*desc.Price))
	}
	return total
}

// FillArticleTotals returns a copy of the articles with each line total set
// to quantity × unit price.
func FillArticleTotals(articles []domain.Article) []domain.Article {
	filled := make([]domain.Article, len(articles))
	for i, a := range articles {
		a.Total = LineTotal(a.Quantity, a.UnitPrice)
		filled[i] = a
	}
	return filled
}

// QuoteTotals computes the frozen totals snapshot for a quote: the subtotal
// over the articles, the tax amount at the given percentage rate, and the
// grand total.
func QuoteTotals(articles []domain.Article, taxRate decimal.Decimal) (subtotal, taxAmount, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, a := range articles {
		subtotal = subtotal.Add(LineTotal(a.Quantity, a.UnitPrice))
	}
	taxAmount = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	total = subtotal.Add(taxAmount)
	return subtotal, taxAmount, total
}

// MeterWorkTotal returns the persisted record total, falling back to
// meters × price per meter when no total was stored.
func MeterWorkTotal(r domain.MeterWorkRecord) decimal.Decimal {
	if !r.Total.IsZero() {
		return r.Total
	}
	return r.Meters.Mul(r.PricePerMeter)
}

// EarnedToDate computes what an employee has earned so far. Daily employees
// earn their daily rate per day marked present; meter employees earn the sum
// of their meter work totals. Records of the other kind are ignored.
func EarnedToDate(employee domain.Employee, attendance []domain.AttendanceRecord, meterWork []domain.MeterWorkRecord) decimal.Decimal {
	switch employee.Type {
	case domain.EmployeeTypeDaily:
		if employee.DailyRate == nil {
			return decimal.Zero
		}
		presentDays := int64(0)
		for _, record := range attendance {
			if record.Present {
				presentDays++
			}
		}
		return employee.DailyRate.Mul(decimal.NewFromInt(presentDays))
	case domain.EmployeeTypeMeter:
		earned := decimal.Zero
		for _, record := range meterWork {
			earned = earned.Add(MeterWorkTotal(record))
		}
		return earned
	default:
		return decimal.Zero
	}
}

// PaymentsTotal sums the payment amounts.
func PaymentsTotal(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// BalanceDue is earned-to-date minus payments-to-date. The result may be
// negative when the employee has been overpaid; callers must not clamp it.
func BalanceDue(earned decimal.Decimal, payments []domain.Payment) decimal.Decimal {
	return earned.Sub(PaymentsTotal(payments))
}
