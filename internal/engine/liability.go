package engine

import (
	"github.com/shopspring/decimal"
)

// LongTermLiability is a read-only snapshot of a long-horizon debt repaid by
// a fixed monthly payment (mortgage, car loan). The payoff model is linear;
// interest is assumed baked into OriginalAmount.
type LongTermLiability struct {
	OriginalAmount decimal.Decimal
	MonthlyPayment decimal.Decimal
	Payments       []PaymentRecord
}

// LongTermStats is the derived payoff progress of a long-term liability.
type LongTermStats struct {
	Paid           decimal.Decimal
	Remaining      decimal.Decimal
	MonthsToPayoff int // 0 when paid off or no monthly payment configured
	PercentPaidOff decimal.Decimal
	Status         Status
}

// ComputeLongTermLiability derives payoff progress under the linear model:
// months to payoff is the remaining balance divided by the monthly payment,
// rounded up.
func ComputeLongTermLiability(liability LongTermLiability) LongTermStats {
	paid := sumPayments(liability.Payments)
	remaining := liability.OriginalAmount.Sub(paid)

	stats := LongTermStats{
		Paid:      paid,
		Remaining: remaining,
	}

	switch {
	case paid.GreaterThanOrEqual(liability.OriginalAmount):
		stats.Status = StatusPaid
	case paid.IsPositive():
		stats.Status = StatusPartiallyPaid
	default:
		stats.Status = StatusPending
	}

	if liability.OriginalAmount.IsPositive() {
		percent := paid.Div(liability.OriginalAmount).Mul(hundred)
		if percent.GreaterThan(hundred) {
			percent = hundred
		}
		stats.PercentPaidOff = percent
	}

	if stats.Status != StatusPaid && liability.MonthlyPayment.IsPositive() {
		months := remaining.Div(liability.MonthlyPayment).Ceil()
		stats.MonthsToPayoff = int(months.IntPart())
	}

	return stats
}
