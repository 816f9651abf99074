package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// PaymentStructure is how a short-term liability is scheduled to be repaid.
type PaymentStructure int8

const (
	StructureSingle PaymentStructure = iota
	StructureInstallments
)

// ShortTermLiability is a read-only snapshot of an amortized short-term debt.
// DueDate is the hard final deadline for the whole amount. For installment
// liabilities, NumberOfInstallments, PaymentDayOfMonth, and CreatedAt drive
// the per-installment schedule: installment k is due on PaymentDayOfMonth of
// CreatedAt's month advanced k months, day clamped to the month end.
type ShortTermLiability struct {
	OriginalAmount       decimal.Decimal
	DueDate              time.Time
	CreatedAt            time.Time
	Structure            PaymentStructure
	NumberOfInstallments int
	PaymentDayOfMonth    int
	Payments             []PaymentRecord
}

// InstallmentStats is the derived state of a short-term liability.
type InstallmentStats struct {
	Paid                     decimal.Decimal
	Remaining                decimal.Decimal
	Status                   Status
	MonthlyInstallmentAmount decimal.Decimal // zero unless installment-structured
	NextInstallmentDue       time.Time       // zero when fully paid or not installment-structured
	InstallmentsPaidCount    int
	InstallmentOverdue       bool
	EstimatedMonthsToPayoff  int
}

// installmentStep is one step of the payment-attribution fold.
type installmentStep struct {
	count     int
	remainder decimal.Decimal
}

// foldInstallments walks payments in ascending date order, accumulating a
// running remainder and counting each full installment it crosses. A single
// large payment can satisfy several installments; a partial payment satisfies
// none and carries forward. The count never exceeds max.
func foldInstallments(payments []PaymentRecord, installment decimal.Decimal, max int) installmentStep {
	// A zero-amount liability has nothing to attribute payments against.
	if !installment.IsPositive() {
		return installmentStep{count: max, remainder: decimal.Zero}
	}

	sorted := make([]PaymentRecord, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	step := installmentStep{remainder: decimal.Zero}
	for _, payment := range sorted {
		running := step.remainder.Add(payment.Amount)
		whole := running.Div(installment).IntPart()
		if whole > 0 {
			step = installmentStep{
				count:     step.count + int(whole),
				remainder: running.Sub(installment.Mul(decimal.NewFromInt(whole))),
			}
		} else {
			step = installmentStep{count: step.count, remainder: running}
		}
	}

	if step.count > max {
		step.count = max
	}
	return step
}

// ComputeInstallment derives the full state of a short-term liability.
//
// The base status comes from totals alone: PAID when paid >= original,
// PARTIALLY_PAID when anything has been paid, otherwise OVERDUE or UPCOMING
// depending on the final due date. Installment-structured liabilities then
// refine that with the schedule: the next installment due date starts at
// (CreatedAt's year/month, PaymentDayOfMonth) and advances one calendar month
// per installment already paid; a past-due next installment forces OVERDUE.
// Last, the final due date override applies: an unpaid balance past the final
// due date is OVERDUE no matter what the schedule said.
func ComputeInstallment(liability ShortTermLiability, asOf time.Time) InstallmentStats {
	today := datemath.StripTime(asOf)
	paid := sumPayments(liability.Payments)
	remaining := liability.OriginalAmount.Sub(paid)

	stats := InstallmentStats{
		Paid:      paid,
		Remaining: remaining,
	}

	var status Status
	switch {
	case paid.GreaterThanOrEqual(liability.OriginalAmount):
		status = StatusPaid
	case paid.IsPositive():
		status = StatusPartiallyPaid
	case !datemath.IsValid(liability.DueDate):
		status = StatusUnknown
	case datemath.StripTime(liability.DueDate).Before(today):
		status = StatusOverdue
	default:
		status = StatusUpcoming
	}

	if installmentScheduleKnown(liability) {
		installment := liability.OriginalAmount.Div(decimal.NewFromInt(int64(liability.NumberOfInstallments)))
		stats.MonthlyInstallmentAmount = installment

		step := foldInstallments(liability.Payments, installment, liability.NumberOfInstallments)
		stats.InstallmentsPaidCount = step.count

		if status != StatusPaid && step.count < liability.NumberOfInstallments {
			first := datemath.ClampedDate(liability.CreatedAt.Year(), liability.CreatedAt.Month(), liability.PaymentDayOfMonth)
			next := datemath.AdvanceMonths(first, step.count)
			stats.NextInstallmentDue = next
			stats.EstimatedMonthsToPayoff = liability.NumberOfInstallments - step.count

			if next.Before(today) {
				stats.InstallmentOverdue = true
				status = StatusOverdue
			} else if status != StatusOverdue && status != StatusPartiallyPaid {
				status = StatusUpcoming
			}
		}
	}

	// The final due date is authoritative: a balance owing past it is
	// overdue regardless of the installment schedule.
	if status != StatusPaid &&
		datemath.IsValid(liability.DueDate) &&
		datemath.StripTime(liability.DueDate).Before(today) &&
		remaining.IsPositive() {
		status = StatusOverdue
	}

	stats.Status = status
	return stats
}

func installmentScheduleKnown(liability ShortTermLiability) bool {
	return liability.Structure == StructureInstallments &&
		liability.NumberOfInstallments > 0 &&
		liability.PaymentDayOfMonth > 0 &&
		datemath.IsValid(liability.CreatedAt)
}
