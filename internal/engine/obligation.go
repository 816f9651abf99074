package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// ObligationStats is the derived state of a receivable or payable.
type ObligationStats struct {
	PaidToDate decimal.Decimal
	Remaining  decimal.Decimal
	Status     Status
}

// ComputeObligation derives paid/remaining/status for a two-party obligation
// (receivable or payable) from its payment list.
//
// Status precedence, first match wins: PAID when paid >= total regardless of
// the due date; OVERDUE when the due date has passed with a balance owing;
// PARTIALLY_PAID when anything has been paid; otherwise PENDING. An invalid
// due date degrades the result to UNKNOWN instead of resolving the overdue
// comparison arbitrarily.
func ComputeObligation(total decimal.Decimal, dueDate time.Time, payments []PaymentRecord, asOf time.Time) ObligationStats {
	paid := sumPayments(payments)
	remaining := total.Sub(paid)
	today := datemath.StripTime(asOf)

	var status Status
	switch {
	case paid.GreaterThanOrEqual(total):
		status = StatusPaid
	case !datemath.IsValid(dueDate):
		status = StatusUnknown
	case datemath.StripTime(dueDate).Before(today) && remaining.IsPositive():
		status = StatusOverdue
	case paid.IsPositive():
		status = StatusPartiallyPaid
	default:
		status = StatusPending
	}

	return ObligationStats{
		PaidToDate: paid,
		Remaining:  remaining,
		Status:     status,
	}
}
