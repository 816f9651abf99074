package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// FinancialGoal is a read-only snapshot of a savings goal. Deadline is
// optional (zero time when unset).
type FinancialGoal struct {
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
}

// GoalStats is the derived progress of a financial goal.
type GoalStats struct {
	Remaining       decimal.Decimal
	PercentComplete decimal.Decimal
	// MonthlyNeeded is the contribution per remaining full month required to
	// reach the target by the deadline; zero without a future deadline.
	MonthlyNeeded decimal.Decimal
	Achieved      bool
}

// ComputeGoal derives goal progress as of a reference day.
func ComputeGoal(goal FinancialGoal, asOf time.Time) GoalStats {
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	stats := GoalStats{
		Remaining: remaining,
		Achieved:  goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount),
	}
	if remaining.IsNegative() {
		stats.Remaining = decimal.Zero
	}

	if goal.TargetAmount.IsPositive() {
		percent := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
		if percent.GreaterThan(hundred) {
			percent = hundred
		}
		stats.PercentComplete = percent
	}

	if !stats.Achieved && datemath.IsValid(goal.Deadline) {
		months := monthsUntil(datemath.StripTime(asOf), datemath.StripTime(goal.Deadline))
		if months > 0 {
			stats.MonthlyNeeded = stats.Remaining.Div(decimal.NewFromInt(int64(months)))
		}
	}

	return stats
}

// monthsUntil counts whole months from today to the deadline, at least one
// when the deadline is in the future.
func monthsUntil(today, deadline time.Time) int {
	if !deadline.After(today) {
		return 0
	}
	months := 0
	cursor := datemath.AdvanceMonths(today, 1)
	for !cursor.After(deadline) {
		months++
		cursor = datemath.AdvanceMonths(cursor, 1)
	}
	if months == 0 {
		months = 1
	}
	return months
}
