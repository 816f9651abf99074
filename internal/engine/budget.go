package engine

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// Budget is a read-only snapshot of a monthly category budget. StartDate is
// the first day of the budget's month; one budget per category per month is
// the expected shape.
type Budget struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	LimitAmount     decimal.Decimal
	StartDate       time.Time
	RolloverEnabled bool
	CreatedAt       time.Time
}

// BudgetState summarizes consumption against the effective limit.
type BudgetState int8

const (
	BudgetNotStarted BudgetState = iota
	BudgetOnTrack
	BudgetNearingLimit
	BudgetOverspent
)

func (s BudgetState) String() string {
	switch s {
	case BudgetOnTrack:
		return "On Track"
	case BudgetNearingLimit:
		return "Nearing Limit"
	case BudgetOverspent:
		return "Overspent"
	default:
		return "Not Started"
	}
}

// BudgetStats is the derived consumption state of one budget month.
type BudgetStats struct {
	Spent           decimal.Decimal
	RolloverApplied decimal.Decimal // signed: surplus positive, deficit negative
	EffectiveLimit  decimal.Decimal
	Progress        decimal.Decimal // percent, capped at 100
	State           BudgetState
	// RolloverAmbiguous flags that more than one qualifying prior-month
	// budget existed, in which case no carry was applied.
	RolloverAmbiguous bool
}

var hundred = decimal.NewFromInt(100)
var ninety = decimal.NewFromInt(90)

// CategorySpend sums the expense amounts attributed to categoryID during the
// calendar month containing month. Split transactions contribute only their
// matching portions.
func CategorySpend(transactions []Transaction, categoryID uuid.UUID, month time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != TransactionExpense || !datemath.SameMonth(tx.Date, month) {
			continue
		}
		if tx.IsSplit {
			for _, portion := range tx.Splits {
				if portion.CategoryID == categoryID {
					spent = spent.Add(portion.Amount)
				}
			}
			continue
		}
		if tx.CategoryID == categoryID {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// ComputeBudget derives a budget's consumption state, applying rollover from
// the immediately preceding month when enabled.
//
// The rollover lookup is single-hop: only the budget for the same category in
// the month directly before qualifies, and only when that budget itself has
// rollover enabled. The prior month's own figure is recomputed recursively on
// every call, so a chain of rollover months resolves month by month with no
// cached running balance. The carry is signed; a deficit reduces the
// effective limit but the floor is zero. When several budgets claim the same
// prior category/month the lookup is ambiguous: no carry is applied and the
// result is flagged so callers can surface the condition.
func ComputeBudget(target Budget, allForCategory []Budget, transactions []Transaction) BudgetStats {
	spent := CategorySpend(transactions, target.CategoryID, target.StartDate)

	stats := BudgetStats{
		Spent:          spent,
		EffectiveLimit: target.LimitAmount,
	}

	if target.RolloverEnabled {
		prior, ambiguous := findPriorBudget(target, allForCategory)
		stats.RolloverAmbiguous = ambiguous
		if prior != nil && !ambiguous {
			priorStats := ComputeBudget(*prior, allForCategory, transactions)
			carry := priorStats.EffectiveLimit.Sub(priorStats.Spent)
			stats.RolloverApplied = carry

			effective := target.LimitAmount.Add(carry)
			if effective.IsNegative() {
				effective = decimal.Zero
			}
			stats.EffectiveLimit = effective
		}
	}

	stats.Progress = budgetProgress(spent, stats.EffectiveLimit)
	stats.State = budgetState(spent, stats.EffectiveLimit, stats.Progress)
	return stats
}

// ComputeBudgetChain computes stats for every budget of one category, oldest
// month first, so callers rendering a chain see each month's figure already
// reflecting its predecessor's freshly computed remainder.
func ComputeBudgetChain(budgets []Budget, transactions []Transaction) []BudgetStats {
	ordered := make([]Budget, len(budgets))
	copy(ordered, budgets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartDate.Before(ordered[j].StartDate)
	})

	results := make([]BudgetStats, len(ordered))
	for i, budget := range ordered {
		results[i] = ComputeBudget(budget, budgets, transactions)
	}
	return results
}

// findPriorBudget locates the qualifying rollover predecessor: same category,
// start date in the calendar month directly before target's, and rollover
// enabled on the predecessor itself. More than one qualifying candidate is
// ambiguous and callers must not apply a carry from either.
func findPriorBudget(target Budget, allForCategory []Budget) (*Budget, bool) {
	priorMonth := datemath.AdvanceMonths(datemath.MonthStart(target.StartDate), -1)

	var found *Budget
	for i := range allForCategory {
		candidate := &allForCategory[i]
		if candidate.ID == target.ID || candidate.CategoryID != target.CategoryID {
			continue
		}
		if !candidate.RolloverEnabled || !datemath.SameMonth(candidate.StartDate, priorMonth) {
			continue
		}
		if found != nil {
			return found, true
		}
		found = candidate
	}
	return found, false
}

func budgetProgress(spent, effectiveLimit decimal.Decimal) decimal.Decimal {
	if effectiveLimit.IsPositive() {
		progress := spent.Div(effectiveLimit).Mul(hundred)
		if progress.GreaterThan(hundred) {
			return hundred
		}
		return progress
	}
	// A limit fully consumed by a rolled-over deficit reads as 100% the
	// moment anything is spent.
	if spent.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

func budgetState(spent, effectiveLimit, progress decimal.Decimal) BudgetState {
	switch {
	case spent.GreaterThan(effectiveLimit):
		return BudgetOverspent
	case progress.GreaterThanOrEqual(ninety):
		return BudgetNearingLimit
	case progress.IsPositive() || spent.IsPositive():
		return BudgetOnTrack
	default:
		return BudgetNotStarted
	}
}
