package engine

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func expense(categoryID uuid.UUID, amount string, date time.Time) Transaction {
	return Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Date:       date,
		Amount:     d(amount),
		Type:       TransactionExpense,
		CategoryID: categoryID,
	}
}

func monthBudget(categoryID uuid.UUID, limit string, year int, month time.Month, rollover bool) Budget {
	return Budget{
		ID:              uuid.Must(uuid.NewV4()),
		CategoryID:      categoryID,
		LimitAmount:     d(limit),
		StartDate:       day(year, month, 1),
		RolloverEnabled: rollover,
		CreatedAt:       day(year, month, 1),
	}
}

func TestCategorySpend_MonthScoped(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	transactions := []Transaction{
		expense(categoryID, "100", day(2024, time.February, 10)),
		expense(categoryID, "50", day(2024, time.February, 29)),
		expense(categoryID, "999", day(2024, time.January, 31)),
		expense(otherID, "40", day(2024, time.February, 10)),
		{ // income never counts as spend
			ID:         uuid.Must(uuid.NewV4()),
			Date:       day(2024, time.February, 12),
			Amount:     d("75"),
			Type:       TransactionIncome,
			CategoryID: categoryID,
		},
	}

	spent := CategorySpend(transactions, categoryID, day(2024, time.February, 1))
	assert.True(t, spent.Equal(d("150")))
}

func TestCategorySpend_SplitTransactions(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	transactions := []Transaction{
		{
			ID:      uuid.Must(uuid.NewV4()),
			Date:    day(2024, time.February, 5),
			Amount:  d("90"),
			Type:    TransactionExpense,
			IsSplit: true,
			Splits: []SplitPortion{
				{CategoryID: categoryID, Amount: d("30")},
				{CategoryID: otherID, Amount: d("60")},
			},
		},
	}

	spent := CategorySpend(transactions, categoryID, day(2024, time.February, 1))
	assert.True(t, spent.Equal(d("30")), "only the matching split portion counts")
}

func TestComputeBudget_SurplusRollsForward(t *testing.T) {
	// Jan limit 1000 spent 700; Feb limit 1000 with rollover → effective 1300.
	categoryID := uuid.Must(uuid.NewV4())
	jan := monthBudget(categoryID, "1000", 2024, time.January, true)
	feb := monthBudget(categoryID, "1000", 2024, time.February, true)
	budgets := []Budget{jan, feb}

	transactions := []Transaction{expense(categoryID, "700", day(2024, time.January, 15))}

	stats := ComputeBudget(feb, budgets, transactions)

	assert.True(t, stats.RolloverApplied.Equal(d("300")))
	assert.True(t, stats.EffectiveLimit.Equal(d("1300")))
	assert.False(t, stats.RolloverAmbiguous)
}

func TestComputeBudget_DeficitRollsForward(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	jan := monthBudget(categoryID, "1000", 2024, time.January, true)
	feb := monthBudget(categoryID, "1000", 2024, time.February, true)
	budgets := []Budget{jan, feb}

	transactions := []Transaction{expense(categoryID, "1250", day(2024, time.January, 15))}

	stats := ComputeBudget(feb, budgets, transactions)

	assert.True(t, stats.RolloverApplied.Equal(d("-250")))
	assert.True(t, stats.EffectiveLimit.Equal(d("750")))
}

func TestComputeBudget_EffectiveLimitFlooredAtZero(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	jan := monthBudget(categoryID, "100", 2024, time.January, true)
	feb := monthBudget(categoryID, "200", 2024, time.February, true)
	budgets := []Budget{jan, feb}

	transactions := []Transaction{
		expense(categoryID, "900", day(2024, time.January, 15)),
		expense(categoryID, "10", day(2024, time.February, 3)),
	}

	stats := ComputeBudget(feb, budgets, transactions)

	assert.True(t, stats.EffectiveLimit.IsZero(), "deficit can reduce to zero but never below")
	assert.True(t, stats.Progress.Equal(d("100")), "any spend against a zero limit reads as 100%")
	assert.Equal(t, BudgetOverspent, stats.State)
}

func TestComputeBudget_NonRolloverPredecessorDoesNotCarry(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	jan := monthBudget(categoryID, "1000", 2024, time.January, false)
	feb := monthBudget(categoryID, "1000", 2024, time.February, true)
	budgets := []Budget{jan, feb}

	transactions := []Transaction{expense(categoryID, "100", day(2024, time.January, 15))}

	stats := ComputeBudget(feb, budgets, transactions)

	assert.True(t, stats.RolloverApplied.IsZero(), "predecessor without rollover cannot be inherited from")
	assert.True(t, stats.EffectiveLimit.Equal(d("1000")))
}

func TestComputeBudget_NoPredecessor_NoRollover(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	feb := monthBudget(categoryID, "1000", 2024, time.February, true)

	stats := ComputeBudget(feb, []Budget{feb}, nil)

	assert.True(t, stats.RolloverApplied.IsZero())
	assert.True(t, stats.EffectiveLimit.Equal(d("1000")))
	assert.Equal(t, BudgetNotStarted, stats.State)
}

func TestComputeBudget_ThreeMonthChain(t *testing.T) {
	// A(Jan): limit 1000, spent 700 → carry +300
	// B(Feb): limit 1000 + 300 = 1300, spent 1200 → carry +100
	// C(Mar): limit 1000 + 100 = 1100; the single-hop lookup must surface
	// B's own rollover-adjusted remainder, not B's raw limit remainder.
	categoryID := uuid.Must(uuid.NewV4())
	a := monthBudget(categoryID, "1000", 2024, time.January, true)
	b := monthBudget(categoryID, "1000", 2024, time.February, true)
	c := monthBudget(categoryID, "1000", 2024, time.March, true)
	budgets := []Budget{a, b, c}

	transactions := []Transaction{
		expense(categoryID, "700", day(2024, time.January, 10)),
		expense(categoryID, "1200", day(2024, time.February, 10)),
	}

	stats := ComputeBudget(c, budgets, transactions)

	assert.True(t, stats.RolloverApplied.Equal(d("100")), "B's carry reflects B's own rolled limit")
	assert.True(t, stats.EffectiveLimit.Equal(d("1100")))

	chain := ComputeBudgetChain(budgets, transactions)
	assert.Len(t, chain, 3)
	assert.True(t, chain[0].EffectiveLimit.Equal(d("1000")))
	assert.True(t, chain[1].EffectiveLimit.Equal(d("1300")))
	assert.True(t, chain[2].EffectiveLimit.Equal(d("1100")))
}

func TestComputeBudget_ChainBrokenInMiddle(t *testing.T) {
	// B has rollover disabled: C gets nothing, even though A rolled.
	categoryID := uuid.Must(uuid.NewV4())
	a := monthBudget(categoryID, "1000", 2024, time.January, true)
	b := monthBudget(categoryID, "1000", 2024, time.February, false)
	c := monthBudget(categoryID, "1000", 2024, time.March, true)
	budgets := []Budget{a, b, c}

	transactions := []Transaction{expense(categoryID, "100", day(2024, time.January, 10))}

	stats := ComputeBudget(c, budgets, transactions)

	assert.True(t, stats.RolloverApplied.IsZero())
	assert.True(t, stats.EffectiveLimit.Equal(d("1000")))
}

func TestComputeBudget_DuplicatePredecessors_NoCarryAndFlagged(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	older := monthBudget(categoryID, "500", 2024, time.January, true)
	older.CreatedAt = day(2024, time.January, 1)
	newer := monthBudget(categoryID, "800", 2024, time.January, true)
	newer.CreatedAt = day(2024, time.January, 20)
	feb := monthBudget(categoryID, "1000", 2024, time.February, true)
	budgets := []Budget{older, newer, feb}

	stats := ComputeBudget(feb, budgets, nil)

	assert.True(t, stats.RolloverAmbiguous)
	assert.True(t, stats.RolloverApplied.IsZero(), "ambiguous predecessors carry nothing")
	assert.True(t, stats.EffectiveLimit.Equal(d("1000")), "limit stays unadjusted")
}

func TestComputeBudget_StateThresholds(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	budget := monthBudget(categoryID, "100", 2024, time.March, false)

	cases := []struct {
		name  string
		spent string
		want  BudgetState
	}{
		{"untouched", "0", BudgetNotStarted},
		{"low", "10", BudgetOnTrack},
		{"at ninety percent", "90", BudgetNearingLimit},
		{"at limit", "100", BudgetNearingLimit},
		{"over limit", "100.01", BudgetOverspent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var transactions []Transaction
			if tc.spent != "0" {
				transactions = []Transaction{expense(categoryID, tc.spent, day(2024, time.March, 5))}
			}
			stats := ComputeBudget(budget, []Budget{budget}, transactions)
			assert.Equal(t, tc.want, stats.State)
		})
	}
}
