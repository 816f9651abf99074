package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// CreateBudget creates a new monthly budget and returns its ID. The start
// date is normalized to the first day of its month.
func (s *BudgetService) CreateBudget(ctx context.Context, budget Budget) (uuid.UUID, error) {
	return s.storage.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		CategoryID:      budget.CategoryID,
		LimitAmount:     budget.LimitAmount,
		StartDate:       datemath.MonthStart(budget.StartDate),
		RolloverEnabled: budget.RolloverEnabled,
	})
}

// BudgetStatuses derives the consumption state of every budget. Each month's
// figure already reflects any rollover carried from its predecessor.
func (s *BudgetService) BudgetStatuses(ctx context.Context) ([]BudgetStatus, error) {
	rows, err := s.storage.Budgets.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	earliest := rows[0].StartDate
	for _, row := range rows {
		if row.StartDate.Before(earliest) {
			earliest = row.StartDate
		}
	}

	transactions, err := s.monthTransactions(ctx, earliest)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uuid.UUID][]engine.Budget)
	for _, row := range rows {
		byCategory[row.CategoryID] = append(byCategory[row.CategoryID], engineBudget(row))
	}

	statuses := make([]BudgetStatus, 0, len(rows))
	for _, budgets := range byCategory {
		ordered := make([]engine.Budget, len(budgets))
		copy(ordered, budgets)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].StartDate.Before(ordered[j].StartDate)
		})

		stats := engine.ComputeBudgetChain(ordered, transactions)
		for i, budget := range ordered {
			statuses = append(statuses, BudgetStatus{
				BudgetID:          budget.ID,
				CategoryID:        budget.CategoryID,
				Month:             budget.StartDate,
				LimitAmount:       budget.LimitAmount,
				Spent:             stats[i].Spent,
				RolloverApplied:   stats[i].RolloverApplied,
				EffectiveLimit:    stats[i].EffectiveLimit,
				Progress:          stats[i].Progress,
				State:             stats[i].State.String(),
				RolloverAmbiguous: stats[i].RolloverAmbiguous,
			})
		}
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if !statuses[i].Month.Equal(statuses[j].Month) {
			return statuses[i].Month.Before(statuses[j].Month)
		}
		return statuses[i].BudgetID.String() < statuses[j].BudgetID.String()
	})
	return statuses, nil
}

func (s *BudgetService) monthTransactions(ctx context.Context, from time.Time) ([]engine.Transaction, error) {
	dateFrom := datemath.MonthStart(from)
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		DateFrom: &dateFrom,
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]engine.Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = engineTransaction(row)
	}
	return transactions, nil
}
