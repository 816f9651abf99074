package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// GoalProgress is a savings goal with its derived progress.
type GoalProgress struct {
	ID              uuid.UUID
	Name            string
	TargetAmount    decimal.Decimal
	SavedAmount     decimal.Decimal
	TargetDate      time.Time
	Remaining       decimal.Decimal
	PercentComplete decimal.Decimal
	MonthlyNeeded   decimal.Decimal
	Achieved        bool
}

// GoalCreate is the input for creating a savings goal.
type GoalCreate struct {
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	TargetDate   time.Time
}

// GoalService handles savings goal business logic.
type GoalService struct {
	storage *storage.Storage
}

// NewGoalService creates a new GoalService.
func NewGoalService(store *storage.Storage) *GoalService {
	return &GoalService{storage: store}
}

// CreateGoal creates a new goal and returns its ID.
func (s *GoalService) CreateGoal(ctx context.Context, create GoalCreate) (uuid.UUID, error) {
	return s.storage.Goals.Insert(ctx, &sqlconfig.FinancialGoalCreate{
		Name:         create.Name,
		TargetAmount: create.TargetAmount,
		SavedAmount:  create.SavedAmount,
		TargetDate:   create.TargetDate,
	})
}

// UpdateSavedAmount replaces a goal's saved-so-far amount.
func (s *GoalService) UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error {
	return s.storage.Goals.UpdateSavedAmount(ctx, id, saved)
}

// ListGoals returns every goal with progress derived as of the given day.
func (s *GoalService) ListGoals(ctx context.Context, asOf time.Time) ([]GoalProgress, error) {
	rows, err := s.storage.Goals.List(ctx)
	if err != nil {
		return nil, err
	}

	goals := make([]GoalProgress, len(rows))
	for i, row := range rows {
		stats := engine.ComputeGoal(engine.FinancialGoal{
			TargetAmount:  row.TargetAmount,
			CurrentAmount: row.SavedAmount,
			Deadline:      row.TargetDate,
		}, asOf)
		goals[i] = GoalProgress{
			ID:              row.ID,
			Name:            row.Name,
			TargetAmount:    row.TargetAmount,
			SavedAmount:     row.SavedAmount,
			TargetDate:      row.TargetDate,
			Remaining:       stats.Remaining,
			PercentComplete: stats.PercentComplete,
			MonthlyNeeded:   stats.MonthlyNeeded,
			Achieved:        stats.Achieved,
		}
	}
	return goals, nil
}
