package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// FinancialGoal represents a savings goal record.
type FinancialGoal struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"goal_name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	SavedAmount  decimal.Decimal `db:"saved_amount"`
	TargetDate   time.Time       `db:"target_date"`
	CreatedAt    time.Time       `db:"created_at"`
}

// FinancialGoalCreate is the input for creating a new goal.
type FinancialGoalCreate struct {
	Name         string
	TargetAmount decimal.Decimal
	SavedAmount  decimal.Decimal
	TargetDate   time.Time
}

// IGoalTable defines the interface for goal storage operations.
//
//go:generate mockery --name IGoalTable --output mock_IGoalTable.go
type IGoalTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FinancialGoal, error)
	Insert(ctx context.Context, create *FinancialGoalCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*FinancialGoal, error)
	UpdateSavedAmount(ctx context.Context, id uuid.UUID, saved decimal.Decimal) error
}
