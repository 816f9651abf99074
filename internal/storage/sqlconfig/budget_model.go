package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly category budget record. StartDate is the first
// day of the budget's month.
type Budget struct {
	ID              uuid.UUID       `db:"id"`
	CategoryID      uuid.UUID       `db:"category_id"`
	LimitAmount     decimal.Decimal `db:"limit_amount"`
	StartDate       time.Time       `db:"start_date"`
	RolloverEnabled bool            `db:"rollover_enabled"`
	CreatedAt       time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	CategoryID      uuid.UUID
	LimitAmount     decimal.Decimal
	StartDate       time.Time
	RolloverEnabled bool
}

// BudgetFilter specifies filters for listing budgets.
type BudgetFilter struct {
	CategoryID *uuid.UUID
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error)
}
