package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// Budget represents a monthly category budget in the service layer.
type Budget struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	LimitAmount     decimal.Decimal
	StartDate       time.Time
	RolloverEnabled bool
}

// BudgetStatus is one budget month's derived consumption state.
type BudgetStatus struct {
	BudgetID        uuid.UUID
	CategoryID      uuid.UUID
	Month           time.Time
	LimitAmount     decimal.Decimal
	Spent           decimal.Decimal
	RolloverApplied decimal.Decimal
	EffectiveLimit  decimal.Decimal
	Progress        decimal.Decimal
	State           string
	// RolloverAmbiguous is set when more than one prior-month budget
	// qualified as the rollover source.
	RolloverAmbiguous bool
}

func engineBudget(row *sqlconfig.Budget) engine.Budget {
	return engine.Budget{
		ID:              row.ID,
		CategoryID:      row.CategoryID,
		LimitAmount:     row.LimitAmount,
		StartDate:       row.StartDate,
		RolloverEnabled: row.RolloverEnabled,
		CreatedAt:       row.CreatedAt,
	}
}

func engineTransaction(row *sqlconfig.Transaction) engine.Transaction {
	splits := make([]engine.SplitPortion, len(row.Splits))
	for i, split := range row.Splits {
		splits[i] = engine.SplitPortion{CategoryID: split.CategoryID, Amount: split.Amount}
	}
	transactionType := engine.TransactionIncome
	if row.Type == sqlconfig.TransactionTypeExpense {
		transactionType = engine.TransactionExpense
	}
	return engine.Transaction{
		ID:         row.ID,
		Date:       row.TransactionDate,
		Amount:     row.Amount,
		Type:       transactionType,
		CategoryID: row.CategoryID,
		IsSplit:    row.IsSplit,
		Splits:     splits,
	}
}
