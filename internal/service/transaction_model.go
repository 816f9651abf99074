package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from expense in the service layer.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Split is one category portion of a split transaction.
type Split struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// Transaction represents a transaction in the service layer. CategoryID is
// the zero UUID for split transactions.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Type            TransactionType
	TransactionName string
	TransactionDate time.Time
	IsSplit         bool
	Splits          []Split
	CreatedAt       time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
