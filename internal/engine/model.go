// Package engine derives point-in-time financial status from append-only
// ledgers. Every function is pure: inputs are read-only snapshots, the
// reference day is an explicit asOf parameter, and identical inputs always
// produce identical outputs. Callers own validation of amounts (non-negative,
// well-formed decimals) before invoking the engine.
package engine

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType int8

const (
	TransactionIncome TransactionType = iota
	TransactionExpense
)

// SplitPortion is one category's share of a split transaction.
type SplitPortion struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// Transaction is a read-only snapshot of a ledger entry. For split
// transactions CategoryID is ignored and Splits carries the per-category
// amounts; callers guarantee the split amounts sum to Amount.
type Transaction struct {
	ID         uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal
	Type       TransactionType
	CategoryID uuid.UUID
	IsSplit    bool
	Splits     []SplitPortion
}

// PaymentRecord is a single payment toward an obligation or liability.
type PaymentRecord struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Status is the derived state of an obligation or liability.
type Status int8

const (
	// StatusUnknown means a required date was invalid and the engine refuses
	// to guess between paid and overdue.
	StatusUnknown Status = iota
	StatusPending
	StatusUpcoming
	StatusPartiallyPaid
	StatusPaid
	StatusOverdue
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusUpcoming:
		return "upcoming"
	case StatusPartiallyPaid:
		return "partially_paid"
	case StatusPaid:
		return "paid"
	case StatusOverdue:
		return "overdue"
	default:
		return "unknown"
	}
}

func sumPayments(payments []PaymentRecord) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}
