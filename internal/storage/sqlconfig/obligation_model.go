package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ObligationKind distinguishes money owed to the user from money the user owes.
type ObligationKind int16

const (
	ObligationReceivable ObligationKind = iota
	ObligationPayable
)

// Obligation represents a receivable or payable record. Status is always
// derived from payments, never stored.
type Obligation struct {
	ID          uuid.UUID       `db:"id"`
	Kind        ObligationKind  `db:"kind"`
	Name        string          `db:"name"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	DueDate     time.Time       `db:"due_date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// ObligationPayment represents one payment toward an obligation.
type ObligationPayment struct {
	ID           uuid.UUID       `db:"id"`
	ObligationID uuid.UUID       `db:"obligation_id"`
	Amount       decimal.Decimal `db:"amount"`
	PaidOn       time.Time       `db:"paid_on"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ObligationCreate is the input for creating a new obligation.
type ObligationCreate struct {
	Kind        ObligationKind
	Name        string
	TotalAmount decimal.Decimal
	DueDate     time.Time
}

// ObligationFilter specifies filters for listing obligations.
type ObligationFilter struct {
	Kind *ObligationKind
}

// IObligationTable defines the interface for obligation storage operations.
//
//go:generate mockery --name IObligationTable --output mock_IObligationTable.go
type IObligationTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Obligation, error)
	Insert(ctx context.Context, create *ObligationCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *ObligationFilter) ([]*Obligation, error)
	InsertPayment(ctx context.Context, obligationID uuid.UUID, amount decimal.Decimal, paidOn time.Time) (uuid.UUID, error)
	ListPayments(ctx context.Context, obligationID uuid.UUID) ([]*ObligationPayment, error)
}
