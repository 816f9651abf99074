package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// LiabilityKind separates short-term debts (with a hard due date and optional
// installment schedule) from long-term linear-payoff debts.
type LiabilityKind int16

const (
	LiabilityShortTerm LiabilityKind = iota
	LiabilityLongTerm
)

// PaymentStructure is how a short-term liability is scheduled to be repaid.
type PaymentStructure int16

const (
	PaymentStructureSingle PaymentStructure = iota
	PaymentStructureInstallments
)

// Liability represents a debt record. Installment fields apply only to
// short-term installment-structured rows; MonthlyPayment only to long-term
// rows. CreatedAt anchors the installment schedule.
type Liability struct {
	ID                   uuid.UUID        `db:"id"`
	Kind                 LiabilityKind    `db:"kind"`
	Name                 string           `db:"name"`
	OriginalAmount       decimal.Decimal  `db:"original_amount"`
	MonthlyPayment       decimal.Decimal  `db:"monthly_payment"`
	DueDate              sql.NullTime     `db:"due_date"`
	Structure            PaymentStructure `db:"payment_structure"`
	NumberOfInstallments int              `db:"number_of_installments"`
	PaymentDayOfMonth    int              `db:"payment_day_of_month"`
	CreatedAt            time.Time        `db:"created_at"`
}

// LiabilityPayment represents one payment toward a liability.
type LiabilityPayment struct {
	ID          uuid.UUID       `db:"id"`
	LiabilityID uuid.UUID       `db:"liability_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaidOn      time.Time       `db:"paid_on"`
	CreatedAt   time.Time       `db:"created_at"`
}

// LiabilityCreate is the input for creating a new liability.
type LiabilityCreate struct {
	Kind                 LiabilityKind
	Name                 string
	OriginalAmount       decimal.Decimal
	MonthlyPayment       decimal.Decimal
	DueDate              time.Time // zero for long-term rows
	Structure            PaymentStructure
	NumberOfInstallments int
	PaymentDayOfMonth    int
}

// LiabilityFilter specifies filters for listing liabilities.
type LiabilityFilter struct {
	Kind *LiabilityKind
}

// ILiabilityTable defines the interface for liability storage operations.
//
//go:generate mockery --name ILiabilityTable --output mock_ILiabilityTable.go
type ILiabilityTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Liability, error)
	Insert(ctx context.Context, create *LiabilityCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *LiabilityFilter) ([]*Liability, error)
	InsertPayment(ctx context.Context, liabilityID uuid.UUID, amount decimal.Decimal, paidOn time.Time) (uuid.UUID, error)
	ListPayments(ctx context.Context, liabilityID uuid.UUID) ([]*LiabilityPayment, error)
}
