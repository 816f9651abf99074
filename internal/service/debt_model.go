package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ObligationKind labels an obligation in the service layer.
type ObligationKind string

const (
	ObligationKindReceivable ObligationKind = "receivable"
	ObligationKindPayable    ObligationKind = "payable"
)

// ObligationDebt is an obligation with its derived payment state.
type ObligationDebt struct {
	ID          uuid.UUID
	Kind        ObligationKind
	Name        string
	TotalAmount decimal.Decimal
	DueDate     time.Time
	PaidToDate  decimal.Decimal
	Remaining   decimal.Decimal
	Status      string
}

// ShortTermDebt is a short-term liability with its derived installment state.
type ShortTermDebt struct {
	ID                       uuid.UUID
	Name                     string
	OriginalAmount           decimal.Decimal
	DueDate                  time.Time
	Paid                     decimal.Decimal
	Remaining                decimal.Decimal
	Status                   string
	MonthlyInstallmentAmount decimal.Decimal
	NextInstallmentDue       time.Time
	InstallmentsPaidCount    int
	InstallmentOverdue       bool
	EstimatedMonthsToPayoff  int
}

// LongTermDebt is a long-term liability with its derived payoff state.
type LongTermDebt struct {
	ID             uuid.UUID
	Name           string
	OriginalAmount decimal.Decimal
	MonthlyPayment decimal.Decimal
	Paid           decimal.Decimal
	Remaining      decimal.Decimal
	MonthsToPayoff int
	PercentPaidOff decimal.Decimal
	Status         string
}

// DebtOverview groups every debt by shape, each with freshly derived stats.
type DebtOverview struct {
	Obligations []ObligationDebt
	ShortTerm   []ShortTermDebt
	LongTerm    []LongTermDebt
}

// PaymentTarget selects which kind of debt a payment applies to.
type PaymentTarget string

const (
	PaymentTargetObligation PaymentTarget = "obligation"
	PaymentTargetLiability  PaymentTarget = "liability"
)

// Payment is the input for recording a payment against a debt.
type Payment struct {
	Target   PaymentTarget
	TargetID uuid.UUID
	Amount   decimal.Decimal
	PaidOn   time.Time
}

// ObligationCreate is the input for creating an obligation.
type ObligationCreate struct {
	Kind        ObligationKind
	Name        string
	TotalAmount decimal.Decimal
	DueDate     time.Time
}
