package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/storage"
)

// PaymentTarget selects which kind of record a payment applies to.
type PaymentTarget int8

const (
	PaymentTargetObligation PaymentTarget = iota
	PaymentTargetLiability
)

var (
	ErrPaymentTargetNotFound = errors.New("payment target not found")
	ErrNonPositivePayment    = errors.New("payment amount must be positive")
)

type RecordPayment struct {
	Target   PaymentTarget
	TargetID uuid.UUID
	Amount   decimal.Decimal
	PaidOn   time.Time

	IAction
}

func (p *RecordPayment) Perform(ctx context.Context, writer *storage.Writer) error {
	if !p.Amount.IsPositive() {
		return ErrNonPositivePayment
	}

	switch p.Target {
	case PaymentTargetObligation:
		obligation, err := writer.Obligations.FindByID(ctx, p.TargetID)
		if err != nil {
			return err
		}
		if obligation == nil {
			return ErrPaymentTargetNotFound
		}
		_, err = writer.Obligations.InsertPayment(ctx, p.TargetID, p.Amount, p.PaidOn)
		return err
	case PaymentTargetLiability:
		liability, err := writer.Liabilities.FindByID(ctx, p.TargetID)
		if err != nil {
			return err
		}
		if liability == nil {
			return ErrPaymentTargetNotFound
		}
		_, err = writer.Liabilities.InsertPayment(ctx, p.TargetID, p.Amount, p.PaidOn)
		return err
	default:
		return errors.New("unknown payment target")
	}
}
