package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// DebtService derives the current state of every tracked debt. All stats are
// computed on read from the stored payment history; nothing derived is
// persisted.
type DebtService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *storage.Storage, processor ActionProcessor) *DebtService {
	return &DebtService{storage: store, processor: processor}
}

// CreateObligation creates a receivable or payable and returns its ID.
func (s *DebtService) CreateObligation(ctx context.Context, create ObligationCreate) (uuid.UUID, error) {
	storageKind := sqlconfig.ObligationReceivable
	if create.Kind == ObligationKindPayable {
		storageKind = sqlconfig.ObligationPayable
	}
	return s.storage.Obligations.Insert(ctx, &sqlconfig.ObligationCreate{
		Kind:        storageKind,
		Name:        create.Name,
		TotalAmount: create.TotalAmount,
		DueDate:     create.DueDate,
	})
}

// RecordPayment applies a payment against an obligation or liability through
// the operator queue.
func (s *DebtService) RecordPayment(ctx context.Context, payment Payment) error {
	target := actions.PaymentTargetObligation
	if payment.Target == PaymentTargetLiability {
		target = actions.PaymentTargetLiability
	}
	return s.processor.Process(ctx, &actions.RecordPayment{
		Target:   target,
		TargetID: payment.TargetID,
		Amount:   payment.Amount,
		PaidOn:   payment.PaidOn,
	})
}

// Overview derives the state of all obligations and liabilities as of the
// given day. The reference day is captured once so every figure in the
// result agrees on what "today" is.
func (s *DebtService) Overview(ctx context.Context, asOf time.Time) (*DebtOverview, error) {
	overview := &DebtOverview{}

	obligations, err := s.storage.Obligations.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, obligation := range obligations {
		payments, err := s.storage.Obligations.ListPayments(ctx, obligation.ID)
		if err != nil {
			return nil, err
		}
		stats := engine.ComputeObligation(obligation.TotalAmount, obligation.DueDate, obligationPaymentRecords(payments), asOf)

		kind := ObligationKindReceivable
		if obligation.Kind == sqlconfig.ObligationPayable {
			kind = ObligationKindPayable
		}
		overview.Obligations = append(overview.Obligations, ObligationDebt{
			ID:          obligation.ID,
			Kind:        kind,
			Name:        obligation.Name,
			TotalAmount: obligation.TotalAmount,
			DueDate:     obligation.DueDate,
			PaidToDate:  stats.PaidToDate,
			Remaining:   stats.Remaining,
			Status:      stats.Status.String(),
		})
	}

	liabilities, err := s.storage.Liabilities.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, liability := range liabilities {
		payments, err := s.storage.Liabilities.ListPayments(ctx, liability.ID)
		if err != nil {
			return nil, err
		}
		records := liabilityPaymentRecords(payments)

		if liability.Kind == sqlconfig.LiabilityLongTerm {
			stats := engine.ComputeLongTermLiability(engine.LongTermLiability{
				OriginalAmount: liability.OriginalAmount,
				MonthlyPayment: liability.MonthlyPayment,
				Payments:       records,
			})
			overview.LongTerm = append(overview.LongTerm, LongTermDebt{
				ID:             liability.ID,
				Name:           liability.Name,
				OriginalAmount: liability.OriginalAmount,
				MonthlyPayment: liability.MonthlyPayment,
				Paid:           stats.Paid,
				Remaining:      stats.Remaining,
				MonthsToPayoff: stats.MonthsToPayoff,
				PercentPaidOff: stats.PercentPaidOff,
				Status:         stats.Status.String(),
			})
			continue
		}

		shortTerm := shortTermLiability(liability, records)
		stats := engine.ComputeInstallment(shortTerm, asOf)
		overview.ShortTerm = append(overview.ShortTerm, ShortTermDebt{
			ID:                       liability.ID,
			Name:                     liability.Name,
			OriginalAmount:           liability.OriginalAmount,
			DueDate:                  shortTerm.DueDate,
			Paid:                     stats.Paid,
			Remaining:                stats.Remaining,
			Status:                   stats.Status.String(),
			MonthlyInstallmentAmount: stats.MonthlyInstallmentAmount,
			NextInstallmentDue:       stats.NextInstallmentDue,
			InstallmentsPaidCount:    stats.InstallmentsPaidCount,
			InstallmentOverdue:       stats.InstallmentOverdue,
			EstimatedMonthsToPayoff:  stats.EstimatedMonthsToPayoff,
		})
	}

	return overview, nil
}

func shortTermLiability(row *sqlconfig.Liability, payments []engine.PaymentRecord) engine.ShortTermLiability {
	liability := engine.ShortTermLiability{
		OriginalAmount:       row.OriginalAmount,
		CreatedAt:            row.CreatedAt,
		NumberOfInstallments: row.NumberOfInstallments,
		PaymentDayOfMonth:    row.PaymentDayOfMonth,
		Payments:             payments,
	}
	if row.DueDate.Valid {
		liability.DueDate = row.DueDate.Time
	}
	if row.Structure == sqlconfig.PaymentStructureInstallments {
		liability.Structure = engine.StructureInstallments
	} else {
		liability.Structure = engine.StructureSingle
	}
	return liability
}

func obligationPaymentRecords(payments []*sqlconfig.ObligationPayment) []engine.PaymentRecord {
	records := make([]engine.PaymentRecord, len(payments))
	for i, payment := range payments {
		records[i] = engine.PaymentRecord{Amount: payment.Amount, Date: payment.PaidOn}
	}
	return records
}

func liabilityPaymentRecords(payments []*sqlconfig.LiabilityPayment) []engine.PaymentRecord {
	records := make([]engine.PaymentRecord, len(payments))
	for i, payment := range payments {
		records[i] = engine.PaymentRecord{Amount: payment.Amount, Date: payment.PaidOn}
	}
	return records
}
