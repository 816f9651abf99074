package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

func newDebtTestService(t *testing.T) (*DebtService, *sqlconfig.MockIObligationTable, *sqlconfig.MockILiabilityTable) {
	t.Helper()
	mockObligations := sqlconfig.NewMockIObligationTable(t)
	mockLiabilities := sqlconfig.NewMockILiabilityTable(t)
	store := &storage.Storage{Obligations: mockObligations, Liabilities: mockLiabilities}
	svc := NewDebtService(store, &stubProcessor{})
	return svc, mockObligations, mockLiabilities
}

func TestCreateObligation_MapsKind(t *testing.T) {
	svc, mockObligations, _ := newDebtTestService(t)

	expectedID := uuid.Must(uuid.NewV4())
	dueDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.Local)

	mockObligations.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ObligationCreate) bool {
		return c.Kind == sqlconfig.ObligationPayable &&
			c.Name == "Rent arrears" &&
			c.TotalAmount.Equal(decimal.RequireFromString("900")) &&
			c.DueDate.Equal(dueDate)
	})).Return(expectedID, nil)

	id, err := svc.CreateObligation(context.Background(), ObligationCreate{
		Kind:        ObligationKindPayable,
		Name:        "Rent arrears",
		TotalAmount: decimal.RequireFromString("900"),
		DueDate:     dueDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestOverview_ObligationPartiallyPaid(t *testing.T) {
	svc, mockObligations, mockLiabilities := newDebtTestService(t)

	obligationID := uuid.Must(uuid.NewV4())
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)

	mockObligations.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Obligation{
		{
			ID:          obligationID,
			Kind:        sqlconfig.ObligationReceivable,
			Name:        "Loan to Sam",
			TotalAmount: decimal.RequireFromString("500"),
			DueDate:     time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local),
		},
	}, nil)
	mockObligations.EXPECT().ListPayments(mock.Anything, obligationID).Return([]*sqlconfig.ObligationPayment{
		{Amount: decimal.RequireFromString("200"), PaidOn: time.Date(2025, 5, 1, 0, 0, 0, 0, time.Local)},
	}, nil)
	mockLiabilities.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	overview, err := svc.Overview(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Len(t, overview.Obligations, 1)

	debt := overview.Obligations[0]
	assert.Equal(t, ObligationKindReceivable, debt.Kind)
	assert.True(t, debt.PaidToDate.Equal(decimal.RequireFromString("200")))
	assert.True(t, debt.Remaining.Equal(decimal.RequireFromString("300")))
	assert.Equal(t, "partially_paid", debt.Status)
}

func TestOverview_InstallmentLiability(t *testing.T) {
	svc, mockObligations, mockLiabilities := newDebtTestService(t)

	liabilityID := uuid.Must(uuid.NewV4())
	asOf := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

	mockObligations.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	mockLiabilities.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Liability{
		{
			ID:                   liabilityID,
			Kind:                 sqlconfig.LiabilityShortTerm,
			Name:                 "Phone plan",
			OriginalAmount:       decimal.RequireFromString("1200"),
			DueDate:              sql.NullTime{Time: time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local), Valid: true},
			Structure:            sqlconfig.PaymentStructureInstallments,
			NumberOfInstallments: 12,
			PaymentDayOfMonth:    5,
			CreatedAt:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		},
	}, nil)
	mockLiabilities.EXPECT().ListPayments(mock.Anything, liabilityID).Return([]*sqlconfig.LiabilityPayment{
		{Amount: decimal.RequireFromString("250"), PaidOn: time.Date(2024, 2, 5, 0, 0, 0, 0, time.Local)},
	}, nil)

	overview, err := svc.Overview(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Len(t, overview.ShortTerm, 1)

	debt := overview.ShortTerm[0]
	assert.True(t, debt.MonthlyInstallmentAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 2, debt.InstallmentsPaidCount, "250 covers two whole installments")
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), debt.NextInstallmentDue)
	assert.True(t, debt.InstallmentOverdue, "march 5 already passed")
}

func TestOverview_LongTermLiability(t *testing.T) {
	svc, mockObligations, mockLiabilities := newDebtTestService(t)

	liabilityID := uuid.Must(uuid.NewV4())

	mockObligations.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	mockLiabilities.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Liability{
		{
			ID:             liabilityID,
			Kind:           sqlconfig.LiabilityLongTerm,
			Name:           "Car loan",
			OriginalAmount: decimal.RequireFromString("12000"),
			MonthlyPayment: decimal.RequireFromString("400"),
		},
	}, nil)
	mockLiabilities.EXPECT().ListPayments(mock.Anything, liabilityID).Return([]*sqlconfig.LiabilityPayment{
		{Amount: decimal.RequireFromString("2000"), PaidOn: time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)},
	}, nil)

	overview, err := svc.Overview(context.Background(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local))
	assert.NoError(t, err)
	assert.Len(t, overview.LongTerm, 1)

	debt := overview.LongTerm[0]
	assert.True(t, debt.Remaining.Equal(decimal.RequireFromString("10000")))
	assert.Equal(t, 25, debt.MonthsToPayoff)
}

func TestOverview_StorageError(t *testing.T) {
	svc, mockObligations, _ := newDebtTestService(t)

	mockObligations.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	overview, err := svc.Overview(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, overview)
}

func TestRecordPayment_BuildsAction(t *testing.T) {
	processor := &stubProcessor{}
	svc := NewDebtService(&storage.Storage{}, processor)

	targetID := uuid.Must(uuid.NewV4())
	paidOn := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	err := svc.RecordPayment(context.Background(), Payment{
		Target:   PaymentTargetLiability,
		TargetID: targetID,
		Amount:   decimal.RequireFromString("250.00"),
		PaidOn:   paidOn,
	})
	assert.NoError(t, err)

	action, ok := processor.lastAction.(*actions.RecordPayment)
	assert.True(t, ok)
	assert.Equal(t, actions.PaymentTargetLiability, action.Target)
	assert.Equal(t, targetID, action.TargetID)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("250.00")))
	assert.Equal(t, paidOn, action.PaidOn)
}
