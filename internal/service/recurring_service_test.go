package service

import (
	"context"
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

type sweepStubProcessor struct {
	err     error
	created int
	swept   int
	action  *actions.SweepRecurringRules
}

func (p *sweepStubProcessor) Process(_ context.Context, action actions.IAction) error {
	sweep := action.(*actions.SweepRecurringRules)
	p.action = sweep
	if p.err != nil {
		return p.err
	}
	sweep.RulesSwept = p.swept
	sweep.TransactionsCreated = p.created
	return nil
}

func TestSweep_ReportsCounts(t *testing.T) {
	processor := &sweepStubProcessor{swept: 2, created: 5}
	svc := NewRecurringService(&storage.Storage{}, processor)

	asOf := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
	result, err := svc.Sweep(context.Background(), asOf)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.RulesSwept)
	assert.Equal(t, 5, result.TransactionsCreated)
	assert.Equal(t, 0, result.RulesSkipped)
	assert.Equal(t, asOf, processor.action.AsOf, "reference day passed through")
}

func TestSweep_ProcessorError(t *testing.T) {
	processor := &sweepStubProcessor{err: errors.New("queue closed")}
	svc := NewRecurringService(&storage.Storage{}, processor)

	result, err := svc.Sweep(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCreateRule_MapsFrequency(t *testing.T) {
	mockRules := sqlconfig.NewMockIRecurringRuleTable(t)
	store := &storage.Storage{RecurringRules: mockRules}
	svc := NewRecurringService(store, &stubProcessor{})

	expectedID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	dayOfMonth := int16(5)

	mockRules.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(create *sqlconfig.RecurringRuleCreate) bool {
		return create.Frequency == sqlconfig.FrequencyMonthly &&
			create.Type == sqlconfig.TransactionTypeExpense &&
			create.AccountID == accountID &&
			create.DayOfMonth != nil && *create.DayOfMonth == dayOfMonth
	})).Return(expectedID, nil)

	id, err := svc.CreateRule(context.Background(), RuleCreate{
		Name:       "Rent",
		Amount:     decimal.RequireFromString("1200"),
		Type:       TransactionTypeExpense,
		AccountID:  accountID,
		CategoryID: uuid.Must(uuid.NewV4()),
		Frequency:  RuleFrequencyMonthly,
		DayOfMonth: &dayOfMonth,
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
	})
	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}
