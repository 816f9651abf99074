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

	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

func newForecastTestService(t *testing.T) (*ForecastService, *sqlconfig.MockIAccountTable, *sqlconfig.MockIRecurringRuleTable, *sqlconfig.MockILiabilityTable) {
	t.Helper()
	mockAccounts := sqlconfig.NewMockIAccountTable(t)
	mockRules := sqlconfig.NewMockIRecurringRuleTable(t)
	mockLiabilities := sqlconfig.NewMockILiabilityTable(t)
	store := &storage.Storage{
		Accounts:       mockAccounts,
		RecurringRules: mockRules,
		Liabilities:    mockLiabilities,
	}
	svc := NewForecastService(store)
	return svc, mockAccounts, mockRules, mockLiabilities
}

func TestProject_DailyRuleLandsOnEachDay(t *testing.T) {
	svc, mockAccounts, mockRules, mockLiabilities := newForecastTestService(t)

	asOf := time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Account{
		{
			ID:      uuid.Must(uuid.NewV4()),
			Name:    "Checking",
			Type:    sqlconfig.AccountTypeCash,
			Balance: decimal.RequireFromString("500"),
		},
	}, nil)
	mockRules.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.RecurringRuleFilter) bool {
		return f.ActiveOnly
	})).Return([]*sqlconfig.RecurringRule{
		{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      "Coffee",
			Amount:    decimal.RequireFromString("200"),
			Type:      sqlconfig.TransactionTypeExpense,
			Frequency: sqlconfig.FrequencyDaily,
			StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local),
			Active:    true,
		},
	}, nil)
	mockLiabilities.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	days, err := svc.Project(context.Background(), asOf, 3)
	assert.NoError(t, err)
	assert.Len(t, days, 3)

	assert.True(t, days[0].StartOfDayBalance.Equal(decimal.RequireFromString("500")))
	assert.True(t, days[0].EndOfDayBalance.Equal(decimal.RequireFromString("300")))
	assert.True(t, days[1].StartOfDayBalance.Equal(decimal.RequireFromString("300")), "next day opens at prior close")
	assert.True(t, days[2].EndOfDayBalance.Equal(decimal.RequireFromString("-100")), "balance may go negative")
}

func TestProject_CardDueAppearsOnce(t *testing.T) {
	svc, mockAccounts, mockRules, mockLiabilities := newForecastTestService(t)

	asOf := time.Date(2025, 5, 10, 0, 0, 0, 0, time.Local)
	dueDay := int16(15)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Account{
		{
			ID:      uuid.Must(uuid.NewV4()),
			Name:    "Checking",
			Type:    sqlconfig.AccountTypeCash,
			Balance: decimal.RequireFromString("1000"),
		},
		{
			ID:            uuid.Must(uuid.NewV4()),
			Name:          "Rewards Card",
			Type:          sqlconfig.AccountTypeCreditCards,
			Balance:       decimal.RequireFromString("420"),
			DueDayOfMonth: sql.NullInt16{Int16: dueDay, Valid: true},
		},
	}, nil)
	mockRules.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	mockLiabilities.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	days, err := svc.Project(context.Background(), asOf, 10)
	assert.NoError(t, err)
	assert.Len(t, days, 10)

	// May 15 is day offset 5.
	assert.Len(t, days[5].Events, 1)
	assert.Equal(t, "Rewards Card", days[5].Events[0].Description)
	assert.True(t, days[5].EndOfDayBalance.Equal(decimal.RequireFromString("580")))
	assert.Empty(t, days[6].Events)
}

func TestProject_AccountError(t *testing.T) {
	svc, mockAccounts, _, _ := newForecastTestService(t)

	mockAccounts.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	days, err := svc.Project(context.Background(), time.Now(), 7)
	assert.Error(t, err)
	assert.Nil(t, days)
}
