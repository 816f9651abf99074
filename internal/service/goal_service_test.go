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

	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

func newGoalTestService(t *testing.T) (*GoalService, *sqlconfig.MockIGoalTable) {
	t.Helper()
	mockGoals := sqlconfig.NewMockIGoalTable(t)
	store := &storage.Storage{Goals: mockGoals}
	svc := NewGoalService(store)
	return svc, mockGoals
}

func TestCreateGoal_Success(t *testing.T) {
	svc, mockGoals := newGoalTestService(t)

	expectedID := uuid.Must(uuid.NewV4())
	targetDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	mockGoals.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.FinancialGoalCreate) bool {
		return c.Name == "Emergency fund" &&
			c.TargetAmount.Equal(decimal.RequireFromString("6000")) &&
			c.TargetDate.Equal(targetDate)
	})).Return(expectedID, nil)

	id, err := svc.CreateGoal(context.Background(), GoalCreate{
		Name:         "Emergency fund",
		TargetAmount: decimal.RequireFromString("6000"),
		SavedAmount:  decimal.Zero,
		TargetDate:   targetDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestListGoals_DerivesProgress(t *testing.T) {
	svc, mockGoals := newGoalTestService(t)

	asOf := time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local)
	mockGoals.EXPECT().List(mock.Anything).Return([]*sqlconfig.FinancialGoal{
		{
			ID:           uuid.Must(uuid.NewV4()),
			Name:         "Emergency fund",
			TargetAmount: decimal.RequireFromString("6000"),
			SavedAmount:  decimal.RequireFromString("1500"),
			TargetDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local),
		},
	}, nil)

	goals, err := svc.ListGoals(context.Background(), asOf)
	assert.NoError(t, err)
	assert.Len(t, goals, 1)

	goal := goals[0]
	assert.True(t, goal.Remaining.Equal(decimal.RequireFromString("4500")))
	assert.True(t, goal.PercentComplete.Equal(decimal.RequireFromString("25")))
	assert.True(t, goal.MonthlyNeeded.Equal(decimal.RequireFromString("750")), "4500 over six months")
	assert.False(t, goal.Achieved)
}

func TestListGoals_StorageError(t *testing.T) {
	svc, mockGoals := newGoalTestService(t)

	mockGoals.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))

	goals, err := svc.ListGoals(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Nil(t, goals)
}
