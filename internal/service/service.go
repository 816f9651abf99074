package service

import (
	"context"

	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/storage"
)

// ActionProcessor runs a write action through the operator queue. Satisfied
// by *operator.OperatorDelegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Budget      *BudgetService
	Debt        *DebtService
	Forecast    *ForecastService
	Goal        *GoalService
	Recurring   *RecurringService
}

// NewService creates a new Service with the given storage and processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, processor),
		Account:     NewAccountService(store),
		Budget:      NewBudgetService(store),
		Debt:        NewDebtService(store, processor),
		Forecast:    NewForecastService(store),
		Goal:        NewGoalService(store),
		Recurring:   NewRecurringService(store, processor),
	}
}
