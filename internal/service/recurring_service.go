package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/operator/actions"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// RuleFrequency is how often a recurring rule fires, in the service layer.
type RuleFrequency string

const (
	RuleFrequencyDaily   RuleFrequency = "daily"
	RuleFrequencyWeekly  RuleFrequency = "weekly"
	RuleFrequencyMonthly RuleFrequency = "monthly"
	RuleFrequencyYearly  RuleFrequency = "yearly"
)

// RuleCreate is the input for creating a recurring rule.
type RuleCreate struct {
	Name       string
	Amount     decimal.Decimal
	Type       TransactionType
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Frequency  RuleFrequency
	DayOfWeek  *int16
	DayOfMonth *int16
	StartDate  time.Time
	EndDate    time.Time
}

// SweepResult summarizes one run of the recurring rule sweep.
type SweepResult struct {
	RulesSwept          int
	TransactionsCreated int
	RulesSkipped        int
}

// RecurringService triggers materialization of recurring rules. The sweep
// itself runs as an operator action so every created transaction and the
// rule bookkeeping commit together.
type RecurringService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(store *storage.Storage, processor ActionProcessor) *RecurringService {
	return &RecurringService{storage: store, processor: processor}
}

// CreateRule creates a recurring rule and returns its ID.
func (s *RecurringService) CreateRule(ctx context.Context, create RuleCreate) (uuid.UUID, error) {
	frequency := sqlconfig.FrequencyMonthly
	switch create.Frequency {
	case RuleFrequencyDaily:
		frequency = sqlconfig.FrequencyDaily
	case RuleFrequencyWeekly:
		frequency = sqlconfig.FrequencyWeekly
	case RuleFrequencyYearly:
		frequency = sqlconfig.FrequencyYearly
	}

	return s.storage.RecurringRules.Insert(ctx, &sqlconfig.RecurringRuleCreate{
		Name:       create.Name,
		Amount:     create.Amount,
		Type:       storageTransactionType(create.Type),
		AccountID:  create.AccountID,
		CategoryID: create.CategoryID,
		Frequency:  frequency,
		DayOfWeek:  create.DayOfWeek,
		DayOfMonth: create.DayOfMonth,
		StartDate:  create.StartDate,
		EndDate:    create.EndDate,
	})
}

// Sweep materializes all occurrences due on or before asOf. Running it again
// for the same asOf creates nothing new.
func (s *RecurringService) Sweep(ctx context.Context, asOf time.Time) (*SweepResult, error) {
	action := &actions.SweepRecurringRules{AsOf: asOf}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}
	return &SweepResult{
		RulesSwept:          action.RulesSwept,
		TransactionsCreated: action.TransactionsCreated,
		RulesSkipped:        action.RulesSkipped,
	}, nil
}
