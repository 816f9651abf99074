package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// ForecastService projects day-by-day cash balance evolution from known
// future events: recurring rules, installment schedules, and credit card
// statement dues. The projection is read-only.
type ForecastService struct {
	storage *storage.Storage
}

// NewForecastService creates a new ForecastService.
func NewForecastService(store *storage.Storage) *ForecastService {
	return &ForecastService{storage: store}
}

// Project simulates the coming horizonDays starting at asOf. The reference
// day is captured once up front so all event sources agree on the window.
func (s *ForecastService) Project(ctx context.Context, asOf time.Time, horizonDays int) ([]engine.DailyCashFlowProjection, error) {
	startingBalance, cardDues, err := s.accountInputs(ctx, asOf)
	if err != nil {
		return nil, err
	}

	var events []engine.ProjectionEvent

	ruleRows, err := s.storage.RecurringRules.List(ctx, &sqlconfig.RecurringRuleFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	rules := make([]engine.RecurringRule, len(ruleRows))
	for i, row := range ruleRows {
		rules[i] = engineRecurringRule(row)
	}
	events = append(events, engine.RecurringEvents(rules, asOf, horizonDays)...)

	shortTermKind := sqlconfig.LiabilityShortTerm
	liabilities, err := s.storage.Liabilities.List(ctx, &sqlconfig.LiabilityFilter{Kind: &shortTermKind})
	if err != nil {
		return nil, err
	}
	var named []engine.NamedLiability
	for _, row := range liabilities {
		payments, err := s.storage.Liabilities.ListPayments(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		named = append(named, engine.NamedLiability{
			Name:      row.Name,
			Liability: shortTermLiability(row, liabilityPaymentRecords(payments)),
		})
	}
	events = append(events, engine.InstallmentEvents(named, asOf, horizonDays)...)
	events = append(events, engine.CardDueEvents(cardDues, asOf, horizonDays)...)

	return engine.ProjectCashFlow(startingBalance, asOf, horizonDays, events), nil
}

// accountInputs sums cash balances for the starting position and derives the
// next statement due per credit card account carrying a balance.
func (s *ForecastService) accountInputs(ctx context.Context, asOf time.Time) (decimal.Decimal, []engine.CardDue, error) {
	accounts, err := s.storage.Accounts.List(ctx, nil)
	if err != nil {
		return decimal.Zero, nil, err
	}

	startingBalance := decimal.Zero
	var cardDues []engine.CardDue
	for _, account := range accounts {
		switch account.Type {
		case sqlconfig.AccountTypeCash:
			startingBalance = startingBalance.Add(account.Balance)
		case sqlconfig.AccountTypeCreditCards:
			if !account.DueDayOfMonth.Valid || !account.Balance.IsPositive() {
				continue
			}
			cardDues = append(cardDues, engine.CardDue{
				Description: account.Name,
				Amount:      account.Balance,
				DueDate:     nextDueDate(asOf, int(account.DueDayOfMonth.Int16)),
			})
		}
	}
	return startingBalance, cardDues, nil
}

// nextDueDate finds the next occurrence of a statement day on or after asOf,
// clamped to the month's last day.
func nextDueDate(asOf time.Time, dayOfMonth int) time.Time {
	today := datemath.StripTime(asOf)
	due := datemath.ClampedDate(today.Year(), today.Month(), dayOfMonth)
	if due.Before(today) {
		due = datemath.AdvanceMonths(due, 1)
		due = datemath.ClampedDate(due.Year(), due.Month(), dayOfMonth)
	}
	return due
}

func engineRecurringRule(row *sqlconfig.RecurringRule) engine.RecurringRule {
	rule := engine.RecurringRule{
		ID:         row.ID,
		Name:       row.Name,
		Amount:     row.Amount,
		CategoryID: row.CategoryID,
		Frequency:  engine.Frequency(row.Frequency),
		StartDate:  row.StartDate,
	}
	if row.Type == sqlconfig.TransactionTypeExpense {
		rule.Type = engine.TransactionExpense
	} else {
		rule.Type = engine.TransactionIncome
	}
	if row.DayOfWeek.Valid {
		weekday := time.Weekday(row.DayOfWeek.Int16)
		rule.DayOfWeek = &weekday
	}
	if row.DayOfMonth.Valid {
		rule.DayOfMonth = int(row.DayOfMonth.Int16)
	}
	if row.EndDate.Valid {
		rule.EndDate = row.EndDate.Time
	}
	if row.LastProcessed.Valid {
		rule.LastProcessed = row.LastProcessed.Time
	}
	return rule
}
