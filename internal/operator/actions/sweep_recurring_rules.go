package actions

import (
	"context"
	"errors"
	"time"

	"github.com/oakmere-labs/ledger-server/internal/engine"
	"github.com/oakmere-labs/ledger-server/internal/storage"
	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

// SweepRecurringRules materializes every active rule's occurrences that are
// due on or before AsOf. Each occurrence becomes a transaction and the rule's
// last processed date advances, so running the sweep twice for the same AsOf
// creates nothing new. Rules with unparseable dates are skipped, not fatal.
type SweepRecurringRules struct {
	AsOf time.Time

	RulesSwept          int
	TransactionsCreated int
	RulesSkipped        int

	IAction
}

func (s *SweepRecurringRules) Perform(ctx context.Context, writer *storage.Writer) error {
	asOf := s.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	rules, err := writer.RecurringRules.List(ctx, &sqlconfig.RecurringRuleFilter{ActiveOnly: true})
	if err != nil {
		return err
	}

	for _, rule := range rules {
		due, skip := dueOccurrences(rule, asOf)
		if skip {
			s.RulesSkipped++
			continue
		}
		if len(due) == 0 {
			continue
		}

		for _, occurredOn := range due {
			action := &CreateTransaction{
				AccountID:       rule.AccountID,
				CategoryID:      rule.CategoryID,
				Amount:          rule.Amount,
				Type:            rule.Type,
				TransactionName: rule.Name,
				TransactionDate: occurredOn,
			}
			if err := action.Perform(ctx, writer); err != nil {
				return err
			}
			s.TransactionsCreated++
		}

		latest := due[len(due)-1]
		if err := writer.RecurringRules.UpdateLastProcessed(ctx, rule.ID, latest); err != nil {
			return err
		}
		s.RulesSwept++
	}

	return nil
}

// dueOccurrences returns the dates a rule fires after its last processed
// date, up to and including asOf. The second result is true when the rule's
// dates are invalid and it should be skipped.
func dueOccurrences(rule *sqlconfig.RecurringRule, asOf time.Time) ([]time.Time, bool) {
	eng := engineRule(rule)

	var due []time.Time
	cursor := eng.LastProcessed
	if cursor.IsZero() {
		first, err := engine.FirstOccurrence(eng)
		if errors.Is(err, engine.ErrRuleExhausted) {
			return nil, false
		}
		if err != nil {
			return nil, true
		}
		if first.After(asOf) {
			return nil, false
		}
		due = append(due, first)
		cursor = first
	}

	for !engine.Exhausted(eng, cursor) {
		next, err := engine.NextOccurrence(eng, cursor)
		if errors.Is(err, engine.ErrRuleExhausted) {
			break
		}
		if err != nil {
			return nil, true
		}
		if !next.After(cursor) || next.After(asOf) {
			break
		}
		due = append(due, next)
		cursor = next
	}
	return due, false
}

func engineRule(rule *sqlconfig.RecurringRule) engine.RecurringRule {
	eng := engine.RecurringRule{
		ID:         rule.ID,
		Name:       rule.Name,
		Amount:     rule.Amount,
		CategoryID: rule.CategoryID,
		Frequency:  engine.Frequency(rule.Frequency),
		StartDate:  rule.StartDate,
	}
	if rule.Type == sqlconfig.TransactionTypeExpense {
		eng.Type = engine.TransactionExpense
	} else {
		eng.Type = engine.TransactionIncome
	}
	if rule.DayOfWeek.Valid {
		weekday := time.Weekday(rule.DayOfWeek.Int16)
		eng.DayOfWeek = &weekday
	}
	if rule.DayOfMonth.Valid {
		eng.DayOfMonth = int(rule.DayOfMonth.Int16)
	}
	if rule.EndDate.Valid {
		eng.EndDate = rule.EndDate.Time
	}
	if rule.LastProcessed.Valid {
		eng.LastProcessed = rule.LastProcessed.Time
	}
	return eng
}
