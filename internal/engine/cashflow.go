package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// Direction tags a projected event as money in or money out.
type Direction int8

const (
	Inflow Direction = iota
	Outflow
)

// ProjectionEvent is one known future cash movement.
type ProjectionEvent struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // non-negative; Direction carries the sign
	Direction   Direction
}

// DailyCashFlowProjection is one simulated day of balance evolution.
type DailyCashFlowProjection struct {
	Date              time.Time
	StartOfDayBalance decimal.Decimal
	Events            []ProjectionEvent
	EndOfDayBalance   decimal.Decimal
}

// ProjectCashFlow simulates day-by-day balance evolution over horizonDays
// starting from asOf's calendar day. Day zero starts at startingBalance;
// every later day starts at the previous day's end. The output has exactly
// one entry per day, zero-event days included. The simulation is read-only;
// no stored balance changes.
func ProjectCashFlow(startingBalance decimal.Decimal, asOf time.Time, horizonDays int, events []ProjectionEvent) []DailyCashFlowProjection {
	if horizonDays <= 0 {
		return nil
	}

	today := datemath.StripTime(asOf)
	projections := make([]DailyCashFlowProjection, 0, horizonDays)
	balance := startingBalance

	for offset := 0; offset < horizonDays; offset++ {
		day := today.AddDate(0, 0, offset)

		var dayEvents []ProjectionEvent
		net := decimal.Zero
		for _, event := range events {
			if !datemath.SameDay(event.Date, day) {
				continue
			}
			dayEvents = append(dayEvents, event)
			if event.Direction == Inflow {
				net = net.Add(event.Amount)
			} else {
				net = net.Sub(event.Amount)
			}
		}

		end := balance.Add(net)
		projections = append(projections, DailyCashFlowProjection{
			Date:              day,
			StartOfDayBalance: balance,
			Events:            dayEvents,
			EndOfDayBalance:   end,
		})
		balance = end
	}

	return projections
}

// RecurringEvents expands recurring rules into projection events falling
// within [asOf, asOf+horizonDays). Rules with invalid dates are skipped
// rather than guessed at.
func RecurringEvents(rules []RecurringRule, asOf time.Time, horizonDays int) []ProjectionEvent {
	today := datemath.StripTime(asOf)
	end := today.AddDate(0, 0, horizonDays)

	var events []ProjectionEvent
	for _, rule := range rules {
		for _, occurrence := range occurrencesBetween(rule, today, end) {
			direction := Outflow
			if rule.Type == TransactionIncome {
				direction = Inflow
			}
			events = append(events, ProjectionEvent{
				Date:        occurrence,
				Description: rule.Name,
				Amount:      rule.Amount,
				Direction:   direction,
			})
		}
	}
	return events
}

// occurrencesBetween lists a rule's occurrences in [from, to).
func occurrencesBetween(rule RecurringRule, from, to time.Time) []time.Time {
	next, err := nextAfterProcessed(rule)
	if err != nil {
		return nil
	}

	var occurrences []time.Time
	last := rule.LastProcessed
	for next.Before(to) {
		if Exhausted(rule, last) {
			break
		}
		if !next.Before(from) {
			occurrences = append(occurrences, next)
		}
		following, err := NextOccurrence(rule, next)
		if err != nil || !following.After(next) {
			break
		}
		last = next
		next = following
	}
	return occurrences
}

func nextAfterProcessed(rule RecurringRule) (time.Time, error) {
	if datemath.IsValid(rule.LastProcessed) {
		return NextOccurrence(rule, rule.LastProcessed)
	}
	return FirstOccurrence(rule)
}

// InstallmentEvents expands the scheduled installments of short-term
// liabilities into outflow events within [asOf, asOf+horizonDays). Each
// liability contributes at most its remaining installments, one per month
// from its next due date.
func InstallmentEvents(liabilities []NamedLiability, asOf time.Time, horizonDays int) []ProjectionEvent {
	today := datemath.StripTime(asOf)
	end := today.AddDate(0, 0, horizonDays)

	var events []ProjectionEvent
	for _, named := range liabilities {
		stats := ComputeInstallment(named.Liability, asOf)
		if stats.Status == StatusPaid || !datemath.IsValid(stats.NextInstallmentDue) {
			continue
		}
		due := stats.NextInstallmentDue
		for i := 0; i < stats.EstimatedMonthsToPayoff && due.Before(end); i++ {
			if !due.Before(today) {
				events = append(events, ProjectionEvent{
					Date:        due,
					Description: named.Name,
					Amount:      stats.MonthlyInstallmentAmount,
					Direction:   Outflow,
				})
			}
			due = datemath.AdvanceMonths(due, 1)
		}
	}
	return events
}

// NamedLiability pairs a liability snapshot with its display name for
// projection event descriptions.
type NamedLiability struct {
	Name      string
	Liability ShortTermLiability
}

// CardDue is a credit-card statement obligation used as a projector event
// source.
type CardDue struct {
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
}

// CardDueEvents filters card dues to outflow events within the horizon.
func CardDueEvents(dues []CardDue, asOf time.Time, horizonDays int) []ProjectionEvent {
	today := datemath.StripTime(asOf)
	end := today.AddDate(0, 0, horizonDays)

	var events []ProjectionEvent
	for _, due := range dues {
		if !datemath.IsValid(due.DueDate) {
			continue
		}
		day := datemath.StripTime(due.DueDate)
		if day.Before(today) || !day.Before(end) {
			continue
		}
		events = append(events, ProjectionEvent{
			Date:        day,
			Description: due.Description,
			Amount:      due.Amount,
			Direction:   Outflow,
		})
	}
	return events
}
