package engine

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

// ErrRuleExhausted is returned when a rule's next occurrence would land past
// its end date; the rule has no further schedule dates.
var ErrRuleExhausted = errors.New("recurring rule exhausted")

// Frequency is how often a recurring rule fires.
type Frequency int8

const (
	FrequencyDaily Frequency = iota
	FrequencyWeekly
	FrequencyMonthly
	FrequencyYearly
)

func (f Frequency) String() string {
	switch f {
	case FrequencyDaily:
		return "daily"
	case FrequencyWeekly:
		return "weekly"
	case FrequencyMonthly:
		return "monthly"
	default:
		return "yearly"
	}
}

// RecurringRule is a read-only snapshot of a recurring transaction
// definition. DayOfWeek applies to weekly rules, DayOfMonth (1-31, clamped
// to short months) to monthly and yearly rules; zero/nil means unset. An
// unset EndDate (zero time) means the rule never expires. LastProcessed is
// the most recent occurrence already materialized, zero when none.
type RecurringRule struct {
	ID            uuid.UUID
	Name          string
	Amount        decimal.Decimal
	Type          TransactionType
	CategoryID    uuid.UUID
	Frequency     Frequency
	DayOfWeek     *time.Weekday
	DayOfMonth    int
	StartDate     time.Time
	EndDate       time.Time
	LastProcessed time.Time
}

// FirstOccurrence computes the first date a rule fires: the start date
// itself, adjusted forward (never backward) to the rule's day-of-week or
// day-of-month anchor when one is set.
func FirstOccurrence(rule RecurringRule) (time.Time, error) {
	if !datemath.IsValid(rule.StartDate) {
		return time.Time{}, datemath.ErrInvalidDate
	}
	start := datemath.StripTime(rule.StartDate)

	var first time.Time
	switch rule.Frequency {
	case FrequencyWeekly:
		if rule.DayOfWeek != nil {
			first = datemath.NextWeekday(start, *rule.DayOfWeek)
		} else {
			first = start
		}
	case FrequencyMonthly:
		first = start
		if rule.DayOfMonth > 0 {
			first = datemath.ClampedDate(start.Year(), start.Month(), rule.DayOfMonth)
			if first.Before(start) {
				first = monthlyAnchor(datemath.AdvanceMonths(start, 1), rule.DayOfMonth)
			}
		}
	case FrequencyYearly:
		first = start
		if rule.DayOfMonth > 0 {
			first = datemath.ClampedDate(start.Year(), start.Month(), rule.DayOfMonth)
			if first.Before(start) {
				first = datemath.ClampedDate(start.Year()+1, start.Month(), rule.DayOfMonth)
			}
		}
	default:
		first = start
	}

	if datemath.IsValid(rule.EndDate) && first.After(datemath.StripTime(rule.EndDate)) {
		return time.Time{}, ErrRuleExhausted
	}
	return first, nil
}

// NextOccurrence computes the occurrence after lastProcessed.
//
// Daily advances one day; weekly advances to the next matching weekday
// (one to seven days, never the same day) or a flat week when no weekday is
// set; monthly advances one calendar month and re-anchors to DayOfMonth
// clamped to the target month's length; yearly re-anchors to the start
// date's month in the following year. The result never precedes the start
// date — if it would, the rule is recomputed from the start date instead.
// When an end date is set and the computed date lands beyond it, the rule is
// finished and ErrRuleExhausted is returned; the end date itself is never a
// schedule date unless the cadence genuinely lands on it.
func NextOccurrence(rule RecurringRule, lastProcessed time.Time) (time.Time, error) {
	if !datemath.IsValid(rule.StartDate) || !datemath.IsValid(lastProcessed) {
		return time.Time{}, datemath.ErrInvalidDate
	}
	start := datemath.StripTime(rule.StartDate)
	base := datemath.StripTime(lastProcessed)

	var next time.Time
	switch rule.Frequency {
	case FrequencyDaily:
		next = base.AddDate(0, 0, 1)
	case FrequencyWeekly:
		if rule.DayOfWeek != nil {
			next = datemath.NextWeekdayAfter(base, *rule.DayOfWeek)
		} else {
			next = base.AddDate(0, 0, 7)
		}
	case FrequencyMonthly:
		target := datemath.AdvanceMonths(base, 1)
		day := rule.DayOfMonth
		if day <= 0 {
			day = base.Day()
		}
		next = monthlyAnchor(target, day)
	case FrequencyYearly:
		anchorMonth := start.Month()
		day := rule.DayOfMonth
		if day <= 0 {
			day = start.Day()
		}
		next = datemath.ClampedDate(base.Year(), anchorMonth, day)
		if !next.After(base) {
			next = datemath.ClampedDate(base.Year()+1, anchorMonth, day)
		}
	default:
		return time.Time{}, datemath.ErrInvalidDate
	}

	// A stale lastProcessed from before the rule began must not pull the
	// schedule earlier than its start.
	if next.Before(start) {
		return FirstOccurrence(rule)
	}

	if datemath.IsValid(rule.EndDate) && next.After(datemath.StripTime(rule.EndDate)) {
		return time.Time{}, ErrRuleExhausted
	}
	return next, nil
}

// Exhausted reports whether the rule has no occurrence after lastProcessed:
// its end date is set and already reached.
func Exhausted(rule RecurringRule, lastProcessed time.Time) bool {
	if !datemath.IsValid(rule.EndDate) {
		return false
	}
	return !datemath.StripTime(lastProcessed).Before(datemath.StripTime(rule.EndDate))
}

// monthlyAnchor re-anchors a target month to the configured day, clamped to
// the month's last valid day.
func monthlyAnchor(target time.Time, day int) time.Time {
	return datemath.ClampedDate(target.Year(), target.Month(), day)
}
