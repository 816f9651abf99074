package actions

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oakmere-labs/ledger-server/internal/storage/sqlconfig"
)

func sweepDay(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func weeklyRule(start time.Time) *sqlconfig.RecurringRule {
	return &sqlconfig.RecurringRule{
		Name:      "Cleaner",
		Amount:    decimal.RequireFromString("40"),
		Type:      sqlconfig.TransactionTypeExpense,
		Frequency: sqlconfig.FrequencyWeekly,
		StartDate: start,
		Active:    true,
	}
}

func TestDueOccurrences_StopsBeforeEndDate(t *testing.T) {
	// Weekly from Sat Jun 1 ending Wed Jun 5, already processed through
	// Jun 1: Jun 8 overshoots the end date, so nothing further is due. In
	// particular the end date itself must never be materialized.
	rule := weeklyRule(sweepDay(2024, time.June, 1))
	rule.EndDate = sql.NullTime{Time: sweepDay(2024, time.June, 5), Valid: true}
	rule.LastProcessed = sql.NullTime{Time: sweepDay(2024, time.June, 1), Valid: true}

	due, skip := dueOccurrences(rule, sweepDay(2024, time.June, 30))

	assert.False(t, skip)
	assert.Empty(t, due)
}

func TestDueOccurrences_FirstOccurrencePastEndDate(t *testing.T) {
	weekday := int16(time.Wednesday)
	rule := weeklyRule(sweepDay(2024, time.June, 1))
	rule.DayOfWeek = sql.NullInt16{Int16: weekday, Valid: true}
	rule.EndDate = sql.NullTime{Time: sweepDay(2024, time.June, 2), Valid: true}

	due, skip := dueOccurrences(rule, sweepDay(2024, time.June, 30))

	assert.False(t, skip, "a finished rule is exhausted, not malformed")
	assert.Empty(t, due)
}

func TestDueOccurrences_AccruesUpToAsOf(t *testing.T) {
	rule := weeklyRule(sweepDay(2024, time.June, 1))
	rule.LastProcessed = sql.NullTime{Time: sweepDay(2024, time.June, 1), Valid: true}

	due, skip := dueOccurrences(rule, sweepDay(2024, time.June, 20))

	assert.False(t, skip)
	assert.Equal(t, []time.Time{
		sweepDay(2024, time.June, 8),
		sweepDay(2024, time.June, 15),
	}, due)
}

func TestDueOccurrences_EndDateOnScheduleStillFires(t *testing.T) {
	// The end date is inclusive when the cadence genuinely lands on it.
	rule := weeklyRule(sweepDay(2024, time.June, 1))
	rule.EndDate = sql.NullTime{Time: sweepDay(2024, time.June, 8), Valid: true}
	rule.LastProcessed = sql.NullTime{Time: sweepDay(2024, time.June, 1), Valid: true}

	due, skip := dueOccurrences(rule, sweepDay(2024, time.June, 30))

	assert.False(t, skip)
	assert.Equal(t, []time.Time{sweepDay(2024, time.June, 8)}, due)
}

func TestDueOccurrences_InvalidStartDateSkips(t *testing.T) {
	rule := weeklyRule(time.Time{})

	_, skip := dueOccurrences(rule, sweepDay(2024, time.June, 30))

	assert.True(t, skip)
}
