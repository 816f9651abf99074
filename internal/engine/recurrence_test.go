package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oakmere-labs/ledger-server/internal/datemath"
)

func weekdayPtr(w time.Weekday) *time.Weekday {
	return &w
}

func TestFirstOccurrence_Daily_IsStartDate(t *testing.T) {
	rule := RecurringRule{Frequency: FrequencyDaily, StartDate: day(2024, time.March, 10)}

	first, err := FirstOccurrence(rule)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 10), first)
}

func TestFirstOccurrence_WeeklyWithDayOfWeek(t *testing.T) {
	// 2024-01-01 is a Monday; first Friday on or after is Jan 5.
	rule := RecurringRule{
		Frequency: FrequencyWeekly,
		StartDate: day(2024, time.January, 1),
		DayOfWeek: weekdayPtr(time.Friday),
	}

	first, err := FirstOccurrence(rule)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 5), first)

	// Start already on the target weekday: first occurrence is the start.
	rule.DayOfWeek = weekdayPtr(time.Monday)
	first, err = FirstOccurrence(rule)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 1), first)
}

func TestFirstOccurrence_MonthlyAnchorsForward(t *testing.T) {
	rule := RecurringRule{
		Frequency:  FrequencyMonthly,
		StartDate:  day(2024, time.January, 10),
		DayOfMonth: 25,
	}

	first, err := FirstOccurrence(rule)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 25), first)

	// Anchor day already passed in the start month: move to next month.
	rule.DayOfMonth = 5
	first, err = FirstOccurrence(rule)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 5), first, "never before the start date")
}

func TestFirstOccurrence_InvalidStartDate(t *testing.T) {
	_, err := FirstOccurrence(RecurringRule{Frequency: FrequencyDaily})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, datemath.ErrInvalidDate))
}

func TestNextOccurrence_Daily(t *testing.T) {
	rule := RecurringRule{Frequency: FrequencyDaily, StartDate: day(2024, time.March, 1)}

	next, err := NextOccurrence(rule, day(2024, time.March, 10))
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 11), next)
}

func TestNextOccurrence_WeeklyPlainWeek(t *testing.T) {
	rule := RecurringRule{Frequency: FrequencyWeekly, StartDate: day(2026, time.January, 1)}

	next, err := NextOccurrence(rule, day(2026, time.January, 1))
	assert.NoError(t, err)
	assert.Equal(t, day(2026, time.January, 8), next)
}

func TestNextOccurrence_WeeklyDayOfWeekNeverSameDay(t *testing.T) {
	// 2024-01-05 is a Friday; next Friday is a full week out.
	rule := RecurringRule{
		Frequency: FrequencyWeekly,
		StartDate: day(2024, time.January, 1),
		DayOfWeek: weekdayPtr(time.Friday),
	}

	next, err := NextOccurrence(rule, day(2024, time.January, 5))
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 12), next)
}

func TestNextOccurrence_MonthlyLeapYearClamp(t *testing.T) {
	// Day-of-month 31 from Jan 31 clamps to Feb 29 in 2024,
	// then returns to Mar 31.
	rule := RecurringRule{
		Frequency:  FrequencyMonthly,
		StartDate:  day(2024, time.January, 31),
		DayOfMonth: 31,
	}

	next, err := NextOccurrence(rule, day(2024, time.January, 31))
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 29), next)

	next, err = NextOccurrence(rule, next)
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 31), next)
}

func TestNextOccurrence_MonthlyUsesBaseDayWhenUnset(t *testing.T) {
	rule := RecurringRule{Frequency: FrequencyMonthly, StartDate: day(2024, time.January, 15)}

	next, err := NextOccurrence(rule, day(2024, time.January, 15))
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.February, 15), next)
}

func TestNextOccurrence_YearlyAnchorMonth(t *testing.T) {
	rule := RecurringRule{
		Frequency:  FrequencyYearly,
		StartDate:  day(2024, time.February, 29),
		DayOfMonth: 29,
	}

	next, err := NextOccurrence(rule, day(2024, time.February, 29))
	assert.NoError(t, err)
	assert.Equal(t, day(2025, time.February, 28), next, "non-leap target year clamps")
}

func TestNextOccurrence_NeverPrecedesStartDate(t *testing.T) {
	// Stale lastProcessed before the rule's start must not regress.
	rule := RecurringRule{
		Frequency: FrequencyDaily,
		StartDate: day(2024, time.June, 1),
	}

	next, err := NextOccurrence(rule, day(2024, time.January, 1))
	assert.NoError(t, err)
	assert.Equal(t, day(2024, time.June, 1), next)
}

func TestNextOccurrence_PastEndDateIsExhausted(t *testing.T) {
	rule := RecurringRule{
		Frequency: FrequencyDaily,
		StartDate: day(2024, time.June, 1),
		EndDate:   day(2024, time.June, 10),
	}

	_, err := NextOccurrence(rule, day(2024, time.June, 10))
	assert.True(t, errors.Is(err, ErrRuleExhausted))
	assert.True(t, Exhausted(rule, day(2024, time.June, 10)))
	assert.False(t, Exhausted(rule, day(2024, time.June, 9)))
}

func TestNextOccurrence_EndDateNotASyntheticOccurrence(t *testing.T) {
	// Weekly from Sat Jun 1; the next natural date is Jun 8, which
	// overshoots the Wed Jun 5 end date. The end date itself must not be
	// reported as a schedule date.
	rule := RecurringRule{
		Frequency: FrequencyWeekly,
		StartDate: day(2024, time.June, 1),
		EndDate:   day(2024, time.June, 5),
	}

	_, err := NextOccurrence(rule, day(2024, time.June, 1))
	assert.True(t, errors.Is(err, ErrRuleExhausted))
}

func TestFirstOccurrence_AnchorPastEndDateIsExhausted(t *testing.T) {
	rule := RecurringRule{
		Frequency: FrequencyWeekly,
		StartDate: day(2024, time.June, 1),
		EndDate:   day(2024, time.June, 2),
		DayOfWeek: weekdayPtr(time.Wednesday),
	}

	_, err := FirstOccurrence(rule)
	assert.True(t, errors.Is(err, ErrRuleExhausted))
}

func TestNextOccurrence_RoundTripAdvancesStrictly(t *testing.T) {
	rules := []RecurringRule{
		{Frequency: FrequencyDaily, StartDate: day(2024, time.January, 1)},
		{Frequency: FrequencyWeekly, StartDate: day(2024, time.January, 1)},
		{Frequency: FrequencyWeekly, StartDate: day(2024, time.January, 1), DayOfWeek: weekdayPtr(time.Wednesday)},
		{Frequency: FrequencyMonthly, StartDate: day(2024, time.January, 31), DayOfMonth: 31},
		{Frequency: FrequencyYearly, StartDate: day(2024, time.February, 29), DayOfMonth: 29},
	}

	for _, rule := range rules {
		current, err := FirstOccurrence(rule)
		assert.NoError(t, err)
		for i := 0; i < 24; i++ {
			next, err := NextOccurrence(rule, current)
			assert.NoError(t, err)
			assert.True(t, next.After(current), "%s rule must advance strictly: %s -> %s", rule.Frequency, current, next)
			current = next
		}
	}
}

func TestNextOccurrence_Deterministic(t *testing.T) {
	rule := RecurringRule{
		Frequency:  FrequencyMonthly,
		StartDate:  day(2024, time.January, 31),
		DayOfMonth: 31,
	}

	first, err1 := NextOccurrence(rule, day(2024, time.January, 31))
	second, err2 := NextOccurrence(rule, day(2024, time.January, 31))
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}
