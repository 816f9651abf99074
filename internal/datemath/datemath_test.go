package datemath

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLocalDate_Valid(t *testing.T) {
	parsed, err := ParseLocalDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 29, parsed.Day())
	assert.Equal(t, 0, parsed.Hour(), "local midnight, not UTC")
	assert.Equal(t, time.Local, parsed.Location())
}

func TestParseLocalDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "2024-13-01", "2023-02-29", "2024/01/01"} {
		parsed, err := ParseLocalDate(value)
		assert.Error(t, err, value)
		assert.True(t, errors.Is(err, ErrInvalidDate), value)
		assert.True(t, parsed.IsZero(), value)
		assert.False(t, IsValid(parsed), value)
	}
}

func TestAdvanceMonths_ClampsToMonthEnd(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)

	feb := AdvanceMonths(jan31, 1)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), feb, "2024 is a leap year")

	feb2023 := AdvanceMonths(time.Date(2023, time.January, 31, 0, 0, 0, 0, time.Local), 1)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.Local), feb2023)

	apr := AdvanceMonths(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local), 1)
	assert.Equal(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.Local), apr)
}

func TestAdvanceMonths_CrossesYearBoundary(t *testing.T) {
	nov := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local), AdvanceMonths(nov, 2))
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local), AdvanceMonths(nov, 16))
}

func TestAdvanceMonths_Negative(t *testing.T) {
	mar31 := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), AdvanceMonths(mar31, -1))

	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2023, time.December, 15, 0, 0, 0, 0, time.Local), AdvanceMonths(jan15, -1))
	assert.Equal(t, time.Date(2022, time.December, 15, 0, 0, 0, 0, time.Local), AdvanceMonths(jan15, -13))
}

func TestAdvanceMonths_ZeroIsStable(t *testing.T) {
	d := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, d, AdvanceMonths(d, 0))
}

func TestClampedDate(t *testing.T) {
	assert.Equal(t, 29, ClampedDate(2024, time.February, 31).Day())
	assert.Equal(t, 28, ClampedDate(2023, time.February, 31).Day())
	assert.Equal(t, 5, ClampedDate(2024, time.January, 5).Day())
	assert.Equal(t, 1, ClampedDate(2024, time.January, 0).Day())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestStripTime(t *testing.T) {
	noon := time.Date(2024, time.May, 3, 12, 30, 45, 999, time.Local)
	stripped := StripTime(noon)
	assert.Equal(t, time.Date(2024, time.May, 3, 0, 0, 0, 0, time.Local), stripped)
}

func TestSameDayAndSameMonth(t *testing.T) {
	morning := time.Date(2024, time.May, 3, 1, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.May, 3, 23, 0, 0, 0, time.Local)
	nextDay := time.Date(2024, time.May, 4, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, nextDay))
	assert.True(t, SameMonth(morning, nextDay))
	assert.False(t, SameMonth(morning, time.Date(2023, time.May, 3, 0, 0, 0, 0, time.Local)))
}

func TestMonthStart(t *testing.T) {
	d := time.Date(2024, time.July, 19, 8, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local), MonthStart(d))
}

func TestNextWeekday(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, monday, NextWeekday(monday, time.Monday), "same day counts")
	assert.Equal(t, monday.AddDate(0, 0, 4), NextWeekday(monday, time.Friday))
	assert.Equal(t, monday.AddDate(0, 0, 6), NextWeekday(monday, time.Sunday))
}

func TestNextWeekdayAfter(t *testing.T) {
	monday := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, monday.AddDate(0, 0, 7), NextWeekdayAfter(monday, time.Monday), "same weekday advances a full week")
	assert.Equal(t, monday.AddDate(0, 0, 2), NextWeekdayAfter(monday, time.Wednesday))
}
