package datemath

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
// Callers must not compare the accompanying zero time against real dates.
var ErrInvalidDate = errors.New("invalid date")

// ParseLocalDate interprets a YYYY-MM-DD string as local midnight.
// Parsing in the local location avoids the off-by-one-day shift that UTC
// interpretation causes for users west of Greenwich.
func ParseLocalDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return parsed, nil
}

// FormatLocalDate renders a date as YYYY-MM-DD.
func FormatLocalDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// IsValid reports whether t is usable in date comparisons. The zero time is
// the sentinel for unparseable or absent dates.
func IsValid(t time.Time) bool {
	return !t.IsZero()
}

// StripTime truncates t to midnight in its own location.
func StripTime(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampedDate builds a local-midnight date with the day clamped to the last
// valid day of the month. ClampedDate(2024, time.February, 31) is Feb 29.
func ClampedDate(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// AdvanceMonths returns the date n calendar months after t, clamping the day
// to the last valid day of the target month: Jan 31 + 1 month is Feb 28 (or
// Feb 29 in a leap year), not Mar 2. Negative n moves backward.
func AdvanceMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	monthIndex := int(month) - 1 + n
	targetYear := year + monthIndex/12
	targetIndex := monthIndex % 12
	if targetIndex < 0 {
		targetIndex += 12
		targetYear--
	}
	targetMonth := time.Month(targetIndex + 1)

	if last := DaysInMonth(targetYear, targetMonth); day > last {
		day = last
	}
	return time.Date(targetYear, targetMonth, day, 0, 0, 0, 0, t.Location())
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	aYear, aMonth, _ := a.Date()
	bYear, bMonth, _ := b.Date()
	return aYear == bYear && aMonth == bMonth
}

// NextWeekday returns the first date on or after from whose weekday matches w.
func NextWeekday(from time.Time, w time.Weekday) time.Time {
	offset := (int(w) - int(from.Weekday()) + 7) % 7
	return StripTime(from).AddDate(0, 0, offset)
}

// NextWeekdayAfter returns the first date strictly after from whose weekday
// matches w; it is always one to seven days forward.
func NextWeekdayAfter(from time.Time, w time.Weekday) time.Time {
	offset := (int(w) - int(from.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return StripTime(from).AddDate(0, 0, offset)
}
