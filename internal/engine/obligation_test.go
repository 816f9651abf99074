package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.Local)
}

func TestComputeObligation_NoPayments_Pending(t *testing.T) {
	asOf := day(2024, time.June, 1)

	stats := ComputeObligation(d("500"), day(2024, time.June, 30), nil, asOf)

	assert.True(t, stats.PaidToDate.IsZero())
	assert.True(t, stats.Remaining.Equal(d("500")))
	assert.Equal(t, StatusPending, stats.Status)
}

func TestComputeObligation_PartialPayment(t *testing.T) {
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{{Amount: d("200"), Date: day(2024, time.May, 20)}}

	stats := ComputeObligation(d("500"), day(2024, time.June, 30), payments, asOf)

	assert.True(t, stats.PaidToDate.Equal(d("200")))
	assert.True(t, stats.Remaining.Equal(d("300")))
	assert.Equal(t, StatusPartiallyPaid, stats.Status)
}

func TestComputeObligation_PaidBeatsOverdue(t *testing.T) {
	// Fully paid long after the due date: PAID always wins over OVERDUE.
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{
		{Amount: d("300"), Date: day(2024, time.March, 1)},
		{Amount: d("200"), Date: day(2024, time.May, 1)},
	}

	stats := ComputeObligation(d("500"), day(2024, time.January, 15), payments, asOf)

	assert.Equal(t, StatusPaid, stats.Status)
	assert.True(t, stats.Remaining.IsZero())
}

func TestComputeObligation_Overpaid(t *testing.T) {
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{{Amount: d("600"), Date: day(2024, time.May, 1)}}

	stats := ComputeObligation(d("500"), day(2024, time.January, 15), payments, asOf)

	assert.Equal(t, StatusPaid, stats.Status)
	assert.True(t, stats.Remaining.Equal(d("-100")), "overpayment surfaces as negative remaining")
}

func TestComputeObligation_OverdueBeatsPartiallyPaid(t *testing.T) {
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{{Amount: d("100"), Date: day(2024, time.April, 1)}}

	stats := ComputeObligation(d("500"), day(2024, time.May, 31), payments, asOf)

	assert.Equal(t, StatusOverdue, stats.Status)
}

func TestComputeObligation_DueTodayIsNotOverdue(t *testing.T) {
	asOf := day(2024, time.June, 1)

	stats := ComputeObligation(d("500"), day(2024, time.June, 1), nil, asOf)

	assert.Equal(t, StatusPending, stats.Status)
}

func TestComputeObligation_TimeOfDayStripped(t *testing.T) {
	// Late-evening asOf must not push a same-day due date into overdue.
	asOf := time.Date(2024, time.June, 1, 23, 45, 0, 0, time.Local)

	stats := ComputeObligation(d("500"), day(2024, time.June, 1), nil, asOf)

	assert.Equal(t, StatusPending, stats.Status)
}

func TestComputeObligation_InvalidDueDate_Unknown(t *testing.T) {
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{{Amount: d("100"), Date: day(2024, time.April, 1)}}

	stats := ComputeObligation(d("500"), time.Time{}, payments, asOf)

	assert.Equal(t, StatusUnknown, stats.Status, "no guessing between overdue and pending")
	assert.True(t, stats.PaidToDate.Equal(d("100")), "amounts still computed")
}

func TestComputeObligation_InvalidDueDateButFullyPaid(t *testing.T) {
	asOf := day(2024, time.June, 1)
	payments := []PaymentRecord{{Amount: d("500"), Date: day(2024, time.April, 1)}}

	stats := ComputeObligation(d("500"), time.Time{}, payments, asOf)

	assert.Equal(t, StatusPaid, stats.Status, "PAID does not depend on the due date")
}
