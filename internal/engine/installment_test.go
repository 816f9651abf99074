package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func installmentLiability() ShortTermLiability {
	return ShortTermLiability{
		OriginalAmount:       d("1200"),
		DueDate:              day(2024, time.December, 5),
		CreatedAt:            day(2024, time.January, 5),
		Structure:            StructureInstallments,
		NumberOfInstallments: 12,
		PaymentDayOfMonth:    5,
	}
}

func TestComputeInstallment_PartialPaymentCarriesRemainder(t *testing.T) {
	// 1200 over 12 installments of 100, day 5, created 2024-01-05.
	// A single 250 payment satisfies two installments and carries 50.
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{{Amount: d("250"), Date: day(2024, time.February, 1)}}

	stats := ComputeInstallment(liability, day(2024, time.February, 10))

	assert.True(t, stats.MonthlyInstallmentAmount.Equal(d("100")))
	assert.Equal(t, 2, stats.InstallmentsPaidCount)
	assert.True(t, stats.Paid.Equal(d("250")))
	assert.True(t, stats.Remaining.Equal(d("950")))
	assert.Equal(t, day(2024, time.March, 5), stats.NextInstallmentDue, "created-month anchor advanced two months")
	assert.Equal(t, 10, stats.EstimatedMonthsToPayoff)
	assert.False(t, stats.InstallmentOverdue)
	assert.Equal(t, StatusPartiallyPaid, stats.Status)
}

func TestComputeInstallment_NoPayments_Upcoming(t *testing.T) {
	stats := ComputeInstallment(installmentLiability(), day(2024, time.January, 2))

	assert.Equal(t, 0, stats.InstallmentsPaidCount)
	assert.Equal(t, day(2024, time.January, 5), stats.NextInstallmentDue)
	assert.Equal(t, 12, stats.EstimatedMonthsToPayoff)
	assert.Equal(t, StatusUpcoming, stats.Status)
}

func TestComputeInstallment_MissedInstallment_Overdue(t *testing.T) {
	// No payments and the first installment date has passed.
	stats := ComputeInstallment(installmentLiability(), day(2024, time.January, 20))

	assert.True(t, stats.InstallmentOverdue)
	assert.Equal(t, StatusOverdue, stats.Status)
	assert.Equal(t, day(2024, time.January, 5), stats.NextInstallmentDue)
}

func TestComputeInstallment_PartialPaymentSatisfiesZeroInstallments(t *testing.T) {
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{{Amount: d("60"), Date: day(2024, time.January, 4)}}

	stats := ComputeInstallment(liability, day(2024, time.January, 4))

	assert.Equal(t, 0, stats.InstallmentsPaidCount)
	assert.Equal(t, day(2024, time.January, 5), stats.NextInstallmentDue)
	assert.Equal(t, StatusPartiallyPaid, stats.Status)
}

func TestComputeInstallment_RemainderCarriesAcrossPayments(t *testing.T) {
	// 60 + 60 = 120 crosses one installment of 100 with 20 carried.
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{
		{Amount: d("60"), Date: day(2024, time.January, 4)},
		{Amount: d("60"), Date: day(2024, time.January, 5)},
	}

	stats := ComputeInstallment(liability, day(2024, time.January, 6))

	assert.Equal(t, 1, stats.InstallmentsPaidCount)
	assert.Equal(t, day(2024, time.February, 5), stats.NextInstallmentDue)
}

func TestComputeInstallment_PaymentsSortedByDateNotInputOrder(t *testing.T) {
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{
		{Amount: d("60"), Date: day(2024, time.March, 1)},
		{Amount: d("100"), Date: day(2024, time.January, 5)},
	}

	stats := ComputeInstallment(liability, day(2024, time.March, 2))

	// 100 first (one installment), then 60 (remainder only).
	assert.Equal(t, 1, stats.InstallmentsPaidCount)
}

func TestComputeInstallment_FullyPaid_Terminal(t *testing.T) {
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{{Amount: d("1200"), Date: day(2024, time.March, 1)}}

	stats := ComputeInstallment(liability, day(2025, time.June, 1))

	assert.Equal(t, StatusPaid, stats.Status, "PAID even though the final due date has passed")
	assert.Equal(t, 12, stats.InstallmentsPaidCount)
	assert.True(t, stats.NextInstallmentDue.IsZero())
	assert.Equal(t, 0, stats.EstimatedMonthsToPayoff)
}

func TestComputeInstallment_FinalDueDateOverrideAlwaysWins(t *testing.T) {
	// On schedule per installments (11 of 12 paid, next due in the future)
	// but the overall final due date has passed with a balance owing.
	liability := installmentLiability()
	liability.DueDate = day(2024, time.June, 1)
	liability.Payments = []PaymentRecord{{Amount: d("1100"), Date: day(2024, time.May, 30)}}

	stats := ComputeInstallment(liability, day(2024, time.June, 10))

	assert.Equal(t, 11, stats.InstallmentsPaidCount)
	assert.Equal(t, StatusOverdue, stats.Status, "final due date override is authoritative")
}

func TestComputeInstallment_CountNeverExceedsTotal(t *testing.T) {
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{{Amount: d("5000"), Date: day(2024, time.February, 1)}}

	stats := ComputeInstallment(liability, day(2024, time.February, 2))

	assert.Equal(t, 12, stats.InstallmentsPaidCount)
	assert.Equal(t, StatusPaid, stats.Status)
}

func TestComputeInstallment_CountMonotonicUnderChronologicalGrowth(t *testing.T) {
	liability := installmentLiability()
	asOf := day(2024, time.December, 31)

	payments := []PaymentRecord{
		{Amount: d("40"), Date: day(2024, time.January, 10)},
		{Amount: d("110"), Date: day(2024, time.February, 10)},
		{Amount: d("350"), Date: day(2024, time.March, 10)},
		{Amount: d("25"), Date: day(2024, time.April, 10)},
		{Amount: d("700"), Date: day(2024, time.May, 10)},
	}

	previous := 0
	for i := range payments {
		liability.Payments = payments[:i+1]
		stats := ComputeInstallment(liability, asOf)
		assert.GreaterOrEqual(t, stats.InstallmentsPaidCount, previous, "count never regresses")
		assert.LessOrEqual(t, stats.InstallmentsPaidCount, 12)
		previous = stats.InstallmentsPaidCount
	}
}

func TestComputeInstallment_Idempotent(t *testing.T) {
	liability := installmentLiability()
	liability.Payments = []PaymentRecord{
		{Amount: d("250"), Date: day(2024, time.February, 1)},
		{Amount: d("99.99"), Date: day(2024, time.March, 3)},
	}
	asOf := day(2024, time.March, 15)

	first := ComputeInstallment(liability, asOf)
	second := ComputeInstallment(liability, asOf)

	assert.Equal(t, first, second)
}

func TestComputeInstallment_MonthEndClampedSchedule(t *testing.T) {
	liability := ShortTermLiability{
		OriginalAmount:       d("300"),
		DueDate:              day(2024, time.April, 30),
		CreatedAt:            day(2024, time.January, 31),
		Structure:            StructureInstallments,
		NumberOfInstallments: 3,
		PaymentDayOfMonth:    31,
		Payments:             []PaymentRecord{{Amount: d("100"), Date: day(2024, time.January, 31)}},
	}

	stats := ComputeInstallment(liability, day(2024, time.February, 1))

	// Anchor Jan 31 advanced one month clamps to leap-year Feb 29.
	assert.Equal(t, day(2024, time.February, 29), stats.NextInstallmentDue)
}

func TestComputeInstallment_SingleStructure_NoSchedule(t *testing.T) {
	liability := ShortTermLiability{
		OriginalAmount: d("400"),
		DueDate:        day(2024, time.July, 1),
		CreatedAt:      day(2024, time.January, 1),
		Structure:      StructureSingle,
		Payments:       []PaymentRecord{{Amount: d("100"), Date: day(2024, time.February, 1)}},
	}

	stats := ComputeInstallment(liability, day(2024, time.March, 1))

	assert.True(t, stats.MonthlyInstallmentAmount.IsZero())
	assert.True(t, stats.NextInstallmentDue.IsZero())
	assert.Equal(t, StatusPartiallyPaid, stats.Status)
}

func TestComputeInstallment_InvalidDueDateNoPayments_Unknown(t *testing.T) {
	liability := ShortTermLiability{
		OriginalAmount: d("400"),
		Structure:      StructureSingle,
	}

	stats := ComputeInstallment(liability, day(2024, time.March, 1))

	assert.Equal(t, StatusUnknown, stats.Status)
}

func TestComputeInstallment_ZeroAmountLiability(t *testing.T) {
	// Zero is a well-formed amount; a zero-amount liability is fully paid
	// even when a payment record exists against it.
	liability := installmentLiability()
	liability.OriginalAmount = d("0")
	liability.Payments = []PaymentRecord{{Amount: d("25"), Date: day(2024, time.February, 1)}}

	stats := ComputeInstallment(liability, day(2024, time.June, 1))

	assert.Equal(t, StatusPaid, stats.Status)
	assert.Equal(t, 12, stats.InstallmentsPaidCount)
	assert.True(t, stats.NextInstallmentDue.IsZero())
	assert.False(t, stats.InstallmentOverdue)
}
