package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestCalculateDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, CalculateDays(date(2024, 1, 15), date(2024, 1, 15)))
	assert.Equal(t, 17, CalculateDays(date(2024, 1, 15), date(2024, 1, 31)))
	assert.Equal(t, 31, CalculateDays(date(2024, 1, 1), date(2024, 1, 31)))
}

func TestDaysInPeriodMonthFilter(t *testing.T) {
	now := date(2024, 3, 1)

	p := DaysInPeriod(date(2024, 1, 15), datePtr(2024, 2, 10), 1, 2024, now)
	assert.Equal(t, 17, p.Days)
	assert.Equal(t, date(2024, 1, 15), p.PeriodStart)
	assert.Equal(t, date(2024, 1, 31), p.PeriodEnd)
}

func TestDaysInPeriodOngoingClampedToPeriodEnd(t *testing.T) {
	now := date(2024, 3, 1)

	p := DaysInPeriod(date(2024, 1, 15), nil, 1, 2024, now)
	assert.Equal(t, 17, p.Days)
	assert.Equal(t, date(2024, 1, 31), p.PeriodEnd)
}

func TestDaysInPeriodOngoingClampedToNow(t *testing.T) {
	now := date(2024, 1, 20)

	p := DaysInPeriod(date(2024, 1, 15), nil, 1, 2024, now)
	assert.Equal(t, 6, p.Days)
	assert.Equal(t, now, p.PeriodEnd)
}

func TestDaysInPeriodNoFilterUsesFullSpan(t *testing.T) {
	now := date(2024, 3, 1)

	p := DaysInPeriod(date(2024, 1, 15), datePtr(2024, 2, 10), 0, 0, now)
	assert.Equal(t, 27, p.Days)
	assert.Equal(t, date(2024, 1, 15), p.PeriodStart)
	assert.Equal(t, date(2024, 2, 10), p.PeriodEnd)
}

func TestDaysInPeriodNoFilterOngoingEndsNow(t *testing.T) {
	now := date(2024, 1, 20)

	p := DaysInPeriod(date(2024, 1, 15), nil, 0, 0, now)
	assert.Equal(t, 6, p.Days)
	assert.Equal(t, now, p.PeriodEnd)
}

func TestDaysInPeriodYearOnly(t *testing.T) {
	now := date(2025, 6, 1)

	p := DaysInPeriod(date(2023, 12, 20), datePtr(2024, 1, 10), 0, 2024, now)
	assert.Equal(t, 10, p.Days)
	assert.Equal(t, date(2024, 1, 1), p.PeriodStart)
	assert.Equal(t, date(2024, 1, 10), p.PeriodEnd)
}

func TestDaysInPeriodMonthOnlyUsesRentalYear(t *testing.T) {
	now := date(2025, 6, 1)

	p := DaysInPeriod(date(2023, 2, 10), datePtr(2023, 3, 5), 2, 0, now)
	assert.Equal(t, 19, p.Days)
	assert.Equal(t, date(2023, 2, 10), p.PeriodStart)
	assert.Equal(t, date(2023, 2, 28), p.PeriodEnd)
}

func TestDaysInPeriodDisjointIsZero(t *testing.T) {
	now := date(2024, 6, 1)

	p := DaysInPeriod(date(2024, 1, 1), datePtr(2024, 1, 31), 3, 2024, now)
	assert.Equal(t, 0, p.Days)
}

func TestOverlapsPeriod(t *testing.T) {
	now := date(2024, 6, 1)

	assert.True(t, OverlapsPeriod(date(2024, 1, 15), datePtr(2024, 2, 10), 1, 2024, now))
	assert.True(t, OverlapsPeriod(date(2024, 1, 15), datePtr(2024, 2, 10), 2, 2024, now))
	assert.False(t, OverlapsPeriod(date(2024, 1, 15), datePtr(2024, 2, 10), 3, 2024, now))
	// Ongoing rental reaches now, so it touches any period up to now.
	assert.True(t, OverlapsPeriod(date(2024, 1, 15), nil, 5, 2024, now))
	assert.False(t, OverlapsPeriod(date(2024, 1, 15), nil, 7, 2024, now))
	// No filter always passes.
	assert.True(t, OverlapsPeriod(date(2024, 1, 15), nil, 0, 0, now))
}
