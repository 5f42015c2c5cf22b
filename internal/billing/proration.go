// Package billing prorates rental periods against billing windows and
// assembles invoice documents. Nothing in this package is persisted; an
// invoice is computed fresh on every request.
package billing

import (
	"math"
	"time"
)

// Period is the billable slice of a rental within a billing window.
// PeriodStart and PeriodEnd are the clamped effective bounds, not the
// raw calendar window.
type Period struct {
	Days        int
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// CalculateDays counts the billable days between two dates. Both
// endpoints are billable, so a same-day rental counts as one day.
func CalculateDays(from, to time.Time) int {
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

// DaysInPeriod clamps a rental interval to a billing window and counts
// the billable days inside it. A nil to means the rental is ongoing and
// is treated as ending now. month and year are optional (zero = absent):
//
//   - neither set: the full rental span is billed
//   - month and year: that calendar month
//   - year only: Jan 1 through Dec 31 of that year
//   - month only: that month in the rental's own start year
//
// Days is zero when the rental does not touch the window at all.
func DaysInPeriod(from time.Time, to *time.Time, month, year int, now time.Time) Period {
	rentalTo := now
	if to != nil {
		rentalTo = *to
	}

	if month == 0 && year == 0 {
		return Period{
			Days:        CalculateDays(from, rentalTo),
			PeriodStart: from,
			PeriodEnd:   rentalTo,
		}
	}

	periodStart, periodEnd := periodBounds(from, month, year)

	effectiveStart := from
	if periodStart.After(effectiveStart) {
		effectiveStart = periodStart
	}
	effectiveEnd := rentalTo
	if periodEnd.Before(effectiveEnd) {
		effectiveEnd = periodEnd
	}

	if effectiveStart.After(effectiveEnd) {
		return Period{Days: 0, PeriodStart: effectiveStart, PeriodEnd: effectiveEnd}
	}

	return Period{
		Days:        CalculateDays(effectiveStart, effectiveEnd),
		PeriodStart: effectiveStart,
		PeriodEnd:   effectiveEnd,
	}
}

// OverlapsPeriod reports whether a rental touches the billing window at
// all, so rentals wholly outside the requested period are skipped before
// proration. A nil to is treated as ending now.
func OverlapsPeriod(from time.Time, to *time.Time, month, year int, now time.Time) bool {
	if month == 0 && year == 0 {
		return true
	}

	rentalTo := now
	if to != nil {
		rentalTo = *to
	}

	periodStart, periodEnd := periodBounds(from, month, year)
	return !from.After(periodEnd) && !rentalTo.Before(periodStart)
}

func periodBounds(rentalFrom time.Time, month, year int) (time.Time, time.Time) {
	loc := rentalFrom.Location()
	switch {
	case month != 0 && year != 0:
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, -1)
	case year != 0:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
			time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	default:
		start := time.Date(rentalFrom.Year(), time.Month(month), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, -1)
	}
}
