package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Interval is a candidate rental period. A nil To means ongoing.
type Interval struct {
	From time.Time
	To   *time.Time
}

// RentalWithCustomer is an existing rental paired with the customer's
// display name, as needed for conflict reporting.
type RentalWithCustomer struct {
	ID           snowflake.ID
	From         time.Time
	To           *time.Time
	CustomerName string
}

// Conflict describes the first existing rental that overlaps a candidate.
type Conflict struct {
	RentalID     snowflake.ID
	From         time.Time
	To           *time.Time
	CustomerName string
}

// ConflictError is returned when a rental period collides with an
// existing rental for the same asset.
type ConflictError struct {
	Conflict Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("asset is already rented to %s for %s",
		e.Conflict.CustomerName,
		FormatDateRange(e.Conflict.From, e.Conflict.To),
	)
}

// CheckOverlap reports the first rental in existing (in input order) whose
// period overlaps the candidate interval.
//
// An open interval (nil To) means the rental is ongoing:
//   - existing ongoing: overlaps unless the candidate ends before it starts
//   - candidate ongoing: overlaps unless it starts after the existing ends
//   - both closed: [A,B] and [C,D] overlap iff A <= D && B >= C
func CheckOverlap(candidate Interval, existing []RentalWithCustomer) (Conflict, bool) {
	for _, rental := range existing {
		if !overlaps(candidate, rental.From, rental.To) {
			continue
		}
		return Conflict{
			RentalID:     rental.ID,
			From:         rental.From,
			To:           rental.To,
			CustomerName: rental.CustomerName,
		}, true
	}
	return Conflict{}, false
}

func overlaps(candidate Interval, existingFrom time.Time, existingTo *time.Time) bool {
	if existingTo == nil {
		return candidate.To == nil || !candidate.To.Before(existingFrom)
	}
	if candidate.To == nil {
		return !candidate.From.After(*existingTo)
	}
	return !candidate.From.After(*existingTo) && !candidate.To.Before(existingFrom)
}

// FormatDateRange renders a rental period for error messages.
func FormatDateRange(from time.Time, to *time.Time) string {
	const layout = "Jan 2, 2006"
	if to == nil {
		return fmt.Sprintf("%s - ongoing", from.Format(layout))
	}
	return fmt.Sprintf("%s - %s", from.Format(layout), to.Format(layout))
}
