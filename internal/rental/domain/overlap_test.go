package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestCheckOverlap(t *testing.T) {
	tests := []struct {
		name      string
		candidate Interval
		existing  RentalWithCustomer
		want      bool
	}{
		{
			name:      "disjoint before",
			candidate: Interval{From: date(2026, 1, 1), To: datePtr(2026, 1, 10)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      false,
		},
		{
			name:      "disjoint after",
			candidate: Interval{From: date(2026, 3, 1), To: datePtr(2026, 3, 10)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      false,
		},
		{
			name:      "touching end dates overlap",
			candidate: Interval{From: date(2026, 2, 10), To: datePtr(2026, 2, 20)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      true,
		},
		{
			name:      "contained",
			candidate: Interval{From: date(2026, 2, 3), To: datePtr(2026, 2, 5)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      true,
		},
		{
			name:      "containing",
			candidate: Interval{From: date(2026, 1, 1), To: datePtr(2026, 3, 1)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      true,
		},
		{
			name:      "existing ongoing blocks later candidate",
			candidate: Interval{From: date(2026, 6, 1), To: datePtr(2026, 6, 10)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1)},
			want:      true,
		},
		{
			name:      "existing ongoing allows candidate ending before it starts",
			candidate: Interval{From: date(2026, 1, 1), To: datePtr(2026, 1, 20)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1)},
			want:      false,
		},
		{
			name:      "existing ongoing blocks ongoing candidate",
			candidate: Interval{From: date(2026, 1, 1)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1)},
			want:      true,
		},
		{
			name:      "ongoing candidate starting before existing ends",
			candidate: Interval{From: date(2026, 2, 5)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      true,
		},
		{
			name:      "ongoing candidate starting after existing ends",
			candidate: Interval{From: date(2026, 2, 11)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      false,
		},
		{
			name:      "ongoing candidate starting on existing end date",
			candidate: Interval{From: date(2026, 2, 10)},
			existing:  RentalWithCustomer{From: date(2026, 2, 1), To: datePtr(2026, 2, 10)},
			want:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, got := CheckOverlap(tc.candidate, []RentalWithCustomer{tc.existing})
			if got != tc.want {
				t.Fatalf("expected overlap=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestCheckOverlapReportsFirstInInputOrder(t *testing.T) {
	existing := []RentalWithCustomer{
		{ID: 1, From: date(2026, 1, 1), To: datePtr(2026, 1, 31), CustomerName: "Ana Silva"},
		{ID: 2, From: date(2026, 2, 1), To: datePtr(2026, 2, 28), CustomerName: "Ben Carter"},
	}

	conflict, ok := CheckOverlap(Interval{From: date(2026, 1, 15), To: datePtr(2026, 2, 15)}, existing)
	if !ok {
		t.Fatal("expected a conflict")
	}
	if conflict.RentalID != 1 || conflict.CustomerName != "Ana Silva" {
		t.Fatalf("expected first rental in input order, got %+v", conflict)
	}
}

func TestCheckOverlapNoExisting(t *testing.T) {
	if _, ok := CheckOverlap(Interval{From: date(2026, 1, 1)}, nil); ok {
		t.Fatal("expected no conflict against empty set")
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{Conflict: Conflict{
		From:         date(2026, 3, 1),
		To:           datePtr(2026, 3, 14),
		CustomerName: "Jordan Diaz",
	}}
	want := "asset is already rented to Jordan Diaz for Mar 1, 2026 - Mar 14, 2026"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestFormatDateRangeOngoing(t *testing.T) {
	got := FormatDateRange(date(2026, 3, 1), nil)
	if got != "Mar 1, 2026 - ongoing" {
		t.Fatalf("expected ongoing range, got %q", got)
	}
}
