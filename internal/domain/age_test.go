package domain

import (
	"testing"
	"time"
)

func TestAgeInYears(t *testing.T) {
	t.Parallel()

	dob := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"day before fourth birthday", time.Date(2024, time.June, 14, 23, 0, 0, 0, time.UTC), 3},
		{"on fourth birthday", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 4},
		{"day after fourth birthday", time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC), 4},
		{"earlier month same year", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 3},
		{"later month same year", time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), 4},
		{"same year as birth", time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInYears(dob, tt.asOf); got != tt.want {
				t.Errorf("AgeInYears(%v, %v) = %d, want %d", dob, tt.asOf, got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 23:30 local on Jan 1 is already Jan 2 in UTC; the calendar day must
	// follow the local clock, not UTC.
	local := time.Date(2024, time.January, 1, 23, 30, 0, 0, loc)
	got := DateOf(local)
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", local, got, want)
	}
}
