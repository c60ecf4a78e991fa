package domain

import "time"

// AgeInYears computes a person's age in whole years as of the given instant.
// The year difference is decremented by one when the (month, day) of asOf
// precedes the (month, day) of the birth date, matching the calendar-age
// convention. Both the enrollment eligibility check and the available-children
// view must use this function so the two never disagree.
func AgeInYears(dateOfBirth, asOf time.Time) int {
	years := asOf.Year() - dateOfBirth.Year()
	if asOf.Month() < dateOfBirth.Month() ||
		(asOf.Month() == dateOfBirth.Month() && asOf.Day() < dateOfBirth.Day()) {
		years--
	}
	return years
}

// DateOf truncates an instant to its calendar day in the instant's location.
// The result is midnight UTC of that day, which is how DATE columns round-trip
// through the driver.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
