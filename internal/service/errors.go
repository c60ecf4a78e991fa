// Package service provides application-level services for attendance tracking
// and program enrollment.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrAlreadyPresent indicates the child already has an open attendance
	// record for the date, so a second check-in is rejected.
	// API layer should map this to HTTP 409 Conflict.
	ErrAlreadyPresent = errors.New("child is already checked in for this date")

	// ErrAlreadyDeparted indicates the attendance record was already checked
	// out; the Present -> Departed transition happens at most once per record.
	// API layer should map this to HTTP 409 Conflict.
	ErrAlreadyDeparted = errors.New("attendance record is already checked out")

	// ErrAlreadyEnrolled indicates the child is already enrolled in the program.
	// API layer should map this to HTTP 409 Conflict.
	ErrAlreadyEnrolled = errors.New("child is already enrolled in this program")

	// ErrCapacityExceeded indicates the program has no remaining seats.
	// API layer should map this to HTTP 409 Conflict.
	ErrCapacityExceeded = errors.New("program is at capacity")

	// ErrAgeIneligible indicates the child's whole-year age falls outside the
	// program's eligibility window.
	// API layer should map this to HTTP 400 Bad Request.
	ErrAgeIneligible = errors.New("child's age is outside the program's age window")

	// ErrNotEnrolled indicates the child has no enrollment in the program.
	// API layer should map this to HTTP 404 Not Found.
	ErrNotEnrolled = errors.New("child is not enrolled in this program")

	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// This is typically returned when a user attempts to modify a resource they don't own.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")
)
