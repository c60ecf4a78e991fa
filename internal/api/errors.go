package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/service"
	"github.com/brightwood/daycare-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors: every entity-specific variant wraps store.ErrNotFound
	case store.IsNotFoundError(err),
		errors.Is(err, service.ErrNotEnrolled):
		return http.StatusNotFound

	// Conflicts of state
	case errors.Is(err, service.ErrAlreadyPresent),
		errors.Is(err, service.ErrAlreadyDeparted),
		errors.Is(err, service.ErrAlreadyEnrolled),
		errors.Is(err, service.ErrCapacityExceeded),
		store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrAgeIneligible),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest

	// Storage connectivity failures
	case store.IsUnavailableError(err):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this notification"

	// Not found errors
	case errors.Is(err, store.ErrParentNotFound):
		return "Parent not found"

	case errors.Is(err, store.ErrChildNotFound):
		return "Child not found"

	case errors.Is(err, store.ErrStaffNotFound):
		return "Staff member not found"

	case errors.Is(err, store.ErrProgramNotFound):
		return "Program not found"

	case errors.Is(err, store.ErrAttendanceNotFound):
		return "Attendance record not found"

	case errors.Is(err, store.ErrActivityNotFound):
		return "Activity not found"

	case errors.Is(err, store.ErrNotificationNotFound):
		return "Notification not found"

	case errors.Is(err, service.ErrNotEnrolled):
		return "Child is not enrolled in this program"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflicts of state
	case errors.Is(err, service.ErrAlreadyPresent):
		return "Child is already checked in"

	case errors.Is(err, service.ErrAlreadyDeparted):
		return "Child is already checked out"

	case errors.Is(err, service.ErrAlreadyEnrolled):
		return "Child is already enrolled in this program"

	case errors.Is(err, service.ErrCapacityExceeded):
		return "Program is at capacity"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, service.ErrAgeIneligible):
		return "Child's age is outside the program's age range"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrInvalidDate):
		return "Invalid date format, expected YYYY-MM-DD"

	// Storage connectivity failures
	case store.IsUnavailableError(err):
		return "Service temporarily unavailable"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Extract the field name and validation tag
		// Example format: "Key: 'CheckInRequest.ChildID' Error:Field validation for 'ChildID' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "uuid":
		return "invalid identifier"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be greater"
	case "gte":
		return "must not be negative"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
