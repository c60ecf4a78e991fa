package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/service"
	"github.com/brightwood/daycare-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not owned maps to forbidden",
			err:      service.ErrNotOwned,
			expected: http.StatusForbidden,
		},
		{
			name:     "child not found maps to not found",
			err:      store.ErrChildNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped not found still maps to not found",
			err:      fmt.Errorf("loading record: %w", store.ErrAttendanceNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "not enrolled maps to not found",
			err:      service.ErrNotEnrolled,
			expected: http.StatusNotFound,
		},
		{
			name:     "already present maps to conflict",
			err:      service.ErrAlreadyPresent,
			expected: http.StatusConflict,
		},
		{
			name:     "already departed maps to conflict",
			err:      service.ErrAlreadyDeparted,
			expected: http.StatusConflict,
		},
		{
			name:     "already enrolled maps to conflict",
			err:      service.ErrAlreadyEnrolled,
			expected: http.StatusConflict,
		},
		{
			name:     "capacity exceeded maps to conflict",
			err:      service.ErrCapacityExceeded,
			expected: http.StatusConflict,
		},
		{
			name:     "duplicate email maps to conflict",
			err:      store.ErrEmailExists,
			expected: http.StatusConflict,
		},
		{
			name:     "age ineligible maps to bad request",
			err:      service.ErrAgeIneligible,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid entity maps to bad request",
			err:      store.ErrInvalidEntity,
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid date maps to bad request",
			err:      domain.ErrInvalidDate,
			expected: http.StatusBadRequest,
		},
		{
			name:     "unavailable maps to service unavailable",
			err:      store.ErrUnavailable,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown error maps to internal server error",
			err:      errors.New("something unexpected"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "An unexpected error occurred",
		},
		{
			name:     "child not found",
			err:      store.ErrChildNotFound,
			expected: "Child not found",
		},
		{
			name:     "program not found",
			err:      store.ErrProgramNotFound,
			expected: "Program not found",
		},
		{
			name:     "already checked in",
			err:      service.ErrAlreadyPresent,
			expected: "Child is already checked in",
		},
		{
			name:     "capacity exceeded",
			err:      service.ErrCapacityExceeded,
			expected: "Program is at capacity",
		},
		{
			name:     "age ineligible",
			err:      service.ErrAgeIneligible,
			expected: "Child's age is outside the program's age range",
		},
		{
			name:     "internal details are not leaked",
			err:      errors.New("pq: connection to server at 10.0.0.5 failed"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New(
		"Key: 'CheckInRequest.ChildID' Error:Field validation for 'ChildID' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid ChildID: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
