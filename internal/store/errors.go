package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrChildNotFound, ErrProgramNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a second open attendance record for the
	// same child and day).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store cannot be reached or a
	// statement times out. These failures are unrelated to any constraint
	// and are never translated into a conflict; retry policy belongs to
	// the caller.
	ErrUnavailable = errors.New("store unavailable")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrParentNotFound indicates that the requested parent does not exist in the store.
	ErrParentNotFound = fmt.Errorf("%w: parent", ErrNotFound)

	// ErrChildNotFound indicates that the requested child does not exist in the store.
	ErrChildNotFound = fmt.Errorf("%w: child", ErrNotFound)

	// ErrStaffNotFound indicates that the requested staff member does not exist in the store.
	ErrStaffNotFound = fmt.Errorf("%w: staff member", ErrNotFound)

	// ErrProgramNotFound indicates that the requested program does not exist in the store.
	ErrProgramNotFound = fmt.Errorf("%w: program", ErrNotFound)

	// ErrEnrollmentNotFound indicates that no enrollment exists for the
	// requested (program, child) pair.
	ErrEnrollmentNotFound = fmt.Errorf("%w: enrollment", ErrNotFound)

	// ErrAttendanceNotFound indicates that the requested attendance record
	// does not exist in the store.
	ErrAttendanceNotFound = fmt.Errorf("%w: attendance record", ErrNotFound)

	// ErrActivityNotFound indicates that the requested daily activity does
	// not exist in the store.
	ErrActivityNotFound = fmt.Errorf("%w: daily activity", ErrNotFound)

	// ErrNotificationNotFound indicates that the requested notification does
	// not exist in the store.
	ErrNotificationNotFound = fmt.Errorf("%w: notification", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a parent or staff member with the given
	// email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrOpenAttendanceExists indicates that the child already has an open
	// attendance record for the day. Raised by the partial unique index on
	// (child_id, date) for open records.
	ErrOpenAttendanceExists = fmt.Errorf("%w: open attendance record", ErrDuplicate)

	// ErrEnrollmentExists indicates that the (program, child) pair is
	// already enrolled. Raised by the unique constraint on
	// (program_id, child_id).
	ErrEnrollmentExists = fmt.Errorf("%w: enrollment", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsUnavailableError checks if the error marks the store as unreachable.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "child", "program")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
