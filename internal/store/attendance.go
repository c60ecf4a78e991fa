package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
)

// AttendanceStore defines persistence operations for attendance records.
type AttendanceStore interface {
	// Create inserts a new attendance record. Returns ErrOpenAttendanceExists
	// if the child already has an open record for the record's date; the
	// partial unique index makes this check authoritative under concurrency.
	Create(ctx context.Context, record *domain.AttendanceRecord) error

	// GetByID retrieves an attendance record by its unique ID.
	// Returns ErrAttendanceNotFound if the record does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceRecord, error)

	// GetOpenByChildAndDate retrieves the open record for a (child, date)
	// pair. Returns ErrAttendanceNotFound when the child is not present.
	GetOpenByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) (*domain.AttendanceRecord, error)

	// CloseOut persists a check-out on an open record. The update is guarded
	// by check_out_time IS NULL; ErrAttendanceNotFound is returned when no
	// open row was updated, and the caller distinguishes "missing" from
	// "already departed" by re-reading.
	CloseOut(ctx context.Context, record *domain.AttendanceRecord) error

	// ListByDate returns all records for the given calendar day, most recent
	// check-in first.
	ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error)

	// ListByChild returns all records for a child across all dates, most
	// recent check-in first.
	ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error)

	// ListAll returns every attendance record, most recent check-in first.
	ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error)

	// CountOpenByDate counts open records for the given calendar day.
	CountOpenByDate(ctx context.Context, date time.Time) (int, error)

	// Delete removes a record unconditionally (administrative correction).
	// Returns ErrAttendanceNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) AttendanceStore
}
