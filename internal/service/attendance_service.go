package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/events"
	"github.com/brightwood/daycare-api/internal/platform/logger"
	"github.com/brightwood/daycare-api/internal/store"
)

// AttendanceServiceError is a custom error type for attendance service errors.
type AttendanceServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AttendanceServiceError.
func (e *AttendanceServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attendance service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("attendance service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AttendanceServiceError) Unwrap() error {
	return e.Err
}

// NewAttendanceServiceError creates a new AttendanceServiceError.
func NewAttendanceServiceError(operation, message string, err error) *AttendanceServiceError {
	return &AttendanceServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// AttendanceService tracks daily presence. Each record moves through
// Absent -> Present (CheckIn) -> Departed (CheckOut); Departed is terminal
// for the record, and a later check-in on the same day opens a new record.
type AttendanceService interface {
	// CheckIn opens an attendance record for the child at the current instant.
	// Returns store.ErrChildNotFound for an unknown child and
	// ErrAlreadyPresent when the child already has an open record for the day.
	CheckIn(ctx context.Context, childID uuid.UUID, notes string) (*domain.AttendanceRecord, error)

	// CheckOut closes an open attendance record. Returns
	// store.ErrAttendanceNotFound for an unknown record and
	// ErrAlreadyDeparted when the record was already closed.
	CheckOut(ctx context.Context, recordID uuid.UUID, notes string) (*domain.AttendanceRecord, error)

	// GetRecord retrieves a single attendance record by ID.
	GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.AttendanceRecord, error)

	// ListAll returns every attendance record, most recent check-in first.
	ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error)

	// ListByDate returns records for the given facility-local calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error)

	// ListByChild returns all records for the child across all dates. The
	// history is served even for children removed from the roster.
	ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error)

	// CurrentlyPresentCount counts children with an open record for today.
	CurrentlyPresentCount(ctx context.Context) (int, error)

	// Delete removes a record regardless of its state. This is an
	// administrative correction, not part of the check-in lifecycle.
	Delete(ctx context.Context, recordID uuid.UUID) error
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	db          *sql.DB
	attendances store.AttendanceStore
	children    store.ChildStore
	emitter     events.EventEmitter
	location    *time.Location
	logger      *slog.Logger
}

// NewAttendanceService creates a new AttendanceService. The location is the
// facility time zone; it determines which calendar day a check-in belongs to.
// It returns an error if any of the required dependencies are nil.
func NewAttendanceService(
	db *sql.DB,
	attendances store.AttendanceStore,
	children store.ChildStore,
	emitter events.EventEmitter,
	location *time.Location,
	logger *slog.Logger,
) (AttendanceService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if attendances == nil {
		return nil, domain.NewValidationError("attendances", "cannot be nil", domain.ErrValidation)
	}
	if children == nil {
		return nil, domain.NewValidationError("children", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &attendanceServiceImpl{
		db:          db,
		attendances: attendances,
		children:    children,
		emitter:     emitter,
		location:    location,
		logger:      logger.With(slog.String("component", "attendance_service")),
	}, nil
}

// CheckIn implements AttendanceService.CheckIn
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, childID uuid.UUID, notes string) (*domain.AttendanceRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrChildNotFound
		}
		return nil, NewAttendanceServiceError("check_in", "failed to load child", err)
	}

	now := time.Now().In(s.location)

	// An open record for today means the child is already present. This read
	// is advisory; the unique index below still settles concurrent check-ins.
	if _, err := s.attendances.GetOpenByChildAndDate(ctx, childID, domain.DateOf(now)); err == nil {
		return nil, ErrAlreadyPresent
	} else if !store.IsNotFoundError(err) {
		if store.IsUnavailableError(err) {
			return nil, err
		}
		return nil, NewAttendanceServiceError("check_in", "failed to check for open record", err)
	}

	record, err := domain.NewAttendanceRecord(childID, now, notes)
	if err != nil {
		return nil, err
	}

	// The partial unique index on open (child_id, date) pairs is the
	// authority here; a concurrent check-in loses with a unique violation
	// that surfaces as the same ErrAlreadyPresent as the sequential case.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.attendances.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		if errors.Is(err, store.ErrOpenAttendanceExists) {
			return nil, ErrAlreadyPresent
		}
		if store.IsUnavailableError(err) {
			return nil, err
		}
		return nil, NewAttendanceServiceError("check_in", "failed to create attendance record", err)
	}

	log.Info("child checked in",
		slog.String("child_id", childID.String()),
		slog.String("record_id", record.ID.String()))

	s.emitAttendanceEvent(ctx, events.TypeChildCheckedIn, record, child, record.CheckInTime)

	return record, nil
}

// CheckOut implements AttendanceService.CheckOut
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, recordID uuid.UUID, notes string) (*domain.AttendanceRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.attendances.GetByID(ctx, recordID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrAttendanceNotFound
		}
		return nil, NewAttendanceServiceError("check_out", "failed to load attendance record", err)
	}

	now := time.Now().In(s.location)
	if err := record.Close(now, notes); err != nil {
		if errors.Is(err, domain.ErrRecordClosed) {
			return nil, ErrAlreadyDeparted
		}
		return nil, err
	}

	// The update is guarded by check_out_time IS NULL, so a concurrent
	// check-out updates zero rows. Re-read to tell a vanished record apart
	// from one the other caller already closed.
	if err := s.attendances.CloseOut(ctx, record); err != nil {
		if store.IsNotFoundError(err) {
			current, readErr := s.attendances.GetByID(ctx, recordID)
			if readErr == nil && !current.Open() {
				return nil, ErrAlreadyDeparted
			}
			return nil, store.ErrAttendanceNotFound
		}
		return nil, NewAttendanceServiceError("check_out", "failed to close attendance record", err)
	}

	log.Info("child checked out",
		slog.String("child_id", record.ChildID.String()),
		slog.String("record_id", record.ID.String()))

	if child, err := s.children.GetByID(ctx, record.ChildID); err == nil {
		s.emitAttendanceEvent(ctx, events.TypeChildCheckedOut, record, child, now)
	} else {
		// The child may have been removed from the roster; the record
		// remains valid without a notification target.
		log.Debug("skipping check-out notification",
			slog.String("child_id", record.ChildID.String()),
			slog.String("error", err.Error()))
	}

	return record, nil
}

// GetRecord implements AttendanceService.GetRecord
func (s *attendanceServiceImpl) GetRecord(ctx context.Context, recordID uuid.UUID) (*domain.AttendanceRecord, error) {
	return s.attendances.GetByID(ctx, recordID)
}

// ListAll implements AttendanceService.ListAll
func (s *attendanceServiceImpl) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	return s.attendances.ListAll(ctx)
}

// ListByDate implements AttendanceService.ListByDate
func (s *attendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error) {
	return s.attendances.ListByDate(ctx, domain.DateOf(date))
}

// ListByChild implements AttendanceService.ListByChild
func (s *attendanceServiceImpl) ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error) {
	// No roster lookup here: records outlive child deletion, and the history
	// of a removed child must stay readable. An unknown ID lists empty.
	return s.attendances.ListByChild(ctx, childID)
}

// CurrentlyPresentCount implements AttendanceService.CurrentlyPresentCount
func (s *attendanceServiceImpl) CurrentlyPresentCount(ctx context.Context) (int, error) {
	today := domain.DateOf(time.Now().In(s.location))
	return s.attendances.CountOpenByDate(ctx, today)
}

// Delete implements AttendanceService.Delete
func (s *attendanceServiceImpl) Delete(ctx context.Context, recordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.attendances.Delete(ctx, recordID); err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrAttendanceNotFound
		}
		return NewAttendanceServiceError("delete", "failed to delete attendance record", err)
	}

	log.Info("attendance record deleted", slog.String("record_id", recordID.String()))
	return nil
}

// emitAttendanceEvent publishes a check-in or check-out event. Emission is
// best effort; the attendance change has already committed.
func (s *attendanceServiceImpl) emitAttendanceEvent(
	ctx context.Context,
	eventType string,
	record *domain.AttendanceRecord,
	child *domain.Child,
	at time.Time,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(eventType, events.AttendancePayload{
		RecordID:  record.ID,
		ChildID:   child.ID,
		ParentID:  child.ParentID,
		ChildName: child.FirstName + " " + child.LastName,
		Date:      record.Date,
		At:        at,
	})
	if err != nil {
		log.Error("failed to build attendance event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit attendance event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
