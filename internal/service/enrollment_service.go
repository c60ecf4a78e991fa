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

// EnrollmentServiceError is a custom error type for enrollment service errors.
type EnrollmentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for EnrollmentServiceError.
func (e *EnrollmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrollment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("enrollment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *EnrollmentServiceError) Unwrap() error {
	return e.Err
}

// NewEnrollmentServiceError creates a new EnrollmentServiceError.
func NewEnrollmentServiceError(operation, message string, err error) *EnrollmentServiceError {
	return &EnrollmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// EnrollmentService manages program membership under three constraints:
// capacity, age eligibility, and per-program uniqueness.
type EnrollmentService interface {
	// Enroll adds a child to a program. Checks run in order: program
	// existence, child existence, age eligibility, uniqueness, capacity.
	// Returns store.ErrProgramNotFound, store.ErrChildNotFound,
	// ErrAgeIneligible, ErrAlreadyEnrolled or ErrCapacityExceeded.
	Enroll(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error)

	// Unenroll removes a child from a program, freeing a seat immediately.
	// Returns ErrNotEnrolled when no enrollment exists, including on retry
	// after a successful removal.
	Unenroll(ctx context.Context, programID, childID uuid.UUID) error

	// ListEnrollments returns a program's enrollments with child summaries,
	// in stable insertion order.
	ListEnrollments(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error)

	// AvailableChildren returns roster children who are not enrolled in the
	// program and whose current age falls inside its age window. The view is
	// recomputed on every call.
	AvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	db          *sql.DB
	enrollments store.EnrollmentStore
	programs    store.ProgramStore
	children    store.ChildStore
	emitter     events.EventEmitter
	location    *time.Location
	logger      *slog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. The location is the
// facility time zone used to evaluate a child's age as of today.
// It returns an error if any of the required dependencies are nil.
func NewEnrollmentService(
	db *sql.DB,
	enrollments store.EnrollmentStore,
	programs store.ProgramStore,
	children store.ChildStore,
	emitter events.EventEmitter,
	location *time.Location,
	logger *slog.Logger,
) (EnrollmentService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if enrollments == nil {
		return nil, domain.NewValidationError("enrollments", "cannot be nil", domain.ErrValidation)
	}
	if programs == nil {
		return nil, domain.NewValidationError("programs", "cannot be nil", domain.ErrValidation)
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

	return &enrollmentServiceImpl{
		db:          db,
		enrollments: enrollments,
		programs:    programs,
		children:    children,
		emitter:     emitter,
		location:    location,
		logger:      logger.With(slog.String("component", "enrollment_service")),
	}, nil
}

// Enroll implements EnrollmentService.Enroll
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var enrollment *domain.ProgramEnrollment
	var program *domain.Program
	var child *domain.Child

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPrograms := s.programs.WithTx(tx)
		txChildren := s.children.WithTx(tx)
		txEnrollments := s.enrollments.WithTx(tx)

		// Locking the program row serializes concurrent enrollments into
		// the same program, so the seat count below cannot go stale before
		// commit.
		var err error
		program, err = txPrograms.GetForUpdate(ctx, programID)
		if err != nil {
			return err
		}

		child, err = txChildren.GetByID(ctx, childID)
		if err != nil {
			return err
		}

		age := child.Age(time.Now().In(s.location))
		if !program.AgeEligible(age) {
			return ErrAgeIneligible
		}

		_, err = txEnrollments.GetByProgramAndChild(ctx, programID, childID)
		if err == nil {
			return ErrAlreadyEnrolled
		}
		if !errors.Is(err, store.ErrEnrollmentNotFound) && !store.IsNotFoundError(err) {
			return err
		}

		count, err := txEnrollments.CountByProgram(ctx, programID)
		if err != nil {
			return err
		}
		if count >= program.Capacity {
			return ErrCapacityExceeded
		}

		enrollment, err = domain.NewProgramEnrollment(programID, childID)
		if err != nil {
			return err
		}

		return txEnrollments.Create(ctx, enrollment)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProgramNotFound):
			return nil, store.ErrProgramNotFound
		case errors.Is(err, store.ErrChildNotFound):
			return nil, store.ErrChildNotFound
		case errors.Is(err, ErrAgeIneligible),
			errors.Is(err, ErrAlreadyEnrolled),
			errors.Is(err, ErrCapacityExceeded):
			return nil, err
		case errors.Is(err, store.ErrEnrollmentExists):
			// Lost a race with a concurrent enrollment of the same pair;
			// same outcome as the sequential duplicate.
			return nil, ErrAlreadyEnrolled
		case store.IsUnavailableError(err):
			return nil, err
		default:
			return nil, NewEnrollmentServiceError("enroll", "failed to enroll child", err)
		}
	}

	log.Info("child enrolled",
		slog.String("program_id", programID.String()),
		slog.String("child_id", childID.String()))

	s.emitEnrollmentEvent(ctx, events.TypeChildEnrolled, program, child)

	return enrollment, nil
}

// Unenroll implements EnrollmentService.Unenroll
func (s *enrollmentServiceImpl) Unenroll(ctx context.Context, programID, childID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.enrollments.Delete(ctx, programID, childID); err != nil {
		if store.IsNotFoundError(err) {
			return ErrNotEnrolled
		}
		return NewEnrollmentServiceError("unenroll", "failed to remove enrollment", err)
	}

	log.Info("child unenrolled",
		slog.String("program_id", programID.String()),
		slog.String("child_id", childID.String()))

	program, programErr := s.programs.GetByID(ctx, programID)
	child, childErr := s.children.GetByID(ctx, childID)
	if programErr == nil && childErr == nil {
		s.emitEnrollmentEvent(ctx, events.TypeChildUnenrolled, program, child)
	}

	return nil
}

// ListEnrollments implements EnrollmentService.ListEnrollments
func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error) {
	if _, err := s.programs.GetByID(ctx, programID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrProgramNotFound
		}
		return nil, NewEnrollmentServiceError("list_enrollments", "failed to load program", err)
	}

	return s.enrollments.ListByProgram(ctx, programID)
}

// AvailableChildren implements EnrollmentService.AvailableChildren
func (s *enrollmentServiceImpl) AvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error) {
	program, err := s.programs.GetByID(ctx, programID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrProgramNotFound
		}
		return nil, NewEnrollmentServiceError("available_children", "failed to load program", err)
	}

	candidates, err := s.enrollments.ListAvailableChildren(ctx, programID)
	if err != nil {
		return nil, NewEnrollmentServiceError("available_children", "failed to list children", err)
	}

	now := time.Now().In(s.location)
	eligible := make([]*domain.Child, 0, len(candidates))
	for _, child := range candidates {
		if program.AgeEligible(child.Age(now)) {
			eligible = append(eligible, child)
		}
	}

	return eligible, nil
}

// emitEnrollmentEvent publishes an enrollment change. Emission is best
// effort; the enrollment change has already committed.
func (s *enrollmentServiceImpl) emitEnrollmentEvent(
	ctx context.Context,
	eventType string,
	program *domain.Program,
	child *domain.Child,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(eventType, events.EnrollmentPayload{
		ProgramID:    program.ID,
		ChildID:      child.ID,
		ParentID:     child.ParentID,
		ChildName:    child.FirstName + " " + child.LastName,
		ProgramTitle: program.Title,
	})
	if err != nil {
		log.Error("failed to build enrollment event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit enrollment event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}
