package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
)

// EnrollmentStore defines persistence operations for program enrollments.
type EnrollmentStore interface {
	// Create inserts a new enrollment. Returns ErrEnrollmentExists if the
	// (program, child) pair is already enrolled; the unique constraint makes
	// this check authoritative under concurrency.
	Create(ctx context.Context, enrollment *domain.ProgramEnrollment) error

	// GetByProgramAndChild retrieves the enrollment for a (program, child)
	// pair. Returns ErrEnrollmentNotFound if no such pair exists.
	GetByProgramAndChild(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error)

	// ListByProgram returns all enrollments for a program with child
	// summaries attached, in stable insertion order.
	ListByProgram(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error)

	// CountByProgram counts current enrollments for a program.
	CountByProgram(ctx context.Context, programID uuid.UUID) (int, error)

	// ListAvailableChildren returns roster children not yet enrolled in the
	// program. Age filtering happens in the service so the eligibility rule
	// lives in exactly one place.
	ListAvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error)

	// Delete removes the enrollment for a (program, child) pair.
	// Returns ErrEnrollmentNotFound if no such pair exists.
	Delete(ctx context.Context, programID, childID uuid.UUID) error

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) EnrollmentStore
}
