package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// EnrollmentStore implements store.EnrollmentStore using PostgreSQL.
type EnrollmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewEnrollmentStore creates a PostgreSQL implementation of the
// EnrollmentStore interface.
func NewEnrollmentStore(db store.DBTX, logger *slog.Logger) *EnrollmentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &EnrollmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "enrollment_store")),
	}
}

// Ensure EnrollmentStore implements store.EnrollmentStore
var _ store.EnrollmentStore = (*EnrollmentStore)(nil)

// WithTx returns a store instance bound to the given transaction.
func (s *EnrollmentStore) WithTx(tx *sql.Tx) store.EnrollmentStore {
	return &EnrollmentStore{db: tx, logger: s.logger}
}

// Create implements store.EnrollmentStore.Create
func (s *EnrollmentStore) Create(ctx context.Context, enrollment *domain.ProgramEnrollment) error {
	if err := enrollment.Validate(); err != nil {
		return store.NewStoreError("enrollment", "create", "invalid enrollment", err)
	}

	query := `
		INSERT INTO program_enrollments (id, program_id, child_id, enrolled_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query,
		enrollment.ID,
		enrollment.ProgramID,
		enrollment.ChildID,
		enrollment.EnrolledAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByProgramAndChild implements store.EnrollmentStore.GetByProgramAndChild
func (s *EnrollmentStore) GetByProgramAndChild(ctx context.Context, programID, childID uuid.UUID) (*domain.ProgramEnrollment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, program_id, child_id, enrolled_at
		FROM program_enrollments
		WHERE program_id = $1 AND child_id = $2
	`, programID, childID)

	var enrollment domain.ProgramEnrollment
	err := row.Scan(
		&enrollment.ID,
		&enrollment.ProgramID,
		&enrollment.ChildID,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrEnrollmentNotFound
		}
		return nil, MapError(err)
	}

	return &enrollment, nil
}

// ListByProgram implements store.EnrollmentStore.ListByProgram
func (s *EnrollmentStore) ListByProgram(ctx context.Context, programID uuid.UUID) ([]*domain.ProgramEnrollment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.program_id, e.child_id, e.enrolled_at,
		       c.id, c.first_name, c.last_name, c.date_of_birth, c.gender,
		       c.allergies, c.medical_notes, c.parent_id, c.enrollment_date,
		       c.created_at, c.updated_at
		FROM program_enrollments e
		JOIN children c ON c.id = e.child_id
		WHERE e.program_id = $1
		ORDER BY e.enrolled_at, e.id
	`, programID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var enrollments []*domain.ProgramEnrollment
	for rows.Next() {
		var enrollment domain.ProgramEnrollment
		var child domain.Child
		var enrollmentDate sql.NullTime

		err := rows.Scan(
			&enrollment.ID,
			&enrollment.ProgramID,
			&enrollment.ChildID,
			&enrollment.EnrolledAt,
			&child.ID,
			&child.FirstName,
			&child.LastName,
			&child.DateOfBirth,
			&child.Gender,
			&child.Allergies,
			&child.MedicalNotes,
			&child.ParentID,
			&enrollmentDate,
			&child.CreatedAt,
			&child.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}

		if enrollmentDate.Valid {
			t := enrollmentDate.Time
			child.EnrollmentDate = &t
		}
		child.DateOfBirth = domain.DateOf(child.DateOfBirth)

		enrollment.Child = &child
		enrollments = append(enrollments, &enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return enrollments, nil
}

// CountByProgram implements store.EnrollmentStore.CountByProgram
func (s *EnrollmentStore) CountByProgram(ctx context.Context, programID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM program_enrollments WHERE program_id = $1
	`, programID).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}

	return count, nil
}

// ListAvailableChildren implements store.EnrollmentStore.ListAvailableChildren
func (s *EnrollmentStore) ListAvailableChildren(ctx context.Context, programID uuid.UUID) ([]*domain.Child, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE NOT EXISTS (
			SELECT 1 FROM program_enrollments e
			WHERE e.program_id = $1 AND e.child_id = children.id
		)
		ORDER BY last_name, first_name
	`, programID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanChildren(rows)
}

// Delete implements store.EnrollmentStore.Delete
func (s *EnrollmentStore) Delete(ctx context.Context, programID, childID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM program_enrollments
		WHERE program_id = $1 AND child_id = $2
	`, programID, childID)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "enrollment"); err != nil {
		return store.ErrEnrollmentNotFound
	}

	return nil
}
