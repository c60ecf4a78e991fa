package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// ChildStore implements store.ChildStore using PostgreSQL.
type ChildStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewChildStore creates a PostgreSQL implementation of the ChildStore interface.
func NewChildStore(db store.DBTX, logger *slog.Logger) *ChildStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ChildStore{
		db:     db,
		logger: logger.With(slog.String("component", "child_store")),
	}
}

// Ensure ChildStore implements store.ChildStore
var _ store.ChildStore = (*ChildStore)(nil)

// WithTx returns a store instance bound to the given transaction.
func (s *ChildStore) WithTx(tx *sql.Tx) store.ChildStore {
	return &ChildStore{db: tx, logger: s.logger}
}

const childColumns = `id, first_name, last_name, date_of_birth, gender,
	allergies, medical_notes, parent_id, enrollment_date, created_at, updated_at`

// Create implements store.ChildStore.Create
func (s *ChildStore) Create(ctx context.Context, child *domain.Child) error {
	if err := child.Validate(); err != nil {
		return store.NewStoreError("child", "create", "invalid child", err)
	}

	query := `
		INSERT INTO children
			(id, first_name, last_name, date_of_birth, gender, allergies,
			 medical_notes, parent_id, enrollment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.ExecContext(ctx, query,
		child.ID,
		child.FirstName,
		child.LastName,
		child.DateOfBirth,
		child.Gender,
		child.Allergies,
		child.MedicalNotes,
		child.ParentID,
		child.EnrollmentDate,
		child.CreatedAt,
		child.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ChildStore.GetByID
func (s *ChildStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Child, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+childColumns+` FROM children WHERE id = $1`, id)

	child, err := scanChild(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrChildNotFound
		}
		return nil, MapError(err)
	}

	return child, nil
}

// List implements store.ChildStore.List
func (s *ChildStore) List(ctx context.Context) ([]*domain.Child, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+childColumns+` FROM children ORDER BY created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanChildren(rows)
}

// ListByParent implements store.ChildStore.ListByParent
func (s *ChildStore) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*domain.Child, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+childColumns+`
		FROM children
		WHERE parent_id = $1
		ORDER BY created_at DESC
	`, parentID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanChildren(rows)
}

// Update implements store.ChildStore.Update
func (s *ChildStore) Update(ctx context.Context, child *domain.Child) error {
	if err := child.Validate(); err != nil {
		return store.NewStoreError("child", "update", "invalid child", err)
	}

	query := `
		UPDATE children
		SET first_name = $2, last_name = $3, date_of_birth = $4, gender = $5,
		    allergies = $6, medical_notes = $7, parent_id = $8,
		    enrollment_date = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		child.ID,
		child.FirstName,
		child.LastName,
		child.DateOfBirth,
		child.Gender,
		child.Allergies,
		child.MedicalNotes,
		child.ParentID,
		child.EnrollmentDate,
		child.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "child"); err != nil {
		return store.ErrChildNotFound
	}

	return nil
}

// Delete implements store.ChildStore.Delete
func (s *ChildStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "child"); err != nil {
		return store.ErrChildNotFound
	}

	return nil
}

// Count implements store.ChildStore.Count
func (s *ChildStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM children`).Scan(&count); err != nil {
		return 0, MapError(err)
	}

	return count, nil
}

func scanChild(row rowScanner) (*domain.Child, error) {
	var child domain.Child
	var enrollmentDate sql.NullTime

	err := row.Scan(
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
		return nil, err
	}

	if enrollmentDate.Valid {
		t := enrollmentDate.Time
		child.EnrollmentDate = &t
	}
	child.DateOfBirth = domain.DateOf(child.DateOfBirth)

	return &child, nil
}

func scanChildren(rows *sql.Rows) ([]*domain.Child, error) {
	var children []*domain.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, MapError(err)
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return children, nil
}
