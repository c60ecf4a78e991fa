package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// ProgramStore implements store.ProgramStore using PostgreSQL.
type ProgramStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProgramStore creates a PostgreSQL implementation of the ProgramStore interface.
func NewProgramStore(db store.DBTX, logger *slog.Logger) *ProgramStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProgramStore{
		db:     db,
		logger: logger.With(slog.String("component", "program_store")),
	}
}

// Ensure ProgramStore implements store.ProgramStore
var _ store.ProgramStore = (*ProgramStore)(nil)

// WithTx returns a store instance bound to the given transaction.
func (s *ProgramStore) WithTx(tx *sql.Tx) store.ProgramStore {
	return &ProgramStore{db: tx, logger: s.logger}
}

const programColumns = `id, title, description, capacity, min_age, max_age,
	date, start_time, end_time, created_at, updated_at`

// Create implements store.ProgramStore.Create
func (s *ProgramStore) Create(ctx context.Context, program *domain.Program) error {
	if err := program.Validate(); err != nil {
		return store.NewStoreError("program", "create", "invalid program", err)
	}

	query := `
		INSERT INTO programs
			(id, title, description, capacity, min_age, max_age,
			 date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.ExecContext(ctx, query,
		program.ID,
		program.Title,
		program.Description,
		program.Capacity,
		program.MinAge,
		program.MaxAge,
		program.Date,
		program.StartTime,
		program.EndTime,
		program.CreatedAt,
		program.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ProgramStore.GetByID
func (s *ProgramStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id)

	return s.scanProgramRow(row)
}

// GetForUpdate implements store.ProgramStore.GetForUpdate
func (s *ProgramStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	// The row lock serializes concurrent enrollment attempts for the same
	// program so the capacity count taken afterwards is authoritative.
	row := s.db.QueryRowContext(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1 FOR UPDATE`, id)

	return s.scanProgramRow(row)
}

// List implements store.ProgramStore.List
func (s *ProgramStore) List(ctx context.Context) ([]*domain.Program, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+programColumns+` FROM programs ORDER BY date, start_time`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var programs []*domain.Program
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, MapError(err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return programs, nil
}

// Update implements store.ProgramStore.Update
func (s *ProgramStore) Update(ctx context.Context, program *domain.Program) error {
	if err := program.Validate(); err != nil {
		return store.NewStoreError("program", "update", "invalid program", err)
	}

	query := `
		UPDATE programs
		SET title = $2, description = $3, capacity = $4, min_age = $5,
		    max_age = $6, date = $7, start_time = $8, end_time = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		program.ID,
		program.Title,
		program.Description,
		program.Capacity,
		program.MinAge,
		program.MaxAge,
		program.Date,
		program.StartTime,
		program.EndTime,
		program.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "program"); err != nil {
		return store.ErrProgramNotFound
	}

	return nil
}

// Delete implements store.ProgramStore.Delete
func (s *ProgramStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "program"); err != nil {
		return store.ErrProgramNotFound
	}

	return nil
}

// Count implements store.ProgramStore.Count
func (s *ProgramStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM programs`).Scan(&count); err != nil {
		return 0, MapError(err)
	}

	return count, nil
}

func (s *ProgramStore) scanProgramRow(row rowScanner) (*domain.Program, error) {
	program, err := scanProgram(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrProgramNotFound
		}
		return nil, MapError(err)
	}

	return program, nil
}

func scanProgram(row rowScanner) (*domain.Program, error) {
	var program domain.Program

	err := row.Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.Capacity,
		&program.MinAge,
		&program.MaxAge,
		&program.Date,
		&program.StartTime,
		&program.EndTime,
		&program.CreatedAt,
		&program.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	program.Date = domain.DateOf(program.Date)

	return &program, nil
}
