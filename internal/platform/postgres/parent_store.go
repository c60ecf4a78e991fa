package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// ParentStore implements store.ParentStore using PostgreSQL.
type ParentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewParentStore creates a PostgreSQL implementation of the ParentStore interface.
func NewParentStore(db store.DBTX, logger *slog.Logger) *ParentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ParentStore{
		db:     db,
		logger: logger.With(slog.String("component", "parent_store")),
	}
}

// Ensure ParentStore implements store.ParentStore
var _ store.ParentStore = (*ParentStore)(nil)

const parentColumns = `id, first_name, last_name, email, phone_number,
	address, emergency_contact, created_at, updated_at`

// Create implements store.ParentStore.Create
func (s *ParentStore) Create(ctx context.Context, parent *domain.Parent) error {
	if err := parent.Validate(); err != nil {
		return store.NewStoreError("parent", "create", "invalid parent", err)
	}

	query := `
		INSERT INTO parents
			(id, first_name, last_name, email, phone_number, address,
			 emergency_contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		parent.ID,
		parent.FirstName,
		parent.LastName,
		parent.Email,
		parent.PhoneNumber,
		parent.Address,
		parent.EmergencyContact,
		parent.CreatedAt,
		parent.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ParentStore.GetByID
func (s *ParentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Parent, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+parentColumns+` FROM parents WHERE id = $1`, id)

	var parent domain.Parent
	err := row.Scan(
		&parent.ID,
		&parent.FirstName,
		&parent.LastName,
		&parent.Email,
		&parent.PhoneNumber,
		&parent.Address,
		&parent.EmergencyContact,
		&parent.CreatedAt,
		&parent.UpdatedAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrParentNotFound
		}
		return nil, MapError(err)
	}

	return &parent, nil
}

// List implements store.ParentStore.List
func (s *ParentStore) List(ctx context.Context) ([]*domain.Parent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+parentColumns+` FROM parents ORDER BY created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var parents []*domain.Parent
	for rows.Next() {
		var parent domain.Parent
		err := rows.Scan(
			&parent.ID,
			&parent.FirstName,
			&parent.LastName,
			&parent.Email,
			&parent.PhoneNumber,
			&parent.Address,
			&parent.EmergencyContact,
			&parent.CreatedAt,
			&parent.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		parents = append(parents, &parent)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return parents, nil
}

// Update implements store.ParentStore.Update
func (s *ParentStore) Update(ctx context.Context, parent *domain.Parent) error {
	if err := parent.Validate(); err != nil {
		return store.NewStoreError("parent", "update", "invalid parent", err)
	}

	query := `
		UPDATE parents
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5,
		    address = $6, emergency_contact = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		parent.ID,
		parent.FirstName,
		parent.LastName,
		parent.Email,
		parent.PhoneNumber,
		parent.Address,
		parent.EmergencyContact,
		parent.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "parent"); err != nil {
		return store.ErrParentNotFound
	}

	return nil
}

// Delete implements store.ParentStore.Delete
func (s *ParentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM parents WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "parent"); err != nil {
		return store.ErrParentNotFound
	}

	return nil
}

// Count implements store.ParentStore.Count
func (s *ParentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM parents`).Scan(&count); err != nil {
		return 0, MapError(err)
	}

	return count, nil
}
