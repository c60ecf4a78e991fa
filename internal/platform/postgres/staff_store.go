package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// StaffStore implements store.StaffStore using PostgreSQL.
type StaffStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStaffStore creates a PostgreSQL implementation of the StaffStore interface.
func NewStaffStore(db store.DBTX, logger *slog.Logger) *StaffStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StaffStore{
		db:     db,
		logger: logger.With(slog.String("component", "staff_store")),
	}
}

// Ensure StaffStore implements store.StaffStore
var _ store.StaffStore = (*StaffStore)(nil)

const staffColumns = `id, first_name, last_name, email, phone_number, role,
	hired_at, created_at, updated_at`

// Create implements store.StaffStore.Create
func (s *StaffStore) Create(ctx context.Context, member *domain.StaffMember) error {
	if err := member.Validate(); err != nil {
		return store.NewStoreError("staff member", "create", "invalid staff member", err)
	}

	query := `
		INSERT INTO staff
			(id, first_name, last_name, email, phone_number, role,
			 hired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		member.ID,
		member.FirstName,
		member.LastName,
		member.Email,
		member.PhoneNumber,
		member.Role,
		member.HiredAt,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.StaffStore.GetByID
func (s *StaffStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)

	member, err := scanStaffMember(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrStaffNotFound
		}
		return nil, MapError(err)
	}

	return member, nil
}

// List implements store.StaffStore.List
func (s *StaffStore) List(ctx context.Context) ([]*domain.StaffMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY created_at DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var members []*domain.StaffMember
	for rows.Next() {
		member, err := scanStaffMember(rows)
		if err != nil {
			return nil, MapError(err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return members, nil
}

// Update implements store.StaffStore.Update
func (s *StaffStore) Update(ctx context.Context, member *domain.StaffMember) error {
	if err := member.Validate(); err != nil {
		return store.NewStoreError("staff member", "update", "invalid staff member", err)
	}

	query := `
		UPDATE staff
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5,
		    role = $6, hired_at = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query,
		member.ID,
		member.FirstName,
		member.LastName,
		member.Email,
		member.PhoneNumber,
		member.Role,
		member.HiredAt,
		member.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "staff member"); err != nil {
		return store.ErrStaffNotFound
	}

	return nil
}

// Delete implements store.StaffStore.Delete
func (s *StaffStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "staff member"); err != nil {
		return store.ErrStaffNotFound
	}

	return nil
}

func scanStaffMember(row rowScanner) (*domain.StaffMember, error) {
	var member domain.StaffMember
	var hiredAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&member.Email,
		&member.PhoneNumber,
		&member.Role,
		&hiredAt,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if hiredAt.Valid {
		t := hiredAt.Time
		member.HiredAt = &t
	}

	return &member, nil
}
