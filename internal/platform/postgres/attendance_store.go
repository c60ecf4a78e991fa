package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// AttendanceStore implements store.AttendanceStore using PostgreSQL.
type AttendanceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAttendanceStore creates a PostgreSQL implementation of the
// AttendanceStore interface. The database handle is initialized and managed
// by the caller. A nil logger falls back to the default.
func NewAttendanceStore(db store.DBTX, logger *slog.Logger) *AttendanceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AttendanceStore{
		db:     db,
		logger: logger.With(slog.String("component", "attendance_store")),
	}
}

// Ensure AttendanceStore implements store.AttendanceStore
var _ store.AttendanceStore = (*AttendanceStore)(nil)

// WithTx returns a store instance bound to the given transaction.
func (s *AttendanceStore) WithTx(tx *sql.Tx) store.AttendanceStore {
	return &AttendanceStore{db: tx, logger: s.logger}
}

const attendanceColumns = `id, child_id, date, check_in_time, check_out_time,
	check_in_notes, check_out_notes, created_at, updated_at`

// Create implements store.AttendanceStore.Create
func (s *AttendanceStore) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	if err := record.Validate(); err != nil {
		return store.NewStoreError("attendance record", "create", "invalid record", err)
	}

	query := `
		INSERT INTO attendance_records
			(id, child_id, date, check_in_time, check_out_time,
			 check_in_notes, check_out_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.ChildID,
		record.Date,
		record.CheckInTime,
		record.CheckOutTime,
		record.CheckInNotes,
		record.CheckOutNotes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.AttendanceStore.GetByID
func (s *AttendanceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id)

	record, err := scanAttendanceRecord(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrAttendanceNotFound
		}
		return nil, MapError(err)
	}

	return record, nil
}

// GetOpenByChildAndDate implements store.AttendanceStore.GetOpenByChildAndDate
func (s *AttendanceStore) GetOpenByChildAndDate(ctx context.Context, childID uuid.UUID, date time.Time) (*domain.AttendanceRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE child_id = $1 AND date = $2 AND check_out_time IS NULL
	`, childID, date)

	record, err := scanAttendanceRecord(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrAttendanceNotFound
		}
		return nil, MapError(err)
	}

	return record, nil
}

// CloseOut implements store.AttendanceStore.CloseOut
func (s *AttendanceStore) CloseOut(ctx context.Context, record *domain.AttendanceRecord) error {
	query := `
		UPDATE attendance_records
		SET check_out_time = $2, check_out_notes = $3, updated_at = $4
		WHERE id = $1 AND check_out_time IS NULL
	`

	result, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.CheckOutTime,
		record.CheckOutNotes,
		record.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "attendance record"); err != nil {
		return store.ErrAttendanceNotFound
	}

	return nil
}

// ListByDate implements store.AttendanceStore.ListByDate
func (s *AttendanceStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE date = $1
		ORDER BY check_in_time DESC
	`, date)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanAttendanceRecords(rows)
}

// ListByChild implements store.AttendanceStore.ListByChild
func (s *AttendanceStore) ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		WHERE child_id = $1
		ORDER BY check_in_time DESC
	`, childID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanAttendanceRecords(rows)
}

// ListAll implements store.AttendanceStore.ListAll
func (s *AttendanceStore) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance_records
		ORDER BY check_in_time DESC
	`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanAttendanceRecords(rows)
}

// CountOpenByDate implements store.AttendanceStore.CountOpenByDate
func (s *AttendanceStore) CountOpenByDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE date = $1 AND check_out_time IS NULL
	`, date).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}

	return count, nil
}

// Delete implements store.AttendanceStore.Delete
func (s *AttendanceStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "attendance record"); err != nil {
		return store.ErrAttendanceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendanceRecord(row rowScanner) (*domain.AttendanceRecord, error) {
	var record domain.AttendanceRecord
	var checkOut sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.ChildID,
		&record.Date,
		&record.CheckInTime,
		&checkOut,
		&record.CheckInNotes,
		&record.CheckOutNotes,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checkOut.Valid {
		t := checkOut.Time
		record.CheckOutTime = &t
	}

	// DATE columns scan with an arbitrary zone; normalize to midnight UTC
	// so equality comparisons against domain.DateOf hold.
	record.Date = domain.DateOf(record.Date)

	return &record, nil
}

func scanAttendanceRecords(rows *sql.Rows) ([]*domain.AttendanceRecord, error) {
	var records []*domain.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, MapError(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}
