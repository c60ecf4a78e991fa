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

// ActivityStore implements store.ActivityStore using PostgreSQL.
type ActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewActivityStore creates a PostgreSQL implementation of the ActivityStore interface.
func NewActivityStore(db store.DBTX, logger *slog.Logger) *ActivityStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ActivityStore{
		db:     db,
		logger: logger.With(slog.String("component", "activity_store")),
	}
}

// Ensure ActivityStore implements store.ActivityStore
var _ store.ActivityStore = (*ActivityStore)(nil)

const activityColumns = `id, child_id, activity_type, activity_time,
	duration, notes, food_item, mood, created_at`

// Create implements store.ActivityStore.Create
func (s *ActivityStore) Create(ctx context.Context, activity *domain.DailyActivity) error {
	if err := activity.Validate(); err != nil {
		return store.NewStoreError("daily activity", "create", "invalid activity", err)
	}

	query := `
		INSERT INTO daily_activities
			(id, child_id, activity_type, activity_time, duration,
			 notes, food_item, mood, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		activity.ID,
		activity.ChildID,
		activity.ActivityType,
		activity.ActivityTime,
		activity.Duration,
		activity.Notes,
		activity.FoodItem,
		activity.Mood,
		activity.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ActivityStore.GetByID
func (s *ActivityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyActivity, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM daily_activities WHERE id = $1`, id)

	activity, err := scanActivity(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrActivityNotFound
		}
		return nil, MapError(err)
	}

	return activity, nil
}

// List implements store.ActivityStore.List
func (s *ActivityStore) List(ctx context.Context) ([]*domain.DailyActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+activityColumns+` FROM daily_activities ORDER BY activity_time DESC`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanActivities(rows)
}

// ListByChild implements store.ActivityStore.ListByChild
func (s *ActivityStore) ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.DailyActivity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+activityColumns+`
		FROM daily_activities
		WHERE child_id = $1
		ORDER BY activity_time DESC
	`, childID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanActivities(rows)
}

// ListByDate implements store.ActivityStore.ListByDate
func (s *ActivityStore) ListByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.DailyActivity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+activityColumns+`
		FROM daily_activities
		WHERE activity_time >= $1 AND activity_time < $2
		ORDER BY activity_time DESC
	`, dayStart, dayEnd)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanActivities(rows)
}

// Delete implements store.ActivityStore.Delete
func (s *ActivityStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM daily_activities WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "daily activity"); err != nil {
		return store.ErrActivityNotFound
	}

	return nil
}

func scanActivity(row rowScanner) (*domain.DailyActivity, error) {
	var activity domain.DailyActivity

	err := row.Scan(
		&activity.ID,
		&activity.ChildID,
		&activity.ActivityType,
		&activity.ActivityTime,
		&activity.Duration,
		&activity.Notes,
		&activity.FoodItem,
		&activity.Mood,
		&activity.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

func scanActivities(rows *sql.Rows) ([]*domain.DailyActivity, error) {
	var activities []*domain.DailyActivity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, MapError(err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return activities, nil
}
