package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
)

// ActivityStore defines persistence operations for daily activity log entries.
type ActivityStore interface {
	// Create inserts a new activity entry.
	Create(ctx context.Context, activity *domain.DailyActivity) error

	// GetByID retrieves an activity by ID. Returns ErrActivityNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyActivity, error)

	// List returns all activities, most recent first.
	List(ctx context.Context) ([]*domain.DailyActivity, error)

	// ListByChild returns all activities for a child, most recent first.
	ListByChild(ctx context.Context, childID uuid.UUID) ([]*domain.DailyActivity, error)

	// ListByDate returns activities whose timestamp falls within the given
	// calendar day, most recent first.
	ListByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.DailyActivity, error)

	// Delete removes an activity. Returns ErrActivityNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
