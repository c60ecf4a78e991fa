package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
)

// NotificationStore defines persistence operations for user notifications.
type NotificationStore interface {
	// Create inserts a new notification.
	Create(ctx context.Context, notification *domain.Notification) error

	// GetByID retrieves a notification by ID. Returns ErrNotificationNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	// ListByUser returns all notifications for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// ListUnreadByUser returns the user's unread notifications, newest first.
	ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error)

	// CountUnreadByUser counts the user's unread notifications.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// MarkRead sets the read flag on a notification.
	// Returns ErrNotificationNotFound if absent.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead sets the read flag on all of a user's notifications.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
