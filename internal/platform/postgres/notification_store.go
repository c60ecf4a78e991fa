package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// NotificationStore implements store.NotificationStore using PostgreSQL.
type NotificationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewNotificationStore creates a PostgreSQL implementation of the
// NotificationStore interface.
func NewNotificationStore(db store.DBTX, logger *slog.Logger) *NotificationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationStore{
		db:     db,
		logger: logger.With(slog.String("component", "notification_store")),
	}
}

// Ensure NotificationStore implements store.NotificationStore
var _ store.NotificationStore = (*NotificationStore)(nil)

const notificationColumns = `id, user_id, title, message, type, is_read, created_at`

// Create implements store.NotificationStore.Create
func (s *NotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	if err := notification.Validate(); err != nil {
		return store.NewStoreError("notification", "create", "invalid notification", err)
	}

	query := `
		INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		notification.ID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.NotificationStore.GetByID
func (s *NotificationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)

	notification, err := scanNotification(row)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrNotificationNotFound
		}
		return nil, MapError(err)
	}

	return notification, nil
}

// ListByUser implements store.NotificationStore.ListByUser
func (s *NotificationStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanNotifications(rows)
}

// ListUnreadByUser implements store.NotificationStore.ListUnreadByUser
func (s *NotificationStore) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE user_id = $1 AND NOT is_read
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return scanNotifications(rows)
}

// CountUnreadByUser implements store.NotificationStore.CountUnreadByUser
func (s *NotificationStore) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read
	`, userID).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}

	return count, nil
}

// MarkRead implements store.NotificationStore.MarkRead
func (s *NotificationStore) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "notification"); err != nil {
		return store.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implements store.NotificationStore.MarkAllRead
func (s *NotificationStore) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return MapError(err)
	}

	return nil
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var notification domain.Notification

	err := row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Title,
		&notification.Message,
		&notification.Type,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &notification, nil
}

func scanNotifications(rows *sql.Rows) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, MapError(err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return notifications, nil
}
