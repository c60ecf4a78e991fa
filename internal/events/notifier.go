package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brightwood/daycare-api/internal/domain"
	"github.com/brightwood/daycare-api/internal/store"
)

// NotificationWriter reacts to attendance and enrollment events by writing a
// notification row for the child's parent. Failures here are logged and
// surfaced to the emitter but never affect the operation that produced the
// event, which has already committed.
type NotificationWriter struct {
	notifications store.NotificationStore
	location      *time.Location
	logger        *slog.Logger
}

// NewNotificationWriter creates a handler that persists parent-facing
// notifications. Times in notification messages are rendered in the
// facility's time zone.
func NewNotificationWriter(
	notifications store.NotificationStore,
	location *time.Location,
	logger *slog.Logger,
) *NotificationWriter {
	if notifications == nil {
		panic("notification store cannot be nil")
	}

	if location == nil {
		location = time.UTC
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NotificationWriter{
		notifications: notifications,
		location:      location,
		logger:        logger.With("component", "notification_writer"),
	}
}

// Ensure NotificationWriter implements EventHandler
var _ EventHandler = (*NotificationWriter)(nil)

// HandleEvent implements EventHandler.
func (w *NotificationWriter) HandleEvent(ctx context.Context, event *Event) error {
	switch event.Type {
	case TypeChildCheckedIn, TypeChildCheckedOut:
		return w.handleAttendance(ctx, event)
	case TypeChildEnrolled, TypeChildUnenrolled:
		return w.handleEnrollment(ctx, event)
	default:
		w.logger.Debug("ignoring event", "event_type", event.Type)
		return nil
	}
}

func (w *NotificationWriter) handleAttendance(ctx context.Context, event *Event) error {
	var payload AttendancePayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode attendance payload: %w", err)
	}

	at := payload.At.In(w.location).Format("3:04 PM")

	var title, message string
	if event.Type == TypeChildCheckedIn {
		title = "Check-in"
		message = fmt.Sprintf("%s was checked in at %s.", payload.ChildName, at)
	} else {
		title = "Check-out"
		message = fmt.Sprintf("%s was checked out at %s.", payload.ChildName, at)
	}

	return w.write(ctx, payload.ParentID, title, message, domain.NotificationTypeAttendance)
}

func (w *NotificationWriter) handleEnrollment(ctx context.Context, event *Event) error {
	var payload EnrollmentPayload
	if err := event.UnmarshalPayload(&payload); err != nil {
		return fmt.Errorf("failed to decode enrollment payload: %w", err)
	}

	var title, message string
	if event.Type == TypeChildEnrolled {
		title = "Program enrollment"
		message = fmt.Sprintf("%s was enrolled in %s.", payload.ChildName, payload.ProgramTitle)
	} else {
		title = "Program withdrawal"
		message = fmt.Sprintf("%s was withdrawn from %s.", payload.ChildName, payload.ProgramTitle)
	}

	return w.write(ctx, payload.ParentID, title, message, domain.NotificationTypeEnrollment)
}

func (w *NotificationWriter) write(ctx context.Context, userID uuid.UUID, title, message, notificationType string) error {
	notification, err := domain.NewNotification(userID, title, message, notificationType)
	if err != nil {
		return fmt.Errorf("failed to build notification: %w", err)
	}

	if err := w.notifications.Create(ctx, notification); err != nil {
		w.logger.Error("failed to persist notification",
			"error", err,
			"user_id", userID)
		return err
	}

	return nil
}
