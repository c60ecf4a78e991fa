package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the attendance and enrollment services.
const (
	TypeChildCheckedIn  = "attendance.checked_in"
	TypeChildCheckedOut = "attendance.checked_out"
	TypeChildEnrolled   = "enrollment.enrolled"
	TypeChildUnenrolled = "enrollment.unenrolled"
)

// Event represents something that happened in the system that other
// components may react to. It carries a serialized payload so handlers
// have no direct dependency on the emitting service.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type indicates what happened, e.g. TypeChildCheckedIn
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}, nil
}

// AttendancePayload describes a check-in or check-out.
type AttendancePayload struct {
	RecordID  uuid.UUID `json:"record_id"`
	ChildID   uuid.UUID `json:"child_id"`
	ParentID  uuid.UUID `json:"parent_id"`
	ChildName string    `json:"child_name"`
	Date      time.Time `json:"date"`
	At        time.Time `json:"at"`
}

// EnrollmentPayload describes an enrollment or unenrollment.
type EnrollmentPayload struct {
	ProgramID    uuid.UUID `json:"program_id"`
	ChildID      uuid.UUID `json:"child_id"`
	ParentID     uuid.UUID `json:"parent_id"`
	ChildName    string    `json:"child_name"`
	ProgramTitle string    `json:"program_title"`
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
