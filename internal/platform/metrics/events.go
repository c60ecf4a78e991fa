package metrics

import (
	"context"

	"github.com/brightwood/daycare-api/internal/events"
)

// EventCounter is an event handler that turns lifecycle events into
// Prometheus counters. It never fails; counting is fire and forget.
type EventCounter struct{}

// NewEventCounter creates an EventCounter.
func NewEventCounter() *EventCounter {
	return &EventCounter{}
}

// Ensure EventCounter implements events.EventHandler
var _ events.EventHandler = (*EventCounter)(nil)

// HandleEvent implements events.EventHandler.
func (c *EventCounter) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Type {
	case events.TypeChildCheckedIn:
		CheckInsTotal.Inc()
		CurrentlyPresent.Inc()
	case events.TypeChildCheckedOut:
		CheckOutsTotal.Inc()
		CurrentlyPresent.Dec()
	case events.TypeChildEnrolled:
		EnrollmentsTotal.WithLabelValues("enrolled").Inc()
	case events.TypeChildUnenrolled:
		EnrollmentsTotal.WithLabelValues("unenrolled").Inc()
	}
	return nil
}
