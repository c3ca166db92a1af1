package booking

import (
	"time"

	"github.com/google/uuid"
)

// Event topics consumed by the notification and payment collaborators. This
// core only records events; delivery happens elsewhere.
const (
	TopicBookingCreated          = "booking.created"
	TopicBookingConfirmed        = "booking.confirmed"
	TopicBookingStarted          = "booking.started"
	TopicBookingCompleted        = "booking.completed"
	TopicBookingCancelled        = "booking.cancelled"
	TopicSeriesOccurrenceSkipped = "series.occurrence.skipped"
)

// Event is a domain event appended to the outbox in the same transaction as
// the state change it describes.
type Event struct {
	Topic      string
	BookingID  uuid.UUID
	ProviderID uuid.UUID
	OccurredAt time.Time
	Payload    map[string]any
}

func newEvent(topic string, b *Booking, at time.Time, extra map[string]any) Event {
	payload := map[string]any{
		"booking_id":  b.id.String(),
		"provider_id": b.providerID.String(),
		"service_id":  b.serviceID.String(),
		"starts_at":   b.slot.Start().Format(time.RFC3339),
		"ends_at":     b.slot.End().Format(time.RFC3339),
		"status":      b.status.String(),
	}
	for k, v := range extra {
		payload[k] = v
	}
	return Event{
		Topic:      topic,
		BookingID:  b.id,
		ProviderID: b.providerID,
		OccurredAt: at,
		Payload:    payload,
	}
}
