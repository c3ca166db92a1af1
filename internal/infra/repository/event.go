package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
)

// EventRepository is the outbox writer. Events commit with the state change
// that produced them; a relay publishes and prunes them out of band.
type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(db db.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, ev booking.Event) error {
	const query = `
		INSERT INTO booking_events (id, topic, booking_id, provider_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	bookingID := uuid.NullUUID{UUID: ev.BookingID, Valid: ev.BookingID != uuid.Nil}
	_, err := r.db.Exec(ctx, query, uuid.New(), ev.Topic, bookingID, ev.ProviderID, ev.Payload, ev.OccurredAt)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to append event", err)
	}
	return nil
}
