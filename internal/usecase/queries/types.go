package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
)

// Read models (DTO for the read side)
type BookingView struct {
	ID                   uuid.UUID  `json:"id"`
	ProviderID           uuid.UUID  `json:"provider_id"`
	StaffID              *uuid.UUID `json:"staff_id,omitempty"`
	ServiceID            uuid.UUID  `json:"service_id"`
	CustomerName         string     `json:"customer_name"`
	CustomerEmail        string     `json:"customer_email"`
	CustomerPhone        string     `json:"customer_phone,omitempty"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	Status               string     `json:"status"`
	Note                 string     `json:"note,omitempty"`
	SeriesID             *uuid.UUID `json:"series_id,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason   *string    `json:"cancellation_reason,omitempty"`
	CancellationFeeCents int64      `json:"cancellation_fee_cents"`
	CreatedAt            time.Time  `json:"created_at"`
}

type BookingListItem struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	ServiceID uuid.UUID  `json:"service_id"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	Status    string     `json:"status"`
}

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type SeriesView struct {
	ID             uuid.UUID  `json:"id"`
	ProviderID     uuid.UUID  `json:"provider_id"`
	ServiceID      uuid.UUID  `json:"service_id"`
	CustomerName   string     `json:"customer_name"`
	CustomerEmail  string     `json:"customer_email"`
	StartDate      time.Time  `json:"start_date"`
	StartTime      string     `json:"start_time"`
	Interval       string     `json:"interval"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status"`
	NextOccurrence *time.Time `json:"next_occurrence,omitempty"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Read-store ports implemented by infra.
type BookingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
	// ListBusyIntervals returns the holds-the-calendar intervals for a
	// provider/staff lane within the range, ordered by start.
	ListBusyIntervals(ctx context.Context, providerID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
}

type SeriesReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*SeriesView, error)
	// ListDueIDs returns ids of active series whose next occurrence is on or
	// before the given date.
	ListDueIDs(ctx context.Context, dueBy time.Time, limit int) ([]uuid.UUID, error)
}
