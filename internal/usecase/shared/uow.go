package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
)

// UnitOfWork scopes repository work to one database transaction. Within
// retries serialization failures and deadlocks with backoff before giving up,
// so the conflict check and the guarded insert always commit (or fail)
// together — check-then-insert without this wrapping is a race.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Series() SeriesRepository
	Events() EventRepository
}

// Overlap identifies the holds-the-calendar booking blocking a slot.
type Overlap struct {
	BookingID uuid.UUID
	Status    booking.Status
}

type BookingRepository interface {
	// Insert persists a new booking. The storage layer enforces the
	// no-overlap invariant for holds-the-calendar statuses and reports a
	// violation as a conflict-kind error.
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindOverlapping returns the first holds-the-calendar booking on the
	// same (provider, staff) lane intersecting [start, end), or nil.
	FindOverlapping(ctx context.Context, providerID uuid.UUID, staffID *uuid.UUID, start, end time.Time) (*Overlap, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type SeriesRepository interface {
	Insert(ctx context.Context, s *series.Series) error
	FindByID(ctx context.Context, id uuid.UUID) (*series.Series, error)
	Update(ctx context.Context, s *series.Series) error
	// AdvanceFrom writes the already-advanced series state, guarded on the
	// previous next-occurrence date. Advancing the date is the same write
	// that claims the occurrence, so concurrent workers cannot
	// double-materialize: exactly one sees claimed=true.
	AdvanceFrom(ctx context.Context, s *series.Series, prevNextOccurrence time.Time) (claimed bool, err error)
}

// EventRepository appends domain events to the outbox inside the same
// transaction as the state change they describe.
type EventRepository interface {
	Append(ctx context.Context, ev booking.Event) error
}

// ServiceCatalog is the external service-directory collaborator, read-only.
type ServiceCatalog interface {
	GetService(ctx context.Context, id uuid.UUID) (booking.ServiceSpec, error)
}

// ScheduleDirectory is the provider-management collaborator: recurring
// working hours and ad-hoc time-off, read-only from the scheduler's side.
type ScheduleDirectory interface {
	GetWorkingWindows(ctx context.Context, providerID uuid.UUID) ([]schedule.WorkingWindow, error)
	GetTimeOff(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]schedule.TimeOff, error)
}
