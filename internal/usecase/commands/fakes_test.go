//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

// fakeStore is the in-memory backing for the fake unit of work. Rollback is
// not simulated; tests assert on success paths and on errors raised before
// any write.
type fakeStore struct {
	bookings map[uuid.UUID]*booking.Booking
	series   map[uuid.UUID]*series.Series
	events   []booking.Event

	insertErr   error
	claimDenied bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: make(map[uuid.UUID]*booking.Booking),
		series:   make(map[uuid.UUID]*series.Series),
	}
}

func (s *fakeStore) eventTopics() []string {
	topics := make([]string, len(s.events))
	for i, ev := range s.events {
		topics[i] = ev.Topic
	}
	return topics
}

type fakeUOW struct {
	store *fakeStore
}

func (u *fakeUOW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Series() shared.SeriesRepository    { return &fakeSeriesRepo{store: t.store} }
func (t *fakeTx) Events() shared.EventRepository     { return &fakeEventRepo{store: t.store} }

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Insert(_ context.Context, b *booking.Booking) error {
	if r.store.insertErr != nil {
		return r.store.insertErr
	}
	r.store.bookings[b.ID()] = b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (r *fakeBookingRepo) FindOverlapping(_ context.Context, providerID uuid.UUID, staffID *uuid.UUID, start, end time.Time) (*shared.Overlap, error) {
	for _, b := range r.store.bookings {
		if b.ProviderID() != providerID || !b.Status().HoldsCalendar() {
			continue
		}
		if !sameLane(b.StaffID(), staffID) {
			continue
		}
		if b.Slot().Start().Before(end) && start.Before(b.Slot().End()) {
			return &shared.Overlap{BookingID: b.ID(), Status: b.Status()}, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.store.bookings[b.ID()] = b
	return nil
}

func sameLane(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeSeriesRepo struct {
	store *fakeStore
}

func (r *fakeSeriesRepo) Insert(_ context.Context, s *series.Series) error {
	r.store.series[s.ID()] = s
	return nil
}

func (r *fakeSeriesRepo) FindByID(_ context.Context, id uuid.UUID) (*series.Series, error) {
	s, ok := r.store.series[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "series not found", nil)
	}
	return s, nil
}

func (r *fakeSeriesRepo) Update(_ context.Context, s *series.Series) error {
	r.store.series[s.ID()] = s
	return nil
}

func (r *fakeSeriesRepo) AdvanceFrom(_ context.Context, s *series.Series, _ time.Time) (bool, error) {
	if r.store.claimDenied {
		return false, nil
	}
	r.store.series[s.ID()] = s
	return true, nil
}

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) Append(_ context.Context, ev booking.Event) error {
	r.store.events = append(r.store.events, ev)
	return nil
}

type fakeCatalog struct {
	services map[uuid.UUID]booking.ServiceSpec
}

func (c *fakeCatalog) GetService(_ context.Context, id uuid.UUID) (booking.ServiceSpec, error) {
	svc, ok := c.services[id]
	if !ok {
		return booking.ServiceSpec{}, infra.WrapRepoErr(infra.KindNotFound, "service not found", nil)
	}
	return svc, nil
}

type fakeSchedules struct {
	windows []schedule.WorkingWindow
	timeOff []schedule.TimeOff
}

func (s *fakeSchedules) GetWorkingWindows(_ context.Context, _ uuid.UUID) ([]schedule.WorkingWindow, error) {
	return s.windows, nil
}

func (s *fakeSchedules) GetTimeOff(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.TimeOff, error) {
	return s.timeOff, nil
}

type fakeDueLister struct {
	store *fakeStore
}

func (l *fakeDueLister) ListDueIDs(_ context.Context, dueBy time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, s := range l.store.series {
		if len(ids) == limit {
			break
		}
		if s.IsDue(dueBy) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
