//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

// Monday.
var monday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

type fakeSchedules struct {
	windows []schedule.WorkingWindow
	timeOff []schedule.TimeOff
	err     error
}

func (s *fakeSchedules) GetWorkingWindows(_ context.Context, _ uuid.UUID) ([]schedule.WorkingWindow, error) {
	return s.windows, s.err
}

func (s *fakeSchedules) GetTimeOff(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.TimeOff, error) {
	return s.timeOff, s.err
}

type fakeBookingReads struct {
	views map[uuid.UUID]*queries.BookingView
	busy  []schedule.Interval
	err   error
}

func (s *fakeBookingReads) FindViewByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.views[id], nil
}

func (s *fakeBookingReads) ListByProvider(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*queries.BookingListItem, error) {
	return nil, s.err
}

func (s *fakeBookingReads) ListBusyIntervals(_ context.Context, _ uuid.UUID, _ *uuid.UUID, _, _ time.Time) ([]schedule.Interval, error) {
	return s.busy, s.err
}

func mondayWindow(t *testing.T, from, to string) schedule.WorkingWindow {
	t.Helper()
	start, err := schedule.ParseWallTime(from)
	require.NoError(t, err)
	end, err := schedule.ParseWallTime(to)
	require.NoError(t, err)
	return schedule.WorkingWindow{Weekday: time.Monday, Start: start, End: end, Active: true}
}

func TestAvailabilityQueries_ListSlots(t *testing.T) {
	providerID := uuid.New()

	t.Run("returns hour slots minus busy intervals", func(t *testing.T) {
		schedules := &fakeSchedules{windows: []schedule.WorkingWindow{mondayWindow(t, "09:00", "12:00")}}
		bookings := &fakeBookingReads{busy: []schedule.Interval{
			{Start: monday.Add(10 * time.Hour), End: monday.Add(11 * time.Hour)},
		}}
		q := queries.NewAvailabilityQueries(schedules, bookings)

		slots, err := q.ListSlots(context.Background(), queries.ListSlotsParams{
			ProviderID:   providerID,
			From:         monday,
			To:           monday.AddDate(0, 0, 1),
			SlotDuration: time.Hour,
		})

		require.NoError(t, err)
		want := []queries.SlotView{
			{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)},
			{Start: monday.Add(11 * time.Hour), End: monday.Add(12 * time.Hour)},
		}
		if diff := cmp.Diff(want, slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeSchedules{}, &fakeBookingReads{})

		_, err := q.ListSlots(context.Background(), queries.ListSlotsParams{
			ProviderID:   providerID,
			From:         monday.AddDate(0, 0, 1),
			To:           monday,
			SlotDuration: time.Hour,
		})

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects a range beyond the cap", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeSchedules{}, &fakeBookingReads{})

		_, err := q.ListSlots(context.Background(), queries.ListSlotsParams{
			ProviderID:   providerID,
			From:         monday,
			To:           monday.AddDate(0, 6, 0),
			SlotDuration: time.Hour,
		})

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("an expired deadline surfaces as a timeout", func(t *testing.T) {
		schedules := &fakeSchedules{err: context.DeadlineExceeded}
		q := queries.NewAvailabilityQueries(schedules, &fakeBookingReads{})

		_, err := q.ListSlots(context.Background(), queries.ListSlotsParams{
			ProviderID:   providerID,
			From:         monday,
			To:           monday.AddDate(0, 0, 1),
			SlotDuration: time.Hour,
		})

		assert.ErrorIs(t, err, shared.ErrQueryTimeout)
	})
}

func TestBookingQueries_GetByID(t *testing.T) {
	providerID := uuid.New()
	bookingID := uuid.New()

	store := &fakeBookingReads{views: map[uuid.UUID]*queries.BookingView{
		bookingID: {ID: bookingID, ProviderID: providerID},
	}}
	q := queries.NewBookingQueries(store)

	t.Run("owner sees the booking", func(t *testing.T) {
		view, err := q.GetByID(context.Background(), providerID, bookingID)

		require.NoError(t, err)
		assert.Equal(t, bookingID, view.ID)
	})

	t.Run("another provider gets NotFound, not Forbidden", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), uuid.New(), bookingID)

		assert.ErrorIs(t, err, shared.ErrBookingNotFound)
	})
}
