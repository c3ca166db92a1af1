package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

const maxAvailabilityRangeDays = 62

type ListSlotsParams struct {
	ProviderID   uuid.UUID
	StaffID      *uuid.UUID
	From         time.Time
	To           time.Time
	SlotDuration time.Duration
}

type AvailabilityQueries interface {
	// ListSlots returns the provider's free slots in the range, sorted by
	// start. A caller-supplied deadline that expires mid-query surfaces as a
	// retryable timeout, never a partial list.
	ListSlots(ctx context.Context, p ListSlotsParams) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	schedules shared.ScheduleDirectory
	bookings  BookingReadStore
}

func NewAvailabilityQueries(schedules shared.ScheduleDirectory, bookings BookingReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		schedules: schedules,
		bookings:  bookings,
	}
}

func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, p ListSlotsParams) ([]SlotView, error) {
	if p.SlotDuration <= 0 || !p.From.Before(p.To) {
		return nil, shared.ErrValidation
	}
	if p.To.Sub(p.From) > maxAvailabilityRangeDays*24*time.Hour {
		return nil, shared.ErrValidation
	}

	windows, err := q.schedules.GetWorkingWindows(ctx, p.ProviderID)
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	timeOff, err := q.schedules.GetTimeOff(ctx, p.ProviderID, p.From, p.To)
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	busy, err := q.bookings.ListBusyIntervals(ctx, p.ProviderID, p.StaffID, p.From, p.To)
	if err != nil {
		return nil, wrapQueryErr(err)
	}

	free := schedule.FreeSlots(windows, timeOff, busy, p.From, p.To, p.SlotDuration)

	slots := make([]SlotView, len(free))
	for i, iv := range free {
		slots[i] = SlotView{Start: iv.Start, End: iv.End}
	}
	return slots, nil
}

func wrapQueryErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(err, shared.ErrQueryTimeout)
	}
	return err
}
