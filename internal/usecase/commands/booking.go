package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/policy"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/clock"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

const reasonOutsideWorkingHours = "outside working hours"

type CreateBookingParams struct {
	ProviderID    uuid.UUID
	StaffID       *uuid.UUID
	ServiceID     uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartsAt      time.Time
	Note          string
}

type RescheduleBookingParams struct {
	ProviderID uuid.UUID
	BookingID  uuid.UUID
	NewStartAt time.Time
}

type CancelBookingParams struct {
	ProviderID uuid.UUID
	BookingID  uuid.UUID
	Reason     string
}

type BookingCommands interface {
	// Create books a slot. The working-hours check, the overlap check and the
	// insert run in one transaction; the storage constraint backstops races
	// the check cannot see.
	Create(ctx context.Context, p CreateBookingParams) (uuid.UUID, error)
	Confirm(ctx context.Context, providerID, bookingID uuid.UUID) error
	Start(ctx context.Context, providerID, bookingID uuid.UUID) error
	Complete(ctx context.Context, providerID, bookingID uuid.UUID) error
	Cancel(ctx context.Context, p CancelBookingParams) error
	// Reschedule cancels the old booking and creates the replacement
	// atomically. The old slot is released in the same transaction, so moving
	// a booking within its own slot never self-conflicts.
	Reschedule(ctx context.Context, p RescheduleBookingParams) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.ServiceCatalog
	schedules shared.ScheduleDirectory
	rules     policy.Rules
	clock     clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	catalog shared.ServiceCatalog,
	schedules shared.ScheduleDirectory,
	rules policy.Rules,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		catalog:   catalog,
		schedules: schedules,
		rules:     rules,
		clock:     clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (uuid.UUID, error) {
	customer, err := booking.NewCustomer(p.CustomerName, p.CustomerEmail, p.CustomerPhone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, shared.ErrValidation)
	}

	svc, err := c.catalog.GetService(ctx, p.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, shared.ErrServiceNotFound
		}
		return uuid.Nil, errs.Wrap(err, "failed to load service")
	}

	now := c.clock.Now()
	b, err := booking.NewBooking(p.ProviderID, p.StaffID, svc, customer, p.StartsAt, booking.NewNote(p.Note), nil, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, shared.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return c.placeBooking(ctx, tx, b, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

// placeBooking runs the availability checks and the guarded insert for a
// pending booking inside an open transaction.
func (c *bookingCommandsImpl) placeBooking(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	slot := b.Slot()

	windows, err := c.schedules.GetWorkingWindows(ctx, b.ProviderID())
	if err != nil {
		return errs.Wrap(err, "failed to load working windows")
	}
	timeOff, err := c.schedules.GetTimeOff(ctx, b.ProviderID(), slot.Start(), slot.End())
	if err != nil {
		return errs.Wrap(err, "failed to load time off")
	}
	if !schedule.IsOpen(windows, timeOff, schedule.Interval{Start: slot.Start(), End: slot.End()}) {
		return &shared.ConflictError{Reason: reasonOutsideWorkingHours}
	}

	overlap, err := tx.Bookings().FindOverlapping(ctx, b.ProviderID(), b.StaffID(), slot.Start(), slot.End())
	if err != nil {
		return errs.Wrap(err, "failed to check for overlaps")
	}
	if overlap != nil {
		return &shared.ConflictError{ConflictingBookingID: overlap.BookingID}
	}

	if err := tx.Bookings().Insert(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost a race the pre-check could not see; the winner's id is
			// unknown here.
			return &shared.ConflictError{}
		}
		return errs.Wrap(err, "failed to insert booking")
	}
	return tx.Events().Append(ctx, b.Created(now))
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, providerID, bookingID uuid.UUID) error {
	return c.applyTransition(ctx, providerID, bookingID, (*booking.Booking).Confirm)
}

func (c *bookingCommandsImpl) Start(ctx context.Context, providerID, bookingID uuid.UUID) error {
	return c.applyTransition(ctx, providerID, bookingID, (*booking.Booking).Start)
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, providerID, bookingID uuid.UUID) error {
	return c.applyTransition(ctx, providerID, bookingID, (*booking.Booking).Complete)
}

func (c *bookingCommandsImpl) applyTransition(
	ctx context.Context,
	providerID, bookingID uuid.UUID,
	apply func(*booking.Booking, time.Time) (booking.Event, error),
) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedBooking(ctx, tx, providerID, bookingID)
		if err != nil {
			return err
		}
		ev, err := apply(b, now)
		if err != nil {
			return &shared.PolicyViolationError{Reason: err.Error()}
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}
		return tx.Events().Append(ctx, ev)
	})
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, p CancelBookingParams) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedBooking(ctx, tx, p.ProviderID, p.BookingID)
		if err != nil {
			return err
		}

		svc, err := c.catalog.GetService(ctx, b.ServiceID())
		if err != nil {
			return errs.Wrap(err, "failed to load service for cancellation fee")
		}
		decision := c.rules.Evaluate(b.Status(), b.Slot().Start(), svc.PriceCents, now)
		if !decision.Allowed {
			return &shared.PolicyViolationError{Reason: decision.Reason, FeeCents: decision.FeeCents}
		}

		ev, err := b.Cancel(now, p.Reason, decision.FeeCents)
		if err != nil {
			return &shared.PolicyViolationError{Reason: err.Error()}
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Wrap(err, "failed to update booking")
		}
		return tx.Events().Append(ctx, ev)
	})
}

func (c *bookingCommandsImpl) Reschedule(ctx context.Context, p RescheduleBookingParams) (uuid.UUID, error) {
	now := c.clock.Now()
	var newID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		old, err := loadOwnedBooking(ctx, tx, p.ProviderID, p.BookingID)
		if err != nil {
			return err
		}

		svc, err := c.catalog.GetService(ctx, old.ServiceID())
		if err != nil {
			return errs.Wrap(err, "failed to load service")
		}
		decision := c.rules.Evaluate(old.Status(), old.Slot().Start(), svc.PriceCents, now)
		if !decision.Allowed {
			return &shared.PolicyViolationError{Reason: decision.Reason, FeeCents: decision.FeeCents}
		}

		replacement, err := booking.NewBooking(
			old.ProviderID(), old.StaffID(), svc, old.Customer(), p.NewStartAt, old.Note(), old.SeriesID(), now,
		)
		if err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}

		cancelEv, err := old.Cancel(now, "rescheduled", decision.FeeCents)
		if err != nil {
			return &shared.PolicyViolationError{Reason: err.Error()}
		}
		if err := tx.Bookings().Update(ctx, old); err != nil {
			return errs.Wrap(err, "failed to release old slot")
		}
		if err := tx.Events().Append(ctx, cancelEv); err != nil {
			return err
		}

		if err := c.placeBooking(ctx, tx, replacement, now); err != nil {
			return err
		}
		newID = replacement.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return newID, nil
}

// loadOwnedBooking resolves a booking scoped to the requesting provider. A
// booking owned by another provider is NotFound, not Forbidden.
func loadOwnedBooking(ctx context.Context, tx shared.Tx, providerID, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	if b.ProviderID() != providerID {
		return nil, shared.ErrBookingNotFound
	}
	return b, nil
}
