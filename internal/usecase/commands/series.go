package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/clock"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

type CreateSeriesParams struct {
	ProviderID    uuid.UUID
	ServiceID     uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartDate     time.Time
	StartTime     string
	Interval      string
	EndDate       *time.Time
	Note          string
}

// MaterializeReport summarizes one materializer sweep.
type MaterializeReport struct {
	Processed    int
	Materialized int
	Skipped      int
	Failed       int
}

// DueSeriesLister is the read-side port the materializer scans with; the
// authoritative due check is repeated on the write side under the claim.
type DueSeriesLister interface {
	ListDueIDs(ctx context.Context, dueBy time.Time, limit int) ([]uuid.UUID, error)
}

type SeriesCommands interface {
	// Create registers the recurring template. The appointment on the start
	// date itself is booked by the caller as a regular booking; the series
	// tracks the dates after it.
	Create(ctx context.Context, p CreateSeriesParams) (uuid.UUID, error)
	Pause(ctx context.Context, providerID, seriesID uuid.UUID) error
	Resume(ctx context.Context, providerID, seriesID uuid.UUID) error
	End(ctx context.Context, providerID, seriesID uuid.UUID) error
	// MaterializeDue turns due occurrences into pending bookings, one series
	// per transaction. Advancing the next-occurrence pointer doubles as the
	// claim, so concurrent sweeps never double-book an occurrence.
	MaterializeDue(ctx context.Context, limit int) (MaterializeReport, error)
}

type seriesCommandsImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.ServiceCatalog
	schedules shared.ScheduleDirectory
	due       DueSeriesLister
	clock     clock.Clock
}

func NewSeriesCommands(
	uow shared.UnitOfWork,
	catalog shared.ServiceCatalog,
	schedules shared.ScheduleDirectory,
	due DueSeriesLister,
	clk clock.Clock,
) SeriesCommands {
	return &seriesCommandsImpl{
		uow:       uow,
		catalog:   catalog,
		schedules: schedules,
		due:       due,
		clock:     clk,
	}
}

func (c *seriesCommandsImpl) Create(ctx context.Context, p CreateSeriesParams) (uuid.UUID, error) {
	customer, err := booking.NewCustomer(p.CustomerName, p.CustomerEmail, p.CustomerPhone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, shared.ErrValidation)
	}
	startTime, err := schedule.ParseWallTime(p.StartTime)
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
	if !svc.IsActive {
		return uuid.Nil, errs.Mark(booking.ErrServiceInactive, shared.ErrValidation)
	}

	s, err := series.NewSeries(
		p.ProviderID, p.ServiceID, customer,
		p.StartDate, startTime, series.Interval(p.Interval), p.EndDate,
		booking.NewNote(p.Note), c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, shared.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Series().Insert(ctx, s)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID(), nil
}

func (c *seriesCommandsImpl) Pause(ctx context.Context, providerID, seriesID uuid.UUID) error {
	return c.updateSeries(ctx, providerID, seriesID, func(s *series.Series) error {
		return s.Pause()
	})
}

func (c *seriesCommandsImpl) Resume(ctx context.Context, providerID, seriesID uuid.UUID) error {
	now := c.clock.Now()
	return c.updateSeries(ctx, providerID, seriesID, func(s *series.Series) error {
		return s.Resume(now)
	})
}

func (c *seriesCommandsImpl) End(ctx context.Context, providerID, seriesID uuid.UUID) error {
	return c.updateSeries(ctx, providerID, seriesID, func(s *series.Series) error {
		return s.End()
	})
}

func (c *seriesCommandsImpl) updateSeries(
	ctx context.Context,
	providerID, seriesID uuid.UUID,
	apply func(*series.Series) error,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := loadOwnedSeries(ctx, tx, providerID, seriesID)
		if err != nil {
			return err
		}
		if err := apply(s); err != nil {
			return &shared.PolicyViolationError{Reason: err.Error()}
		}
		return tx.Series().Update(ctx, s)
	})
}

func (c *seriesCommandsImpl) MaterializeDue(ctx context.Context, limit int) (MaterializeReport, error) {
	now := c.clock.Now()
	ids, err := c.due.ListDueIDs(ctx, now, limit)
	if err != nil {
		return MaterializeReport{}, errs.Wrap(err, "failed to list due series")
	}

	var report MaterializeReport
	for _, id := range ids {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		report.Processed++
		outcome, err := c.materializeOne(ctx, id, now)
		if err != nil {
			// Leave the series for the next sweep; its claim rolled back with
			// the transaction.
			report.Failed++
			continue
		}
		switch outcome {
		case outcomeMaterialized:
			report.Materialized++
		case outcomeSkipped:
			report.Skipped++
		}
	}
	return report, nil
}

type materializeOutcome int

const (
	outcomeNotDue materializeOutcome = iota
	outcomeMaterialized
	outcomeSkipped
)

// materializeOne claims and handles one series occurrence in a single
// transaction. Losing the claim to a concurrent sweep is not an error.
func (c *seriesCommandsImpl) materializeOne(ctx context.Context, id uuid.UUID, now time.Time) (materializeOutcome, error) {
	var outcome materializeOutcome
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		outcome = outcomeNotDue

		s, err := tx.Series().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Wrap(err, "failed to load series")
		}
		if !s.IsDue(now) {
			return nil
		}

		occurrence := *s.NextOccurrence()
		if err := s.Advance(now); err != nil {
			return errs.Wrap(err, "failed to advance series")
		}
		claimed, err := tx.Series().AdvanceFrom(ctx, s, occurrence)
		if err != nil {
			return errs.Wrap(err, "failed to claim series occurrence")
		}
		if !claimed {
			return nil
		}

		skipReason, err := c.bookOccurrence(ctx, tx, s, occurrence, now)
		if err != nil {
			return err
		}
		if skipReason != "" {
			outcome = outcomeSkipped
			return tx.Events().Append(ctx, s.OccurrenceSkipped(occurrence, skipReason, now))
		}
		outcome = outcomeMaterialized
		return nil
	})
	return outcome, err
}

// bookOccurrence creates the pending booking for one claimed occurrence. A
// non-empty skip reason means the occurrence cannot be booked and the series
// moves on without it.
func (c *seriesCommandsImpl) bookOccurrence(
	ctx context.Context,
	tx shared.Tx,
	s *series.Series,
	occurrence time.Time,
	now time.Time,
) (skipReason string, err error) {
	svc, err := c.catalog.GetService(ctx, s.ServiceID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "service no longer exists", nil
		}
		return "", errs.Wrap(err, "failed to load service")
	}

	start := s.OccurrenceStartAt(occurrence)
	seriesID := s.ID()
	b, err := booking.NewBooking(s.ProviderID(), nil, svc, s.Customer(), start, s.Note(), &seriesID, now)
	if err != nil {
		return err.Error(), nil
	}

	windows, err := c.schedules.GetWorkingWindows(ctx, s.ProviderID())
	if err != nil {
		return "", errs.Wrap(err, "failed to load working windows")
	}
	timeOff, err := c.schedules.GetTimeOff(ctx, s.ProviderID(), b.Slot().Start(), b.Slot().End())
	if err != nil {
		return "", errs.Wrap(err, "failed to load time off")
	}
	if !schedule.IsOpen(windows, timeOff, schedule.Interval{Start: b.Slot().Start(), End: b.Slot().End()}) {
		return reasonOutsideWorkingHours, nil
	}

	overlap, err := tx.Bookings().FindOverlapping(ctx, s.ProviderID(), nil, b.Slot().Start(), b.Slot().End())
	if err != nil {
		return "", errs.Wrap(err, "failed to check for overlaps")
	}
	if overlap != nil {
		return "slot already booked", nil
	}

	if err := tx.Bookings().Insert(ctx, b); err != nil {
		return "", errs.Wrap(err, "failed to insert occurrence booking")
	}
	if err := tx.Events().Append(ctx, b.Created(now)); err != nil {
		return "", err
	}
	return "", nil
}

func loadOwnedSeries(ctx context.Context, tx shared.Tx, providerID, seriesID uuid.UUID) (*series.Series, error) {
	s, err := tx.Series().FindByID(ctx, seriesID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSeriesNotFound
		}
		return nil, errs.Wrap(err, "failed to load series")
	}
	if s.ProviderID() != providerID {
		return nil, shared.ErrSeriesNotFound
	}
	return s, nil
}
