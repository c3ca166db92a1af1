package series

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
)

var (
	ErrInvalidInterval  = errors.New("unknown recurrence interval")
	ErrStartDateInPast  = errors.New("series start date cannot be in the past")
	ErrEndBeforeStart   = errors.New("series end date precedes start date")
	ErrNotActive        = errors.New("series is not active")
	ErrNotPaused        = errors.New("series is not paused")
	ErrAlreadyEnded     = errors.New("series has ended")
	ErrNoNextOccurrence = errors.New("series has no next occurrence")
)

// Series is the recurring template that spawns future bookings. It owns the
// next-occurrence pointer; materialized bookings reference it but live their
// own lifecycle.
type Series struct {
	id             uuid.UUID
	providerID     uuid.UUID
	serviceID      uuid.UUID
	customer       booking.Customer
	startDate      time.Time
	startTime      schedule.WallTime
	interval       Interval
	endDate        *time.Time
	status         Status
	nextOccurrence *time.Time
	note           booking.Note
	createdAt      time.Time
}

// NewSeries validates the template and computes the first next-occurrence.
// The appointment on startDate itself is booked by the caller as a regular
// booking; the series tracks the dates after it.
func NewSeries(
	providerID, serviceID uuid.UUID,
	customer booking.Customer,
	startDate time.Time,
	startTime schedule.WallTime,
	interval Interval,
	endDate *time.Time,
	note booking.Note,
	now time.Time,
) (*Series, error) {
	if !interval.IsValid() {
		return nil, ErrInvalidInterval
	}
	start := civilDate(startDate)
	if start.Before(civilDate(now)) {
		return nil, ErrStartDateInPast
	}
	if endDate != nil && civilDate(*endDate).Before(start) {
		return nil, ErrEndBeforeStart
	}

	s := &Series{
		id:         uuid.New(),
		providerID: providerID,
		serviceID:  serviceID,
		customer:   customer,
		startDate:  start,
		startTime:  startTime,
		interval:   interval,
		endDate:    endDate,
		status:     StatusActive,
		note:       note,
		createdAt:  now,
	}
	s.setNext(NextOccurrence(start, interval, now))
	return s, nil
}

func ReconstructSeries(
	id, providerID, serviceID uuid.UUID,
	customer booking.Customer,
	startDate time.Time,
	startTime schedule.WallTime,
	interval Interval,
	endDate *time.Time,
	status Status,
	nextOccurrence *time.Time,
	note booking.Note,
	createdAt time.Time,
) *Series {
	return &Series{
		id:             id,
		providerID:     providerID,
		serviceID:      serviceID,
		customer:       customer,
		startDate:      startDate,
		startTime:      startTime,
		interval:       interval,
		endDate:        endDate,
		status:         status,
		nextOccurrence: nextOccurrence,
		note:           note,
		createdAt:      createdAt,
	}
}

// Pause freezes occurrence generation. Historical bookings are untouched.
func (s *Series) Pause() error {
	if s.status != StatusActive {
		return ErrNotActive
	}
	s.status = StatusPaused
	return nil
}

// Resume reactivates the series. A frozen next-occurrence still in the
// future is kept; one that slipped into the past is recomputed forward from
// now so the series never schedules backward.
func (s *Series) Resume(now time.Time) error {
	if s.status != StatusPaused {
		return ErrNotPaused
	}
	s.status = StatusActive

	base := s.startDate
	if s.nextOccurrence != nil {
		if !s.nextOccurrence.Before(civilDate(now)) {
			return nil
		}
		base = *s.nextOccurrence
	}
	s.setNext(NextOccurrence(base, s.interval, now))
	return nil
}

// End terminates the series. Existing bookings keep their own lifecycle.
func (s *Series) End() error {
	if s.status == StatusEnded {
		return ErrAlreadyEnded
	}
	s.status = StatusEnded
	s.nextOccurrence = nil
	return nil
}

// Advance moves the next-occurrence pointer one interval forward after an
// occurrence has been handled (materialized or skipped). In storage the same
// write doubles as the worker's claim.
func (s *Series) Advance(now time.Time) error {
	if s.status != StatusActive {
		return ErrNotActive
	}
	if s.nextOccurrence == nil {
		return ErrNoNextOccurrence
	}
	s.setNext(NextOccurrence(*s.nextOccurrence, s.interval, now))
	return nil
}

func (s *Series) setNext(next time.Time) {
	if s.endDate != nil && next.After(civilDate(*s.endDate)) {
		s.status = StatusEnded
		s.nextOccurrence = nil
		return
	}
	s.nextOccurrence = &next
}

// OccurrenceStartAt anchors the series' local start time on an occurrence
// date.
func (s *Series) OccurrenceStartAt(day time.Time) time.Time {
	return s.startTime.On(day)
}

// OccurrenceSkipped records an occurrence the materializer could not book,
// with the reason, so the customer can be notified downstream.
func (s *Series) OccurrenceSkipped(day time.Time, reason string, at time.Time) booking.Event {
	return booking.Event{
		Topic:      booking.TopicSeriesOccurrenceSkipped,
		ProviderID: s.providerID,
		OccurredAt: at,
		Payload: map[string]any{
			"series_id":       s.id.String(),
			"provider_id":     s.providerID.String(),
			"service_id":      s.serviceID.String(),
			"occurrence_date": day.Format("2006-01-02"),
			"reason":          reason,
		},
	}
}

func (s *Series) IsDue(today time.Time) bool {
	return s.status == StatusActive && s.nextOccurrence != nil && !s.nextOccurrence.After(civilDate(today))
}

func (s *Series) ID() uuid.UUID              { return s.id }
func (s *Series) ProviderID() uuid.UUID      { return s.providerID }
func (s *Series) ServiceID() uuid.UUID       { return s.serviceID }
func (s *Series) Customer() booking.Customer { return s.customer }
func (s *Series) StartDate() time.Time       { return s.startDate }
func (s *Series) StartTime() schedule.WallTime {
	return s.startTime
}
func (s *Series) IntervalKind() Interval   { return s.interval }
func (s *Series) EndDate() *time.Time      { return s.endDate }
func (s *Series) Status() Status           { return s.status }
func (s *Series) NextOccurrence() *time.Time {
	return s.nextOccurrence
}
func (s *Series) Note() booking.Note   { return s.note }
func (s *Series) CreatedAt() time.Time { return s.createdAt }
