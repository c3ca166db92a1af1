package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrStartInPast       = errors.New("start time cannot be in the past")
	ErrServiceInactive   = errors.New("service is not active")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrServiceUnderway   = errors.New("booking is already in progress")
	ErrAlreadyTerminal   = errors.New("booking is in a terminal status")
)

// ServiceSpec is the slice of the service catalog a booking needs: the
// duration sizes the slot at creation time and the price feeds cancellation
// fees. Later catalog changes never resize existing bookings.
type ServiceSpec struct {
	ID              uuid.UUID
	DurationMinutes int
	PriceCents      int64
	IsActive        bool
}

type Booking struct {
	id                   uuid.UUID
	providerID           uuid.UUID
	staffID              *uuid.UUID
	serviceID            uuid.UUID
	customer             Customer
	slot                 TimeSlot
	status               Status
	note                 Note
	seriesID             *uuid.UUID
	createdAt            time.Time
	cancelledAt          *time.Time
	cancellationReason   *string
	cancellationFeeCents int64
}

// NewBooking sizes the slot from the service duration and starts the
// lifecycle at pending.
func NewBooking(
	providerID uuid.UUID,
	staffID *uuid.UUID,
	svc ServiceSpec,
	customer Customer,
	start time.Time,
	note Note,
	seriesID *uuid.UUID,
	now time.Time,
) (*Booking, error) {
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}
	if svc.DurationMinutes <= 0 {
		return nil, ErrInvalidTimeSlot
	}
	if start.Before(now) {
		return nil, ErrStartInPast
	}

	slot, err := NewTimeSlot(start, start.Add(time.Duration(svc.DurationMinutes)*time.Minute))
	if err != nil {
		return nil, ErrInvalidTimeSlot
	}

	return &Booking{
		id:         uuid.New(),
		providerID: providerID,
		staffID:    staffID,
		serviceID:  svc.ID,
		customer:   customer,
		slot:       slot,
		status:     StatusPending,
		note:       note,
		seriesID:   seriesID,
		createdAt:  now,
	}, nil
}

func Reconstruct(
	id, providerID uuid.UUID,
	staffID *uuid.UUID,
	serviceID uuid.UUID,
	customer Customer,
	slot TimeSlot,
	status Status,
	note Note,
	seriesID *uuid.UUID,
	createdAt time.Time,
	cancelledAt *time.Time,
	cancellationReason *string,
	cancellationFeeCents int64,
) *Booking {
	return &Booking{
		id:                   id,
		providerID:           providerID,
		staffID:              staffID,
		serviceID:            serviceID,
		customer:             customer,
		slot:                 slot,
		status:               status,
		note:                 note,
		seriesID:             seriesID,
		createdAt:            createdAt,
		cancelledAt:          cancelledAt,
		cancellationReason:   cancellationReason,
		cancellationFeeCents: cancellationFeeCents,
	}
}

// Created emits the creation event for a booking persisted for the first time.
func (b *Booking) Created(now time.Time) Event {
	return newEvent(TopicBookingCreated, b, now, nil)
}

func (b *Booking) Confirm(now time.Time) (Event, error) {
	if err := b.transition(StatusConfirmed); err != nil {
		return Event{}, err
	}
	return newEvent(TopicBookingConfirmed, b, now, nil), nil
}

func (b *Booking) Start(now time.Time) (Event, error) {
	if err := b.transition(StatusInProgress); err != nil {
		return Event{}, err
	}
	return newEvent(TopicBookingStarted, b, now, nil), nil
}

func (b *Booking) Complete(now time.Time) (Event, error) {
	if err := b.transition(StatusCompleted); err != nil {
		return Event{}, err
	}
	return newEvent(TopicBookingCompleted, b, now, nil), nil
}

// Cancel applies the terminal cancellation transition, recording reason,
// timestamp and the fee the policy engine computed.
func (b *Booking) Cancel(now time.Time, reason string, feeCents int64) (Event, error) {
	if err := b.transition(StatusCancelled); err != nil {
		return Event{}, err
	}
	b.cancelledAt = &now
	b.cancellationReason = &reason
	b.cancellationFeeCents = feeCents
	return newEvent(TopicBookingCancelled, b, now, map[string]any{
		"reason":    reason,
		"fee_cents": feeCents,
	}), nil
}

func (b *Booking) transition(next Status) error {
	if b.status.CanTransitionTo(next) {
		b.status = next
		return nil
	}
	if next == StatusCancelled && b.status == StatusInProgress {
		return ErrServiceUnderway
	}
	if b.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	return ErrInvalidTransition
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ProviderID() uuid.UUID        { return b.providerID }
func (b *Booking) StaffID() *uuid.UUID          { return b.staffID }
func (b *Booking) ServiceID() uuid.UUID         { return b.serviceID }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) Slot() TimeSlot               { return b.slot }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) SeriesID() *uuid.UUID         { return b.seriesID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CancellationReason() *string  { return b.cancellationReason }
func (b *Booking) CancellationFeeCents() int64  { return b.cancellationFeeCents }
