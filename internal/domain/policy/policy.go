// Package policy implements the time-based cancellation/reschedule rules.
// The values are configuration; the math here never blocks and never touches
// storage.
package policy

import (
	"time"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
)

// Rules is the configured policy: a window measured in hours before start
// inside which cancellation either incurs a fee proportional to the service
// price or is disallowed outright.
type Rules struct {
	WindowHours          int
	FeePercent           float64
	DisallowInsideWindow bool
}

// Decision is the policy verdict, carrying enough context for the caller to
// re-confirm without another round trip.
type Decision struct {
	Allowed      bool
	FeeCents     int64
	Reason       string
	InsideWindow bool
}

const (
	ReasonServiceUnderway  = "booking is already in progress"
	ReasonAlreadyFinished  = "booking is already completed"
	ReasonAlreadyCancelled = "booking is already cancelled"
	ReasonInsideWindow     = "inside the cancellation window"
)

// Evaluate decides whether a booking may be cancelled (or rescheduled, which
// shares the guard) at now, and what fee applies. In-progress and terminal
// bookings are never cancellable.
func (r Rules) Evaluate(status booking.Status, startsAt time.Time, servicePriceCents int64, now time.Time) Decision {
	switch status {
	case booking.StatusInProgress:
		return Decision{Allowed: false, Reason: ReasonServiceUnderway}
	case booking.StatusCompleted:
		return Decision{Allowed: false, Reason: ReasonAlreadyFinished}
	case booking.StatusCancelled:
		return Decision{Allowed: false, Reason: ReasonAlreadyCancelled}
	}

	window := time.Duration(r.WindowHours) * time.Hour
	if startsAt.Sub(now) >= window {
		return Decision{Allowed: true}
	}

	if r.DisallowInsideWindow {
		return Decision{Allowed: false, Reason: ReasonInsideWindow, InsideWindow: true}
	}

	fee := int64(float64(servicePriceCents) * r.FeePercent / 100.0)
	if fee < 0 {
		fee = 0
	}
	return Decision{Allowed: true, FeeCents: fee, Reason: ReasonInsideWindow, InsideWindow: true}
}
