package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWallTime = errors.New("invalid wall-clock time")

// WallTime is a local wall-clock time of day ("HH:MM"), minutes since
// midnight. Working hours and series start times live in the provider's
// local frame with no timezone conversion.
type WallTime int

func ParseWallTime(s string) (WallTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidWallTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidWallTime
	}
	return WallTime(h*60 + m), nil
}

func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(w)/60, int(w)%60)
}

// On anchors the wall time onto a civil date, in the date's location.
func (w WallTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(w)/60, int(w)%60, 0, 0, day.Location())
}

// WorkingWindow is one weekly-recurring open interval for a provider.
// Read-only input to availability.
type WorkingWindow struct {
	ProviderID uuid.UUID
	Weekday    time.Weekday
	Start      WallTime
	End        WallTime
	Active     bool
}

// TimeOff is an ad-hoc closed interval. It always subtracts from working
// windows regardless of booking status.
type TimeOff struct {
	ProviderID uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Reason     string
}

// Interval is a half-open [Start, End) span of concrete time.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) IsZero() bool {
	return !i.Start.Before(i.End)
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}
