package series

// Interval is the recurrence step of a series.
type Interval string

const (
	IntervalWeekly   Interval = "weekly"
	IntervalBiweekly Interval = "biweekly"
	IntervalMonthly  Interval = "monthly"
)

func (i Interval) String() string {
	return string(i)
}

func (i Interval) IsValid() bool {
	switch i {
	case IntervalWeekly, IntervalBiweekly, IntervalMonthly:
		return true
	default:
		return false
	}
}

// Status is the series lifecycle. Paused freezes occurrence generation
// without touching bookings already materialized; ended is terminal.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusEnded:
		return true
	default:
		return false
	}
}
