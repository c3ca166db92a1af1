package booking

// Status is the booking lifecycle state. The happy path moves forward only:
// pending → confirmed → in_progress → completed. Cancellation is terminal and
// reachable from pending or confirmed; an in-progress service can no longer
// be cancelled.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsCalendar reports whether a booking in this status blocks the
// provider/staff calendar for its interval.
func (s Status) HoldsCalendar() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the state machine. No backward transitions, no
// skipping: completed is only reachable from in_progress.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// HoldingStatuses is the set used by overlap queries.
func HoldingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusInProgress}
}
