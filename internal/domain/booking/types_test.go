//go:build unit

package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from booking.Status
		to   booking.Status
		ok   bool
	}{
		{"pending to confirmed", booking.StatusPending, booking.StatusConfirmed, true},
		{"pending to cancelled", booking.StatusPending, booking.StatusCancelled, true},
		{"pending skips to completed", booking.StatusPending, booking.StatusCompleted, false},
		{"pending skips to in_progress", booking.StatusPending, booking.StatusInProgress, false},
		{"confirmed to in_progress", booking.StatusConfirmed, booking.StatusInProgress, true},
		{"confirmed to cancelled", booking.StatusConfirmed, booking.StatusCancelled, true},
		{"confirmed skips to completed", booking.StatusConfirmed, booking.StatusCompleted, false},
		{"in_progress to completed", booking.StatusInProgress, booking.StatusCompleted, true},
		{"in_progress to cancelled is disallowed", booking.StatusInProgress, booking.StatusCancelled, false},
		{"completed is terminal", booking.StatusCompleted, booking.StatusCancelled, false},
		{"cancelled is terminal", booking.StatusCancelled, booking.StatusConfirmed, false},
		{"no backward from confirmed", booking.StatusConfirmed, booking.StatusPending, false},
		{"no backward from completed", booking.StatusCompleted, booking.StatusInProgress, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_HoldsCalendar(t *testing.T) {
	assert.True(t, booking.StatusPending.HoldsCalendar())
	assert.True(t, booking.StatusConfirmed.HoldsCalendar())
	assert.True(t, booking.StatusInProgress.HoldsCalendar())
	assert.False(t, booking.StatusCompleted.HoldsCalendar())
	assert.False(t, booking.StatusCancelled.HoldsCalendar())
}
