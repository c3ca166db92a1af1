//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
)

// Monday 2025-10-06.
var monday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

func wall(t *testing.T, s string) schedule.WallTime {
	t.Helper()
	w, err := schedule.ParseWallTime(s)
	require.NoError(t, err)
	return w
}

func mondayWindow(t *testing.T) []schedule.WorkingWindow {
	t.Helper()
	return []schedule.WorkingWindow{
		{Weekday: time.Monday, Start: wall(t, "09:00"), End: wall(t, "17:00"), Active: true},
	}
}

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestFreeSlots_FullDay(t *testing.T) {
	// Mon 09:00-17:00, 60-minute service, nothing booked: 8 slots 09:00..16:00.
	slots := schedule.FreeSlots(mondayWindow(t), nil, nil, monday, monday.AddDate(0, 0, 1), time.Hour)

	require.Len(t, slots, 8)
	for i, s := range slots {
		assert.Equal(t, at(9+i, 0), s.Start)
		assert.Equal(t, at(10+i, 0), s.End)
	}
}

func TestFreeSlots_SubtractsTimeOff(t *testing.T) {
	timeOff := []schedule.TimeOff{
		{StartsAt: at(12, 0), EndsAt: at(13, 0), Reason: "lunch"},
	}
	slots := schedule.FreeSlots(mondayWindow(t), timeOff, nil, monday, monday.AddDate(0, 0, 1), time.Hour)

	require.Len(t, slots, 7)
	for _, s := range slots {
		assert.False(t, s.Overlaps(schedule.Interval{Start: at(12, 0), End: at(13, 0)}),
			"slot %v intersects time off", s)
	}
}

func TestFreeSlots_SubtractsBusyBookings(t *testing.T) {
	// A 10:30 booking splits the morning; the 30-minute remainders on either
	// side are too short for a one-hour service.
	busy := []schedule.Interval{{Start: at(10, 30), End: at(11, 30)}}
	slots := schedule.FreeSlots(mondayWindow(t), nil, busy, monday, monday.AddDate(0, 0, 1), time.Hour)

	require.Len(t, slots, 6)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(11, 30), slots[1].Start)
	for _, s := range slots {
		assert.False(t, s.Overlaps(busy[0]))
	}
}

func TestFreeSlots_WindowConsumedEntirely(t *testing.T) {
	timeOff := []schedule.TimeOff{
		{StartsAt: monday, EndsAt: monday.AddDate(0, 0, 1), Reason: "closed"},
	}
	slots := schedule.FreeSlots(mondayWindow(t), timeOff, nil, monday, monday.AddDate(0, 0, 1), time.Hour)
	assert.Empty(t, slots)
}

func TestFreeSlots_DiscardsShortRemainder(t *testing.T) {
	windows := []schedule.WorkingWindow{
		{Weekday: time.Monday, Start: wall(t, "09:00"), End: wall(t, "10:30"), Active: true},
	}
	slots := schedule.FreeSlots(windows, nil, nil, monday, monday.AddDate(0, 0, 1), time.Hour)

	require.Len(t, slots, 1)
	assert.Equal(t, at(9, 0), slots[0].Start)
}

func TestFreeSlots_InactiveAndOtherDayWindowsIgnored(t *testing.T) {
	windows := []schedule.WorkingWindow{
		{Weekday: time.Monday, Start: wall(t, "09:00"), End: wall(t, "17:00"), Active: false},
		{Weekday: time.Tuesday, Start: wall(t, "09:00"), End: wall(t, "17:00"), Active: true},
	}
	slots := schedule.FreeSlots(windows, nil, nil, monday, monday.AddDate(0, 0, 1), time.Hour)
	assert.Empty(t, slots)
}

func TestFreeSlots_MultiDaySorted(t *testing.T) {
	windows := []schedule.WorkingWindow{
		{Weekday: time.Monday, Start: wall(t, "09:00"), End: wall(t, "11:00"), Active: true},
		{Weekday: time.Tuesday, Start: wall(t, "14:00"), End: wall(t, "16:00"), Active: true},
	}
	slots := schedule.FreeSlots(windows, nil, nil, monday, monday.AddDate(0, 0, 2), time.Hour)

	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start), "slots must be ordered")
	}
	assert.Equal(t, monday.AddDate(0, 0, 1).Add(14*time.Hour), slots[2].Start)
}

func TestFreeSlots_RangeClipsWindows(t *testing.T) {
	// Querying from 15:00 clips the day window; only 15:00 and 16:00 remain.
	slots := schedule.FreeSlots(mondayWindow(t), nil, nil, at(15, 0), monday.AddDate(0, 0, 1), time.Hour)

	require.Len(t, slots, 2)
	assert.Equal(t, at(15, 0), slots[0].Start)
	assert.Equal(t, at(16, 0), slots[1].Start)
}

func TestFreeSlots_InvalidInputs(t *testing.T) {
	assert.Nil(t, schedule.FreeSlots(mondayWindow(t), nil, nil, monday, monday, time.Hour))
	assert.Nil(t, schedule.FreeSlots(mondayWindow(t), nil, nil, monday, monday.AddDate(0, 0, 1), 0))
}

func TestParseWallTime(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:05", want: "09:05"},
		{in: "23:59", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			w, err := schedule.ParseWallTime(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidWallTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.String())
		})
	}
}
