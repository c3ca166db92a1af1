//go:build unit

package series_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
)

var seriesNow = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func newTestSeries(t *testing.T, interval series.Interval, endDate *time.Time) *series.Series {
	t.Helper()
	customer, err := booking.NewCustomer("Omar Farooq", "omar@example.com", "")
	require.NoError(t, err)
	start, err := schedule.ParseWallTime("10:00")
	require.NoError(t, err)

	s, err := series.NewSeries(
		uuid.New(), uuid.New(), customer,
		date(2025, time.October, 8), start, interval, endDate,
		booking.NewNote("weekly trim"), seriesNow,
	)
	require.NoError(t, err)
	return s
}

func TestNewSeries(t *testing.T) {
	t.Run("computes the first next occurrence past the start date", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		assert.Equal(t, series.StatusActive, s.Status())
		require.NotNil(t, s.NextOccurrence())
		assert.True(t, date(2025, time.October, 15).Equal(*s.NextOccurrence()))
	})

	t.Run("ends immediately when the end date precedes the first occurrence", func(t *testing.T) {
		end := date(2025, time.October, 10)
		s := newTestSeries(t, series.IntervalWeekly, &end)
		assert.Equal(t, series.StatusEnded, s.Status())
		assert.Nil(t, s.NextOccurrence())
	})

	t.Run("rejects a past start date", func(t *testing.T) {
		customer, err := booking.NewCustomer("Omar Farooq", "omar@example.com", "")
		require.NoError(t, err)
		start, err := schedule.ParseWallTime("10:00")
		require.NoError(t, err)

		_, err = series.NewSeries(
			uuid.New(), uuid.New(), customer,
			date(2025, time.September, 1), start, series.IntervalWeekly, nil,
			booking.NewNote(""), seriesNow,
		)
		require.ErrorIs(t, err, series.ErrStartDateInPast)
	})

	t.Run("rejects an unknown interval", func(t *testing.T) {
		customer, err := booking.NewCustomer("Omar Farooq", "omar@example.com", "")
		require.NoError(t, err)
		start, err := schedule.ParseWallTime("10:00")
		require.NoError(t, err)

		_, err = series.NewSeries(
			uuid.New(), uuid.New(), customer,
			date(2025, time.October, 8), start, series.Interval("daily"), nil,
			booking.NewNote(""), seriesNow,
		)
		require.ErrorIs(t, err, series.ErrInvalidInterval)
	})
}

func TestSeries_PauseResume(t *testing.T) {
	t.Run("pause freezes the next occurrence", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		frozen := *s.NextOccurrence()

		require.NoError(t, s.Pause())
		assert.Equal(t, series.StatusPaused, s.Status())
		assert.True(t, frozen.Equal(*s.NextOccurrence()))
	})

	t.Run("resume keeps a future next occurrence", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		frozen := *s.NextOccurrence()
		require.NoError(t, s.Pause())

		require.NoError(t, s.Resume(seriesNow.Add(24*time.Hour)))
		assert.True(t, frozen.Equal(*s.NextOccurrence()))
	})

	t.Run("resume recomputes a stale next occurrence strictly after now", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		require.NoError(t, s.Pause())

		later := date(2025, time.December, 1)
		require.NoError(t, s.Resume(later))
		require.NotNil(t, s.NextOccurrence())
		assert.True(t, s.NextOccurrence().After(later))
		assert.True(t, date(2025, time.December, 8).Equal(*s.NextOccurrence()))
	})

	t.Run("pausing a paused series fails", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		require.NoError(t, s.Pause())
		require.ErrorIs(t, s.Pause(), series.ErrNotActive)
	})

	t.Run("resuming an active series fails", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		require.ErrorIs(t, s.Resume(seriesNow), series.ErrNotPaused)
	})
}

func TestSeries_Advance(t *testing.T) {
	t.Run("moves one interval forward", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalBiweekly, nil)
		require.NoError(t, s.Advance(seriesNow))
		assert.True(t, date(2025, time.November, 5).Equal(*s.NextOccurrence()))
	})

	t.Run("ends the series once past the end date", func(t *testing.T) {
		end := date(2025, time.October, 20)
		s := newTestSeries(t, series.IntervalWeekly, &end)
		require.NotNil(t, s.NextOccurrence())

		require.NoError(t, s.Advance(seriesNow))
		assert.Equal(t, series.StatusEnded, s.Status())
		assert.Nil(t, s.NextOccurrence())
	})

	t.Run("fails on a paused series", func(t *testing.T) {
		s := newTestSeries(t, series.IntervalWeekly, nil)
		require.NoError(t, s.Pause())
		require.ErrorIs(t, s.Advance(seriesNow), series.ErrNotActive)
	})
}

func TestSeries_IsDue(t *testing.T) {
	s := newTestSeries(t, series.IntervalWeekly, nil)

	assert.False(t, s.IsDue(seriesNow))
	assert.True(t, s.IsDue(date(2025, time.October, 15)))
	assert.True(t, s.IsDue(date(2025, time.October, 20)))

	require.NoError(t, s.Pause())
	assert.False(t, s.IsDue(date(2025, time.October, 20)))
}

func TestSeries_OccurrenceStartAt(t *testing.T) {
	s := newTestSeries(t, series.IntervalWeekly, nil)
	day := date(2025, time.October, 15)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), s.OccurrenceStartAt(day))
}

func TestSeries_End(t *testing.T) {
	s := newTestSeries(t, series.IntervalWeekly, nil)
	require.NoError(t, s.End())
	assert.Equal(t, series.StatusEnded, s.Status())
	assert.Nil(t, s.NextOccurrence())
	require.ErrorIs(t, s.End(), series.ErrAlreadyEnded)
}
