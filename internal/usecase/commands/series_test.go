//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

func (e *commandsEnv) createSeriesParams() commands.CreateSeriesParams {
	return commands.CreateSeriesParams{
		ProviderID:    e.providerID,
		ServiceID:     e.serviceID,
		CustomerName:  "Dana Customer",
		CustomerEmail: "dana@example.com",
		StartDate:     testNow,
		StartTime:     "10:00",
		Interval:      "weekly",
	}
}

func (e *commandsEnv) mustCreateSeries(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := e.series.Create(context.Background(), e.createSeriesParams())
	require.NoError(t, err)
	return id
}

func TestSeriesCommands_Create(t *testing.T) {
	t.Run("registers an active weekly series with the next occurrence set", func(t *testing.T) {
		env := newCommandsEnv(t)

		id, err := env.series.Create(context.Background(), env.createSeriesParams())

		require.NoError(t, err)
		s := env.store.series[id]
		require.NotNil(t, s)
		assert.Equal(t, series.StatusActive, s.Status())
		require.NotNil(t, s.NextOccurrence())
		assert.Equal(t, testNow.AddDate(0, 0, 7).Truncate(24*time.Hour), *s.NextOccurrence())
	})

	t.Run("rejects an unknown interval", func(t *testing.T) {
		env := newCommandsEnv(t)
		p := env.createSeriesParams()
		p.Interval = "fortnightly"

		_, err := env.series.Create(context.Background(), p)

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects a malformed start time", func(t *testing.T) {
		env := newCommandsEnv(t)
		p := env.createSeriesParams()
		p.StartTime = "25:99"

		_, err := env.series.Create(context.Background(), p)

		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("rejects an inactive service", func(t *testing.T) {
		env := newCommandsEnv(t)
		env.catalog.services[env.serviceID] = booking.ServiceSpec{
			ID: env.serviceID, DurationMinutes: 60, PriceCents: 10000, IsActive: false,
		}

		_, err := env.series.Create(context.Background(), env.createSeriesParams())

		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestSeriesCommands_Lifecycle(t *testing.T) {
	t.Run("pause and resume", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := env.mustCreateSeries(t)
		ctx := context.Background()

		require.NoError(t, env.series.Pause(ctx, env.providerID, id))
		assert.Equal(t, series.StatusPaused, env.store.series[id].Status())

		require.NoError(t, env.series.Resume(ctx, env.providerID, id))
		assert.Equal(t, series.StatusActive, env.store.series[id].Status())
	})

	t.Run("pausing a paused series is a policy violation", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := env.mustCreateSeries(t)
		ctx := context.Background()
		require.NoError(t, env.series.Pause(ctx, env.providerID, id))

		err := env.series.Pause(ctx, env.providerID, id)

		var pv *shared.PolicyViolationError
		assert.ErrorAs(t, err, &pv)
	})

	t.Run("ending clears the next occurrence", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := env.mustCreateSeries(t)

		require.NoError(t, env.series.End(context.Background(), env.providerID, id))

		s := env.store.series[id]
		assert.Equal(t, series.StatusEnded, s.Status())
		assert.Nil(t, s.NextOccurrence())
	})

	t.Run("another provider's series is NotFound", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := env.mustCreateSeries(t)

		err := env.series.Pause(context.Background(), uuid.New(), id)

		assert.ErrorIs(t, err, shared.ErrSeriesNotFound)
	})
}

func TestSeriesCommands_MaterializeDue(t *testing.T) {
	makeDue := func(t *testing.T, env *commandsEnv) uuid.UUID {
		t.Helper()
		id := env.mustCreateSeries(t)
		// A week later the next occurrence (today) is due.
		env.clock.Advance(7 * 24 * time.Hour)
		return id
	}

	t.Run("books the due occurrence and advances the pointer", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := makeDue(t, env)
		due := *env.store.series[id].NextOccurrence()

		report, err := env.series.MaterializeDue(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, commands.MaterializeReport{Processed: 1, Materialized: 1}, report)

		var materialized *booking.Booking
		for _, b := range env.store.bookings {
			materialized = b
		}
		require.NotNil(t, materialized)
		require.NotNil(t, materialized.SeriesID())
		assert.Equal(t, id, *materialized.SeriesID())
		assert.Equal(t, booking.StatusPending, materialized.Status())
		// 10:00 on the occurrence date.
		assert.Equal(t, due.Add(10*time.Hour), materialized.Slot().Start())

		next := env.store.series[id].NextOccurrence()
		require.NotNil(t, next)
		assert.Equal(t, due.AddDate(0, 0, 7), *next)
	})

	t.Run("a blocked slot is skipped, the pointer still advances", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := makeDue(t, env)
		due := *env.store.series[id].NextOccurrence()
		env.mustCreate(t, due.Add(10*time.Hour))

		report, err := env.series.MaterializeDue(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, commands.MaterializeReport{Processed: 1, Skipped: 1}, report)
		assert.Contains(t, env.store.eventTopics(), booking.TopicSeriesOccurrenceSkipped)

		next := env.store.series[id].NextOccurrence()
		require.NotNil(t, next)
		assert.Equal(t, due.AddDate(0, 0, 7), *next)
	})

	t.Run("a lost claim materializes nothing", func(t *testing.T) {
		env := newCommandsEnv(t)
		makeDue(t, env)
		env.store.claimDenied = true

		report, err := env.series.MaterializeDue(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, commands.MaterializeReport{Processed: 1}, report)
		assert.Empty(t, env.store.bookings)
	})

	t.Run("a paused series is not materialized", func(t *testing.T) {
		env := newCommandsEnv(t)
		id := makeDue(t, env)
		require.NoError(t, env.series.Pause(context.Background(), env.providerID, id))

		report, err := env.series.MaterializeDue(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, commands.MaterializeReport{}, report)
	})

	t.Run("nothing due is a no-op", func(t *testing.T) {
		env := newCommandsEnv(t)
		env.mustCreateSeries(t)

		report, err := env.series.MaterializeDue(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, commands.MaterializeReport{}, report)
	})
}
