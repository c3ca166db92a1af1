//go:build unit

package policy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/policy"
)

var (
	policyNow   = time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	priceCents  = int64(10000)
	defaultRule = policy.Rules{WindowHours: 24, FeePercent: 50}
)

func TestRules_Evaluate(t *testing.T) {
	t.Run("outside the window is free", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusConfirmed, policyNow.Add(48*time.Hour), priceCents, policyNow)
		assert.True(t, d.Allowed)
		assert.Zero(t, d.FeeCents)
		assert.False(t, d.InsideWindow)
	})

	t.Run("exactly at the window boundary is free", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusConfirmed, policyNow.Add(24*time.Hour), priceCents, policyNow)
		assert.True(t, d.Allowed)
		assert.Zero(t, d.FeeCents)
	})

	t.Run("inside the window charges the configured percentage", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusConfirmed, policyNow.Add(2*time.Hour), priceCents, policyNow)
		assert.True(t, d.Allowed)
		assert.Equal(t, int64(5000), d.FeeCents)
		assert.True(t, d.InsideWindow)
	})

	t.Run("disallow flag rejects inside the window", func(t *testing.T) {
		rules := policy.Rules{WindowHours: 24, FeePercent: 50, DisallowInsideWindow: true}
		d := rules.Evaluate(booking.StatusPending, policyNow.Add(2*time.Hour), priceCents, policyNow)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonInsideWindow, d.Reason)
	})

	t.Run("in-progress is never cancellable", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusInProgress, policyNow.Add(72*time.Hour), priceCents, policyNow)
		assert.False(t, d.Allowed)
		assert.Equal(t, policy.ReasonServiceUnderway, d.Reason)
	})

	t.Run("completed is never cancellable", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusCompleted, policyNow.Add(-time.Hour), priceCents, policyNow)
		assert.False(t, d.Allowed)
	})

	t.Run("cancelled stays cancelled", func(t *testing.T) {
		d := defaultRule.Evaluate(booking.StatusCancelled, policyNow.Add(time.Hour), priceCents, policyNow)
		assert.False(t, d.Allowed)
	})
}

// Requests made closer to start must never yield a smaller fee than earlier
// ones under the same rules.
func TestRules_FeeMonotonicity(t *testing.T) {
	start := policyNow.Add(72 * time.Hour)

	var prevFee int64 = -1
	for hoursBefore := 71; hoursBefore >= 1; hoursBefore-- {
		now := start.Add(-time.Duration(hoursBefore) * time.Hour)
		d := defaultRule.Evaluate(booking.StatusConfirmed, start, priceCents, now)
		require.True(t, d.Allowed)
		assert.GreaterOrEqual(t, d.FeeCents, prevFee, "fee shrank at %dh before start", hoursBefore)
		prevFee = d.FeeCents
	}
}

func TestRules_FeeNeverNegative(t *testing.T) {
	rules := policy.Rules{WindowHours: 24, FeePercent: -10}
	d := rules.Evaluate(booking.StatusConfirmed, policyNow.Add(time.Hour), priceCents, policyNow)
	assert.True(t, d.Allowed)
	assert.Zero(t, d.FeeCents)
}
