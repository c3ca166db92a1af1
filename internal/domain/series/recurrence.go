package series

import "time"

// NextOccurrence computes the date exactly one interval after base. When base
// is already behind now's civil date, the base is recomputed from now so a
// late-created or resumed series always schedules forward, never backward.
//
// Monthly recurrence preserves the day-of-month and clamps to the last day
// when the target month is shorter (Jan 30 → Feb 28). Pure and idempotent
// given (base, interval, now).
func NextOccurrence(base time.Time, interval Interval, now time.Time) time.Time {
	b := civilDate(base)
	today := civilDate(now)
	if b.Before(today) {
		b = today
	}

	switch interval {
	case IntervalWeekly:
		return b.AddDate(0, 0, 7)
	case IntervalBiweekly:
		return b.AddDate(0, 0, 14)
	case IntervalMonthly:
		return addMonthClamped(b)
	default:
		return time.Time{}
	}
}

// addMonthClamped adds one calendar month without the time package's
// normalization (Jan 31 + 1 month must be Feb 28/29, not Mar 2/3).
func addMonthClamped(d time.Time) time.Time {
	year, month, day := d.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, d.Location())
	if last := lastDayOfMonth(firstOfNext); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, d.Location())
}

func lastDayOfMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
