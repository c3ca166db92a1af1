package schedule

import (
	"sort"
	"time"
)

// FreeSlots computes the bookable slots for one provider/staff calendar lane.
//
// Weekly working windows are expanded into concrete day-windows across
// [rangeStart, rangeEnd), time-off and busy bookings are subtracted (splitting
// windows where needed), and each remaining sub-window is chopped into
// consecutive slots of slotDuration. A trailing remainder shorter than the
// duration is discarded; a window reduced to zero width yields no slots.
// Output is sorted by start and deterministic.
func FreeSlots(
	windows []WorkingWindow,
	timeOff []TimeOff,
	busy []Interval,
	rangeStart, rangeEnd time.Time,
	slotDuration time.Duration,
) []Interval {
	if slotDuration <= 0 || !rangeStart.Before(rangeEnd) {
		return nil
	}

	open := expandWindows(windows, rangeStart, rangeEnd)
	for _, off := range timeOff {
		open = subtract(open, Interval{Start: off.StartsAt, End: off.EndsAt})
	}
	for _, b := range busy {
		open = subtract(open, b)
	}

	sort.Slice(open, func(i, j int) bool { return open[i].Start.Before(open[j].Start) })

	var slots []Interval
	for _, w := range open {
		for t := w.Start; !t.Add(slotDuration).After(w.End); t = t.Add(slotDuration) {
			slots = append(slots, Interval{Start: t, End: t.Add(slotDuration)})
		}
	}
	return slots
}

// IsOpen reports whether the interval lies entirely inside the provider's
// working windows after time-off is subtracted. Existing bookings are the
// conflict detector's concern, not this check's.
func IsOpen(windows []WorkingWindow, timeOff []TimeOff, iv Interval) bool {
	if iv.IsZero() {
		return false
	}
	dayStart := time.Date(iv.Start.Year(), iv.Start.Month(), iv.Start.Day(), 0, 0, 0, 0, iv.Start.Location())
	open := expandWindows(windows, dayStart, iv.End)
	for _, off := range timeOff {
		open = subtract(open, Interval{Start: off.StartsAt, End: off.EndsAt})
	}
	for _, w := range open {
		if !iv.Start.Before(w.Start) && !iv.End.After(w.End) {
			return true
		}
	}
	return false
}

// expandWindows turns weekly recurrence into concrete day-windows clipped to
// the requested range.
func expandWindows(windows []WorkingWindow, rangeStart, rangeEnd time.Time) []Interval {
	day := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, rangeStart.Location())

	var out []Interval
	for ; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		for _, w := range windows {
			if !w.Active || w.Weekday != day.Weekday() || w.End <= w.Start {
				continue
			}
			iv := clip(Interval{Start: w.Start.On(day), End: w.End.On(day)}, rangeStart, rangeEnd)
			if !iv.IsZero() {
				out = append(out, iv)
			}
		}
	}
	return out
}

func clip(iv Interval, rangeStart, rangeEnd time.Time) Interval {
	if iv.Start.Before(rangeStart) {
		iv.Start = rangeStart
	}
	if iv.End.After(rangeEnd) {
		iv.End = rangeEnd
	}
	return iv
}

// subtract removes the blocked interval from every open interval, splitting
// where the block lands in the middle.
func subtract(open []Interval, block Interval) []Interval {
	if block.IsZero() {
		return open
	}
	var out []Interval
	for _, iv := range open {
		if !iv.Overlaps(block) {
			out = append(out, iv)
			continue
		}
		if iv.Start.Before(block.Start) {
			out = append(out, Interval{Start: iv.Start, End: block.Start})
		}
		if block.End.Before(iv.End) {
			out = append(out, Interval{Start: block.End, End: iv.End})
		}
	}
	return out
}
