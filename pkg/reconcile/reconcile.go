// Package reconcile chooses one canonical date from a noisy set of
// labeled date evidence: it bounds candidates to a plausible calendar
// range and selects the earliest, preferring a more precise timestamp
// recorded for the same approximate moment.
package reconcile

import (
	"sort"
	"time"
)

// lowerBound excludes common "zero" or sentinel timestamps produced by
// broken metadata. Timestamps at or before it are never plausible.
var lowerBound = time.Date(1971, time.January, 2, 0, 0, 0, 0, time.UTC)

const (
	// forwardWindow tolerates clock skew and future-dated content
	// while excluding corrupted garbage dates.
	forwardWindow = 5 * 365 * 24 * time.Hour

	subSecondWindow = time.Minute
	timeOfDayWindow = 24 * time.Hour
)

// Plausible reports whether t falls in a sane calendar range: after
// 1971-01-02 UTC and no more than five years past now. The zero time
// is never plausible.
func Plausible(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.After(lowerBound) && t.Before(now.Add(forwardWindow))
}

// Earliest selects the single earliest plausible timestamp from dates.
//
// When the minimum is a truncated reading of a more precise timestamp
// recorded by another source, the more precise one wins: a value with
// sub-second precision within one minute of the minimum, or failing
// that a value with a non-midnight time of day within one day of it.
// Ties break by ascending sort order, never by label.
//
// The zero time is returned when no plausible candidates exist.
func Earliest(dates map[string]time.Time, now time.Time) time.Time {
	valid := make([]time.Time, 0, len(dates))
	for _, t := range dates {
		if Plausible(t, now) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return time.Time{}
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].Before(valid[j]) })
	min := valid[0]

	for _, t := range valid {
		if t.Nanosecond() != 0 {
			if t.Sub(min) < subSecondWindow {
				return t
			}
			break
		}
	}

	for _, t := range valid {
		if hasTimeOfDay(t) {
			if t.Sub(min) < timeOfDayWindow {
				return t
			}
			break
		}
	}

	return min
}

func hasTimeOfDay(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0
}
