// Package datetime provides date and time utility functions.
package datetime

import (
	"strconv"
	"time"
)

// Clock returns the current time. Components take a Clock instead of calling
// time.Now so the comparison year can be pinned in tests.
type Clock func() time.Time

// SystemClock is the Clock backed by the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedYear returns a Clock that always reports the first day of year.
func FixedYear(year int) Clock {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// CurrentYear resolves the calendar year reported by clock; a nil clock
// falls back to the wall clock.
func CurrentYear(clock Clock) int {
	if clock == nil {
		clock = SystemClock
	}
	return clock().Year()
}

// InRange reports whether year lies within [first, last].
func InRange(year, first, last int) bool {
	return year >= first && year <= last
}

// YearCount returns the number of years in [first, last], or 0 for an
// inverted range.
func YearCount(first, last int) int {
	if last < first {
		return 0
	}
	return last - first + 1
}

// YearLabel formats a year as a chart category label.
func YearLabel(year int) string {
	return strconv.Itoa(year)
}
