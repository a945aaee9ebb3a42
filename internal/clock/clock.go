// Package clock abstracts wall-clock access so day-boundary and streak
// logic can be tested without real time.
package clock

import "time"

// DateKeyLayout is the calendar-day key format used throughout persistence.
const DateKeyLayout = "2006-01-02"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// DateKey formats t as its calendar-day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
