// Package dateutil normalizes timestamps to calendar days.
//
// A calendar day is the civil date of a timestamp in the application time
// zone, represented as midnight UTC of that date. Holiday lookups, attendance
// keys and leave ranges all compare days in this form.
package dateutil

import (
	"iter"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/pkg/validator"
)

// DayLayout is the wire and storage format of a calendar day.
const DayLayout = "2006-01-02"

// Day returns the calendar day of t, read in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayIn returns the calendar day of t as seen in loc.
func DayIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(t.In(loc))
}

// Key formats the calendar day of t.
func Key(t time.Time) string {
	return Day(t).Format(DayLayout)
}

// ParseDay accepts "2006-01-02" or an RFC3339 timestamp and returns its
// calendar day. Timestamps are read in loc.
func ParseDay(s string, loc *time.Location) (time.Time, bool) {
	if t, ok := validator.IsValidDate(s); ok {
		return Day(t), true
	}
	if t, ok := validator.IsValidDateTime(s); ok {
		return DayIn(t, loc), true
	}
	return time.Time{}, false
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Days yields every calendar day in [from, to] in ascending order. Days are
// produced one at a time, so breaking out early never walks the rest.
func Days(from, to time.Time) iter.Seq[time.Time] {
	from, to = Day(from), Day(to)
	return func(yield func(time.Time) bool) {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Display renders a day the way user-facing messages show it.
func Display(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// Clock supplies the current time in the application time zone.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.T
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.T = t
}
