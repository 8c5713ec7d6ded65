// Package civil provides a timezone-free calendar date used throughout the
// scheduling and occupancy code. All day arithmetic happens at local
// midnight so date strings never drift across the UTC boundary.
package civil

import (
	"fmt"
	"time"
)

// dateLayout is the canonical wire form for calendar dates.
const dateLayout = "2006-01-02"

// Date is a civil calendar date in YYYY-MM-DD form, with no time component.
// Dates compare and sort correctly as strings because the layout is
// zero-padded ISO.
type Date string

// ParseDate validates s against the YYYY-MM-DD layout.
func ParseDate(s string) (Date, error) {
	if _, err := time.ParseInLocation(dateLayout, s, time.Local); err != nil {
		return "", fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date(s), nil
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates t to its local calendar date.
func FromTime(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Time returns the date at local midnight. Constructing at local midnight
// keeps day arithmetic free of UTC/local skew around DST boundaries.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date offset by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day-of-week name for display.
func (d Date) Weekday() string {
	return d.Time().Weekday().String()
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}
