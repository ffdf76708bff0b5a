package utils

import (
	"time"
)

// DateLayout is the wire format for user-supplied date bounds.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DayFromUnix converts a provider unix timestamp to its UTC trading date,
// truncated to midnight.
func DayFromUnix(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date in the YYYY-MM-DD wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
