package timeutil

import (
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// Use this format for consistent timestamp output across the API.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Use this format for log timestamps where higher precision is needed.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Day is the calendar-day layout used by appointments and ledger logs.
const Day = "2006-01-02"

// Clock is the time-of-day layout used by appointments. Values sort
// correctly under plain string comparison, which the agenda relies on.
const Clock = "15:04"

// NowStamp returns the current UTC instant in RFC 3339 millisecond form,
// the format stored on sales and service requests.
func NowStamp() string {
	return time.Now().UTC().Format(RFC3339Millis)
}

// Today returns the current calendar day in Day layout.
func Today() string {
	return time.Now().UTC().Format(Day)
}

// ParseDay parses a calendar day, reporting whether it was well formed.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(Day, s)
	return t, err == nil
}
