package dateutil

import (
	"fmt"
	"time"
)

// DateOnly is the canonical wire format for reference dates.
const DateOnly = "2006-01-02"

// Components decomposes t into calendar year/month/day in UTC.
func Components(t time.Time) (year, month, day int) {
	u := t.UTC()
	return u.Year(), int(u.Month()), u.Day()
}

// ParseReferenceDate accepts `2006-01-02` or RFC3339 timestamps and returns
// the parsed instant in UTC. Anything else is a caller error.
func ParseReferenceDate(raw string) (time.Time, error) {
	if t, err := time.Parse(DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid reference date %q: want YYYY-MM-DD or RFC3339", raw)
}

// EndOfDay returns the last instant of t's calendar day in UTC. Due-date
// filters compare against this so a movement due on the reference day itself
// still counts as due.
func EndOfDay(t time.Time) time.Time {
	y, m, d := Components(t)
	return time.Date(y, time.Month(m), d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
