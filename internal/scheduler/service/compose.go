package service

import "time"

// ComposeTime places the wall-clock hour and minute of clock onto the
// calendar date of date, in date's location. Seconds and anything finer are
// dropped, as is clock's own date.
func ComposeTime(date, clock time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
