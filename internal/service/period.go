package service

import (
	"errors"
	"time"
)

var errInvalidClock = errors.New("service: clock returned zero time")

// monthBounds returns the first and the last instant of the month containing now.
// The last instant is truncated to microseconds, the precision postgres stores.
func monthBounds(now time.Time) (time.Time, time.Time, error) {
	if now.IsZero() {
		return time.Time{}, time.Time{}, errInvalidClock
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Microsecond)
	return first, last, nil
}
