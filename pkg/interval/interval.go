// Package interval has the pure time-interval checks used by appointment
// admission: half-open overlap between two intervals and containment of an
// interval inside a recurring time-of-day window.
package interval

import (
	"errors"
	"time"
)

var ErrBadClock = errors.New("invalid clock value, want HH:MM")

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) share any instant. Back-to-back intervals do not overlap;
// an interval always overlaps itself.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	// a starts inside b
	if !aStart.Before(bStart) && aStart.Before(bEnd) {
		return true
	}
	// a ends inside b
	if aEnd.After(bStart) && !aEnd.After(bEnd) {
		return true
	}
	// a contains b entirely
	if !aStart.After(bStart) && !aEnd.Before(bEnd) {
		return true
	}
	return false
}

// ParseClock converts a "HH:MM" wall-clock string into minutes since
// midnight. The format is exact: two zero-padded digits on each side of
// the colon, nothing before or after.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrBadClock
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrBadClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// WithinWindow reports whether [start,end) falls inside the recurring
// time-of-day window [windowStart,windowEnd], comparing minutes since
// midnight and ignoring the calendar date. Minute precision: an
// appointment running one minute past the window close is outside.
func WithinWindow(start, end time.Time, windowStart, windowEnd string) (bool, error) {
	ws, err := ParseClock(windowStart)
	if err != nil {
		return false, err
	}
	we, err := ParseClock(windowEnd)
	if err != nil {
		return false, err
	}
	s := start.Hour()*60 + start.Minute()
	e := end.Hour()*60 + end.Minute()
	return s >= ws && e <= we, nil
}
