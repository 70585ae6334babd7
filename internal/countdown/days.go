// Package countdown computes days-remaining values for countdown targets.
package countdown

import "time"

// DaysRemaining returns the inclusive calendar-day count from now through
// target: a target on the same calendar day as now is day 1, tomorrow is
// day 2, and a target five days from now is 6. Past targets yield zero or
// negative values.
//
// The count is calendar-aware, midnight-to-midnight: only the calendar day
// of each argument matters, so 23:59 and 00:01 on the same day agree, and
// DST shifts inside a day cannot skew the result.
func DaysRemaining(now, target time.Time) int {
	return dayOrdinal(target) - dayOrdinal(now) + 1
}

// dayOrdinal maps a timestamp to a day index independent of time zone and
// time of day. Re-anchoring the calendar date at noon UTC sidesteps DST:
// every calendar day is exactly 86400 seconds apart in UTC.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 12, 0, 0, 0, time.UTC).Unix() / 86400)
}
