package datemath

import "time"

// NearestHour is the default hour policy: the next of 9, 12, 15, 18 or 21
// o'clock, wrapping to 9 outside of the day.
func NearestHour(t time.Time) int {
	h := t.Hour()
	switch {
	case h <= 9 || h > 21:
		return 9
	case h <= 12:
		return 12
	case h <= 15:
		return 15
	case h <= 18:
		return 18
	default:
		return 21
	}
}

// atHour returns t on the same day at hour:00:00.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// atClock returns t on the same day at hour:minute:00.
func atClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// withDay sets the day of month, letting time.Date normalize overflow into
// the following month.
func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// withMonth sets the month and keeps the day of month, normalizing overflow.
func withMonth(t time.Time, month time.Month) time.Time {
	return time.Date(t.Year(), month, t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// validDate builds year-month-day at midnight and reports whether the
// components survived normalization unchanged.
func validDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
