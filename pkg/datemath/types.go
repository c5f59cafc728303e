package datemath

import "time"

// ParseResult is the outcome of extracting a date from free-form text.
type ParseResult struct {
	RemainingText string     // Input with the date and time phrases removed, trimmed
	Date          *time.Time // nil when no date or time was recognised
}

// HasDate reports whether a date was recognised.
func (r ParseResult) HasDate() bool {
	return r.Date != nil
}

// NearestHourFunc picks a sensible hour of day for a date resolved from a
// relative phrase such as "tomorrow" or "next month".
type NearestHourFunc func(t time.Time) int

// dateMatch is what a single matcher found. The zero value means no match.
type dateMatch struct {
	text string // exact substring to remove, possibly with one leading space
	date time.Time
	ok   bool
}

// timeMatch is a time-of-day phrase found after a marker.
type timeMatch struct {
	text  string // span to remove: leading whitespace, marker, time token
	token string // normalized, e.g. "5:30pm"
}
