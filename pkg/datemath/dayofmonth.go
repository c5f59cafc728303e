package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dayOfMonthRe = regexp.MustCompile(`(?i)(^| )([12][0-9]|3[01]|0?[1-9])(st|nd|rd|th|\.)($| )`)
	monthNameRe  = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\b`)
)

// matchDay resolves "21st", "3rd", "5." to the next date on or after now
// with that day of month.
func matchDay(text string, now time.Time) dateMatch {
	m := dayOfMonthRe.FindStringSubmatch(text)
	if m == nil {
		return dateMatch{}
	}

	day, err := strconv.Atoi(m[2])
	if err != nil {
		return dateMatch{}
	}

	date := withDay(now, day)
	for date.Before(now) {
		date = date.AddDate(0, 1, 0)
	}
	// Setting day 31 on a 30-day month overflows into the next month.
	if date.Day() != day {
		date = withDay(date, day)
	}

	return dateMatch{
		text: strings.TrimSuffix(m[0], " "),
		date: date,
		ok:   true,
	}
}

// applyMonthName overrides the month of date with the first month name in
// text, removing the name. Without a month name both are returned as is.
func applyMonthName(text string, date time.Time) (string, time.Time) {
	for _, loc := range monthNameRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if start > 0 && text[start-1] == '@' {
			continue
		}

		month, ok := lookupMonth(text[start:end])
		if !ok {
			continue
		}
		return removePhrase(text, text[start:end]), withMonth(date, month)
	}
	return text, date
}
