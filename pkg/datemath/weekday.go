package datemath

import (
	"regexp"
	"strings"
	"time"
)

var weekdayRe = regexp.MustCompile(`(?i)(^| )(next )?(` + weekdayPattern + `)($| )`)

// matchWeekdayName resolves "friday", "next fri", ... to the next occurrence
// of that weekday, today included. The "next" prefix is accepted but does not
// change the distance.
func matchWeekdayName(text string, now time.Time) dateMatch {
	m := weekdayRe.FindStringSubmatch(text)
	if m == nil {
		return dateMatch{}
	}

	target, ok := lookupWeekday(m[3])
	if !ok {
		return dateMatch{}
	}

	distance := (int(target) + 7 - int(now.Weekday())) % 7

	return dateMatch{
		text: strings.TrimSuffix(m[0], " "),
		date: now.AddDate(0, 0, distance),
		ok:   true,
	}
}
