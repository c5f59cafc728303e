package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var offsetRe = regexp.MustCompile(`(?i)\bin ([0-9]{1,6}) (hours?|days?|weeks?|months?)\b`)

// matchRelativeOffset handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func matchRelativeOffset(text string, now time.Time) dateMatch {
	loc := offsetRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}
	}
	if loc[0] > 0 && text[loc[0]-1] == '@' {
		return dateMatch{}
	}

	amount, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return dateMatch{}
	}
	unit := strings.ToLower(text[loc[4]:loc[5]])

	var date time.Time
	switch {
	case strings.HasPrefix(unit, "hour"):
		date = time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+amount, now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	case strings.HasPrefix(unit, "day"):
		date = now.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		date = now.AddDate(0, 0, amount*7)
	case strings.HasPrefix(unit, "month"):
		date = now.AddDate(0, amount, 0)
	default:
		return dateMatch{}
	}

	return dateMatch{text: text[loc[0]:loc[1]], date: date, ok: true}
}
