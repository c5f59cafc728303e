package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericDateRes are tried in order; the first one yielding a valid date wins.
var numericDateRes = []*regexp.Regexp{
	// 06/24, 06/24/21, 06/24/2021
	regexp.MustCompile(`(^| )(?P<found>(?P<month>[0-9]{1,2})/(?P<day>[0-9]{1,2})(?:/(?P<year>[0-9]{2}(?:[0-9]{2})?))?)($| )`),
	// 2021/06/24
	regexp.MustCompile(`(^| )(?P<found>(?P<year>[0-9]{4})/(?P<month>[0-9]{1,2})/(?P<day>[0-9]{1,2}))($| )`),
	// 2021-06-24
	regexp.MustCompile(`(^| )(?P<found>(?P<year>[0-9]{4})-(?P<month>[0-9]{1,2})-(?P<day>[0-9]{1,2}))($| )`),
	// 24.06, 24.06.21, 24.06.2021
	regexp.MustCompile(`(^| )(?P<found>(?P<day>[0-9]{1,2})\.(?P<month>[0-9]{1,2})(?:\.(?P<year>[0-9]{2}(?:[0-9]{2})?))?)($| )`),
}

var monthDayRe = regexp.MustCompile(`(?i)(^| )(?:(?P<m1>` + monthPattern + `) (?P<d1>[0-9]{1,2})|(?P<d2>[0-9]{1,2}) (?P<m2>` + monthPattern + `))\b`)

// matchAbsoluteDate handles numeric dates ("2021-06-24", "06/24", "24.06.2021")
// and month-name dates ("jan 21", "21 jan"). Without a year the current year
// is assumed, rolled forward when the date already passed.
func matchAbsoluteDate(text string, now time.Time) dateMatch {
	if m := matchNumericDate(text, now); m.ok {
		return m
	}
	return matchMonthDay(text, now)
}

func matchNumericDate(text string, now time.Time) dateMatch {
	for _, re := range numericDateRes {
		sub := re.FindStringSubmatch(text)
		if sub == nil {
			continue
		}

		group := func(name string) string { return sub[re.SubexpIndex(name)] }
		month, _ := strconv.Atoi(group("month"))
		day, _ := strconv.Atoi(group("day"))

		year, hasYear := now.Year(), false
		if y := group("year"); y != "" {
			year, hasYear = expandYear(y), true
		}

		date, ok := validDate(year, month, day, now.Location())
		if !ok {
			// Ambiguous order: 24/06 is read as day/month.
			date, ok = validDate(year, day, month, now.Location())
		}
		if !ok {
			continue
		}

		if !hasYear && date.Before(now) {
			date = date.AddDate(1, 0, 0)
		}
		return dateMatch{text: group("found"), date: date, ok: true}
	}
	return dateMatch{}
}

func matchMonthDay(text string, now time.Time) dateMatch {
	sub := monthDayRe.FindStringSubmatch(text)
	if sub == nil {
		return dateMatch{}
	}

	group := func(name string) string { return sub[monthDayRe.SubexpIndex(name)] }
	name, dayText := group("m1"), group("d1")
	if name == "" {
		name, dayText = group("m2"), group("d2")
	}

	month, ok := lookupMonth(name)
	if !ok {
		return dateMatch{}
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return dateMatch{}
	}

	date, ok := validDate(now.Year(), int(month), day, now.Location())
	if !ok {
		return dateMatch{}
	}
	if date.Before(now) {
		date = date.AddDate(1, 0, 0)
	}

	return dateMatch{text: strings.TrimSpace(sub[0]), date: date, ok: true}
}

// expandYear turns a two-digit year into 20YY below 50 and 19YY from 50 on.
func expandYear(y string) int {
	n, _ := strconv.Atoi(y)
	if len(y) != 2 {
		return n
	}
	if n < 50 {
		return 2000 + n
	}
	return 1900 + n
}
