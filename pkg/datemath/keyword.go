package datemath

import "time"

// matchKeyword finds the phrase of kind in text and resolves its date lazily.
func (p *Parser) matchKeyword(kind matcherKind, text string, resolve func() time.Time) dateMatch {
	found, ok := findPhrase(text, kind.String())
	if !ok {
		return dateMatch{}
	}
	return dateMatch{text: found, date: resolve(), ok: true}
}

func (p *Parser) matchDayInterval(kind matcherKind, text string, now time.Time) dateMatch {
	return p.matchKeyword(kind, text, func() time.Time {
		return p.intervalDate(now, dayInterval(kind, now.Weekday()))
	})
}

// intervalDate is now shifted by days, at the nearest sensible hour.
func (p *Parser) intervalDate(now time.Time, days int) time.Time {
	d := now.AddDate(0, 0, days)
	return atHour(d, p.nearestHour(d))
}

// dayInterval is the number of days from a day with weekday current to the
// day a relative phrase refers to.
func dayInterval(kind matcherKind, current time.Weekday) int {
	switch kind {
	case matchToday:
		return 0
	case matchTomorrow:
		return 1
	case matchNextMonday:
		d := (8 - int(current)) % 7
		if d == 0 {
			d = 7
		}
		return d
	case matchThisWeekend:
		// Saturday, or today when already on the weekend.
		return (6 - int(current)) % 6
	case matchLaterThisWeek:
		switch current {
		case time.Friday, time.Saturday, time.Sunday:
			return 0
		}
		return 2
	case matchLaterNextWeek:
		return dayInterval(matchLaterThisWeek, current) + 7
	case matchNextWeek:
		return 7
	default:
		return 0
	}
}
