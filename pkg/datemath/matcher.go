package datemath

import "time"

// matcherKind is the closed set of date recognisers.
type matcherKind int

const (
	matchToday matcherKind = iota
	matchTonight
	matchTomorrow
	matchNextMonday
	matchThisWeekend
	matchLaterThisWeek
	matchLaterNextWeek
	matchNextWeek
	matchNextMonth
	matchEndOfMonth
	matchWeekday
	matchDayOfMonth
	matchOffset
	matchAbsolute
)

// matchOrder is the precedence used by Parse. Multi-word phrases come before
// the bare weekday matcher so "later this week" is never cut short.
var matchOrder = [...]matcherKind{
	matchToday,
	matchTonight,
	matchTomorrow,
	matchNextMonday,
	matchThisWeekend,
	matchLaterThisWeek,
	matchLaterNextWeek,
	matchNextWeek,
	matchNextMonth,
	matchEndOfMonth,
	matchWeekday,
	matchDayOfMonth,
	matchOffset,
	matchAbsolute,
}

func (k matcherKind) String() string {
	switch k {
	case matchToday:
		return "today"
	case matchTonight:
		return "tonight"
	case matchTomorrow:
		return "tomorrow"
	case matchNextMonday:
		return "next monday"
	case matchThisWeekend:
		return "this weekend"
	case matchLaterThisWeek:
		return "later this week"
	case matchLaterNextWeek:
		return "later next week"
	case matchNextWeek:
		return "next week"
	case matchNextMonth:
		return "next month"
	case matchEndOfMonth:
		return "end of month"
	case matchWeekday:
		return "weekday"
	case matchDayOfMonth:
		return "day of month"
	case matchOffset:
		return "offset"
	case matchAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// match runs a single recogniser against text.
func (p *Parser) match(kind matcherKind, text string, now time.Time) dateMatch {
	switch kind {
	case matchToday, matchTomorrow, matchNextMonday, matchThisWeekend,
		matchLaterThisWeek, matchLaterNextWeek, matchNextWeek:
		return p.matchDayInterval(kind, text, now)
	case matchTonight:
		return p.matchKeyword(kind, text, func() time.Time {
			return atHour(p.intervalDate(now, 0), 21)
		})
	case matchNextMonth:
		return p.matchKeyword(kind, text, func() time.Time {
			first := time.Date(now.Year(), now.Month()+1, 1, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
			return atHour(first, p.nearestHour(first))
		})
	case matchEndOfMonth:
		return p.matchKeyword(kind, text, func() time.Time {
			last := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
			return atHour(last, p.nearestHour(last))
		})
	case matchWeekday:
		return matchWeekdayName(text, now)
	case matchDayOfMonth:
		return matchDay(text, now)
	case matchOffset:
		return matchRelativeOffset(text, now)
	case matchAbsolute:
		return matchAbsoluteDate(text, now)
	default:
		return dateMatch{}
	}
}
