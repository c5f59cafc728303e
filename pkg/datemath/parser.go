package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser extracts the first date or date+time expression from task titles.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	location    *time.Location
	nearestHour NearestHourFunc
}

// Option configures a Parser.
type Option func(*Parser)

// WithNearestHour overrides the hour policy used for relative phrases.
func WithNearestHour(f NearestHourFunc) Option {
	return func(p *Parser) {
		if f != nil {
			p.nearestHour = f
		}
	}
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	p := &Parser{
		location:    loc,
		nearestHour: NearestHour,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the timezone dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse finds the first date expression in text relative to now, removes it
// (together with a trailing time expression, if any) and returns the rest.
//
// Matchers run in a fixed order and the first success wins. When no date
// matches, a bare time expression such as "at 5pm" resolves to today at
// that time. Parse never fails: the worst case is the trimmed input and no
// date.
func (p *Parser) Parse(text string, now time.Time) ParseResult {
	now = now.In(p.location)

	for _, kind := range matchOrder {
		m := p.match(kind, text, now)
		if !m.ok {
			continue
		}

		if kind == matchDayOfMonth {
			rest, date := applyMonthName(text, m.date)
			return p.withTime(rest, date, m.text)
		}
		return p.withTime(text, m.date, m.text)
	}

	res := p.withTime(text, now, "")
	if res.HasDate() && !res.Date.Equal(now) {
		return res
	}

	return ParseResult{RemainingText: strings.TrimSpace(text)}
}

// withTime removes the date phrase, merges any time-of-day phrase found in
// the rest of the text into date and removes that phrase as well.
func (p *Parser) withTime(text string, date time.Time, phrase string) ParseResult {
	text = removePhrase(text, phrase)

	if tm, ok := findTime(text); ok {
		if hour, minute, valid := parseTimeToken(tm.token); valid {
			date = atClock(date, hour, minute)
		}
		text = removePhrase(text, tm.text)
	}

	return ParseResult{
		RemainingText: strings.TrimSpace(text),
		Date:          &date,
	}
}
