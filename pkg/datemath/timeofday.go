package datemath

import (
	"regexp"
	"strconv"
	"strings"

	"task-quickadd/pkg/segment"
)

var (
	hourRe           = regexp.MustCompile(`^[0-9]{1,2}$`)
	inlineMeridiemRe = regexp.MustCompile(`(?i)^([0-9]{1,2})([ap]m)$`)
	minuteRe         = regexp.MustCompile(`(?i)^([0-9]{2})([ap]m)?$`)
	meridiemRe       = regexp.MustCompile(`(?i)^[ap]m$`)
	timeTokenRe      = regexp.MustCompile(`^([0-9]{1,2})(?::([0-9]{2}))?([ap]m)?$`)
)

// findTime looks for "at <time>" or "@ <time>" where the marker starts the
// text or follows whitespace.
func findTime(text string) (timeMatch, bool) {
	segments := segment.Split(text, segment.Word)

	for i, cur := range segments {
		isAtWord := cur.WordLike && fold(cur.Text) == "at"
		isAtSymbol := cur.Text == "@"
		if !isAtWord && !isAtSymbol {
			continue
		}
		if i > 0 && !segment.IsWhitespace(segments[i-1]) {
			continue
		}

		if m, ok := extractTime(text, segments, i); ok {
			return m, true
		}
	}

	return timeMatch{}, false
}

// extractTime reads the time expression following the marker at index.
func extractTime(text string, segments []segment.Segment, index int) (timeMatch, bool) {
	cursor := index + 1
	for cursor < len(segments) && segment.IsWhitespace(segments[cursor]) {
		cursor++
	}
	if cursor >= len(segments) {
		return timeMatch{}, false
	}

	hourSeg := segments[cursor]
	end := hourSeg.End()
	token := ""
	meridiem := ""

	if hourRe.MatchString(hourSeg.Text) {
		token = hourSeg.Text
	} else if m := inlineMeridiemRe.FindStringSubmatch(hourSeg.Text); m != nil {
		token, meridiem = m[1], m[2]
	} else {
		return timeMatch{}, false
	}
	cursor++

	if cursor < len(segments) && segments[cursor].Text == ":" {
		if cursor+1 >= len(segments) {
			return timeMatch{}, false
		}
		// Word segmentation keeps "30pm" together.
		m := minuteRe.FindStringSubmatch(segments[cursor+1].Text)
		if m == nil {
			return timeMatch{}, false
		}
		token += ":" + m[1]
		if m[2] != "" {
			meridiem = m[2]
		}
		end = segments[cursor+1].End()
		cursor += 2
	}

	if meridiem == "" {
		next := cursor
		for next < len(segments) && segment.IsWhitespace(segments[next]) {
			next++
		}
		if next < len(segments) && meridiemRe.MatchString(segments[next].Text) {
			meridiem = segments[next].Text
			end = segments[next].End()
		}
	}
	token += strings.ToLower(meridiem)

	if _, _, ok := parseTimeToken(token); !ok {
		return timeMatch{}, false
	}

	start := segments[index].Index
	for i := index - 1; i >= 0 && segment.IsWhitespace(segments[i]); i-- {
		start = segments[i].Index
	}

	return timeMatch{text: text[start:end], token: token}, true
}

// parseTimeToken converts a normalized token such as "5:30pm" or "14:30" to
// a 24-hour clock.
func parseTimeToken(token string) (hour, minute int, ok bool) {
	m := timeTokenRe.FindStringSubmatch(strings.ToLower(strings.Join(strings.Fields(token), "")))
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
