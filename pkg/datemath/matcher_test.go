package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchers_RemovingMatchIsIdempotent(t *testing.T) {
	p, err := NewParser("UTC")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		kind matcherKind
		text string
	}{
		{matchToday, "Ship today, really today"},
		{matchToday, "Today and today"},
		{matchWeekday, "monday Monday"},
		{matchTonight, "Movie tonight"},
		{matchTomorrow, "Tomorrow: buy bread"},
		{matchNextMonday, "Standup next monday"},
		{matchThisWeekend, "Hike this weekend"},
		{matchLaterThisWeek, "Call later this week"},
		{matchLaterNextWeek, "Call later next week"},
		{matchNextWeek, "Review next week"},
		{matchNextMonth, "Budget next month"},
		{matchEndOfMonth, "Invoice end of month"},
		{matchWeekday, "Gym next friday"},
		{matchDayOfMonth, "Rent 1st"},
		{matchOffset, "Follow up in 4 days"},
		{matchAbsolute, "Launch 2024-09-01"},
		{matchAbsolute, "Launch sep 1"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := p.match(tt.kind, tt.text, now)
			require.True(t, m.ok, "expected %q to match", tt.text)

			rest := removePhrase(tt.text, m.text)
			again := p.match(tt.kind, rest, now)
			assert.False(t, again.ok, "%q still matches after removal: %q", rest, again.text)
		})
	}
}

func TestDayInterval(t *testing.T) {
	tests := []struct {
		kind    matcherKind
		current time.Weekday
		want    int
	}{
		{matchToday, time.Wednesday, 0},
		{matchTomorrow, time.Wednesday, 1},
		{matchNextMonday, time.Wednesday, 5},
		{matchNextMonday, time.Sunday, 1},
		{matchNextMonday, time.Monday, 7},
		{matchThisWeekend, time.Wednesday, 3},
		{matchThisWeekend, time.Saturday, 0},
		{matchThisWeekend, time.Sunday, 0},
		{matchLaterThisWeek, time.Monday, 2},
		{matchLaterThisWeek, time.Friday, 0},
		{matchLaterNextWeek, time.Tuesday, 9},
		{matchLaterNextWeek, time.Sunday, 7},
		{matchNextWeek, time.Thursday, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dayInterval(tt.kind, tt.current), "%s from %s", tt.kind, tt.current)
	}
}

func TestMatchWeekdayName_WednesdayToMonday(t *testing.T) {
	wednesday := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for _, text := range []string{"monday", "next monday", "Pay mon"} {
		m := matchWeekdayName(text, wednesday)
		require.True(t, m.ok, text)
		assert.Equal(t, wednesday.AddDate(0, 0, 5), m.date, text)
	}
}

func TestFindPhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   string
		found  bool
	}{
		{"Meeting Tomorrow", "tomorrow", "Tomorrow", true},
		{"go later  this week!", "later this week", "later  this week", true},
		{"@tomorrow", "tomorrow", "", false},
		{"tomorrowland", "tomorrow", "", false},
		{"", "today", "", false},
	}

	for _, tt := range tests {
		got, ok := findPhrase(tt.text, tt.phrase)
		assert.Equal(t, tt.found, ok, tt.text)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestRemovePhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   string
	}{
		{"Meeting tomorrow at 5pm", "tomorrow", "Meeting at 5pm"},
		{"tomorrow meeting", "tomorrow", "meeting"},
		{"todays meeting today", "today", "todays meeting"},
		{"a today b today", " today", "a b"},
		{"unchanged", "", "unchanged"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, removePhrase(tt.text, tt.phrase), tt.text)
	}
}

func TestFindTime(t *testing.T) {
	tests := []struct {
		text      string
		wantText  string
		wantToken string
		found     bool
	}{
		{"Call at 5pm", " at 5pm", "5pm", true},
		{"Call @ 14:30", " @ 14:30", "14:30", true},
		{"@9am standup", "@9am", "9am", true},
		{"Call at 5 PM", " at 5 PM", "5pm", true},
		{"Call at 7:15am sharp", " at 7:15am", "7:15am", true},
		{"Look at this", "", "", false},
		{"mail@5pm", "", "", false},
		{"Call at 10:5", "", "", false},
		{"Call at 13pm", "", "", false},
	}

	for _, tt := range tests {
		got, ok := findTime(tt.text)
		assert.Equal(t, tt.found, ok, tt.text)
		assert.Equal(t, tt.wantText, got.text, tt.text)
		assert.Equal(t, tt.wantToken, got.token, tt.text)
	}
}

func TestParseTimeToken(t *testing.T) {
	tests := []struct {
		token  string
		hour   int
		minute int
		ok     bool
	}{
		{"5pm", 17, 0, true},
		{"12pm", 12, 0, true},
		{"12am", 0, 0, true},
		{"5:30 pm", 17, 30, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"9:75", 0, 0, false},
		{"noon", 0, 0, false},
	}

	for _, tt := range tests {
		h, m, ok := parseTimeToken(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		assert.Equal(t, tt.hour, h, tt.token)
		assert.Equal(t, tt.minute, m, tt.token)
	}
}
