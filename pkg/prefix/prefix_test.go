package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeDisabled, false},
		{"Vikunja", ModeVikunja, false},
		{" todoist ", ModeTodoist, false},
		{"trello", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMode, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		mode        Mode
		wantProject string
		wantRest    string
	}{
		{"vikunja bare", "Buy milk +groceries", ModeVikunja, "groceries", "Buy milk"},
		{"vikunja in the middle", "Buy +groceries milk", ModeVikunja, "groceries", "Buy milk"},
		{"vikunja double quotes", `Plan +"summer trip" now`, ModeVikunja, "summer trip", "Plan now"},
		{"vikunja single quotes", "+'home office' desk", ModeVikunja, "home office", "desk"},
		{"todoist", "Write report #work", ModeTodoist, "work", "Write report"},
		{"todoist ignores plus", "Write report +work", ModeTodoist, "", "Write report +work"},
		{"disabled", "Buy milk +groceries", ModeDisabled, "", "Buy milk +groceries"},
		{"inside a word", "c++ tutorial", ModeVikunja, "", "c++ tutorial"},
		{"lone prefix", "a + b", ModeVikunja, "", "a + b"},
		{"unterminated quote", `x +"open`, ModeVikunja, "", `x +"open`},
		{"first wins", "+one +two", ModeVikunja, "one", "+two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, rest := Extract(tt.title, tt.mode)
			assert.Equal(t, tt.wantProject, project)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestResolver(t *testing.T) {
	resolve := Resolver(ModeVikunja)
	assert.Equal(t, "inbox", resolve("+inbox tidy up"))
	assert.Empty(t, resolve("tidy up"))
}
