// Package prefix reads quick-add magic prefixes such as "+project".
package prefix

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which magic prefix marks a project.
type Mode string

const (
	ModeDisabled Mode = "disabled"
	ModeVikunja  Mode = "vikunja"
	ModeTodoist  Mode = "todoist"
)

var ErrUnknownMode = errors.New("unknown prefix mode")

// ParseMode validates a mode name. An empty name means ModeDisabled.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeDisabled:
		return ModeDisabled, nil
	case ModeVikunja, ModeTodoist:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Char returns the project prefix of the mode, or 0 when disabled.
func (m Mode) Char() byte {
	switch m {
	case ModeVikunja:
		return '+'
	case ModeTodoist:
		return '#'
	default:
		return 0
	}
}

// Resolver returns a function reporting the first project named in a title.
func Resolver(m Mode) func(title string) string {
	return func(title string) string {
		project, _ := Extract(title, m)
		return project
	}
}

// Extract finds the first project in title and returns it together with the
// title minus the prefixed name. The prefix must start the title or follow a
// space. Names with spaces are written in single or double quotes.
func Extract(title string, m Mode) (project, rest string) {
	c := m.Char()
	if c == 0 {
		return "", title
	}

	for i := 0; i < len(title); i++ {
		if title[i] != c || (i > 0 && title[i-1] != ' ') {
			continue
		}

		name, end := readName(title, i+1)
		if name == "" {
			continue
		}

		rest = strings.TrimSpace(title[:i]) + " " + strings.TrimSpace(title[end:])
		return name, strings.TrimSpace(rest)
	}
	return "", title
}

// readName reads a bare or quoted name starting at i and returns it with the
// offset just past it.
func readName(s string, i int) (string, int) {
	if i >= len(s) {
		return "", i
	}

	if q := s[i]; q == '"' || q == '\'' {
		closing := strings.IndexByte(s[i+1:], q)
		if closing < 0 {
			return "", i
		}
		end := i + 1 + closing
		return strings.TrimSpace(s[i+1 : end]), end + 1
	}

	end := strings.IndexByte(s[i:], ' ')
	if end < 0 {
		return s[i:], len(s)
	}
	return s[i : i+end], i + end
}
