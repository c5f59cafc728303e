// Package subtask turns indented multi-line text into a task hierarchy.
package subtask

import (
	"regexp"
	"strings"

	"task-quickadd/pkg/segment"
)

// Task is one line of the input with its resolved parent and project.
type Task struct {
	Title   string // Line without indentation and list marker
	Parent  string // Title of the parent task, empty for top-level tasks
	Project string // Project name, empty when none
}

// ProjectResolver returns the project named in a title, or "".
type ProjectResolver func(title string) string

var (
	lineSplitRe = regexp.MustCompile(`[\r\n]+`)
	markerRe    = regexp.MustCompile(`^((\* |\+ |- )(\[ \] )?)`)
)

type line struct {
	text   string
	indent int
}

type frame struct {
	indent  int
	title   string
	project string
}

// Parse splits raw into one task per non-blank line. Indentation is measured
// in whitespace graphemes relative to the least indented line; a line becomes
// the child of the closest preceding line with a smaller indent. Children
// without a project of their own inherit their parent's.
//
// resolve may be nil, in which case no projects are detected.
func Parse(raw string, resolve ProjectResolver) []Task {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}

	baseline := sharedIndent(lines)

	tasks := make([]Task, 0, len(lines))
	var stack []frame

	for _, l := range lines {
		indent := l.indent - baseline
		title := markerRe.ReplaceAllString(stripIndent(l.text, l.indent), "")

		task := Task{Title: title}
		if resolve != nil {
			task.Project = resolve(title)
		}

		for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 && indent > 0 {
			parent := stack[len(stack)-1]
			task.Parent = parent.title
			if task.Project == "" {
				task.Project = parent.project
			}
		}

		stack = append(stack, frame{indent: indent, title: task.Title, project: task.Project})
		tasks = append(tasks, task)
	}

	return tasks
}

func splitLines(raw string) []line {
	var lines []line
	for _, text := range lineSplitRe.Split(raw, -1) {
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, line{text: text, indent: leadingWhitespace(text)})
	}
	return lines
}

// sharedIndent is the indentation common to all lines. A single line without
// indentation makes it zero.
func sharedIndent(lines []line) int {
	shared := -1
	for _, l := range lines {
		if l.indent == 0 {
			return 0
		}
		if shared < 0 || l.indent < shared {
			shared = l.indent
		}
	}
	return max(shared, 0)
}

// leadingWhitespace counts whitespace graphemes at the start of text.
func leadingWhitespace(text string) int {
	n := 0
	for s := range segment.All(text, segment.Grapheme) {
		if !segment.IsWhitespace(s) {
			break
		}
		n++
	}
	return n
}

// stripIndent drops the first n whitespace graphemes of text.
func stripIndent(text string, n int) string {
	if n == 0 {
		return text
	}
	removed := 0
	for s := range segment.All(text, segment.Grapheme) {
		if removed == n || !segment.IsWhitespace(s) {
			return text[s.Index:]
		}
		removed++
	}
	return ""
}
