package datemath

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"task-quickadd/pkg/segment"
)

// fold case-folds s for comparison. A Caser is stateful, so each call gets
// its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// findPhrase looks for phrase as a sequence of consecutive word-like
// segments of text, compared case-insensitively. A match immediately
// preceded by '@' is skipped, since '@' introduces a time.
func findPhrase(text, phrase string) (string, bool) {
	tokens := strings.Fields(fold(phrase))
	if len(tokens) == 0 {
		return "", false
	}

	var words []segment.Segment
	for _, s := range segment.Split(text, segment.Word) {
		if s.WordLike {
			words = append(words, s)
		}
	}

	for i := 0; i+len(tokens) <= len(words); i++ {
		matched := true
		for j, tok := range tokens {
			if fold(words[i+j].Text) != tok {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		start := words[i].Index
		if start > 0 && text[start-1] == '@' {
			continue
		}
		end := words[i+len(tokens)-1].End()
		return text[start:end], true
	}

	return "", false
}

// removePhrase deletes every whole-word occurrence of phrase from text along
// with one adjoining space, so the surrounding words stay single-spaced.
// Occurrences are compared case-insensitively, like findPhrase.
func removePhrase(text, phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return text
	}

	var sb strings.Builder
	for {
		i, n := indexFold(text, phrase)
		if i < 0 {
			sb.WriteString(text)
			return sb.String()
		}

		before, after := text[:i], text[i+n:]
		if !atBoundary(before, after) {
			sb.WriteString(text[:i+n])
			text = after
			continue
		}

		if strings.HasSuffix(before, " ") {
			before = before[:len(before)-1]
		} else if strings.HasPrefix(after, " ") {
			after = after[1:]
		}
		sb.WriteString(before)
		text = after
	}
}

// indexFold returns the byte offset and length of the first occurrence of
// substr in s under simple case folding, or -1.
func indexFold(s, substr string) (int, int) {
	runes := utf8.RuneCountInString(substr)
	for i := range s {
		end, count := i, 0
		for count < runes && end < len(s) {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		if count < runes {
			return -1, 0
		}
		if strings.EqualFold(s[i:end], substr) {
			return i, end - i
		}
	}
	return -1, 0
}

// atBoundary reports whether the text around a phrase occurrence does not
// continue a word on either side.
func atBoundary(before, after string) bool {
	if r, _ := utf8.DecodeLastRuneInString(before); before != "" && isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(after); after != "" && isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
