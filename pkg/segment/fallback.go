package segment

import (
	"iter"
	"regexp"
)

var (
	// Runs of letters/digits, runs of separators, or any single character.
	fallbackWordPattern = regexp.MustCompile(`(?s)[\p{L}\p{N}]+|[\p{Z}\s\x{0B}\x{85}]+|.`)
	// A base character followed by its combining marks.
	fallbackGraphemePattern = regexp.MustCompile(`(?s)\P{M}\p{M}*|\p{M}+`)
)

type regexpSegmenter struct {
	pattern *regexp.Regexp
}

func (r regexpSegmenter) Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		offset := 0
		for offset < len(text) {
			loc := r.pattern.FindStringIndex(text[offset:])
			if loc == nil || loc[1] == 0 {
				return
			}
			part := text[offset+loc[0] : offset+loc[1]]
			if !yield(Segment{Text: part, Index: offset + loc[0], WordLike: isWordLike(part)}) {
				return
			}
			offset += loc[1]
		}
	}
}

func fallback(g Granularity) Segmenter {
	if g == Grapheme {
		return regexpSegmenter{pattern: fallbackGraphemePattern}
	}
	return regexpSegmenter{pattern: fallbackWordPattern}
}
