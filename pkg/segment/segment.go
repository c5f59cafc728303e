// Package segment splits text into Unicode-aware segments.
//
// Word granularity follows UAX #29 word boundaries and grapheme granularity
// follows UAX #29 extended grapheme clusters. When native segmentation is
// disabled or fails, a regexp approximation is used instead; both strategies
// agree on which segments are whitespace.
package segment

import (
	"iter"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
)

// Granularity selects the segmentation unit.
type Granularity int

const (
	Word Granularity = iota
	Grapheme
)

// String implements fmt.Stringer.
func (g Granularity) String() string {
	switch g {
	case Word:
		return "word"
	case Grapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

// Segment is one contiguous piece of the input text.
type Segment struct {
	Text     string // Segment text
	Index    int    // Byte offset into the original string
	WordLike bool   // Contains at least one letter or digit
}

// End returns the byte offset just past the segment.
func (s Segment) End() int {
	return s.Index + len(s.Text)
}

// Segmenter produces segments for a text lazily.
type Segmenter interface {
	Segments(text string) iter.Seq[Segment]
}

var (
	// segmenters caches native segmenters per granularity. Entries are never
	// replaced once stored.
	segmenters sync.Map
	native     atomic.Bool
)

func init() {
	native.Store(true)
}

// SetNative toggles the native Unicode strategy. With native disabled every
// call uses the regexp fallback.
func SetNative(enabled bool) {
	native.Store(enabled)
}

// NativeEnabled reports whether the native strategy is in use.
func NativeEnabled() bool {
	return native.Load()
}

func lookup(g Granularity) Segmenter {
	if !native.Load() {
		return nil
	}

	if v, ok := segmenters.Load(g); ok {
		s, _ := v.(Segmenter)
		return s
	}

	s := newNative(g)
	if s == nil {
		return nil
	}
	v, _ := segmenters.LoadOrStore(g, s)
	cached, _ := v.(Segmenter)
	return cached
}

// All yields the segments of text in order.
func All(text string, g Granularity) iter.Seq[Segment] {
	if s := lookup(g); s != nil {
		return s.Segments(text)
	}
	return fallback(g).Segments(text)
}

// Split returns all segments of text. A failure of the native strategy is
// never surfaced: the regexp fallback takes over.
func Split(text string, g Granularity) []Segment {
	if text == "" {
		return nil
	}

	s := lookup(g)
	if s == nil {
		return collect(fallback(g).Segments(text))
	}

	segments, ok := tryCollect(s.Segments(text))
	if !ok {
		return collect(fallback(g).Segments(text))
	}
	return segments
}

func tryCollect(seq iter.Seq[Segment]) (segments []Segment, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			segments, ok = nil, false
		}
	}()
	return collect(seq), true
}

func collect(seq iter.Seq[Segment]) []Segment {
	var out []Segment
	for s := range seq {
		out = append(out, s)
	}
	return out
}

// IsWhitespace reports whether the segment trims to nothing.
func IsWhitespace(s Segment) bool {
	return s.Text != "" && strings.TrimSpace(s.Text) == ""
}

// WordTokens returns the text of every word-like segment of text.
func WordTokens(text string) []string {
	var tokens []string
	for _, s := range Split(text, Word) {
		if s.WordLike {
			tokens = append(tokens, s.Text)
		}
	}
	return tokens
}

func isWordLike(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
