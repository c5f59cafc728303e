package segment

import (
	"iter"

	"github.com/rivo/uniseg"
)

type wordSegmenter struct{}

// Segments merges adjacent whitespace words into one segment, so that
// "\t " is a single run as it is in the fallback.
func (wordSegmenter) Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		state := -1
		rest := text
		index := 0
		var space *Segment
		for len(rest) > 0 {
			var word string
			word, rest, state = uniseg.FirstWordInString(rest, state)
			cur := Segment{Text: word, Index: index, WordLike: isWordLike(word)}
			index += len(word)

			if IsWhitespace(cur) {
				if space != nil {
					space.Text = text[space.Index:index]
				} else {
					space = &cur
				}
				continue
			}
			if space != nil {
				if !yield(*space) {
					return
				}
				space = nil
			}
			if !yield(cur) {
				return
			}
		}
		if space != nil {
			yield(*space)
		}
	}
}

type graphemeSegmenter struct{}

func (graphemeSegmenter) Segments(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		state := -1
		rest := text
		index := 0
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(Segment{Text: cluster, Index: index, WordLike: isWordLike(cluster)}) {
				return
			}
			index += len(cluster)
		}
	}
}

func newNative(g Granularity) Segmenter {
	switch g {
	case Word:
		return wordSegmenter{}
	case Grapheme:
		return graphemeSegmenter{}
	default:
		return nil
	}
}
