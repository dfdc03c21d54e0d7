// Package wordbreak provides the locale-aware word-boundary iterator the
// line breaker consults when deciding where a word starts and ends for
// hyphenation probing (spec.md §1, "Word breaker" collaborator).
//
// The retrieval pack carries two UAX#14 (line-breaking class) segmenters
// but no UAX#29 (word-boundary) implementation, and reimplementing UAX#29's
// property tables from scratch is out of scope for a collaborator the
// core spec treats as an external interface (see DESIGN.md). This package
// instead implements a pragmatic word scanner — letters, digits,
// apostrophes and hyphens (wherever they occur) are "word" runes; everything else is a
// boundary — and assigns a break badness the way ICU's dictionary-based
// break iterator does: 0 for a clean whitespace/punctuation boundary, a
// positive badness for a boundary the iterator is less sure about (here:
// adjacent word runs with no separating rune at all, as happens at script
// transitions in unsegmented scripts).
package wordbreak

import (
	"unicode"

	"golang.org/x/text/language"

	"github.com/glyphwork/linebreak/codeunit"
)

// BreakBadness values. Zero means "ordinary, confident boundary"; larger
// values mean the line breaker should weigh this word break more heavily
// against desperate/hyphenation alternatives.
const (
	BadnessNone        = 0
	BadnessNoSeparator = 50
)

type boundary struct {
	offset  uint32
	badness int
}

// Breaker walks a paragraph's UTF-16 code units and yields word boundaries
// in order, mirroring minikin's WordBreaker: SetText once, then
// FollowingWithLocale to seed the cursor at a run's start, then repeated
// Next calls as CharProcessor advances.
type Breaker struct {
	text       []uint16
	boundaries []boundary
	cursor     int // index into boundaries of the last boundary returned
}

// NewBreaker returns a breaker with no text loaded; call SetText before use.
func NewBreaker() *Breaker {
	return &Breaker{}
}

// SetText loads a new paragraph and recomputes all boundaries eagerly.
// Recomputing per-paragraph (rather than streaming) keeps the iterator
// simple; paragraphs are bounded in size by the caller (one line-break
// call per paragraph, per spec.md §5).
func (b *Breaker) SetText(text []uint16) {
	b.text = text
	b.boundaries = scan(text)
	b.cursor = 0
}

// FollowingWithLocale seeds the cursor at the first boundary strictly
// after start and returns it. The locale is ignored: boundaries are the
// same for every locale.
func (b *Breaker) FollowingWithLocale(_ language.Tag, start uint32) uint32 {
	for i, bd := range b.boundaries {
		if bd.offset > start {
			b.cursor = i + 1
			return bd.offset
		}
	}
	b.cursor = len(b.boundaries)
	return uint32(len(b.text))
}

// Next advances to and returns the next boundary after the one last
// returned by FollowingWithLocale or Next.
func (b *Breaker) Next() uint32 {
	if b.cursor >= len(b.boundaries) {
		return uint32(len(b.text))
	}
	off := b.boundaries[b.cursor].offset
	b.cursor++
	return off
}

// BreakBadness returns the badness of the boundary last returned by Next
// or FollowingWithLocale.
func (b *Breaker) BreakBadness() int {
	i := b.cursor - 1
	if i < 0 || i >= len(b.boundaries) {
		return BadnessNone
	}
	return b.boundaries[i].badness
}

// WordRange returns the [start, end) of the word ending at the boundary
// last returned, i.e. the range between the previous and current boundary.
func (b *Breaker) WordRange() (uint32, uint32) {
	i := b.cursor - 1
	if i < 0 {
		return 0, 0
	}
	start := uint32(0)
	if i > 0 {
		start = b.boundaries[i-1].offset
	}
	return start, b.boundaries[i].offset
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-'
}

// scan classifies each rune and records a boundary at every transition
// between word and non-word runs, plus a boundary at end of text.
func scan(text []uint16) []boundary {
	runes, offsets := codeunit.Decode(text)
	if len(runes) == 0 {
		return nil
	}

	var out []boundary
	inWord := isWordRune(runes[0])
	for i := 1; i < len(runes); i++ {
		cur := isWordRune(runes[i])
		if cur != inWord {
			out = append(out, boundary{offset: offsets[i], badness: BadnessNone})
			inWord = cur
		} else if cur && inWord && isSpacelessTransition(runes[i-1], runes[i]) {
			out = append(out, boundary{offset: offsets[i], badness: BadnessNoSeparator})
		}
	}
	out = append(out, boundary{offset: uint32(len(text)), badness: BadnessNone})
	return out
}

// isSpacelessTransition reports a script change between two adjacent word
// runes with no separating punctuation or space — the case a dictionary
// break iterator resolves with uncertainty (e.g. CJK ranges glued to Latin).
func isSpacelessTransition(a, b rune) bool {
	return unicode.Is(unicode.Han, a) != unicode.Is(unicode.Han, b) ||
		unicode.Is(unicode.Hangul, a) != unicode.Is(unicode.Hangul, b) ||
		unicode.Is(unicode.Hiragana, a) != unicode.Is(unicode.Hiragana, b) ||
		unicode.Is(unicode.Katakana, a) != unicode.Is(unicode.Katakana, b)
}
