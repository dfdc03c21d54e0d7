package linebreak

import (
	"testing"

	"github.com/tdewolff/test"

	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/linewidth"
	"github.com/glyphwork/linebreak/text"
)

// fixedRun is a minimal text.Run for tests: every code unit in its range
// has the same measured width, and it never offers a real hyphenated
// piece measurement unless widthPerPiece is set.
type fixedRun struct {
	span          text.Range
	rtl           bool
	localeListID  uint32
	hyphenate     bool
	size          float64
	widthPerPiece float64
}

func (r *fixedRun) Range() text.Range         { return r.span }
func (r *fixedRun) IsRtl() bool               { return r.rtl }
func (r *fixedRun) LocaleListId() uint32      { return r.localeListID }
func (r *fixedRun) CanHyphenate() bool        { return r.hyphenate }
func (r *fixedRun) Paint() text.Paint         { return text.Paint{Size: r.size, ScaleX: 1} }
func (r *fixedRun) MeasureHyphenPiece(textBuf []uint16, piece text.Range, startEdit, endEdit hyphen.Edit) float64 {
	return float64(piece.Len()) * r.widthPerPiece
}

func widths(n int, w float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w
	}
	return out
}

func extents(n int, ascent, descent float64) []text.Extent {
	out := make([]text.Extent, n)
	for i := range out {
		out[i] = text.Extent{Ascent: ascent, Descent: descent}
	}
	return out
}

func u16(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, c := range []byte(s) {
		out[i] = uint16(c)
	}
	return out
}

func TestBreakParagraphHelloWorld(t *testing.T) {
	textBuf := u16("hello world")
	m := text.MeasuredText{
		Widths:  []float64{10, 10, 10, 10, 10, 5, 10, 10, 10, 10, 10},
		Extents: extents(11, 8, 2),
		Runs:    []text.Run{&fixedRun{span: text.Range{Start: 0, End: 11}, size: 10}},
	}

	b := NewBreaker()
	result, err := b.BreakParagraph(textBuf, m, linewidth.Constant(60), HighQuality, None, false)
	test.That(t, err == nil, "unexpected error")
	test.T(t, result.BreakPoints, []uint32{5, 11})
	test.T(t, result.Widths, []float32{50, 55})
}

// TestBreakParagraphHelloWorldWithLocale exercises the one path the
// zero-value LocaleListId default in the other tests never reaches: a run
// whose LocaleListId is non-zero (as every real caller's is, since
// locale.Cache.Intern never hands out locale.InvalidID) forces
// updateLocaleIfNecessary to actually reseed the word breaker's cursor.
// Regression test for a cursor-off-by-one in wordbreak.Breaker that froze
// nextWordBreak after the first word and silently dropped the rest of the
// paragraph from the result.
func TestBreakParagraphHelloWorldWithLocale(t *testing.T) {
	textBuf := u16("hello world")
	b := NewBreaker()
	localeID := b.Locales.Intern("en")
	test.That(t, localeID != 0, "Intern must never return InvalidID")

	m := text.MeasuredText{
		Widths:  []float64{10, 10, 10, 10, 10, 5, 10, 10, 10, 10, 10},
		Extents: extents(11, 8, 2),
		Runs:    []text.Run{&fixedRun{span: text.Range{Start: 0, End: 11}, size: 10, localeListID: localeID}},
	}

	result, err := b.BreakParagraph(textBuf, m, linewidth.Constant(60), HighQuality, None, false)
	test.That(t, err == nil, "unexpected error")
	test.T(t, result.BreakPoints, []uint32{5, 11})
	test.T(t, result.Widths, []float32{50, 55})
}

func TestBreakParagraphEmpty(t *testing.T) {
	b := NewBreaker()
	result, err := b.BreakParagraph(nil, text.MeasuredText{}, linewidth.Constant(60), HighQuality, None, false)
	test.That(t, err == nil, "unexpected error")
	test.T(t, len(result.BreakPoints), 0)
}

func TestBreakParagraphUnsupportedChar(t *testing.T) {
	textBuf := []uint16{'a', '\t', 'b'}
	m := text.MeasuredText{
		Widths:  widths(3, 10),
		Extents: extents(3, 8, 2),
		Runs:    []text.Run{&fixedRun{span: text.Range{Start: 0, End: 3}, size: 10}},
	}
	b := NewBreaker()
	_, err := b.BreakParagraph(textBuf, m, linewidth.Constant(60), HighQuality, None, false)
	test.T(t, err, ErrUnsupportedChar)
}

func TestBreakParagraphDesperateBreaksLongWord(t *testing.T) {
	textBuf := u16("xxxxxxxxxxxx") // 12 code units, one unbroken word
	m := text.MeasuredText{
		Widths:  widths(12, 10),
		Extents: extents(12, 8, 2),
		Runs:    []text.Run{&fixedRun{span: text.Range{Start: 0, End: 12}, size: 10}},
	}
	b := NewBreaker()
	result, err := b.BreakParagraph(textBuf, m, linewidth.Constant(50), HighQuality, None, false)
	test.That(t, err == nil, "unexpected error")
	test.That(t, len(result.BreakPoints) > 1, "expected the long word to be split across multiple lines")
	test.T(t, result.BreakPoints[len(result.BreakPoints)-1], uint32(12))
}

func TestBreakParagraphHyphenation(t *testing.T) {
	textBuf := u16("following cats")
	m := text.MeasuredText{
		Widths:  widths(len(textBuf), 8),
		Extents: extents(len(textBuf), 8, 2),
		Runs: []text.Run{&fixedRun{
			span: text.Range{Start: 0, End: uint32(len(textBuf))},
			size: 12, hyphenate: true, widthPerPiece: 8,
		}},
	}
	b := NewBreaker()
	result, err := b.BreakParagraph(textBuf, m, linewidth.Constant(40), HighQuality, Normal, false)
	test.That(t, err == nil, "unexpected error")
	test.That(t, len(result.BreakPoints) >= 1, "expected at least one line")
}
