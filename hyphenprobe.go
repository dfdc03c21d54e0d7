package linebreak

import (
	"github.com/glyphwork/linebreak/codeunit"
	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/text"
)

// hyphenBreak is a candidate hyphenation break point inside a word: first
// and second are the widths of the two pieces that result from breaking
// there, already accounting for whatever glyph edit (hyphen insertion,
// letter doubling) that break type requires.
type hyphenBreak struct {
	offset     uint32
	hyphenType hyphen.HyphenationType
	first      float32
	second     float32
}

// desperateBreak is a candidate mid-word break point with no hyphenation
// support — used only when a word alone is wider than the line.
type desperateBreak struct {
	offset     uint32
	sumOfChars paraWidth
}

// hyphenateWord runs a word's hyphenator over its decoded runes and
// scatters the resulting classification back onto code-unit-relative
// offsets, so callers can index it the same way they index textBuf.
// Any non-initial code unit of a multi-unit rune (the second half of a
// surrogate pair) is left at its zero value, hyphen.DontBreak.
func hyphenateWord(textBuf []uint16, wordRange text.Range, hyphenator hyphen.Hyphenator) []hyphen.HyphenationType {
	word := textBuf[wordRange.Start:wordRange.End]
	runes, offsets := codeunit.Decode(word)
	runeTypes := hyphenator.Hyphenate(runes)
	out := make([]hyphen.HyphenationType, len(word))
	for i, off := range offsets {
		out[off] = runeTypes[i]
	}
	return out
}

// populateHyphenationPoints retrieves every legal hyphenation break point
// within a word, measuring both resulting pieces through the run so the
// optimizer can score the break without re-shaping later.
func populateHyphenationPoints(textBuf []uint16, run text.Run, hyphenator hyphen.Hyphenator, contextRange, wordRange text.Range) []hyphenBreak {
	var out []hyphenBreak
	if !run.Range().Contains(contextRange) || !contextRange.Contains(wordRange) {
		return out
	}

	hyphenResult := hyphenateWord(textBuf, wordRange, hyphenator)
	for i := wordRange.Start; i < wordRange.End; i++ {
		hyph := hyphenResult[wordRange.ToRangeOffset(i)]
		if hyph == hyphen.DontBreak {
			continue
		}

		first, second := contextRange.Split(i)
		firstWidth := run.MeasureHyphenPiece(textBuf, first, hyphen.EditNoEdit, hyphen.EditForThisLine(hyph))
		secondWidth := run.MeasureHyphenPiece(textBuf, second, hyphen.EditForNextLine(hyph), hyphen.EditNoEdit)

		out = append(out, hyphenBreak{
			offset:     i,
			hyphenType: hyph,
			first:      float32(firstWidth),
			second:     float32(secondWidth),
		})
	}
	return out
}

// populateDesperatePoints retrieves every grapheme boundary within range
// as a candidate mid-word break. A width of exactly 0 marks a code unit
// that isn't a grapheme boundary (a combining mark, or the trailing half
// of a surrogate pair) and must not be offered as a break.
func populateDesperatePoints(measured text.MeasuredText, rng text.Range) []desperateBreak {
	var out []desperateBreak
	width := paraWidth(measured.Widths[rng.Start])
	for i := rng.Start + 1; i < rng.End; i++ {
		w := measured.Widths[i]
		if w == 0 {
			continue
		}
		out = append(out, desperateBreak{offset: i, sumOfChars: width})
		width += paraWidth(w)
	}
	return out
}

// appendWithMerging folds hyphenation and desperate break points into the
// optimizer's candidate list in offset order. When both land on the same
// offset, the desperate candidate is pushed first: its resulting line is
// never wider than the hyphenated candidate's, and the DP assumes
// candidates for one offset appear with non-decreasing result width.
func appendWithMerging(hyphens []hyphenBreak, desperates []desperateBreak, proc *charProcessor, hyphenPenalty float32, isRtl bool, out *optimizeContext) {
	h, d := 0, 0
	for h < len(hyphens) || d < len(desperates) {
		if d < len(desperates) && (h >= len(hyphens) || desperates[d].offset <= hyphens[h].offset) {
			db := desperates[d]
			out.pushDesperate(db.offset, proc.sumOfCharWidthsAtPrevWordBreak+db.sumOfChars, proc.effectiveSpaceCount, isRtl)
			d++
		} else {
			hb := hyphens[h]
			out.pushHyphenation(hb.offset, proc.sumOfCharWidths-paraWidth(hb.second),
				proc.sumOfCharWidthsAtPrevWordBreak+paraWidth(hb.first), hyphenPenalty,
				proc.effectiveSpaceCount, hb.hyphenType, isRtl)
			h++
		}
	}
}
