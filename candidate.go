package linebreak

import "github.com/glyphwork/linebreak/hyphen"

// Large scores in a hierarchy; desperate breaks are preferred to an
// overfull line, which is in turn preferred to nothing fitting at all.
// All are far larger than any reasonable width-based score.
const (
	scoreInfinity = 1e30
	// ScoreOverfull marks a candidate pair whose line cannot be made to
	// fit even by shrinking (ragged-right) or any amount of stretch.
	ScoreOverfull = 1e12
	// ScoreDesperate is the fixed penalty charged for breaking in the
	// middle of a word with no legal hyphenation point nearby.
	ScoreDesperate = 1e10
)

// paraWidth accumulates width from the start of the paragraph. A plain
// float32 loses precision over long paragraphs; float64 (called ParaWidth
// in the original) keeps cumulative sums exact enough that differencing
// two of them still gives an accurate line width.
type paraWidth = float64

// candidate is a single line-break candidate: a code-unit offset paired
// with the paragraph-cumulative widths just before and after breaking
// there. The gap between any two candidates' postBreak/preBreak gives an
// exact line width without re-summing character widths.
type candidate struct {
	offset uint32

	preBreak  paraWidth // cumulative width if we don't break here
	postBreak paraWidth // cumulative width if we do break here
	penalty   float32

	preSpaceCount  uint32
	postSpaceCount uint32

	hyphenType hyphen.HyphenationType
	isRtl      bool
}
