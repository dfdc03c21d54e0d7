package linebreak

import "github.com/glyphwork/linebreak/text"

// BreakStrategy selects how aggressively the optimizer looks for breaks.
// Greedy breaking is out of scope here; both remaining
// strategies run the same total-fit DP and differ only in how the last
// line of a paragraph is scored.
type BreakStrategy int

const (
	// High quality runs the full DP, penalizing hyphenation on the last
	// line of the paragraph more heavily than mid-paragraph lines.
	HighQuality BreakStrategy = iota
	// Balanced additionally tries to even out how full each line is,
	// by not exempting the last line from the ordinary width score.
	Balanced
)

// HyphenationFrequency controls how eagerly the optimizer offers
// hyphenation break points.
type HyphenationFrequency int

const (
	// None disables hyphenation entirely; only word and desperate
	// breaks are considered.
	None HyphenationFrequency = iota
	// Normal hyphenates conservatively.
	Normal
	// Full hyphenates aggressively. Counterintuitively this applies a
	// *smaller* hyphen penalty multiplier than Normal — the original
	// engine's own comment calls this a placeholder pending better
	// tuning, and SPEC_FULL.md keeps the behavior rather than silently
	// "fixing" it (see DESIGN.md).
	Full
)

// Tunable multipliers in the penalty hierarchy, exported the way the
// teacher's package-level knobs (SpaceStretch, Tolerance, ...) are, so a
// caller can retune the optimizer without forking it.
var (
	// LastLinePenaltyMultiplier increases the hyphen penalty charged on
	// a paragraph's final line under HighQuality, discouraging a
	// hyphenated word right before the paragraph ends.
	LastLinePenaltyMultiplier float32 = 4.0
	// LinePenaltyMultiplier scales the per-line penalty (how much the
	// optimizer prefers fewer, longer lines) for ragged-right text.
	LinePenaltyMultiplier float32 = 2.0
	// ShrinkPenaltyMultiplier scales the width score of a line that
	// fits only by shrinking inter-word spaces in justified text.
	ShrinkPenaltyMultiplier float32 = 4.0
	// Shrinkability is the maximum fraction of a space's width that
	// justification may remove.
	Shrinkability float32 = 1.0 / 3.0
	// NormalHyphenPenaltyMultiplier scales the base hyphen penalty
	// under HyphenationFrequency Normal.
	NormalHyphenPenaltyMultiplier float32 = 4.0
	// JustifiedHyphenPenaltyMultiplier further scales the hyphen
	// penalty for justified text, making hyphenation under Normal in
	// justified mode behave like Full in ragged-right mode.
	JustifiedHyphenPenaltyMultiplier float32 = 0.25
)

// computePenalties returns the hyphen penalty charged at a hyphenation
// break inside this run, and the per-line penalty charged for every line
// break while this run's settings are in effect (the max across runs
// wins, matching the original's single paragraph-wide linePenalty).
func computePenalties(run text.Run, lineWidth lineWidthAt0, frequency HyphenationFrequency, justified bool) (hyphenPenalty, linePenalty float32) {
	paint := run.Paint()
	// a heuristic that seems to perform well
	hyphenPenalty = float32(0.5 * paint.Size * paint.ScaleX * lineWidth())

	if frequency == Normal {
		hyphenPenalty *= NormalHyphenPenaltyMultiplier
	}

	if justified {
		// Make hyphenation more aggressive for fully justified text (so
		// that Normal in justified mode behaves like Full in ragged-right).
		hyphenPenalty *= JustifiedHyphenPenaltyMultiplier
	} else {
		linePenalty = hyphenPenalty * LinePenaltyMultiplier
	}
	return hyphenPenalty, linePenalty
}

// lineWidthAt0 is the one value computePenalties actually needs from the
// width oracle — the width of the paragraph's first line, which the
// original engine also uses unconditionally for this heuristic regardless
// of which line the run appears on.
type lineWidthAt0 func() float64
