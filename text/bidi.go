package text

import (
	"golang.org/x/text/unicode/bidi"
)

// EmbeddingLevels returns the bidi embedding level for each rune of a mixed
// LTR/RTL string. A change in level means a change in direction; odd
// levels are right-to-left. ScriptItemizer uses this to additionally split
// on embedding-level boundaries, and Run.IsRtl derives from it directly.
//
// The teacher's cgo FriBidi binding is replaced here with x/text's pure-Go
// bidi package: x/text doesn't expose per-rune embedding levels directly,
// so this walks the paragraph's bidi runs (ordering.Run) and paints each
// rune of the run with 1 if the run resolved right-to-left, 0 otherwise.
func EmbeddingLevels(runes []rune) []int {
	levels := make([]int, len(runes))
	if len(runes) == 0 {
		return levels
	}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}
	return levels
}

// Bidi reorders text from logical to visual order for display, returning
// the reordered string and a mapping from visual rune position back to
// logical rune position.
func Bidi(text string) (string, []int) {
	runes := []rune(text)
	levels := EmbeddingLevels(runes)

	order := make([]int, len(runes))
	for i := range order {
		order[i] = i
	}
	// Reverse maximal runs of equal, odd (RTL) level — the standard
	// line-based reordering step (UAX#9 rule L2), applied once over the
	// whole string since paragraphs are reordered as a single line here.
	i := 0
	for i < len(order) {
		if levels[i]%2 == 0 {
			i++
			continue
		}
		j := i
		for j < len(order) && levels[j]%2 == 1 {
			j++
		}
		for l, r := i, j-1; l < r; l, r = l+1, r-1 {
			order[l], order[r] = order[r], order[l]
		}
		i = j
	}

	visual := make([]rune, len(runes))
	mapV2L := make([]int, len(runes))
	for visPos, logPos := range order {
		visual[visPos] = runes[logPos]
		mapV2L[visPos] = logPos
	}
	return string(visual), mapV2L
}
