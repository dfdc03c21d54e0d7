// Package linebreak implements the optimal (total-fit) paragraph line
// breaker: given a paragraph's code units, their measured widths and
// extents, and a line-width oracle, it finds the break sequence that
// minimizes an accumulated score across the whole paragraph rather than
// greedily filling each line — the dynamic-programming approach Donald
// Knuth and Michael Plass described for TeX, adapted here for
// hyphenation, desperate (mid-word) breaks, and variable line widths,
// grounded on the Android text-layout engine's OptimalLineBreaker.
package linebreak

import (
	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/linewidth"
	"github.com/glyphwork/linebreak/locale"
	"github.com/glyphwork/linebreak/text"
)

// Breaker holds the process-wide, read-mostly collaborators the DP
// consults on every call: the locale-list cache and the hyphenator
// registry. Both are safe for concurrent use, so a single Breaker can
// serve BreakParagraph calls from multiple goroutines; all other state
// the DP needs is allocated fresh per call.
type Breaker struct {
	Locales     *locale.Cache
	Hyphenators *hyphen.Registry
}

// NewBreaker returns a Breaker with a fresh locale cache and a
// hyphenator registry preloaded with the built-in seed hyphenators.
func NewBreaker() *Breaker {
	return &Breaker{
		Locales:     locale.NewCache(),
		Hyphenators: hyphen.NewRegistry(),
	}
}

// BreakParagraph computes the optimal line breaks for one paragraph.
// textBuf is the paragraph's UTF-16 code units; measured carries their
// per-code-unit widths and extents plus the runs that produced them;
// lineWidth answers how wide each successive line may be; strategy picks
// how the last line is scored; frequency controls how eagerly
// hyphenation points are offered; justified enables space-shrinking to
// fit lines exactly instead of leaving a ragged right edge.
//
// It returns ErrUnsupportedChar if textBuf contains a code unit this
// breaker cannot process (currently only TAB, which callers must expand
// before breaking).
func (b *Breaker) BreakParagraph(textBuf []uint16, measured text.MeasuredText, lineWidth linewidth.Oracle, strategy BreakStrategy, frequency HyphenationFrequency, justified bool) (Result, error) {
	if len(textBuf) == 0 {
		return Result{}, nil
	}
	ctx, err := populateCandidates(textBuf, measured, lineWidth, frequency, justified, b.Locales, b.Hyphenators)
	if err != nil {
		return Result{}, err
	}
	result := computeBreaks(ctx, measured, lineWidth, strategy, justified)
	return result.export(), nil
}
