package linebreak

import (
	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/linewidth"
	"github.com/glyphwork/linebreak/locale"
	"github.com/glyphwork/linebreak/text"
)

// optimizeContext accumulates every line-break candidate across the whole
// paragraph before the DP runs over them, plus the two paragraph-wide
// scalars populateCandidates derives along the way.
type optimizeContext struct {
	candidates []candidate

	// linePenalty is the per-line penalty to apply for ragged-right
	// text; it is the max across every run's own line penalty.
	linePenalty float32

	// spaceWidth is the width of a (the last seen) word space, used to
	// bound how much justification may shrink a line.
	spaceWidth float32
}

func newOptimizeContext() *optimizeContext {
	ctx := &optimizeContext{}
	// The first candidate is always at the paragraph start.
	ctx.candidates = append(ctx.candidates, candidate{
		offset: 0, preBreak: 0, postBreak: 0, penalty: 0,
		preSpaceCount: 0, postSpaceCount: 0, hyphenType: hyphen.DontBreak, isRtl: false,
	})
	return ctx
}

func (ctx *optimizeContext) pushDesperate(offset uint32, sumOfCharWidths paraWidth, spaceCount uint32, isRtl bool) {
	ctx.candidates = append(ctx.candidates, candidate{
		offset: offset, preBreak: sumOfCharWidths, postBreak: sumOfCharWidths,
		penalty: ScoreDesperate, preSpaceCount: spaceCount, postSpaceCount: spaceCount,
		hyphenType: hyphen.BreakAndDontInsertHyphen, isRtl: isRtl,
	})
}

func (ctx *optimizeContext) pushHyphenation(offset uint32, preBreak, postBreak paraWidth, penalty float32, spaceCount uint32, hyphType hyphen.HyphenationType, isRtl bool) {
	ctx.candidates = append(ctx.candidates, candidate{
		offset: offset, preBreak: preBreak, postBreak: postBreak, penalty: penalty,
		preSpaceCount: spaceCount, postSpaceCount: spaceCount, hyphenType: hyphType, isRtl: isRtl,
	})
}

func (ctx *optimizeContext) pushWordBreak(offset uint32, preBreak, postBreak paraWidth, penalty float32, preSpaceCount, postSpaceCount uint32, isRtl bool) {
	ctx.candidates = append(ctx.candidates, candidate{
		offset: offset, preBreak: preBreak, postBreak: postBreak, penalty: penalty,
		preSpaceCount: preSpaceCount, postSpaceCount: postSpaceCount, hyphenType: hyphen.DontBreak, isRtl: isRtl,
	})
}

// populateCandidates walks every run of the paragraph, feeding each code
// unit to the char processor and, at every word boundary, probing for
// hyphenation and desperate break points in addition to the ordinary
// word break.
func populateCandidates(textBuf []uint16, measured text.MeasuredText, lineWidth linewidth.Oracle, frequency HyphenationFrequency, isJustified bool, locales *locale.Cache, registry *hyphen.Registry) (*optimizeContext, error) {
	minLineWidth := paraWidth(lineWidth.GetMin())
	proc := newCharProcessor(textBuf, locales, registry)
	result := newOptimizeContext()

	widthAt0 := func() float64 { return lineWidth.At(0) }

	for _, run := range measured.Runs {
		isRtl := run.IsRtl()
		rng := run.Range()

		var hyphenPenalty float32
		if run.CanHyphenate() {
			hp, lp := computePenalties(run, widthAt0, frequency, isJustified)
			hyphenPenalty = hp
			if lp > result.linePenalty {
				result.linePenalty = lp
			}
		}

		proc.updateLocaleIfNecessary(run)

		for i := rng.Start; i < rng.End; i++ {
			if err := proc.feedChar(i, textBuf[i], float32(measured.Widths[i])); err != nil {
				return nil, err
			}

			nextCharOffset := i + 1
			if nextCharOffset != proc.nextWordBreak {
				continue // wait until word break point
			}

			var hyphenedBreaks []hyphenBreak
			var desperateBreaks []desperateBreak
			contextRange := proc.contextRange()
			if run.CanHyphenate() && frequency != None {
				wordRange := proc.wordRange()
				hyphenedBreaks = populateHyphenationPoints(textBuf, run, proc.hyphenator, contextRange, wordRange)
			}
			if proc.widthFromLastWordBreak() > minLineWidth {
				desperateBreaks = populateDesperatePoints(measured, contextRange)
			}
			appendWithMerging(hyphenedBreaks, desperateBreaks, proc, hyphenPenalty, isRtl, result)

			// Skip breaks for zero-width characters inside replacement spans.
			if nextCharOffset == rng.End || measured.Widths[nextCharOffset] > 0 {
				penalty := hyphenPenalty * float32(proc.wordBreakPenalty())
				result.pushWordBreak(nextCharOffset, proc.sumOfCharWidths, proc.effectiveWidth,
					penalty, proc.rawSpaceCount, proc.effectiveSpaceCount, isRtl)
			}
		}
	}
	result.spaceWidth = proc.spaceWidth
	return result, nil
}

// optimalBreaksData is the per-candidate DP table entry.
type optimalBreaksData struct {
	score      float32
	prev       uint32
	lineNumber uint32
}

// computeMaxExtent finds the vertical extent spanning [start, end) of
// code units, the tallest ascent and deepest descent any code unit in
// that span requires.
func computeMaxExtent(measured text.MeasuredText, start, end uint32) text.Extent {
	var res text.Extent
	for j := start; j < end; j++ {
		res.ExtendBy(measured.Extents[j])
	}
	return res
}

// computeBreaks runs the total-fit dynamic program over the candidates
// populateCandidates produced, choosing, for every candidate i, the best
// earlier candidate j to treat as the start of the line ending at i.
//
// The "active" frontier and "bestHope" bound prune candidates that can
// never beat the current best: once a line starting earlier than
// "active" would already overflow every later candidate, it is dropped
// from consideration for good, and within the remaining frontier,
// bestHope skips candidates whose best possible remaining score can't
// beat the incumbent.
func computeBreaks(ctx *optimizeContext, measured text.MeasuredText, lineWidth linewidth.Oracle, strategy BreakStrategy, justified bool) lineBreakResult {
	candidates := ctx.candidates
	nCand := uint32(len(candidates))
	active := uint32(0)
	maxShrink := float32(0)
	if justified {
		maxShrink = Shrinkability * ctx.spaceWidth
	}

	breaksData := make([]optimalBreaksData, 1, nCand)
	breaksData[0] = optimalBreaksData{score: 0, prev: 0, lineNumber: 0}

	for i := uint32(1); i < nCand; i++ {
		atEnd := i == nCand-1
		best := float32(scoreInfinity)
		bestPrev := uint32(0)

		lineNumberLast := breaksData[active].lineNumber
		width := lineWidth.At(int(lineNumberLast))

		leftEdge := candidates[i].postBreak - width
		bestHope := float32(0)

		for j := active; j < i; j++ {
			lineNumber := breaksData[j].lineNumber
			if lineNumber != lineNumberLast {
				widthNew := lineWidth.At(int(lineNumber))
				if widthNew != width {
					leftEdge = candidates[i].postBreak - width
					bestHope = 0
					width = widthNew
				}
				lineNumberLast = lineNumber
			}
			jScore := breaksData[j].score
			if jScore+bestHope >= best {
				continue
			}
			delta := float32(candidates[j].preBreak - leftEdge)

			var widthScore float32
			var additionalPenalty float32
			if (atEnd || !justified) && delta < 0 {
				widthScore = ScoreOverfull
			} else if atEnd && strategy != Balanced {
				additionalPenalty = LastLinePenaltyMultiplier * candidates[j].penalty
			} else {
				widthScore = delta * delta
				if delta < 0 {
					if -delta < maxShrink*float32(candidates[i].postSpaceCount-candidates[j].preSpaceCount) {
						widthScore *= ShrinkPenaltyMultiplier
					} else {
						widthScore = ScoreOverfull
					}
				}
			}

			if delta < 0 {
				active = j + 1
			} else {
				bestHope = widthScore
			}

			score := jScore + widthScore + additionalPenalty
			if score <= best {
				best = score
				bestPrev = j
			}
		}
		breaksData = append(breaksData, optimalBreaksData{
			score:      best + candidates[i].penalty + ctx.linePenalty,
			prev:       bestPrev,
			lineNumber: breaksData[bestPrev].lineNumber + 1,
		})
	}
	return finishBreaksOptimal(measured, breaksData, candidates)
}

// finishBreaksOptimal follows the "prev" links from the last candidate
// back to the start, copying each chosen line's data into the result in
// reverse, then reverses it into paragraph order.
func finishBreaksOptimal(measured text.MeasuredText, breaksData []optimalBreaksData, candidates []candidate) lineBreakResult {
	var result lineBreakResult
	nCand := uint32(len(candidates))
	if nCand <= 1 {
		return result
	}

	for i := nCand - 1; i > 0; {
		prevIndex := breaksData[i].prev
		cand := candidates[i]
		prev := candidates[prevIndex]

		result.breakPoints = append(result.breakPoints, cand.offset)
		result.widths = append(result.widths, float32(cand.postBreak-prev.preBreak))
		extent := computeMaxExtent(measured, prev.offset, cand.offset)
		result.ascents = append(result.ascents, extent.Ascent)
		result.descents = append(result.descents, extent.Descent)

		edit := hyphen.PackEdit(hyphen.EditForNextLine(prev.hyphenType), hyphen.EditForThisLine(cand.hyphenType))
		result.flags = append(result.flags, edit)

		i = prevIndex
	}
	result.reverse()
	return result
}
