package text

import (
	"unicode/utf8"

	"github.com/glyphwork/linebreak/codeunit"
)

// MeasuredText is the per-paragraph measurement the optimizer consumes:
// one advance width and one font extent per UTF-16 code unit, plus the
// ordered list of runs they came from. Widths[i] == 0 marks a code unit
// that is not a grapheme boundary (the second half of a surrogate pair,
// or a combining mark fused onto its base) — populateDesperatePoints
// uses exactly that to skip illegal desperate-break offsets.
type MeasuredText struct {
	Widths  []float64
	Extents []Extent
	Runs    []Run
}

// defaultAscentRatio and defaultDescentRatio synthesize a font extent from
// point size alone. A real layout engine reads these from the font's
// hhea/OS2 tables (exposed by benoitkugler/textlayout); wiring that up
// needs a font-metrics accessor this shaping library does not expose
// through the surface the teacher's harfbuzz.go already uses, so measured
// extents here are an approximation, documented in DESIGN.md.
const (
	defaultAscentRatio  = 0.8
	defaultDescentRatio = 0.2
)

// Measure shapes every run's text and scatters the resulting glyph
// advances back onto the paragraph's per-code-unit Widths/Extents arrays,
// the Go equivalent of minikin's Layout-driven MeasuredText construction.
func Measure(textBuf []uint16, runs []Run) MeasuredText {
	m := MeasuredText{
		Widths:  make([]float64, len(textBuf)),
		Extents: make([]Extent, len(textBuf)),
		Runs:    runs,
	}
	for _, run := range runs {
		measureRun(textBuf, run, m.Widths, m.Extents)
	}
	return m
}

func measureRun(textBuf []uint16, run Run, widths []float64, extents []Extent) {
	sr, ok := run.(*ShapedRun)
	if !ok {
		return // a caller-supplied Run without a Shaper carries its own widths
	}
	span := run.Range()
	if span.Len() == 0 {
		return
	}

	runes, codeUnitOffsets := codeunit.Decode(textBuf[span.Start:span.End])
	s := string(runes)

	byteToRuneIdx := make(map[uint32]int, len(runes))
	bytePos := uint32(0)
	for i, r := range runes {
		byteToRuneIdx[bytePos] = i
		bytePos += uint32(utf8.RuneLen(r))
	}

	glyphs := sr.Shaper.Shape(s, sr.SizePt*sr.ScaleXPt, sr.Direction, sr.Script, sr.Lang, "", "")

	ascent := defaultAscentRatio * sr.SizePt
	descent := defaultDescentRatio * sr.SizePt

	for _, g := range glyphs {
		runeIdx, ok := byteToRuneIdx[g.Cluster]
		if !ok {
			continue
		}
		abs := span.Start + codeUnitOffsets[runeIdx]
		if int(abs) >= len(widths) {
			continue
		}
		widths[abs] += g.Advance()
		extents[abs].ExtendBy(Extent{Ascent: ascent, Descent: descent})
	}
}
