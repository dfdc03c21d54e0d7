package text

import "github.com/glyphwork/linebreak/codeunit"

// RunSpec describes one script- and direction-uniform span of a
// paragraph, plus whether it is eligible for hyphenation — the
// itemization a real layout engine performs before building Runs at all.
type RunSpec struct {
	Range        Range
	Script       Script
	Rtl          bool
	CanHyphenate bool
}

// ItemizeRuns splits a paragraph's UTF-16 code units into script- and
// direction-uniform spans, the same itemization the teacher's own
// text.go wires up before constructing its text lines: compute UAX#9
// embedding levels (EmbeddingLevels), itemize by script within those
// levels (ScriptItemizer), and mark each span's hyphenation eligibility
// by its script. Spaceless scripts (Han, Thai, ...) don't take a Latin-
// style hyphen, and the scripts capable of vertical layout overlap almost
// entirely with them, so a span is eligible only if it is neither.
func ItemizeRuns(textBuf []uint16) []RunSpec {
	runes, offsets := codeunit.Decode(textBuf)
	if len(runes) == 0 {
		return nil
	}

	levels := EmbeddingLevels(runes)
	items := ScriptItemizer(runes, levels)

	specs := make([]RunSpec, 0, len(items))
	runeIdx := 0
	for _, item := range items {
		n := len([]rune(item.Text))
		start := offsets[runeIdx]
		end := uint32(len(textBuf))
		if next := runeIdx + n; next < len(offsets) {
			end = offsets[next]
		}
		specs = append(specs, RunSpec{
			Range:        Range{Start: start, End: end},
			Script:       item.Script,
			Rtl:          item.Level%2 == 1,
			CanHyphenate: !IsSpacelessScript(item.Script) && !IsVerticalScript(item.Script),
		})
		runeIdx += n
	}
	return specs
}
