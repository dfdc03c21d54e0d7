package text

import (
	"testing"

	"github.com/tdewolff/test"
	"github.com/glyphwork/linebreak/hyphen"
)

// fakeRun lets tests exercise MeasuredText plumbing without a real font.
type fakeRun struct {
	span      Range
	widths    []float64
	rtl       bool
	hyphenate bool
}

func (f *fakeRun) Range() Range         { return f.span }
func (f *fakeRun) IsRtl() bool          { return f.rtl }
func (f *fakeRun) LocaleListId() uint32 { return 0 }
func (f *fakeRun) CanHyphenate() bool   { return f.hyphenate }
func (f *fakeRun) Paint() Paint         { return Paint{Size: 12, ScaleX: 1} }
func (f *fakeRun) MeasureHyphenPiece(textBuf []uint16, piece Range, startEdit, endEdit hyphen.Edit) float64 {
	return float64(piece.Len()) * 10
}

func TestMeasureSkipsNonShapedRuns(t *testing.T) {
	textBuf := []uint16{'h', 'i'}
	run := &fakeRun{span: Range{0, 2}}
	m := Measure(textBuf, []Run{run})
	test.T(t, len(m.Widths), 2)
	test.T(t, m.Widths[0], 0.0)
	test.T(t, m.Widths[1], 0.0)
	test.T(t, len(m.Runs), 1)
}

func TestFakeRunMeasureHyphenPiece(t *testing.T) {
	run := &fakeRun{span: Range{0, 5}, hyphenate: true}
	w := run.MeasureHyphenPiece(nil, Range{0, 3}, hyphen.EditNoEdit, hyphen.EditInsertHyphen)
	test.T(t, w, 30.0)
}
