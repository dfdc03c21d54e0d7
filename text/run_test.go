package text

import (
	"testing"

	"github.com/tdewolff/test"
	"github.com/glyphwork/linebreak/hyphen"
)

func TestApplyEditsInsertHyphen(t *testing.T) {
	s := applyEdits([]rune("hel"), hyphen.EditNoEdit, hyphen.EditInsertHyphen)
	test.T(t, s, "hel-")
}

func TestApplyEditsInsertHyphenAndLetter(t *testing.T) {
	s := applyEdits([]rune("schiff"), hyphen.EditNoEdit, hyphen.EditInsertHyphenAndLetter)
	test.T(t, s, "schifff-")
}

func TestApplyEditsReplaceWithHyphen(t *testing.T) {
	s := applyEdits([]rune("abc"), hyphen.EditNoEdit, hyphen.EditReplaceWithHyphen)
	test.T(t, s, "ab-")
}

func TestShapedRunRangeAndFlags(t *testing.T) {
	r := &ShapedRun{Span: Range{1, 4}, Rtl: true, Hyphenate: true, SizePt: 12, ScaleXPt: 1}
	test.T(t, r.Range(), Range{1, 4})
	test.T(t, r.IsRtl(), true)
	test.T(t, r.CanHyphenate(), true)
	test.T(t, r.Paint(), Paint{Size: 12, ScaleX: 1})
}
