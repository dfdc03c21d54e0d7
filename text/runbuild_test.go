package text

import (
	"testing"
	"unicode/utf16"

	"github.com/tdewolff/test"
)

func TestItemizeRunsSingleScript(t *testing.T) {
	buf := utf16.Encode([]rune("hello"))
	specs := ItemizeRuns(buf)
	test.T(t, len(specs), 1)
	test.T(t, specs[0].Range, Range{Start: 0, End: uint32(len(buf))})
	test.T(t, specs[0].Script, Latin)
	test.T(t, specs[0].Rtl, false)
	test.T(t, specs[0].CanHyphenate, true)
}

func TestItemizeRunsSpacelessScriptNotHyphenatable(t *testing.T) {
	buf := utf16.Encode([]rune("中文"))
	specs := ItemizeRuns(buf)
	test.T(t, len(specs), 1)
	test.T(t, specs[0].Script, Han)
	test.T(t, specs[0].CanHyphenate, false)
}

func TestItemizeRunsEmpty(t *testing.T) {
	specs := ItemizeRuns(nil)
	test.T(t, len(specs), 0)
}
