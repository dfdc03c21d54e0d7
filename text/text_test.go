package text

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestScriptItemizer(t *testing.T) {
	var tests = []struct {
		str   string
		items []ScriptItem
	}{
		{"abc", []ScriptItem{{Latin, 0, "abc"}}},
		{"\u064bياعادلا", []ScriptItem{{Arabic, 1, "\u064bياعادلا"}}},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			runes := []rune(tt.str)
			embeddingLevels := EmbeddingLevels(runes)
			items := ScriptItemizer(runes, embeddingLevels)
			test.T(t, items, tt.items)
		})
	}
}

func TestIsParagraphSeparator(t *testing.T) {
	test.T(t, IsParagraphSeparator('\n'), true)
	test.T(t, IsParagraphSeparator(' '), true)
	test.T(t, IsParagraphSeparator('a'), false)
}

func TestGlyphAdvance(t *testing.T) {
	g := Glyph{UnitsPerEm: 1000, Size: 20, XAdvance: 500}
	test.T(t, g.Advance(), 10.0)
}

func TestRangeSplit(t *testing.T) {
	r := Range{Start: 2, End: 10}
	left, right := r.Split(5)
	test.T(t, left, Range{2, 5})
	test.T(t, right, Range{5, 10})
	test.T(t, r.Contains(left), true)
	test.T(t, r.ToRangeOffset(7), uint32(5))
}

func TestExtentExtendBy(t *testing.T) {
	e := Extent{Ascent: 5, Descent: 2}
	e.ExtendBy(Extent{Ascent: 3, Descent: 4})
	test.T(t, e, Extent{Ascent: 5, Descent: 4})
}
