package hyphen

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestPatternHyphenatorFollowing(t *testing.T) {
	h := NewSeedEnglish()
	types := h.Hyphenate([]rune("following"))
	test.T(t, len(types), 9)

	any := false
	for _, ty := range types {
		if ty != DontBreak {
			any = true
		}
	}
	test.T(t, any, true, "expected at least one legal break in \"following\"")
}

func TestPatternHyphenatorException(t *testing.T) {
	h := NewSeedEnglish()
	types := h.Hyphenate([]rune("hyphenation"))
	// "hy-phen-ation" exception: breaks after rune 2 ("hy") and rune 6 ("hyphen").
	test.T(t, types[2], BreakAndInsertHyphen)
	test.T(t, types[6], BreakAndInsertHyphen)
}

func TestPatternHyphenatorShortWordNoBreak(t *testing.T) {
	h := NewSeedEnglish()
	types := h.Hyphenate([]rune("a"))
	for _, ty := range types {
		test.T(t, ty, DontBreak)
	}
}

func TestEditForThisLine(t *testing.T) {
	test.T(t, EditForThisLine(BreakAndInsertHyphen), EditInsertHyphen)
	test.T(t, EditForThisLine(BreakAndDontInsertHyphen), EditNoEdit)
	test.T(t, EditForNextLine(BreakAndInsertHyphen), EditNoEdit)
}

func TestPackEdit(t *testing.T) {
	packed := PackEdit(EditInsertHyphen, EditNoEdit)
	test.T(t, packed, int(EditInsertHyphen)<<8)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	h := r.Lookup(language.AmericanEnglish)
	_, ok := h.(*PatternHyphenator)
	test.T(t, ok, true, "expected en-US to resolve to the seed English hyphenator")

	none := r.Lookup(language.Japanese)
	test.T(t, none, None)
}
