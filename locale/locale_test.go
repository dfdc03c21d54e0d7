package locale

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestParseListPrimaryAndFallback(t *testing.T) {
	l := ParseList("en-US, fr")
	test.T(t, l.Primary(), language.MustParse("en-US"))
	test.T(t, len(l.Tags()), 2)
	test.That(t, !l.IsEmpty())
}

func TestParseListDropsMalformed(t *testing.T) {
	l := ParseList("en, not-a-tag!!, fr")
	test.T(t, len(l.Tags()), 2)
}

func TestParseListEmpty(t *testing.T) {
	l := ParseList("")
	test.That(t, l.IsEmpty())
	test.T(t, l.Primary(), language.Und)
}

func TestCacheInternReusesId(t *testing.T) {
	c := NewCache()
	id1 := c.Intern("en-US")
	id2 := c.Intern("en-US")
	test.T(t, id1, id2)
	test.That(t, id1 != InvalidID)
}

func TestCacheGetUnknownId(t *testing.T) {
	c := NewCache()
	l := c.Get(InvalidID)
	test.That(t, l.IsEmpty())
}
