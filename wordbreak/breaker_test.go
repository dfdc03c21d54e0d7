package wordbreak

import (
	"testing"
	"unicode/utf16"

	"github.com/tdewolff/test"
	"golang.org/x/text/language"
)

func TestBreaker(t *testing.T) {
	text := utf16.Encode([]rune("hello world"))
	b := NewBreaker()
	b.SetText(text)

	first := b.FollowingWithLocale(language.English, 0)
	test.T(t, first, uint32(5), "first boundary at space")
	test.T(t, b.BreakBadness(), BadnessNone)

	second := b.Next()
	test.T(t, second, uint32(11), "second boundary at end")

	start, end := b.WordRange()
	test.T(t, start, uint32(5))
	test.T(t, end, uint32(11))
}

func TestBreakerSpacelessTransition(t *testing.T) {
	text := utf16.Encode([]rune("abc中文"))
	b := NewBreaker()
	b.SetText(text)

	first := b.FollowingWithLocale(language.Und, 0)
	test.T(t, first, uint32(3), "boundary at script change")
	test.T(t, b.BreakBadness(), BadnessNoSeparator)
}
