package text

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEmbeddingLevelsLTR(t *testing.T) {
	levels := EmbeddingLevels([]rune("hello"))
	for _, l := range levels {
		test.T(t, l, 0)
	}
}

func TestBidiIdentityForLTR(t *testing.T) {
	visual, mapV2L := Bidi("hello")
	test.T(t, visual, "hello")
	test.T(t, mapV2L, []int{0, 1, 2, 3, 4})
}
