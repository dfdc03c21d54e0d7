// Package codeunit decodes UTF-16 code unit slices into runes while
// tracking which code unit each rune started at — the conversion every
// collaborator needs since paragraph text is held as UTF-16 code units
// (spec.md §6) but Unicode properties, scripts, and word/hyphen
// boundaries are naturally expressed per rune.
package codeunit

import (
	"unicode"
	"unicode/utf16"
)

// Decode walks text and returns its runes plus, for each rune, the
// code-unit offset of its first unit (1 or 2 past the previous rune's,
// depending on whether that rune was a surrogate pair).
func Decode(text []uint16) (runes []rune, offsets []uint32) {
	runes = make([]rune, 0, len(text))
	offsets = make([]uint32, 0, len(text))
	i := 0
	for i < len(text) {
		r := rune(text[i])
		width := 1
		if utf16.IsSurrogate(r) && i+1 < len(text) {
			if dec := utf16.DecodeRune(r, rune(text[i+1])); dec != unicode.ReplacementChar {
				r = dec
				width = 2
			}
		}
		runes = append(runes, r)
		offsets = append(offsets, uint32(i))
		i += width
	}
	return runes, offsets
}

// Width reports how many UTF-16 code units r occupies (1, or 2 if it lies
// outside the basic multilingual plane).
func Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
