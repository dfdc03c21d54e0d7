// Package hyphen implements the Hyphenator registry collaborator
// (spec.md §1, §6): given a word, classify each interior position as a
// legal hyphenation point or not, and if legal, which edit it requires.
//
// The hyphenation algorithm is Frank Liang's pattern-matching scheme from
// his 1983 thesis (the same one TeX uses), grounded on the pack's
// akavel/go-hyphen reference implementation: patterns like ".hy3ph" are
// compiled into a trie, every substring of a dot-padded word is matched
// against the trie, and the highest digit value seen at each gap decides
// whether a break is legal there (odd = legal, even = forbidden).
package hyphen

// HyphenationType classifies an interior word position. DontBreak and
// BreakAndDontInsertHyphen are the two the core spec names explicitly
// (e.g. for desperate breaks, which reuse BreakAndDontInsertHyphen);
// the remaining values are language-specific edits a pattern hyphenator
// can request at the cut point.
type HyphenationType int

const (
	// DontBreak marks a position with no legal hyphenation break.
	DontBreak HyphenationType = iota
	// BreakAndDontInsertHyphen marks a legal break with no glyph edit —
	// used for desperate (mid-word) breaks and scripts that don't
	// use a visible hyphen (e.g. breaking after an existing hyphen).
	BreakAndDontInsertHyphen
	// BreakAndInsertHyphen marks a legal break that inserts a hyphen
	// glyph at the end of the first piece.
	BreakAndInsertHyphen
	// BreakAndInsertHyphenAndLetter marks a break that both inserts a
	// hyphen and duplicates the preceding consonant (e.g. German
	// "Schiff-fahrt" from the older spelling "Schiffahrt").
	BreakAndInsertHyphenAndLetter
	// BreakAndReplaceWithDoubleHyphen marks a break replacing an existing
	// character with a double hyphen (used by some Slavic languages).
	BreakAndReplaceWithDoubleHyphen
)

// Edit describes the glyph-level modification a piece needs at the edge
// where it was cut, fed to Run.MeasureHyphenPiece's startEdit/endEdit.
type Edit int

const (
	// EditNoEdit applies no modification at this edge.
	EditNoEdit Edit = iota
	// EditInsertHyphen appends a visible hyphen glyph at this edge.
	EditInsertHyphen
	// EditInsertHyphenAndLetter appends a hyphen and a duplicated letter.
	EditInsertHyphenAndLetter
	// EditReplaceWithHyphen replaces the cut character with a hyphen.
	EditReplaceWithHyphen
)

// EditForThisLine returns the edit applied to the end of the piece staying
// on the current line.
func EditForThisLine(t HyphenationType) Edit {
	switch t {
	case BreakAndInsertHyphen:
		return EditInsertHyphen
	case BreakAndInsertHyphenAndLetter:
		return EditInsertHyphenAndLetter
	case BreakAndReplaceWithDoubleHyphen:
		return EditReplaceWithHyphen
	default:
		return EditNoEdit
	}
}

// EditForNextLine returns the edit applied to the start of the piece
// carried to the next line. None of the current hyphenation types modify
// the leading edge, but the hook exists for symmetry with the original
// and for scripts that do (e.g. Dutch "ij" ligature splitting).
func EditForNextLine(_ HyphenationType) Edit {
	return EditNoEdit
}

// PackEdit packs a line's leading (start) and trailing (end) hyphen edits
// into the single flags value a LineBreakResult entry carries: start is
// the edit applied to the piece carried onto this line from the previous
// break (EditForNextLine of the previous candidate's type), end is the
// edit applied where this line itself breaks (EditForThisLine of this
// candidate's type).
func PackEdit(start, end Edit) int {
	return int(start)<<8 | int(end)
}

// Hyphenator classifies every interior rune position of a word. The
// returned slice has one entry per rune boundary *within* the word (i.e.
// len(word)-1 entries would suffice, but implementations return len(word)
// entries indexed like the original — index i describes the boundary
// immediately before rune i; index 0 is always DontBreak).
type Hyphenator interface {
	Hyphenate(word []rune) []HyphenationType
}
