package text

import (
	"github.com/glyphwork/linebreak/codeunit"
	"github.com/glyphwork/linebreak/hyphen"
)

// Paint carries the subset of paint/font state the optimizer's penalty
// computation needs: point size and horizontal scale (e.g. from a
// condensed or expanded font variant).
type Paint struct {
	Size   float64
	ScaleX float64
}

// Run is one styled, directionally- and script-uniform region of a
// paragraph — the Run collaborator populateCandidates iterates over to
// compute per-run penalties, locale, and hyphenated-piece widths.
type Run interface {
	Range() Range
	IsRtl() bool
	LocaleListId() uint32
	CanHyphenate() bool
	Paint() Paint
	// MeasureHyphenPiece measures one piece of a hyphenated word (the
	// part staying on one line after a break), applying the glyph edits
	// a break of the given hyphenation type at each end requires.
	MeasureHyphenPiece(textBuf []uint16, piece Range, startEdit, endEdit hyphen.Edit) float64
}

// ShapedRun is the Shaper-backed implementation of Run: it shapes
// its own text through a Shaper to answer MeasureHyphenPiece, the way a
// real layout engine's run would measure a re-shaped hyphenated fragment.
type ShapedRun struct {
	Span       Range
	Rtl        bool
	LocaleList uint32
	Hyphenate  bool
	SizePt     float64
	ScaleXPt   float64
	Shaper     Shaper
	Script     Script
	Direction  Direction
	Lang       string
}

func (r *ShapedRun) Range() Range         { return r.Span }
func (r *ShapedRun) IsRtl() bool          { return r.Rtl }
func (r *ShapedRun) LocaleListId() uint32 { return r.LocaleList }
func (r *ShapedRun) CanHyphenate() bool   { return r.Hyphenate }
func (r *ShapedRun) Paint() Paint         { return Paint{Size: r.SizePt, ScaleX: r.ScaleXPt} }

// MeasureHyphenPiece re-renders the piece's text with the requested
// hyphen edits applied at its edges and sums the shaped glyph advances.
func (r *ShapedRun) MeasureHyphenPiece(textBuf []uint16, piece Range, startEdit, endEdit hyphen.Edit) float64 {
	if piece.Len() == 0 {
		return 0
	}
	runes, _ := codeunit.Decode(textBuf[piece.Start:piece.End])
	s := applyEdits(runes, startEdit, endEdit)

	glyphs := r.Shaper.Shape(s, r.SizePt*r.ScaleXPt, r.Direction, r.Script, r.Lang, "", "")
	var total float64
	for _, g := range glyphs {
		total += g.Advance()
	}
	return total
}

func applyEdits(runes []rune, startEdit, endEdit hyphen.Edit) string {
	out := make([]rune, len(runes))
	copy(out, runes)

	switch startEdit {
	case hyphen.EditInsertHyphen, hyphen.EditInsertHyphenAndLetter:
		out = append([]rune{'-'}, out...)
	}

	switch endEdit {
	case hyphen.EditInsertHyphen:
		out = append(out, '-')
	case hyphen.EditInsertHyphenAndLetter:
		if n := len(out); n > 0 {
			out = append(out, out[n-1], '-')
		}
	case hyphen.EditReplaceWithHyphen:
		if n := len(out); n > 0 {
			out[n-1] = '-'
		}
	}
	return string(out)
}
