// Command linebreakdemo exercises the linebreak package end to end from
// the command line: it breaks a paragraph of plain text into lines at a
// given width and prints the resulting lines.
//
// It has no font to shape with, so it measures every code unit with a
// fixed monospace advance (overridable with -char-width) rather than
// real glyph metrics; that is enough to drive the optimizer and see its
// line, hyphenation, and desperate-break decisions on real text.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/tdewolff/argp"

	"github.com/glyphwork/linebreak"
	"github.com/glyphwork/linebreak/codeunit"
	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/linewidth"
	"github.com/glyphwork/linebreak/text"
)

type Break struct {
	Width       float64 `short:"w" default:"40" desc:"Line width in the same units as char-width"`
	CharWidth   float64 `default:"1" desc:"Advance given to every non-space code unit"`
	SpaceWidth  float64 `default:"1" desc:"Advance given to every space code unit"`
	Balanced    bool    `desc:"Score the last line like any other instead of allowing it to be ragged"`
	Hyphenate   bool    `desc:"Offer hyphenation break points using the built-in seed English patterns"`
	Justified   bool    `desc:"Allow space-shrinking to fit lines exactly"`
	Locale      string  `default:"en" desc:"BCP 47 locale tag used to look up a hyphenator"`
	Text        string  `index:"0" desc:"Paragraph text; reads stdin if omitted"`
}

func main() {
	root := argp.NewCmd(&Break{}, "Break a paragraph of text into lines with the optimal-fit line breaker")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Break) Run() error {
	paragraph := cmd.Text
	if paragraph == "" {
		b, err := readStdin()
		if err != nil {
			return err
		}
		paragraph = b
	}
	if strings.TrimSpace(paragraph) == "" {
		return argp.ShowUsage
	}

	textBuf := utf16.Encode([]rune(paragraph))
	breaker := linebreak.NewBreaker()
	localeID := breaker.Locales.Intern(cmd.Locale)

	specs := text.ItemizeRuns(textBuf)
	runs := make([]*monoRun, len(specs))
	for i, spec := range specs {
		runs[i] = &monoRun{
			span:       spec.Range,
			rtl:        spec.Rtl,
			hyphenate:  cmd.Hyphenate && spec.CanHyphenate,
			localeID:   localeID,
			charWidth:  cmd.CharWidth,
			spaceWidth: cmd.SpaceWidth,
		}
	}
	measured := measure(textBuf, runs)

	strategy := linebreak.HighQuality
	if cmd.Balanced {
		strategy = linebreak.Balanced
	}
	frequency := linebreak.None
	if cmd.Hyphenate {
		frequency = linebreak.Normal
	}

	result, err := breaker.BreakParagraph(textBuf, measured, linewidth.Constant(cmd.Width), strategy, frequency, cmd.Justified)
	if err != nil {
		return err
	}

	start := uint32(0)
	for i, end := range result.BreakPoints {
		logical := string(utf16.Decode(textBuf[start:end]))
		visual, _ := text.Bidi(logical)
		startEdit := hyphen.Edit(result.Flags[i] >> 8)
		endEdit := hyphen.Edit(result.Flags[i] & 0xff)
		fmt.Printf("%2d: %-40q width=%.1f edits=(%d,%d)\n", i+1, visual, result.Widths[i], startEdit, endEdit)
		start = end
	}
	return nil
}

func readStdin() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	return sb.String(), nil
}

// monoRun is a text.Run with no shaper behind it: it advances every code
// unit by a fixed width instead of measuring real glyphs, which is all a
// demo needs to drive the optimizer.
type monoRun struct {
	span       text.Range
	rtl        bool
	hyphenate  bool
	localeID   uint32
	charWidth  float64
	spaceWidth float64
}

func (r *monoRun) Range() text.Range    { return r.span }
func (r *monoRun) IsRtl() bool          { return r.rtl }
func (r *monoRun) LocaleListId() uint32 { return r.localeID }
func (r *monoRun) CanHyphenate() bool   { return r.hyphenate }
func (r *monoRun) Paint() text.Paint    { return text.Paint{Size: r.charWidth, ScaleX: 1} }

// MeasureHyphenPiece measures a cut-apart piece of a word, adding one
// char-width per inserted hyphen glyph so hyphenated breaks cost
// something over the unbroken word.
func (r *monoRun) MeasureHyphenPiece(textBuf []uint16, piece text.Range, startEdit, endEdit hyphen.Edit) float64 {
	w := float64(piece.Len()) * r.charWidth
	if startEdit == hyphen.EditInsertHyphen || startEdit == hyphen.EditInsertHyphenAndLetter {
		w += r.charWidth
	}
	if endEdit == hyphen.EditInsertHyphen || endEdit == hyphen.EditInsertHyphenAndLetter {
		w += r.charWidth
	}
	return w
}

// measure builds a MeasuredText for runs over textBuf without any real
// shaping: every code unit gets spaceWidth or charWidth depending on
// whether it's whitespace, and every position gets the same vertical
// extent derived from its owning run's charWidth. runs is itemized by
// ItemizeRuns, so every code unit falls in exactly one run's span.
func measure(textBuf []uint16, runs []*monoRun) text.MeasuredText {
	n := len(textBuf)
	widths := make([]float64, n)
	extents := make([]text.Extent, n)
	textRuns := make([]text.Run, len(runs))

	runes, offsets := codeunit.Decode(textBuf)
	runIdx := 0
	for i, r := range runes {
		start := offsets[i]
		for runIdx < len(runs)-1 && runs[runIdx].span.End <= start {
			runIdx++
		}
		run := runs[runIdx]
		textRuns[runIdx] = run

		w := run.charWidth
		if unicode.IsSpace(r) {
			w = run.spaceWidth
		}
		widths[start] = w
		for u := 1; u < codeunit.Width(r); u++ {
			widths[start+uint32(u)] = 0
		}
		extents[start] = text.Extent{Ascent: run.charWidth * 0.8, Descent: run.charWidth * 0.2}
	}

	return text.MeasuredText{
		Widths:  widths,
		Extents: extents,
		Runs:    textRuns,
	}
}
