package linebreak

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/glyphwork/linebreak/hyphen"
	"github.com/glyphwork/linebreak/locale"
	"github.com/glyphwork/linebreak/text"
	"github.com/glyphwork/linebreak/wordbreak"
)

// ErrUnsupportedChar is returned by BreakParagraph when the paragraph
// contains a code unit the optimal line breaker does not support. A TAB
// must be expanded to spaces (or otherwise removed) before reaching this
// package; it has no well-defined width contribution to the DP.
var ErrUnsupportedChar = errors.New("linebreak: unsupported character")

const charTab = uint16('\t')

func isWordSpace(c uint16) bool {
	return c == ' '
}

func isLineEndSpace(c uint16) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	case 0x2028, 0x2029: // line separator, paragraph separator
		return true
	case 0x200B: // zero width space
		return true
	}
	return false
}

// charProcessor walks the paragraph one code unit at a time, accumulating
// the running sums populateCandidates needs and driving the word breaker
// and hyphenator registry lookups in lockstep with the current run.
type charProcessor struct {
	rawSpaceCount       uint32
	effectiveSpaceCount uint32

	sumOfCharWidths                paraWidth
	effectiveWidth                 paraWidth
	sumOfCharWidthsAtPrevWordBreak paraWidth

	nextWordBreak uint32
	prevWordBreak uint32

	spaceWidth float32

	hyphenator hyphen.Hyphenator

	localeListID uint32
	breaker      *wordbreak.Breaker
	locales      *locale.Cache
	registry     *hyphen.Registry
}

func newCharProcessor(textBuf []uint16, locales *locale.Cache, registry *hyphen.Registry) *charProcessor {
	b := wordbreak.NewBreaker()
	b.SetText(textBuf)
	return &charProcessor{
		breaker:      b,
		locales:      locales,
		registry:     registry,
		localeListID: locale.InvalidID,
		hyphenator:   hyphen.None,
	}
}

func (p *charProcessor) wordRange() text.Range {
	start, end := p.breaker.WordRange()
	return text.Range{Start: start, End: end}
}

func (p *charProcessor) contextRange() text.Range {
	return text.Range{Start: p.prevWordBreak, End: p.nextWordBreak}
}

func (p *charProcessor) widthFromLastWordBreak() paraWidth {
	return p.effectiveWidth - p.sumOfCharWidthsAtPrevWordBreak
}

func (p *charProcessor) wordBreakPenalty() int {
	return p.breaker.BreakBadness()
}

// updateLocaleIfNecessary reseeds the word breaker and hyphenator when the
// run's locale list changes, mirroring the original's lazy locale switch:
// most paragraphs are monolingual, so this runs at most once.
func (p *charProcessor) updateLocaleIfNecessary(run text.Run) {
	newLocaleListID := run.LocaleListId()
	if p.localeListID == newLocaleListID {
		return
	}
	list := p.locales.Get(newLocaleListID)
	tag := list.Primary()
	if tag == language.Und {
		tag = language.English
	}
	p.nextWordBreak = p.breaker.FollowingWithLocale(tag, run.Range().Start)
	p.hyphenator = p.registry.Lookup(tag)
	p.localeListID = newLocaleListID
}

// feedChar processes one code unit at paragraph offset idx with measured
// width w, advancing the word-break cursor when idx reaches the next
// boundary and updating the effective (trailing-space-trimmed) sums.
func (p *charProcessor) feedChar(idx uint32, c uint16, w float32) error {
	if c == charTab {
		return ErrUnsupportedChar
	}
	if idx == p.nextWordBreak {
		p.prevWordBreak = p.nextWordBreak
		p.nextWordBreak = p.breaker.Next()
		p.sumOfCharWidthsAtPrevWordBreak = p.sumOfCharWidths
	}
	if isWordSpace(c) {
		p.rawSpaceCount++
		p.spaceWidth = w
	}
	p.sumOfCharWidths += paraWidth(w)
	if !isLineEndSpace(c) {
		p.effectiveSpaceCount = p.rawSpaceCount
		p.effectiveWidth = p.sumOfCharWidths
	}
	return nil
}
