// Package locale packs BCP-47 locale lists into opaque ids and resolves
// them back to effective locales, the way the original minikin engine's
// LocaleListCache does. The packing itself is mechanical; the only reason
// it exists as a cache at all is so the per-character hot loop in the line
// breaker can carry a uint32 instead of a parsed tag list.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// List is an ordered, comma-separated BCP-47 locale list, e.g. "en-US,en".
// The first tag is the primary locale, the only one the line breaker uses
// to pick a word breaker and hyphenator; the remaining tags are kept and
// returned by Tags but the line breaker does not consult them.
type List struct {
	raw  string
	tags []language.Tag
}

// ParseList parses a comma-separated BCP-47 list. Malformed tags are
// dropped rather than rejected — a locale list is advisory input, and the
// line breaker must never fail because a paragraph-style locale tag is
// malformed.
func ParseList(s string) List {
	parts := strings.Split(s, ",")
	tags := make([]language.Tag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return List{raw: s, tags: tags}
}

// Primary returns the first locale in the list, or language.Und if empty.
func (l List) Primary() language.Tag {
	if len(l.tags) == 0 {
		return language.Und
	}
	return l.tags[0]
}

// Tags returns the full fallback chain.
func (l List) Tags() []language.Tag {
	return l.tags
}

func (l List) String() string {
	return l.raw
}

// IsEmpty reports whether the list carries no usable locale.
func (l List) IsEmpty() bool {
	return len(l.tags) == 0
}
