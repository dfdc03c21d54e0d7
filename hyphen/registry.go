package hyphen

import (
	"sync"

	"golang.org/x/text/language"
)

// noneHyphenator never offers a break; it backs locales with no pattern
// data (it is the registry's default fallback).
type noneHyphenator struct{}

func (noneHyphenator) Hyphenate(word []rune) []HyphenationType {
	return make([]HyphenationType, len(word))
}

// None is the shared no-op hyphenator.
var None Hyphenator = noneHyphenator{}

// Registry resolves a BCP-47 locale to a Hyphenator, mirroring the
// original engine's HyphenatorMap: a process-wide, read-mostly table
// consulted once per locale run by CharProcessor.updateLocaleIfNecessary.
type Registry struct {
	mu       sync.RWMutex
	matcher  language.Matcher
	tags     []language.Tag
	byTag    []Hyphenator
	fallback Hyphenator
}

// NewRegistry returns a registry preloaded with the seed English
// hyphenator under "en", and None as the fallback for unrecognized locales.
func NewRegistry() *Registry {
	r := &Registry{fallback: None}
	r.Register(language.English, NewSeedEnglish())
	return r
}

// Register associates a locale with a Hyphenator, rebuilding the language
// matcher used for fallback resolution (e.g. a lookup for "en-GB" matches
// a hyphenator registered under "en").
func (r *Registry) Register(tag language.Tag, h Hyphenator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tags {
		if t == tag {
			r.byTag[i] = h
			r.matcher = language.NewMatcher(r.tags)
			return
		}
	}
	r.tags = append(r.tags, tag)
	r.byTag = append(r.byTag, h)
	r.matcher = language.NewMatcher(r.tags)
}

// SetFallback replaces the hyphenator used when no registered locale
// matches (default None, i.e. no hyphenation offered).
func (r *Registry) SetFallback(h Hyphenator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Lookup resolves the best Hyphenator for a locale, falling back through
// language.NewMatcher's confidence-scored match (region/script-aware) and
// finally to the registry's fallback hyphenator.
func (r *Registry) Lookup(tag language.Tag) Hyphenator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.matcher == nil {
		return r.fallback
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return r.fallback
	}
	return r.byTag[idx]
}
