package text

// Range is a half-open [Start, End) span of UTF-16 code-unit offsets into
// a paragraph, the same Range minikin passes between the word breaker,
// the runs, and the hyphenation probe.
type Range struct {
	Start, End uint32
}

// Len returns the number of code units the range spans.
func (r Range) Len() uint32 { return r.End - r.Start }

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Split divides r into [Start, at) and [at, End).
func (r Range) Split(at uint32) (Range, Range) {
	return Range{r.Start, at}, Range{at, r.End}
}

// ToRangeOffset converts an absolute code-unit offset into one relative
// to r.Start, the indexing a substring measured over r expects.
func (r Range) ToRangeOffset(idx uint32) uint32 {
	return idx - r.Start
}
