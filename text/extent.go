package text

// Extent is a vertical font-metric envelope: Ascent is how far a glyph
// reaches above the baseline, Descent how far below, both as positive
// magnitudes. The optimizer accumulates one per line by extending over
// every code unit it covers (computeMaxExtent in the original engine).
type Extent struct {
	Ascent  float64
	Descent float64
}

// ExtendBy grows e to cover o, the way a line's extent grows to cover
// the tallest/deepest glyph it contains.
func (e *Extent) ExtendBy(o Extent) {
	if o.Ascent > e.Ascent {
		e.Ascent = o.Ascent
	}
	if o.Descent > e.Descent {
		e.Descent = o.Descent
	}
}
