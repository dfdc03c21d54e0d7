package linebreak

// lineBreakResult is the paragraph-order sequence of computed lines: for
// each line, its end offset, width, vertical extent, and packed hyphen
// edit flags.
type lineBreakResult struct {
	breakPoints []uint32
	widths      []float32
	ascents     []float64
	descents    []float64
	flags       []int
}

func (r *lineBreakResult) reverse() {
	n := len(r.breakPoints)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		r.breakPoints[i], r.breakPoints[j] = r.breakPoints[j], r.breakPoints[i]
		r.widths[i], r.widths[j] = r.widths[j], r.widths[i]
		r.ascents[i], r.ascents[j] = r.ascents[j], r.ascents[i]
		r.descents[i], r.descents[j] = r.descents[j], r.descents[i]
		r.flags[i], r.flags[j] = r.flags[j], r.flags[i]
	}
}

// LineCount returns the number of lines in the result.
func (r *lineBreakResult) LineCount() int {
	return len(r.breakPoints)
}

// Result is the public view of a computed line break: parallel slices,
// one entry per line, in paragraph order.
type Result struct {
	// BreakPoints holds, for each line, the code-unit offset of the
	// first code unit of the next line (i.e. this line is
	// [previous BreakPoint, BreakPoints[i]) ).
	BreakPoints []uint32
	// Widths holds the measured width of each line after any
	// hyphenation edit is applied.
	Widths []float32
	// Ascents and Descents hold the vertical extent of each line.
	Ascents  []float64
	Descents []float64
	// Flags holds each line's packed hyphen-edit pair; unpack with
	// hyphen.Edit(flags>>8) for the start edit and hyphen.Edit(flags&0xff)
	// for the end edit.
	Flags []int
}

func (r lineBreakResult) export() Result {
	return Result{
		BreakPoints: r.breakPoints,
		Widths:      r.widths,
		Ascents:     r.ascents,
		Descents:    r.descents,
		Flags:       r.flags,
	}
}
