package linewidth

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestConstant(t *testing.T) {
	c := Constant(100)
	test.T(t, c.At(0), 100.0)
	test.T(t, c.At(5), 100.0)
	test.T(t, c.GetMin(), 100.0)
}

func TestTapered(t *testing.T) {
	tp := Tapered{NarrowWidth: 60, NarrowLines: 2, FullWidth: 100}
	test.T(t, tp.At(0), 60.0)
	test.T(t, tp.At(1), 60.0)
	test.T(t, tp.At(2), 100.0)
	test.T(t, tp.GetMin(), 60.0)
}

func TestIndented(t *testing.T) {
	ind := Indented{FirstLineWidth: 80, RestWidth: 100}
	test.T(t, ind.At(0), 80.0)
	test.T(t, ind.At(1), 100.0)
	test.T(t, ind.GetMin(), 80.0)
}
