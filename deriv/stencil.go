package deriv

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/diff/fd"
)

// forward3 is the second-order three-point forward stencil used at index 0.
// Points are ordered so that evaluation matches (-f[2k] + 4 f[k] - 3 f[0]) / 2k
// bit for bit.
var forward3 = fd.Formula{
	Stencil:    []fd.Point{{Loc: 2, Coeff: -0.5}, {Loc: 1, Coeff: 2}, {Loc: 0, Coeff: -1.5}},
	Derivative: 1,
	Step:       1,
}

// backward3 mirrors forward3 for the last index.
var backward3 = fd.Formula{
	Stencil:    []fd.Point{{Loc: -2, Coeff: 0.5}, {Loc: -1, Coeff: -2}, {Loc: 0, Coeff: 1.5}},
	Derivative: 1,
	Step:       1,
}

// applyStencil evaluates f at index i of seq with the given stride.
// The caller guarantees every stencil point lies inside seq.
func applyStencil(f fd.Formula, seq []float64, i, stride int) float64 {
	var sum float64
	for _, p := range f.Stencil {
		// The conversion keeps the product from being fused into an FMA.
		sum += float64(p.Coeff * seq[i+int(p.Loc)*stride])
	}
	return sum / float64(stride)
}

// centralBlock fills dst with central differences of seq at stride k, where
// dst[j] is the estimate at index j+k. len(dst) must be len(seq)-2k.
func centralBlock(dst, seq []float64, k int) {
	n := len(dst)
	if n == 0 {
		return
	}
	lower := seq[:n]
	upper := seq[2*k : 2*k+n]

	vecmath.ScaleBlock(dst, lower, -1)
	vecmath.AddBlock(dst, upper, dst)

	// Each element must equal (f[i+k] - f[i-k]) / 2k exactly.
	h := float64(2 * k)
	for j := range dst {
		dst[j] /= h
	}
}
