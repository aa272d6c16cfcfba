// Package deriv estimates the first derivative of a uniformly sampled
// sequence with second-order finite differences.
//
// The first and last samples use three-point one-sided stencils, every
// other sample uses the central difference:
//
//	d[0]   = (-f[2k] + 4 f[k] - 3 f[0]) / 2k
//	d[i]   = (f[i+k] - f[i-k]) / 2k
//	d[N-1] = (f[N-1-2k] - 4 f[N-1-k] + 3 f[N-1]) / 2k
//
// where k is the stride in samples ([WithStride]). Positions closer than k
// to either end but not on it (only present for k > 1) use the central
// difference with the largest stride that stays inside the sequence. The
// result is expressed per sample index, so for k = 1 and unit spacing it is
// df/dx.
//
// [Differentiate] writes each estimate to the configured output as soon as
// it is known and also returns the complete sequence. Values are printed one
// per line in the shortest form that reads back to the same float64, so an
// integral result prints as "2" rather than "2.0". [WithFormat] selects
// another strconv format, e.g. WithFormat('f', 1) prints "2.0".
package deriv
