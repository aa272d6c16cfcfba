package deriv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-deriv/sequence"
	"gonum.org/v1/gonum/diff/fd"
)

// ErrInvalidStride is returned for a stride below 1.
var ErrInvalidStride = errors.New("deriv: stride must be >= 1")

// InsufficientSamplesError reports a sequence too short for the stride.
type InsufficientSamplesError struct {
	Len    int
	Stride int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("deriv: %d samples with stride %d, need at least %d",
		e.Len, e.Stride, MinSamples(e.Stride))
}

// MinSamples returns the shortest sequence that can be differentiated with
// the given stride.
func MinSamples(stride int) int {
	return 2*stride + 1
}

// Differentiate returns the derivative estimate for every sample of seq and
// writes each one to the configured output as it is produced.
// On error nothing is returned; output already written is not retracted.
func Differentiate(seq []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	k := cfg.Stride
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStride, k)
	}
	n := len(seq)
	if n < MinSamples(k) {
		return nil, &InsufficientSamplesError{Len: n, Stride: k}
	}

	out := make([]float64, n)
	em := NewEmitter(cfg.Output, cfg.Format, cfg.Precision)

	out[0] = applyStencil(forward3, seq, 0, k)
	if err := em.Emit(out[0]); err != nil {
		return nil, err
	}
	for i := 1; i < k; i++ {
		out[i] = applyStencil(fd.Central, seq, i, i)
		if err := em.Emit(out[i]); err != nil {
			return nil, err
		}
	}

	interior := out[k : n-k]
	centralBlock(interior, seq, k)
	if err := em.EmitAll(interior); err != nil {
		return nil, err
	}

	for i := n - k; i < n-1; i++ {
		out[i] = applyStencil(fd.Central, seq, i, n-1-i)
		if err := em.Emit(out[i]); err != nil {
			return nil, err
		}
	}
	out[n-1] = applyStencil(backward3, seq, n-1, k)
	if err := em.Emit(out[n-1]); err != nil {
		return nil, err
	}

	return out, nil
}

// DifferentiateSource imports src completely and differentiates it.
func DifferentiateSource(src sequence.Source, opts ...Option) ([]float64, error) {
	seq, err := src.Samples()
	if err != nil {
		return nil, err
	}
	return Differentiate(seq, opts...)
}

// DifferentiateFile differentiates one column of the delimited file at path.
// Nil imp means sequence.DefaultImportOptions.
func DifferentiateFile(path string, imp *sequence.ImportOptions, opts ...Option) ([]float64, error) {
	return DifferentiateSource(sequence.File(path, imp), opts...)
}
