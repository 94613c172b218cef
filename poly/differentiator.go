package poly

import (
	"github.com/cwbudde/algo-vecmath"
)

// Differentiator differentiates many polynomials without rebuilding the
// index ramp on every call. Results match [Derivative] exactly,
// including the canonical [0] form for constant and empty inputs.
//
// A Differentiator is not safe for concurrent use; independent values
// are independent.
type Differentiator struct {
	ramp []float64 // ramp[j] = j+1
}

// NewDifferentiator creates a reusable differentiator.
func NewDifferentiator() *Differentiator {
	return &Differentiator{}
}

// Process returns the derivative coefficients of coeffs in a newly
// allocated slice.
func (d *Differentiator) Process(coeffs []float64) []float64 {
	return d.ProcessInto(nil, coeffs)
}

// ProcessInto behaves like [Differentiator.Process] but reuses dst
// capacity when large enough, returning the possibly reallocated
// destination. dst must not overlap coeffs.
func (d *Differentiator) ProcessInto(dst, coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		dst = ensureLen(dst, 1)
		dst[0] = 0
		return dst
	}

	n := len(coeffs) - 1
	for len(d.ramp) < n {
		d.ramp = append(d.ramp, float64(len(d.ramp)+1))
	}

	dst = ensureLen(dst, n)
	vecmath.MulBlock(dst, coeffs[1:], d.ramp[:n])

	return dst
}
