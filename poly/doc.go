// Package poly provides polynomial coefficient utilities.
//
// Coefficients are stored in ascending power order: coeffs[i] is the
// coefficient of x^i, so []float64{2, 0, 3} describes 2 + 3x². The
// same convention is used for inputs and results throughout.
//
// # Usage
//
// For one-shot differentiation, use the plain functions:
//
//	d := poly.Derivative(coeffs)          // first derivative
//	d = poly.DerivativeInto(d[:0], other) // reuse an output buffer
//	d2 := poly.DerivativeN(coeffs, 2)     // second derivative
//
// For repeated differentiation of many polynomials, create a reusable
// [Differentiator], which caches the index ramp between calls:
//
//	diff := poly.NewDifferentiator()
//	for _, c := range batch {
//		out = diff.ProcessInto(out[:0], c)
//	}
//
// # Zero polynomial
//
// The derivative of a constant is the zero polynomial. It is returned
// canonically as the single-element slice [0], never as an empty slice;
// differentiating an empty coefficient slice yields the same canonical
// form. Every entry point in this package agrees on that convention,
// so results are always non-empty and can be differentiated again.
//
// # Numeric behavior
//
// The operations are total: NaN and infinite coefficients are valid
// inputs and propagate through the multiplications under the usual
// IEEE 754 rules. No coefficient value is rejected and no operation
// returns an error.
package poly
