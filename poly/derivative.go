package poly

// Derivative returns the coefficients of the first derivative of the
// polynomial described by coeffs (ascending power order). The term
// c[i]·x^i contributes i·c[i] at position i-1, so the result has
// length len(coeffs)-1.
//
// A constant or empty input differentiates to the zero polynomial,
// returned canonically as [0]. The result is newly allocated and never
// aliases coeffs.
func Derivative(coeffs []float64) []float64 {
	return DerivativeInto(nil, coeffs)
}

// DerivativeInto behaves like [Derivative] but writes the result into
// dst, reusing its capacity when large enough. It returns the
// destination slice, which may have been reallocated. dst must not
// overlap coeffs.
func DerivativeInto(dst, coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		dst = ensureLen(dst, 1)
		dst[0] = 0
		return dst
	}

	dst = ensureLen(dst, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		dst[i-1] = coeffs[i] * float64(i)
	}

	return dst
}

// DerivativeN differentiates coeffs n times. For n <= 0 it returns an
// unmodified copy of the input. High orders settle on the canonical
// zero polynomial [0] once the degree is exhausted.
func DerivativeN(coeffs []float64, n int) []float64 {
	if n <= 0 {
		out := make([]float64, len(coeffs))
		copy(out, coeffs)
		return out
	}

	cur := Derivative(coeffs)
	var spare []float64

	for range n - 1 {
		spare = DerivativeInto(spare[:0], cur)
		cur, spare = spare, cur
	}

	return cur
}
