package poly

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-poly/internal/testutil"
)

func TestDifferentiatorMatchesDerivative(t *testing.T) {
	d := NewDifferentiator()

	// Mixed lengths exercise ramp growth and reuse in both directions.
	for _, n := range []int{0, 1, 2, 17, 256, 3, 64} {
		coeffs := testutil.DeterministicCoeffs(int64(n), 5, n)
		testutil.RequireSliceEqualNaNAware(t, d.Process(coeffs), Derivative(coeffs))
	}
}

func TestDifferentiatorCanonicalZero(t *testing.T) {
	d := NewDifferentiator()

	testutil.RequireSliceEqualNaNAware(t, d.Process(nil), []float64{0})
	testutil.RequireSliceEqualNaNAware(t, d.Process([]float64{5}), []float64{0})
}

func TestDifferentiatorNaNPropagation(t *testing.T) {
	d := NewDifferentiator()

	got := d.Process([]float64{1, math.NaN()})
	testutil.RequireSliceEqualNaNAware(t, got, []float64{math.NaN()})
}

func TestDifferentiatorProcessIntoReusesCapacity(t *testing.T) {
	d := NewDifferentiator()
	dst := make([]float64, 0, 16)

	out := d.ProcessInto(dst, []float64{2, 0, 3})
	testutil.RequireSliceEqualNaNAware(t, out, []float64{0, 6})

	if cap(out) != cap(dst) {
		t.Fatalf("cap = %d, want %d (buffer not reused)", cap(out), cap(dst))
	}
}

func TestDifferentiatorDoesNotMutateInput(t *testing.T) {
	d := NewDifferentiator()
	coeffs := []float64{4, 3, 2, 1}

	d.Process(coeffs)
	testutil.RequireSliceEqualNaNAware(t, coeffs, []float64{4, 3, 2, 1})
}
