package testutil

import (
	"math"
	"testing"
)

// RequireSliceEqualNaNAware fails t unless got and want match exactly,
// with NaN entries considered equal to each other. Needed where NaN
// coefficients are expected to propagate through a computation.
func RequireSliceEqualNaNAware(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
