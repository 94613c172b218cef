package testutil

import "math/rand"

// DeterministicCoeffs generates a coefficient slice with a fixed seed
// for reproducibility. Values are uniform in [-amplitude, amplitude].
func DeterministicCoeffs(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
