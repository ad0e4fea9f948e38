package testutil

import "math/rand"

// DeterministicSamples returns length pixel samples in [0, 255] drawn from a
// fixed seed.
func DeterministicSamples(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * 255
	}
	return out
}

// DeterministicBytes is like DeterministicSamples but every sample is an
// integer, as decoded from an 8-bit image.
func DeterministicBytes(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float64(rng.Intn(256))
	}
	return out
}

// Ramp returns start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Constant returns a slice of length samples equal to value.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Filled returns a slice of length samples set to a sentinel value so tests
// can detect writes.
func Filled(length int) []float64 {
	return Constant(-1, length)
}
