// Package testutil holds deterministic signal generators and tolerance
// assertions shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoiseMatrix generates a samples x channels matrix of seeded white noise,
// one row per multi-channel sample.
func NoiseMatrix(seed int64, amplitude float64, samples, channels int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, samples)
	for i := range out {
		out[i] = make([]float64, channels)
		for ch := range out[i] {
			out[i][ch] = (rng.Float64()*2 - 1) * amplitude
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Zeros returns an all-zero signal of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// RandomPartition splits total into contiguous chunk lengths drawn from
// [1, maxChunk], seeded for reproducibility. The lengths sum to total.
func RandomPartition(seed int64, total, maxChunk int) []int {
	if maxChunk < 1 {
		maxChunk = 1
	}
	rng := rand.New(rand.NewSource(seed))
	var sizes []int
	for remaining := total; remaining > 0; {
		n := 1 + rng.Intn(maxChunk)
		if n > remaining {
			n = remaining
		}
		sizes = append(sizes, n)
		remaining -= n
	}
	return sizes
}

// Split cuts x into consecutive chunks of the given lengths. The chunks alias x.
func Split[T any](x []T, sizes []int) [][]T {
	out := make([][]T, 0, len(sizes))
	start := 0
	for _, n := range sizes {
		out = append(out, x[start:start+n])
		start += n
	}
	return out
}
