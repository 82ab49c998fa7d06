package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// directThreshold is the longest kernel Causal keeps in the time domain.
const directThreshold = 64

// Direct returns the full linear convolution of a and b, of length
// len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}
	out := make([]float64, len(a)+len(b)-1)
	accumulate(out, a, b)
	return out, nil
}

// Causal returns the first len(signal) samples of signal*kernel:
//
//	y[n] = sum_{k=0}^{min(n, M-1)} kernel[k] * signal[n-k]
func Causal(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(signal))
	if len(kernel) <= directThreshold {
		accumulate(out, signal, kernel)
		return out, nil
	}

	f, err := NewBlockFilter(kernel, 0)
	if err != nil {
		return nil, err
	}
	for start := 0; start < len(signal); start += f.BlockSize() {
		end := min(start+f.BlockSize(), len(signal))
		if err := f.ProcessBlock(out[start:end], signal[start:end]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// accumulate adds x[i]*h into dst at offset i, clipping at len(dst).
func accumulate(dst, x, h []float64) {
	scaled := make([]float64, len(h))
	for i, xi := range x {
		if i >= len(dst) {
			return
		}
		n := min(len(h), len(dst)-i)
		vecmath.ScaleBlock(scaled[:n], h[:n], xi)
		vecmath.AddBlockInPlace(dst[i:i+n], scaled[:n])
	}
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
