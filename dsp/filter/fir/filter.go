package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/giovannipollo/digital-filters/dsp/buffer"
	"github.com/giovannipollo/digital-filters/dsp/conv"
	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Filter is a stateful direct-form FIR filter.
type Filter struct {
	coeffs  []float64
	history *buffer.Fixed // last len(coeffs)-1 inputs, newest first
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1.
func New(coeffs []float64) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: fir: empty coefficient vector", core.ErrConfiguration)
	}
	return &Filter{
		coeffs:  core.Clone(coeffs),
		history: buffer.NewFixed(len(coeffs) - 1),
	}, nil
}

// Apply filters x with the coefficients h in a single pass:
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k],  terms with n-k < 0 omitted
//
// The output has the same length as x. Apply has no side effects.
func Apply(x, h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: fir: empty coefficient vector", core.ErrConfiguration)
	}
	y := make([]float64, len(x))
	for n := range x {
		var acc float64
		for k := 0; k < len(h) && k <= n; k++ {
			acc += h[k] * x[n-k]
		}
		y[n] = acc
	}
	return y, nil
}

// ApplyFast computes the same response as Apply through dsp/conv, which
// switches to FFT overlap-add for kernels longer than 64 taps. Results agree
// with Apply to floating-point rounding, not bit for bit.
func ApplyFast(x, h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, fmt.Errorf("%w: fir: empty coefficient vector", core.ErrConfiguration)
	}
	if len(x) == 0 {
		return []float64{}, nil
	}
	return conv.Causal(x, h)
}

// ProcessSample filters one input sample: the current sample and the stored
// history are combined, then the sample is pushed into the history.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.coeffs[0] * x
	past := f.history.View()
	for k := 1; k < len(f.coeffs); k++ {
		y += f.coeffs[k] * past[k-1]
	}
	f.history.Push(x)
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: fir: dst has %d samples, src has %d", core.ErrDimensionMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return nil
}

// Reset clears the history to zero.
func (f *Filter) Reset() {
	f.history.Reset()
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter) Order() int {
	return len(f.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() []float64 {
	return core.Clone(f.coeffs)
}

// State returns a copy of the input history, newest first.
func (f *Filter) State() []float64 {
	s := make([]float64, f.history.Len())
	f.history.CopyTo(s)
	return s
}

// SetState restores a history previously returned by State.
func (f *Filter) SetState(state []float64) error {
	if len(state) != f.history.Len() {
		return fmt.Errorf("%w: fir: state has %d samples, want %d", core.ErrDimensionMismatch, len(state), f.history.Len())
	}
	f.history.Fill(state)
	return nil
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
