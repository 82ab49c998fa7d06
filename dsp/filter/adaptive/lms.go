package adaptive

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/buffer"
	"github.com/giovannipollo/digital-filters/dsp/core"
)

// LMS is a single-channel LMS adaptive FIR filter.
type LMS struct {
	mu      float64
	weights []float64
	history *buffer.Fixed
	scratch []float64
}

// NewLMS creates a filter with the given number of taps and step size mu.
// Weights and history start at zero.
func NewLMS(taps int, mu float64) (*LMS, error) {
	if err := validate(taps, mu); err != nil {
		return nil, err
	}
	return &LMS{
		mu:      mu,
		weights: make([]float64, taps),
		history: buffer.NewFixed(taps),
		scratch: make([]float64, taps),
	}, nil
}

// Adapt pushes x into the history, filters it with the current weights and
// adapts the weights toward the desired sample d. It returns the output and
// the error d - y.
func (l *LMS) Adapt(x, d float64) (y, e float64) {
	l.history.Push(x)
	return l.step(d)
}

func (l *LMS) step(d float64) (y, e float64) {
	return update(l.weights, l.history.View(), l.scratch, l.mu, d)
}

// ProcessBlock runs Adapt over x and d, which must have equal lengths.
// The filter keeps its state, so consecutive blocks continue one stream.
func (l *LMS) ProcessBlock(x, d []float64) (y, e []float64, err error) {
	if len(x) != len(d) {
		return nil, nil, fmt.Errorf("%w: adaptive: %d input samples, %d desired samples",
			core.ErrDimensionMismatch, len(x), len(d))
	}
	y = make([]float64, len(x))
	e = make([]float64, len(x))
	for i := range x {
		y[i], e[i] = l.Adapt(x[i], d[i])
	}
	return y, e, nil
}

// Weights returns a copy of the current weight vector.
func (l *LMS) Weights() []float64 {
	return core.Clone(l.weights)
}

// Taps returns the filter length.
func (l *LMS) Taps() int {
	return len(l.weights)
}

// StepSize returns mu.
func (l *LMS) StepSize() float64 {
	return l.mu
}

// Reset zeroes weights and history.
func (l *LMS) Reset() {
	core.Zero(l.weights)
	l.history.Reset()
}
