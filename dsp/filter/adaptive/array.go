package adaptive

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Array runs one independent LMS filter per channel. All channels adapt
// toward the same desired sample and never share weights or history.
type Array struct {
	channels []*LMS
}

// NewArray creates a multi-channel filter with the given taps and step
// size per channel.
func NewArray(taps int, mu float64, channels int) (*Array, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: adaptive: channel count must be positive, got %d", core.ErrConfiguration, channels)
	}
	a := &Array{channels: make([]*LMS, channels)}
	for ch := range a.channels {
		l, err := NewLMS(taps, mu)
		if err != nil {
			return nil, err
		}
		a.channels[ch] = l
	}
	return a, nil
}

// Adapt feeds one sample per channel. It returns per-channel outputs and
// errors, or ErrDimensionMismatch when len(x) differs from Channels().
func (a *Array) Adapt(x []float64, d float64) (outs, errs []float64, err error) {
	if err := a.checkWidth(len(x)); err != nil {
		return nil, nil, err
	}
	outs = make([]float64, len(x))
	errs = make([]float64, len(x))
	for ch, l := range a.channels {
		outs[ch], errs[ch] = l.Adapt(x[ch], d)
	}
	return outs, errs, nil
}

func (a *Array) checkWidth(n int) error {
	if n != len(a.channels) {
		return fmt.Errorf("%w: adaptive: got %d channels, want %d", core.ErrDimensionMismatch, n, len(a.channels))
	}
	return nil
}

// Channels returns the number of channels.
func (a *Array) Channels() int {
	return len(a.channels)
}

// Weights returns a copy of the weights of channel ch.
// It panics if ch is out of range.
func (a *Array) Weights(ch int) []float64 {
	return a.channels[ch].Weights()
}

// Reset zeroes the weights and history of every channel.
func (a *Array) Reset() {
	for _, l := range a.channels {
		l.Reset()
	}
}
