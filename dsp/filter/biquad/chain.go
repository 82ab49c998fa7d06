package biquad

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Chain is an ordered cascade of sections processed in series.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain scales the input before the first section. Default 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one Section per coefficient set.
func NewChain(coeffs []Coefficients, opts ...ChainOption) (*Chain, error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("%w: biquad: empty cascade", core.ErrConfiguration)
	}
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
	return c, nil
}

// ProcessSample cascades x through every section.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst without touching src.
func (c *Chain) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: biquad: dst has %d samples, src has %d", core.ErrDimensionMismatch, len(dst), len(src))
	}
	copy(dst, src)
	c.ProcessBlock(dst)
	return nil
}

// Reset clears every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the filter order. First-order sections count once.
func (c *Chain) Order() int {
	n := 0
	for i := range c.sections {
		if c.sections[i].FirstOrder() {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// NumSections returns the number of sections.
func (c *Chain) NumSections() int { return len(c.sections) }

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// State returns a snapshot of every section's delay line.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}
	return states
}

// SetState restores delay lines returned by State.
func (c *Chain) SetState(states [][2]float64) error {
	if len(states) != len(c.sections) {
		return fmt.Errorf("%w: biquad: %d states for %d sections", core.ErrDimensionMismatch, len(states), len(c.sections))
	}
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
	return nil
}
