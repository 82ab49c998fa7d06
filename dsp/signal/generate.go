// Package signal generates deterministic test signals for the filter
// commands: tones, seeded noise and the multi-channel input/desired pairs
// the adaptive filters are exercised with.
package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Generator creates signals at a fixed sample rate. Noise draws advance a
// private seeded source, so two generators with the same seed produce the
// same sequence of calls.
type Generator struct {
	cfg core.ProcessorConfig
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	seed uint64
}

// WithSeed sets the noise seed. Default 1.
func WithSeed(seed uint64) Option {
	return func(c *generatorConfig) { c.seed = seed }
}

// NewGenerator returns a generator for cfg.
func NewGenerator(cfg core.ProcessorConfig, opts ...Option) *Generator {
	gc := generatorConfig{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&gc)
		}
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(gc.seed, gc.seed^0x9e3779b97f4a7c15)),
	}
}

// Config returns the generator configuration.
func (g *Generator) Config() core.ProcessorConfig { return g.cfg }

// Tone returns amplitude*sin(2*pi*freq*n/fs + phase) for n in [0, samples).
func (g *Generator) Tone(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: signal: samples must be > 0, got %d", core.ErrConfiguration, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: signal: sample rate must be > 0, got %g", core.ErrConfiguration, g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out, nil
}

// Sine is Tone with zero phase.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Tone(freqHz, amplitude, 0, samples)
}

// Cosine is Tone with a quarter-cycle phase.
func (g *Generator) Cosine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Tone(freqHz, amplitude, math.Pi/2, samples)
}

// WhiteNoise returns uniform noise in [-amplitude, amplitude).
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := checkNoise(amplitude, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = (g.rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// GaussianNoise returns zero-mean normal noise with standard deviation sigma.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]float64, error) {
	if err := checkNoise(sigma, samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = g.rng.NormFloat64() * sigma
	}
	return out, nil
}

// Channels returns a [samples][channels] matrix whose column c is a cosine
// at freqHz delayed by c*spread radians, plus Gaussian noise of deviation
// sigma. A zero sigma leaves the tones clean.
func (g *Generator) Channels(channels int, freqHz, spread, sigma float64, samples int) ([][]float64, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: signal: channels must be > 0, got %d", core.ErrConfiguration, channels)
	}
	out := make([][]float64, samples)
	for n := range out {
		out[n] = make([]float64, channels)
	}
	for c := 0; c < channels; c++ {
		x, err := g.Tone(freqHz, 1, math.Pi/2-float64(c)*spread, samples)
		if err != nil {
			return nil, err
		}
		if sigma > 0 {
			noise, err := g.GaussianNoise(sigma, samples)
			if err != nil {
				return nil, err
			}
			if err := Add(x, noise); err != nil {
				return nil, err
			}
		}
		for n, v := range x {
			out[n][c] = v
		}
	}
	return out, nil
}

// Add accumulates src into dst.
func Add(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: signal: dst has %d samples, src has %d", core.ErrDimensionMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] += v
	}
	return nil
}

// Normalize scales data to the target peak and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: signal: target peak must be >= 0, got %g", core.ErrConfiguration, targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: signal: normalize input is empty", core.ErrConfiguration)
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}
	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

func checkNoise(amplitude float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w: signal: samples must be > 0, got %d", core.ErrConfiguration, samples)
	}
	if amplitude < 0 || math.IsNaN(amplitude) {
		return fmt.Errorf("%w: signal: noise amplitude must be >= 0, got %g", core.ErrConfiguration, amplitude)
	}
	return nil
}
