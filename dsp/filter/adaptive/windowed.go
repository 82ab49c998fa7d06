package adaptive

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Option configures a Windowed filter.
type Option func(*windowedConfig)

type windowedConfig struct {
	channels int
}

// WithChannels sets the number of input channels. Default is 1.
func WithChannels(n int) Option {
	return func(cfg *windowedConfig) { cfg.channels = n }
}

// Windowed is a multi-channel LMS filter driven by chunks of a stream.
//
// Between calls it keeps the weights of every channel and the last order
// raw input samples. Each window is evaluated on the carried context
// followed by the window itself, and one output row is produced per window
// row. Before the first call the context is all zeros, which is the same
// zero history an Array starts from, so splitting a stream into any
// sequence of contiguous windows gives the output of a single pass.
type Windowed struct {
	order int
	mu    float64

	weights [][]float64 // per channel
	context [][]float64 // per channel, oldest first, len order

	ext, taps, scratch []float64
}

// NewWindowed creates a windowed filter with order taps per channel and
// step size mu.
func NewWindowed(order int, mu float64, opts ...Option) (*Windowed, error) {
	cfg := windowedConfig{channels: 1}
	for _, o := range opts {
		o(&cfg)
	}
	if err := validate(order, mu); err != nil {
		return nil, err
	}
	if cfg.channels < 1 {
		return nil, fmt.Errorf("%w: adaptive: channel count must be positive, got %d", core.ErrConfiguration, cfg.channels)
	}

	w := &Windowed{
		order:   order,
		mu:      mu,
		weights: make([][]float64, cfg.channels),
		context: make([][]float64, cfg.channels),
		taps:    make([]float64, order),
		scratch: make([]float64, order),
	}
	for ch := range w.weights {
		w.weights[ch] = make([]float64, order)
		w.context[ch] = make([]float64, order)
	}
	return w, nil
}

// ProcessWindow filters input, shaped [samples][channels], against the
// desired signal and returns an output of the same shape.
//
// Windows may be shorter than the order. An empty window returns an empty
// result and leaves the state unchanged.
func (w *Windowed) ProcessWindow(input [][]float64, desired []float64) ([][]float64, error) {
	if len(input) != len(desired) {
		return nil, fmt.Errorf("%w: adaptive: %d input rows, %d desired samples",
			core.ErrDimensionMismatch, len(input), len(desired))
	}
	channels := len(w.weights)
	for i, row := range input {
		if len(row) != channels {
			return nil, fmt.Errorf("%w: adaptive: row %d has %d channels, want %d",
				core.ErrDimensionMismatch, i, len(row), channels)
		}
	}

	out := make([][]float64, len(input))
	for i := range out {
		out[i] = make([]float64, channels)
	}
	if len(input) == 0 {
		return out, nil
	}

	total := w.order + len(input)
	w.ext = core.EnsureLen(w.ext, total)
	for ch := range channels {
		copy(w.ext, w.context[ch])
		for i, row := range input {
			w.ext[w.order+i] = row[ch]
		}

		for n := w.order; n < total; n++ {
			// u = ext[n-order+1 .. n], newest first.
			for k := range w.order {
				w.taps[k] = w.ext[n-k]
			}
			out[n-w.order][ch], _ = update(w.weights[ch], w.taps, w.scratch, w.mu, desired[n-w.order])
		}

		copy(w.context[ch], w.ext[total-w.order:total])
	}
	return out, nil
}

// Weights returns a copy of the weights of channel ch.
// It panics if ch is out of range.
func (w *Windowed) Weights(ch int) []float64 {
	return core.Clone(w.weights[ch])
}

// Channels returns the configured channel count.
func (w *Windowed) Channels() int {
	return len(w.weights)
}

// Order returns the number of taps per channel.
func (w *Windowed) Order() int {
	return w.order
}

// Reset clears the weights and the carried context. The next call behaves
// like the first.
func (w *Windowed) Reset() {
	for ch := range w.weights {
		core.Zero(w.weights[ch])
		core.Zero(w.context[ch])
	}
}
