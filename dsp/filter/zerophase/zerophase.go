package zerophase

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/filter/iir"
	"gonum.org/v1/gonum/floats"
)

// Apply filters x forward and backward with (b, a). The result has the
// length of x and no start-up compensation is applied at either edge.
func Apply(x, b, a []float64) ([]float64, error) {
	y, err := iir.Apply(x, b, a)
	if err != nil {
		return nil, err
	}
	floats.Reverse(y)

	y, err = iir.Apply(y, b, a)
	if err != nil {
		return nil, err
	}
	floats.Reverse(y)

	return y, nil
}

// Option configures ApplyPadded.
type Option func(*config)

type config struct {
	padLen   int
	padSet   bool
	steadyIC bool
}

// WithPadLength sets the number of samples added at each end of the signal.
// Zero disables padding. The default is three times the filter length.
func WithPadLength(n int) Option {
	return func(cfg *config) {
		cfg.padLen = n
		cfg.padSet = true
	}
}

// WithoutInitialConditions starts both passes from zero history instead of
// the steady state of the first sample.
func WithoutInitialConditions() Option {
	return func(cfg *config) {
		cfg.steadyIC = false
	}
}

// ApplyPadded filters x forward and backward after extending it at both
// ends by odd reflection about the end samples.
//
// Unless disabled, each pass starts with its input history filled with the
// first sample x0 and its output history filled with G*x0, where G is the
// DC gain sum(b)/sum(a). A constant signal is then already in steady state.
// Filters with a pole at DC have no finite G and start from zero history.
//
// The pad length must be smaller than len(x).
func ApplyPadded(x, b, a []float64, opts ...Option) ([]float64, error) {
	nb, na, err := iir.Normalize(b, a)
	if err != nil {
		return nil, err
	}

	cfg := config{steadyIC: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.padSet {
		cfg.padLen = 3 * len(na)
	}
	if cfg.padLen < 0 {
		return nil, fmt.Errorf("%w: zerophase: negative pad length %d", core.ErrConfiguration, cfg.padLen)
	}

	if len(x) == 0 {
		return []float64{}, nil
	}
	if cfg.padLen >= len(x) {
		return nil, fmt.Errorf("%w: zerophase: pad length %d needs more than %d samples",
			core.ErrDimensionMismatch, cfg.padLen, len(x))
	}

	f, err := iir.New(nb, na)
	if err != nil {
		return nil, err
	}
	gain := iir.DCGain(nb, na)
	steady := cfg.steadyIC && core.IsFinite(gain)

	y := pass(f, oddExtend(x, cfg.padLen), gain, steady)
	floats.Reverse(y)
	y = pass(f, y, gain, steady)
	floats.Reverse(y)

	return y[cfg.padLen : cfg.padLen+len(x)], nil
}

// pass runs one causal pass over x from a fresh history.
func pass(f *iir.Filter, x []float64, gain float64, steady bool) []float64 {
	f.Reset()
	if steady {
		order := f.Order()
		st := iir.State{
			Inputs:  make([]float64, order),
			Outputs: make([]float64, order),
		}
		for i := range order {
			st.Inputs[i] = x[0]
			st.Outputs[i] = gain * x[0]
		}
		// Lengths match Order() by construction.
		_ = f.SetState(st)
	}
	return f.ProcessWindow(x)
}

// oddExtend returns x with n samples of odd reflection on each side:
// 2*x[0]-x[n..1] before and 2*x[last]-x[last-1..last-n] after.
// It requires n < len(x).
func oddExtend(x []float64, n int) []float64 {
	last := len(x) - 1
	ext := make([]float64, len(x)+2*n)
	for i := range n {
		ext[i] = 2*x[0] - x[n-i]
		ext[n+len(x)+i] = 2*x[last] - x[last-1-i]
	}
	copy(ext[n:], x)
	return ext
}
