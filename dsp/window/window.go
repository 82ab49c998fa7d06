// Package window generates the tapers used by windowed-sinc FIR design.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

var typeNames = [...]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeKaiser:      "kaiser",
}

// cosine-sum terms a0 - a1 cos(x) + a2 cos(2x)
var cosineTerms = map[Type][]float64{
	TypeRectangular: {1},
	TypeHann:        {0.5, 0.5},
	TypeHamming:     {0.54, 0.46},
	TypeBlackman:    {0.42, 0.5, 0.08},
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// ParseType maps a window name to its Type, ignoring case and surrounding
// space.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	return TypeRectangular, fmt.Errorf("%w: window: unknown window %q", core.ErrConfiguration, name)
}

// Option configures Generate and Apply.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

// WithBeta sets the Kaiser shape parameter. Default 8; negative and NaN
// values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// WithPeriodic selects the periodic form, whose period is the window length
// rather than length-1.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Generate returns length coefficients of the window, or nil for a
// non-positive length. Symmetric windows are computed for the first half
// and mirrored so they are exactly symmetric.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}
	cfg := config{beta: 8}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	period := float64(length - 1)
	if cfg.periodic {
		period = float64(length)
	}
	at := func(n int) float64 {
		if period == 0 {
			return sample(t, 0, cfg)
		}
		return sample(t, float64(n)/period, cfg)
	}

	w := make([]float64, length)
	if cfg.periodic {
		for n := range w {
			w[n] = at(n)
		}
		return w
	}
	for n := 0; n < (length+1)/2; n++ {
		w[n] = at(n)
		w[length-1-n] = w[n]
	}
	return w
}

// Apply multiplies buf in place by the window of the same length.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// sample evaluates the window at position x in [0, 1].
func sample(t Type, x float64, cfg config) float64 {
	if t == TypeKaiser {
		if cfg.beta == 0 {
			return 1
		}
		r := 2*x - 1
		return besselI0(cfg.beta*math.Sqrt(math.Max(0, 1-r*r))) / besselI0(cfg.beta)
	}
	terms, ok := cosineTerms[t]
	if !ok {
		return 1
	}
	v, sign := 0.0, 1.0
	for k, a := range terms {
		v += sign * a * math.Cos(2*math.Pi*float64(k)*x)
		sign = -sign
	}
	return v
}

// besselI0 is the Abramowitz and Stegun polynomial approximation of the
// zeroth-order modified Bessel function.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := (x / 3.75) * (x / 3.75)
		return 1 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}
	y := 3.75 / ax
	return math.Exp(ax) / math.Sqrt(ax) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
