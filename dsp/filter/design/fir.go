package design

import (
	"fmt"
	"math"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/window"
)

// WindowedSinc designs a linear-phase FIR lowpass of the given order
// (order+1 taps). The ideal sinc response centred on order/2 is tapered by
// w and scaled so that the taps sum to one, giving unity DC gain. opts are
// passed to window.Generate.
func WindowedSinc(order int, cutoff, sampleRate float64, w window.Type, opts ...window.Option) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: design: order must be >= 0, got %d", core.ErrConfiguration, order)
	}
	if _, ok := normalizedW0(cutoff, sampleRate); !ok {
		return nil, fmt.Errorf("%w: design: cutoff %g Hz outside (0, %g)", core.ErrConfiguration, cutoff, sampleRate/2)
	}

	n := order + 1
	fc := 2 * cutoff / sampleRate
	mid := float64(order) / 2

	h := window.Generate(w, n, opts...)
	sum := 0.0
	for i := range h {
		h[i] *= sinc(fc * (float64(i) - mid))
		sum += h[i]
	}
	if sum == 0 || math.IsNaN(sum) {
		return nil, fmt.Errorf("%w: design: windowed sinc has zero DC gain", core.ErrConfiguration)
	}
	for i := range h {
		h[i] /= sum
	}
	return h, nil
}

// WindowedSincHamming is WindowedSinc with a symmetric Hamming window.
func WindowedSincHamming(order int, cutoff, sampleRate float64) ([]float64, error) {
	return WindowedSinc(order, cutoff, sampleRate, window.TypeHamming)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
