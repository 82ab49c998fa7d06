package adaptive

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"gonum.org/v1/gonum/stat"
)

// Reference runs a fresh multi-channel LMS over a whole recording in one
// pass. input is shaped [samples][channels]; the signal is prefixed with
// order rows of zeros and each channel is adapted independently toward
// desired. The result has the shape of input.
//
// It is the one-shot form of Windowed and is used to validate streamed
// results.
func Reference(input [][]float64, desired []float64, order int, mu float64) ([][]float64, error) {
	if err := validate(order, mu); err != nil {
		return nil, err
	}
	if len(input) != len(desired) {
		return nil, fmt.Errorf("%w: adaptive: %d input rows, %d desired samples",
			core.ErrDimensionMismatch, len(input), len(desired))
	}
	if len(input) == 0 {
		return [][]float64{}, nil
	}
	channels := len(input[0])
	for i, row := range input {
		if len(row) != channels {
			return nil, fmt.Errorf("%w: adaptive: row %d has %d channels, want %d",
				core.ErrDimensionMismatch, i, len(row), channels)
		}
	}

	padded := make([][]float64, order, order+len(input))
	for i := range padded {
		padded[i] = make([]float64, channels)
	}
	padded = append(padded, input...)

	out := make([][]float64, len(input))
	for i := range out {
		out[i] = make([]float64, channels)
	}

	u := make([]float64, order)
	scratch := make([]float64, order)
	for ch := range channels {
		weights := make([]float64, order)
		for n := order; n < len(padded); n++ {
			window := padded[n-order+1 : n+1]
			for k := range window {
				u[k] = window[len(window)-1-k][ch]
			}
			out[n-order][ch], _ = update(weights, u, scratch, mu, desired[n-order])
		}
	}
	return out, nil
}

// ChannelMean averages each row of a [samples][channels] matrix, giving
// one value per sample. Empty rows average to zero.
func ChannelMean(m [][]float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		if len(row) > 0 {
			out[i] = stat.Mean(row, nil)
		}
	}
	return out
}
