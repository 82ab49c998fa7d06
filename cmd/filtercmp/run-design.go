package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/filter/fir"
	"github.com/giovannipollo/digital-filters/dsp/filter/iir"
)

// responder is the frequency-response surface shared by fir and iir filters.
type responder interface {
	Response(freqHz, sampleRate float64) complex128
}

func runDesign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	points := c.Int("points")
	if points < 2 {
		points = 2
	}

	var f responder
	switch c.String("kind") {
	case "fir":
		h, err := m.config.FIRCoefficients()
		if nil != err {
			return err
		}
		filter, err := fir.New(h)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "h = %v\n", h)
		f = filter
	case "iir":
		b, a, err := m.config.IIRCoefficients()
		if nil != err {
			return err
		}
		filter, err := iir.New(b, a)
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "b = %v\na = %v\n", b, a)
		fmt.Fprintf(m.w, "dc gain = %g\n", iir.DCGain(b, a))
		f = filter
	default:
		return ErrUnknownKind
	}

	return printResponse(m.w, f, responseFrequencies(m.config.SampleRate, points), m.config.SampleRate)
}

// responseFrequencies spaces points frequencies logarithmically from
// Nyquist/1000 up to Nyquist.
func responseFrequencies(sampleRate float64, points int) []float64 {
	nyquist := sampleRate / 2
	lo := math.Log10(nyquist / 1000)
	hi := math.Log10(nyquist)

	freqs := make([]float64, points)
	for i := range freqs {
		freqs[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(points-1))
	}
	freqs[points-1] = nyquist
	return freqs
}

func printResponse(w io.Writer, f responder, freqs []float64, sampleRate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tMagnitude\tMagnitude [dB]\tPhase [rad]\n"); nil != err {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------------\t---------\t--------------\t-----------\n"); nil != err {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, freq := range freqs {
		h := f.Response(freq, sampleRate)
		mag := cmplx.Abs(h)
		if _, err := fmt.Fprintf(tw, "%.4f\t%.6f\t%.2f\t%.4f\n",
			freq,
			mag,
			20*math.Log10(mag),
			cmplx.Phase(h),
		); nil != err {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}
