package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/filter/biquad"
)

// Band selects the response of a Butterworth design.
type Band int

const (
	BandLowpass Band = iota
	BandHighpass
	BandBandpass
)

func (b Band) String() string {
	switch b {
	case BandLowpass:
		return "lowpass"
	case BandHighpass:
		return "highpass"
	case BandBandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// ParseBand accepts "lowpass"/"low", "highpass"/"high" and
// "bandpass"/"band", ignoring case.
func ParseBand(name string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowpass", "low":
		return BandLowpass, nil
	case "highpass", "high":
		return BandHighpass, nil
	case "bandpass", "band":
		return BandBandpass, nil
	default:
		return BandLowpass, fmt.Errorf("%w: design: unknown band %q", core.ErrConfiguration, name)
	}
}

// Butterworth designs a direct-form Butterworth filter. low is used by
// highpass and bandpass designs, high by lowpass and bandpass designs.
func Butterworth(band Band, order int, low, high, sampleRate float64) (b, a []float64, err error) {
	sections, err := ButterworthSections(band, order, low, high, sampleRate)
	if err != nil {
		return nil, nil, err
	}
	return Expand(sections)
}

// ButterworthSections returns the cascade behind Butterworth without
// expanding it.
func ButterworthSections(band Band, order int, low, high, sampleRate float64) ([]biquad.Coefficients, error) {
	switch band {
	case BandLowpass:
		return ButterworthLPSections(order, high, sampleRate)
	case BandHighpass:
		return ButterworthHPSections(order, low, sampleRate)
	case BandBandpass:
		if !(low < high) {
			return nil, fmt.Errorf("%w: design: bandpass edges must satisfy low < high (low=%g, high=%g)", core.ErrConfiguration, low, high)
		}
		hp, err := ButterworthHPSections(order, low, sampleRate)
		if err != nil {
			return nil, err
		}
		lp, err := ButterworthLPSections(order, high, sampleRate)
		if err != nil {
			return nil, err
		}
		return append(hp, lp...), nil
	default:
		return nil, fmt.Errorf("%w: design: unknown band %v", core.ErrConfiguration, band)
	}
}

// ButterworthLowpass designs an order-N lowpass with -3 dB at cutoff (Hz).
func ButterworthLowpass(order int, cutoff, sampleRate float64) (b, a []float64, err error) {
	sections, err := ButterworthLPSections(order, cutoff, sampleRate)
	if err != nil {
		return nil, nil, err
	}
	return Expand(sections)
}

// ButterworthHighpass designs an order-N highpass with -3 dB at cutoff (Hz).
func ButterworthHighpass(order int, cutoff, sampleRate float64) (b, a []float64, err error) {
	sections, err := ButterworthHPSections(order, cutoff, sampleRate)
	if err != nil {
		return nil, nil, err
	}
	return Expand(sections)
}

// ButterworthBandpass cascades an order-N highpass at low with an order-N
// lowpass at high. The result has order 2N.
func ButterworthBandpass(order int, low, high, sampleRate float64) (b, a []float64, err error) {
	return Butterworth(BandBandpass, order, low, high, sampleRate)
}

// ButterworthLPSections designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLPSections(order int, freq, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateButterworth(order, freq, sampleRate); err != nil {
		return nil, err
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, Lowpass(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections, nil
}

// ButterworthHPSections designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHPSections(order int, freq, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateButterworth(order, freq, sampleRate); err != nil {
		return nil, err
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, Highpass(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}
	return sections, nil
}

func validateButterworth(order int, freq, sampleRate float64) error {
	if order < 1 {
		return fmt.Errorf("%w: design: order must be >= 1, got %d", core.ErrConfiguration, order)
	}
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return fmt.Errorf("%w: design: frequency %g Hz outside (0, %g)", core.ErrConfiguration, freq, sampleRate/2)
	}
	return nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

// firstOrderLP designs a first-order lowpass section via k = tan(pi*f/fs).
func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
