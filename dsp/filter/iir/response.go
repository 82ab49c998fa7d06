package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response
//
//	H(e^jw) = sum b[k] e^{-jwk} / sum a[k] e^{-jwk}
//
// at the given frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k := range f.b {
		z := cmplx.Exp(complex(0, -w*float64(k)))
		num += complex(f.b[k], 0) * z
		den += complex(f.a[k], 0) * z
	}
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (f *Filter) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}

// DCGain returns H(1) = sum(b) / sum(a). It is ±Inf or NaN when the
// denominator has a pole at DC.
func DCGain(b, a []float64) float64 {
	var sb, sa float64
	for _, v := range b {
		sb += v
	}
	for _, v := range a {
		sa += v
	}
	return sb / sa
}
