// Package time summarises filter outputs in the time domain.
package time

import "math"

// Stats holds time-domain signal statistics. Level fields in dB are -Inf
// for silent signals and are left out of JSON.
type Stats struct {
	Length        int     `json:"length"`
	DC            float64 `json:"dc"`
	RMS           float64 `json:"rms"`
	RMSdB         float64 `json:"-"`
	Peak          float64 `json:"peak"`
	PeakdB        float64 `json:"-"`
	CrestFactor   float64 `json:"crest_factor"` // peak / RMS
	Energy        float64 `json:"energy"`       // sum of squares
	Variance      float64 `json:"variance"`     // population
	ZeroCrossings int     `json:"zero_crossings"`
}

// Calculate computes every statistic in one pass.
func Calculate(signal []float64) Stats {
	var s StreamingStats
	s.Update(signal)
	return s.Result()
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range signal {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(signal)))
}

// Peak returns the largest absolute sample.
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}
	return peak
}

// StreamingStats accumulates statistics across consecutive blocks. Feeding
// a signal in any split gives the same Result as Calculate on the whole.
type StreamingStats struct {
	n        int
	mean, m2 float64
	sumSq    float64
	peak     float64
	last     float64
	zc       int
}

// NewStreamingStats returns an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		if s.n > 0 && s.last*x < 0 {
			s.zc++
		}
		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)
		s.sumSq += x * x
		s.peak = math.Max(s.peak, math.Abs(x))
		s.last = x
	}
}

// Reset clears the accumulator.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

// Result returns the statistics of everything seen so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}
	rms := math.Sqrt(s.sumSq / float64(s.n))
	st := Stats{
		Length:        s.n,
		DC:            s.mean,
		RMS:           rms,
		RMSdB:         ampTodB(rms),
		Peak:          s.peak,
		PeakdB:        ampTodB(s.peak),
		Energy:        s.sumSq,
		Variance:      s.m2 / float64(s.n),
		ZeroCrossings: s.zc,
	}
	if rms > 0 {
		st.CrestFactor = s.peak / rms
	}
	return st
}

func ampTodB(v float64) float64 {
	if v == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(math.Abs(v))
}
