// Package biquad runs cascades of second-order sections.
//
// Designers in dsp/filter/design return []Coefficients. A [Chain] built from
// them filters the same signal as the expanded direct form in dsp/filter/iir,
// with better conditioning at high orders, so the two can be checked against
// each other.
package biquad
