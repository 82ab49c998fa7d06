// Package fir provides causal finite-impulse-response filtering.
//
// [Apply] convolves a whole signal with a coefficient vector in one pass,
// assuming zero history before the first sample. A [Filter] produces the
// same values one sample at a time: it keeps the last len(h)-1 inputs in a
// newest-first [buffer.Fixed] and evaluates
//
//	y[n] = h[0]*x[n] + sum_{k=1}^{N-1} h[k]*x[n-k]
//
// in the same term order as [Apply], so feeding a signal sample by sample
// reproduces the batch output exactly. [ApplyFast] trades that bit-level
// identity for FFT speed on long kernels.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc, Parks-McClellan, etc.) is a separate concern.
package fir
