// Package iir provides causal infinite-impulse-response filtering in
// direct form.
//
// Every mode evaluates the same difference equation,
//
//	y[n] = (sum_{k=0}^{N} b[k]*x[n-k] - sum_{k=1}^{N} a[k]*y[n-k]) / a[0]
//
// with zero history before the first sample and the terms summed in the
// order shown:
//
//   - [Apply] filters a whole signal in one pass.
//   - [Filter.ProcessSample] carries the last N inputs and outputs in
//     newest-first registers and produces one output per call.
//   - [Filter.ProcessWindow] filters contiguous, non-overlapping chunks and
//     carries exactly N inputs and N outputs across chunk boundaries.
//
// Feeding a signal through any of the three, in any chunking, yields the same
// samples. Callers working with overlapping windows must discard the repeated
// samples themselves before calling ProcessWindow.
//
// Coefficient design (Butterworth and friends) is out of scope; b and a are
// taken as given. The shorter of b and a is padded with zeros so both have
// length N+1; a[0] must be non-zero.
package iir
