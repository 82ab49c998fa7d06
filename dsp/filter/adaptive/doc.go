// Package adaptive provides Least-Mean-Squares (LMS) adaptive filters.
//
// Every filter in this package applies the same update, sample by sample:
//
//  1. shift the input history and insert the new sample at index 0
//  2. y = w · u, where u is the history, newest sample first
//  3. e = d - y
//  4. w += mu * e * u
//
// The output is always computed with the weights from before the update.
//
// [LMS] is a single-channel filter. [Array] runs one independent LMS per
// channel against a shared desired signal. [Gated] is an [Array] whose
// outputs and updates stay off until the history has been filled once.
// [Windowed] processes a multi-channel stream in chunks, carrying weights
// and the last order input samples across calls, and produces the same
// output as feeding the whole stream to an [Array].
//
// Divergence is not detected. A step size that is too large makes the
// weights grow without bound and the outputs turn into ±Inf or NaN; use
// core.FirstNonFinite on the output and Reset to recover.
package adaptive
