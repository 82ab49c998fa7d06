// Package buffer provides the fixed-length history register shared by every
// filter mode.
//
// A [Fixed] holds the N most recent samples of a stream. Pushing a sample
// evicts the oldest one in O(1), and [Fixed.View] exposes the history as a
// contiguous newest-first slice (index 0 is the most recent sample), which is
// the order FIR, IIR and LMS dot products consume it in. No other order is
// offered, so callers never have to guess the convention.
package buffer
