// Package compare measures how far a filter output is from a reference.
//
// The three error metrics are mean squared error, mean absolute error and
// the largest absolute difference. A [Tolerance] bounds all three; the
// default bounds are the ones used to accept a streamed or windowed result
// against a single-pass reference.
package compare
