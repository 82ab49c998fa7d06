package core

import "errors"

// Errors shared by every filter package. Operations wrap them with the
// offending sizes, so callers should test with errors.Is.
var (
	// ErrConfiguration reports malformed filter parameters: empty or
	// mismatched coefficient vectors, non-positive tap or channel counts.
	ErrConfiguration = errors.New("filter: invalid configuration")

	// ErrDivisionByZero reports an IIR denominator whose leading
	// coefficient a[0] is zero.
	ErrDivisionByZero = errors.New("filter: leading denominator coefficient is zero")

	// ErrDimensionMismatch reports input and desired sequences of unequal
	// length, or a per-sample channel vector that does not match the
	// configured channel count.
	ErrDimensionMismatch = errors.New("filter: dimension mismatch")
)
