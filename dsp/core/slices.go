package core

import "math"

// EnsureLen returns buf resliced to n, allocating only when its capacity is
// too small. The contents are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

// Zero clears buf.
func Zero(buf []float64) {
	clear(buf)
}

// Clone copies src into a new non-nil slice, so filters never alias
// caller-owned coefficients or weights.
func Clone(src []float64) []float64 {
	return append(make([]float64, 0, len(src)), src...)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first NaN or ±Inf in xs, or -1.
//
// Filters do not guard against divergence themselves: an adaptive filter
// with too large a step size blows up, and callers use this to decide when
// to lower the step size or Reset.
func FirstNonFinite(xs []float64) int {
	for i, x := range xs {
		if !IsFinite(x) {
			return i
		}
	}
	return -1
}
