package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// ErrToleranceExceeded is returned by Tolerance.Check when a report is
// outside the accepted bounds.
var ErrToleranceExceeded = errors.New("compare: tolerance exceeded")

// Report holds the error metrics between two signals.
type Report struct {
	Samples   int
	MSE       float64
	MAE       float64
	MaxAbs    float64
	NonFinite bool // either signal contains NaN or ±Inf
}

// Tolerance bounds each metric. A report passes when every metric is
// strictly below its bound.
type Tolerance struct {
	MSE    float64
	MAE    float64
	MaxAbs float64
}

// DefaultTolerance accepts results that differ by rounding only.
var DefaultTolerance = Tolerance{
	MSE:    1e-10,
	MAE:    1e-5,
	MaxAbs: 1e-5,
}

// MSE returns the mean squared difference of got and want.
func MSE(got, want []float64) (float64, error) {
	if err := checkLengths(got, want); err != nil {
		return 0, err
	}
	if len(got) == 0 {
		return 0, nil
	}
	d := floats.Distance(got, want, 2)
	return d * d / float64(len(got)), nil
}

// MAE returns the mean absolute difference of got and want.
func MAE(got, want []float64) (float64, error) {
	if err := checkLengths(got, want); err != nil {
		return 0, err
	}
	if len(got) == 0 {
		return 0, nil
	}
	return floats.Distance(got, want, 1) / float64(len(got)), nil
}

// MaxAbsDiff returns the largest absolute difference of got and want.
func MaxAbsDiff(got, want []float64) (float64, error) {
	if err := checkLengths(got, want); err != nil {
		return 0, err
	}
	return floats.Distance(got, want, math.Inf(1)), nil
}

// Compare computes all metrics of got against want.
func Compare(got, want []float64) (Report, error) {
	if err := checkLengths(got, want); err != nil {
		return Report{}, err
	}
	r := Report{
		Samples:   len(got),
		NonFinite: core.FirstNonFinite(got) >= 0 || core.FirstNonFinite(want) >= 0,
	}
	r.MSE, _ = MSE(got, want)
	r.MAE, _ = MAE(got, want)
	r.MaxAbs, _ = MaxAbsDiff(got, want)
	return r, nil
}

// CompareMatrix compares two [samples][channels] matrices element-wise, as
// if both were flattened row by row.
func CompareMatrix(got, want [][]float64) (Report, error) {
	g, err := flatten(got)
	if err != nil {
		return Report{}, err
	}
	w, err := flatten(want)
	if err != nil {
		return Report{}, err
	}
	if len(got) != len(want) {
		return Report{}, fmt.Errorf("%w: compare: %d rows vs %d rows", core.ErrDimensionMismatch, len(got), len(want))
	}
	return Compare(g, w)
}

// Check returns nil when r is within t, and an error wrapping
// ErrToleranceExceeded naming the failing metrics otherwise. Non-finite
// values always fail.
func (t Tolerance) Check(r Report) error {
	var failed []string
	if r.NonFinite {
		failed = append(failed, "non-finite samples")
	}
	if !(r.MSE < t.MSE) {
		failed = append(failed, fmt.Sprintf("mse %g >= %g", r.MSE, t.MSE))
	}
	if !(r.MAE < t.MAE) {
		failed = append(failed, fmt.Sprintf("mae %g >= %g", r.MAE, t.MAE))
	}
	if !(r.MaxAbs < t.MaxAbs) {
		failed = append(failed, fmt.Sprintf("max abs %g >= %g", r.MaxAbs, t.MaxAbs))
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrToleranceExceeded, failed)
}

// String formats the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("samples=%d mse=%.3e mae=%.3e max_abs=%.3e", r.Samples, r.MSE, r.MAE, r.MaxAbs)
}

func checkLengths(got, want []float64) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: compare: %d samples vs %d samples", core.ErrDimensionMismatch, len(got), len(want))
	}
	return nil
}

func flatten(m [][]float64) ([]float64, error) {
	if len(m) == 0 {
		return nil, nil
	}
	width := len(m[0])
	out := make([]float64, 0, len(m)*width)
	for i, row := range m {
		if len(row) != width {
			return nil, fmt.Errorf("%w: compare: row %d has %d columns, want %d", core.ErrDimensionMismatch, i, len(row), width)
		}
		out = append(out, row...)
	}
	return out, nil
}
