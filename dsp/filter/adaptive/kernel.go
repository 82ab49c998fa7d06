package adaptive

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/tphakala/simd/f64"
)

// update evaluates one LMS step for the tap vector u (newest first):
// y = w·u with the current weights, then w += mu*e*u. scratch must have
// the length of u and w.
func update(w, u, scratch []float64, mu, desired float64) (y, e float64) {
	y = f64.DotProduct(w, u)
	e = desired - y
	vecmath.ScaleBlock(scratch, u, mu*e)
	vecmath.AddBlockInPlace(w, scratch)
	return y, e
}

func validate(taps int, mu float64) error {
	if taps < 1 {
		return fmt.Errorf("%w: adaptive: taps must be positive, got %d", core.ErrConfiguration, taps)
	}
	if !core.IsFinite(mu) {
		return fmt.Errorf("%w: adaptive: step size must be finite, got %v", core.ErrConfiguration, mu)
	}
	return nil
}
