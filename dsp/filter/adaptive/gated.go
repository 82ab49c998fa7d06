package adaptive

// Gated is a multi-channel LMS filter with a warm-up gate. While fewer than
// taps+1 samples have been pushed, every output and error is zero and the
// weights stay unchanged; from then on it behaves like an Array.
type Gated struct {
	Array
	taps      int
	processed int
}

// NewGated creates a gated multi-channel filter.
func NewGated(taps int, mu float64, channels int) (*Gated, error) {
	a, err := NewArray(taps, mu, channels)
	if err != nil {
		return nil, err
	}
	return &Gated{Array: *a, taps: taps}, nil
}

// Adapt pushes one sample per channel and, once the gate is open, adapts
// every channel toward d.
func (g *Gated) Adapt(x []float64, d float64) (outs, errs []float64, err error) {
	if err := g.checkWidth(len(x)); err != nil {
		return nil, nil, err
	}
	for ch, l := range g.channels {
		l.history.Push(x[ch])
	}
	g.processed++

	outs = make([]float64, len(x))
	errs = make([]float64, len(x))
	if !g.Open() {
		return outs, errs, nil
	}
	for ch, l := range g.channels {
		outs[ch], errs[ch] = l.step(d)
	}
	return outs, errs, nil
}

// Open reports whether the warm-up gate has opened.
func (g *Gated) Open() bool {
	return g.processed >= g.taps+1
}

// Reset zeroes every channel and closes the gate.
func (g *Gated) Reset() {
	g.Array.Reset()
	g.processed = 0
}
