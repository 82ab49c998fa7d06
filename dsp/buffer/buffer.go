package buffer

// Fixed is a fixed-capacity shift register of float64 samples.
//
// Storage is mirrored: every sample is written twice, n slots apart, so the
// newest-first window is always the contiguous slice data[pos:pos+n] and
// pushes never move existing samples.
type Fixed struct {
	data []float64
	pos  int
	n    int
}

// NewFixed returns a zero-filled register holding n samples.
// A non-positive n yields an empty register whose Push is a no-op.
func NewFixed(n int) *Fixed {
	if n < 0 {
		n = 0
	}
	return &Fixed{
		data: make([]float64, 2*n),
		n:    n,
	}
}

// Len returns the capacity of the register.
func (f *Fixed) Len() int {
	return f.n
}

// Push inserts x as the newest sample and evicts the oldest one.
func (f *Fixed) Push(x float64) {
	if f.n == 0 {
		return
	}
	f.pos--
	if f.pos < 0 {
		f.pos = f.n - 1
	}
	f.data[f.pos] = x
	f.data[f.pos+f.n] = x
}

// View returns the history newest-first: View()[0] is the most recent sample
// and View()[Len()-1] the oldest. The slice aliases internal storage; it is
// valid until the next Push, Fill or Reset and must not be modified.
func (f *Fixed) View() []float64 {
	return f.data[f.pos : f.pos+f.n]
}

// At returns the k-th most recent sample (0 = newest).
// It panics if k is outside [0, Len()).
func (f *Fixed) At(k int) float64 {
	if k < 0 || k >= f.n {
		panic("buffer: index out of range")
	}
	return f.data[f.pos+k]
}

// CopyTo copies the history newest-first into dst and returns the number of
// copied samples.
func (f *Fixed) CopyTo(dst []float64) int {
	return copy(dst, f.View())
}

// Fill replaces the history with src given newest-first. Missing trailing
// entries are zeroed and surplus entries are ignored.
func (f *Fixed) Fill(src []float64) {
	f.pos = 0
	for i := 0; i < f.n; i++ {
		var v float64
		if i < len(src) {
			v = src[i]
		}
		f.data[i] = v
		f.data[i+f.n] = v
	}
}

// Reset zeroes the history, restoring the construction-time state.
func (f *Fixed) Reset() {
	for i := range f.data {
		f.data[i] = 0
	}
	f.pos = 0
}
