package iir

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/buffer"
	"github.com/giovannipollo/digital-filters/dsp/core"
)

// Filter is a stateful direct-form IIR filter. The zero value is not usable;
// construct with New.
type Filter struct {
	b, a []float64

	inputs  *buffer.Fixed // x[n-1] ... x[n-N]
	outputs *buffer.Fixed // y[n-1] ... y[n-N]

	xs, ys []float64 // ProcessWindow scratch
}

// State is a snapshot of a filter's history, newest sample first.
type State struct {
	Inputs  []float64
	Outputs []float64
}

// Normalize validates (b, a) and returns copies padded with trailing zeros
// to a common length, so that the filter order is max(len(b), len(a))-1 and
// len(b) == len(a) holds for every evaluation path.
func Normalize(b, a []float64) (nb, na []float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, fmt.Errorf("%w: iir: empty coefficient vector (len(b)=%d, len(a)=%d)", core.ErrConfiguration, len(b), len(a))
	}
	if a[0] == 0 {
		return nil, nil, core.ErrDivisionByZero
	}
	n := max(len(b), len(a))
	nb = make([]float64, n)
	na = make([]float64, n)
	copy(nb, b)
	copy(na, a)
	return nb, na, nil
}

// New creates a filter from numerator b and denominator a. Both are copied
// and zero-padded to a common length N+1, where N is the filter order.
func New(b, a []float64) (*Filter, error) {
	nb, na, err := Normalize(b, a)
	if err != nil {
		return nil, err
	}
	order := len(nb) - 1
	return &Filter{
		b:       nb,
		a:       na,
		inputs:  buffer.NewFixed(order),
		outputs: buffer.NewFixed(order),
	}, nil
}

// Apply filters x with (b, a) in a single pass starting from zero history.
// The output has the same length as x. Apply has no side effects.
func Apply(x, b, a []float64) ([]float64, error) {
	b, a, err := Normalize(b, a)
	if err != nil {
		return nil, err
	}
	y := make([]float64, len(x))
	for n := range x {
		y[n] = recurrence(b, a, x, y, n)
	}
	return y, nil
}

// recurrence evaluates y[n] from x[0..n] and y[0..n-1], omitting terms whose
// index would fall before 0.
func recurrence(b, a, x, y []float64, n int) float64 {
	var acc float64
	for k := 0; k < len(b) && k <= n; k++ {
		acc += b[k] * x[n-k]
	}
	for k := 1; k < len(a) && k <= n; k++ {
		acc -= a[k] * y[n-k]
	}
	return acc / a[0]
}

// ProcessSample filters one input sample. The output is computed from the
// current sample and the stored histories, then both histories shift by one.
func (f *Filter) ProcessSample(x float64) float64 {
	xh := f.inputs.View()
	yh := f.outputs.View()

	var acc float64
	acc += f.b[0] * x
	for k := 1; k < len(f.b); k++ {
		acc += f.b[k] * xh[k-1]
	}
	for k := 1; k < len(f.a); k++ {
		acc -= f.a[k] * yh[k-1]
	}
	y := acc / f.a[0]

	f.inputs.Push(x)
	f.outputs.Push(y)
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: iir: dst has %d samples, src has %d", core.ErrDimensionMismatch, len(dst), len(src))
	}
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
	return nil
}

// ProcessWindow filters the next contiguous chunk of a stream and returns a
// new slice with one output per input sample.
//
// The chunk is evaluated on an extended signal whose first N samples are the
// carried history (oldest first), so the recurrence sees exactly the context
// a continuous pass would have seen at this boundary. Afterwards the last N
// inputs and outputs become the history for the next call. Chunks must not
// overlap; an empty chunk leaves the state untouched.
func (f *Filter) ProcessWindow(chunk []float64) []float64 {
	out := make([]float64, len(chunk))
	if len(chunk) == 0 {
		return out
	}

	order := f.Order()
	total := order + len(chunk)
	f.xs = core.EnsureLen(f.xs, total)
	f.ys = core.EnsureLen(f.ys, total)

	xh := f.inputs.View()
	yh := f.outputs.View()
	for k := range order {
		f.xs[order-1-k] = xh[k]
		f.ys[order-1-k] = yh[k]
	}
	copy(f.xs[order:], chunk)

	for n := order; n < total; n++ {
		f.ys[n] = recurrence(f.b, f.a, f.xs, f.ys, n)
	}
	copy(out, f.ys[order:])

	f.carry(f.xs, f.ys)
	return out
}

// carry replaces the history with the newest N samples of the extended
// signals. Pushing N samples oldest to newest overwrites every slot.
func (f *Filter) carry(xs, ys []float64) {
	for n := len(xs) - f.Order(); n < len(xs); n++ {
		f.inputs.Push(xs[n])
		f.outputs.Push(ys[n])
	}
}

// Reset zeroes the input and output history. Use it before filtering an
// unrelated signal with the same instance.
func (f *Filter) Reset() {
	f.inputs.Reset()
	f.outputs.Reset()
}

// Order returns the filter order, the length of each history register.
func (f *Filter) Order() int {
	return len(f.b) - 1
}

// Coefficients returns copies of the zero-padded numerator and denominator.
func (f *Filter) Coefficients() (b, a []float64) {
	return core.Clone(f.b), core.Clone(f.a)
}

// State returns a snapshot of the input and output history.
func (f *Filter) State() State {
	s := State{
		Inputs:  make([]float64, f.Order()),
		Outputs: make([]float64, f.Order()),
	}
	f.inputs.CopyTo(s.Inputs)
	f.outputs.CopyTo(s.Outputs)
	return s
}

// SetState restores a history snapshot. Both slices must hold Order()
// samples, newest first.
func (f *Filter) SetState(s State) error {
	if len(s.Inputs) != f.Order() || len(s.Outputs) != f.Order() {
		return fmt.Errorf("%w: iir: state has %d inputs and %d outputs, want %d each",
			core.ErrDimensionMismatch, len(s.Inputs), len(s.Outputs), f.Order())
	}
	f.inputs.Fill(s.Inputs)
	f.outputs.Fill(s.Outputs)
	return nil
}
