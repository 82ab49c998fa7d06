package adaptive

import (
	"errors"
	"testing"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/internal/testutil"
)

func TestGatedWarmUp(t *testing.T) {
	const taps, mu, samples = 3, 0.05, 200
	in := testutil.NoiseMatrix(21, 1, samples, 2)
	d := testutil.DeterministicNoise(22, 1, samples)

	g, err := NewGated(taps, mu, 2)
	if err != nil {
		t.Fatalf("NewGated error = %v", err)
	}

	// Reference: same buffers, but weights only start moving at taps+1.
	ref := make([]*LMS, 2)
	for ch := range ref {
		ref[ch] = mustLMS(t, taps, mu)
	}

	for n := range samples {
		outs, errs, err := g.Adapt(in[n], d[n])
		if err != nil {
			t.Fatalf("Adapt error = %v", err)
		}

		if n < taps {
			if g.Open() {
				t.Fatalf("gate open after %d samples", n+1)
			}
			for ch, l := range ref {
				l.history.Push(in[n][ch])
				if outs[ch] != 0 || errs[ch] != 0 {
					t.Fatalf("sample %d channel %d: got (%v, %v) while gated", n, ch, outs[ch], errs[ch])
				}
				testutil.RequireSliceEqual(t, g.Weights(ch), make([]float64, taps))
			}
			continue
		}

		if !g.Open() {
			t.Fatalf("gate closed after %d samples", n+1)
		}
		for ch, l := range ref {
			y, e := l.Adapt(in[n][ch], d[n])
			if outs[ch] != y || errs[ch] != e {
				t.Fatalf("sample %d channel %d: got (%v, %v), want (%v, %v)", n, ch, outs[ch], errs[ch], y, e)
			}
		}
	}
}

func TestGatedReset(t *testing.T) {
	g, _ := NewGated(2, 0.1, 1)
	for range 5 {
		g.Adapt([]float64{1}, 1)
	}
	if !g.Open() {
		t.Fatal("gate should be open")
	}
	g.Reset()
	if g.Open() {
		t.Fatal("gate should close on Reset")
	}
	outs, _, _ := g.Adapt([]float64{1}, 1)
	if outs[0] != 0 {
		t.Fatalf("output after Reset = %v, want 0", outs[0])
	}
	testutil.RequireSliceEqual(t, g.Weights(0), []float64{0, 0})
}

func TestGatedErrors(t *testing.T) {
	if _, err := NewGated(0, 0.1, 3); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	g, _ := NewGated(2, 0.1, 3)
	if _, _, err := g.Adapt([]float64{1}, 0); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}
