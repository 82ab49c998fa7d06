package biquad

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

const eps = 1e-12

func twoSections() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.5, B1: 0.5, A1: -0.3},
	}
}

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(0.3*float64(i)) + 0.1*float64(i%7)
	}
	return x
}

func TestSectionHandTrace(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04})
	want := []float64{0.25, 0.55, 0.35, 0.048}
	in := []float64{1, 0, 0, 0}
	for i, x := range in {
		if got := s.ProcessSample(x); math.Abs(got-want[i]) > eps {
			t.Fatalf("y[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestSectionBlockMatchesSample(t *testing.T) {
	c := twoSections()[0]
	a := NewSection(c)
	b := NewSection(c)
	buf := ramp(64)
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}
	b.ProcessBlock(buf[:20])
	b.ProcessBlock(buf[20:])
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("sample %d: block %v, sample %v", i, buf[i], want[i])
		}
	}
	if a.State() != b.State() {
		t.Fatalf("state mismatch %v vs %v", a.State(), b.State())
	}
}

func TestChainMatchesManualCascade(t *testing.T) {
	coeffs := twoSections()
	c, err := NewChain(coeffs, WithGain(2))
	if err != nil {
		t.Fatal(err)
	}
	s0, s1 := NewSection(coeffs[0]), NewSection(coeffs[1])
	for i, x := range ramp(50) {
		want := s1.ProcessSample(s0.ProcessSample(2 * x))
		if got := c.ProcessSample(x); math.Abs(got-want) > eps {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestChainProcessBlockTo(t *testing.T) {
	c, _ := NewChain(twoSections())
	ref, _ := NewChain(twoSections())
	src := ramp(40)
	orig := append([]float64(nil), src...)
	dst := make([]float64, len(src))
	if err := c.ProcessBlockTo(dst, src); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("src modified at %d", i)
		}
		if want := ref.ProcessSample(src[i]); math.Abs(dst[i]-want) > eps {
			t.Fatalf("sample %d: got %v, want %v", i, dst[i], want)
		}
	}
	if err := c.ProcessBlockTo(dst[:3], src); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestChainStateAndReset(t *testing.T) {
	c, _ := NewChain(twoSections())
	c.ProcessBlock(ramp(10))
	saved := c.State()

	a := c.ProcessSample(0.7)
	if err := c.SetState(saved); err != nil {
		t.Fatal(err)
	}
	if b := c.ProcessSample(0.7); a != b {
		t.Fatalf("restored state gave %v, want %v", b, a)
	}
	if err := c.SetState(saved[:1]); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}

	c.Reset()
	for _, st := range c.State() {
		if st != [2]float64{} {
			t.Fatalf("state not cleared: %v", st)
		}
	}
}

func TestChainShape(t *testing.T) {
	if _, err := NewChain(nil); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("want ErrConfiguration, got %v", err)
	}
	c, _ := NewChain(twoSections(), WithGain(0.5))
	if c.Order() != 3 || c.NumSections() != 2 || c.Gain() != 0.5 {
		t.Fatalf("order %d sections %d gain %v", c.Order(), c.NumSections(), c.Gain())
	}
}

func TestChainResponse(t *testing.T) {
	coeffs := twoSections()
	c, _ := NewChain(coeffs, WithGain(3))
	for _, f := range []float64{0, 100, 1000, 11025} {
		want := 3 * coeffs[0].Response(f, 22050) * coeffs[1].Response(f, 22050)
		if got := c.Response(f, 22050); cmplx.Abs(got-want) > eps {
			t.Fatalf("f=%v: got %v, want %v", f, got, want)
		}
		if db := c.MagnitudeDB(f, 22050); math.Abs(db-20*math.Log10(cmplx.Abs(want))) > 1e-9 {
			t.Fatalf("f=%v: MagnitudeDB %v", f, db)
		}
	}
	// Passthrough at any frequency.
	if h := (Coefficients{B0: 1}).Response(1234, 8000); cmplx.Abs(h-1) > eps {
		t.Fatalf("passthrough response %v", h)
	}
}

func TestChainImpulseResponse(t *testing.T) {
	c, _ := NewChain(twoSections())
	c.ProcessBlock(ramp(5))
	saved := c.State()

	ir := c.ImpulseResponse(32)
	ref, _ := NewChain(twoSections())
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if want := ref.ProcessSample(x); math.Abs(ir[i]-want) > eps {
			t.Fatalf("ir[%d] = %v, want %v", i, ir[i], want)
		}
	}
	got := c.State()
	for i := range saved {
		if got[i] != saved[i] {
			t.Fatalf("state not restored: %v vs %v", got, saved)
		}
	}
	if c.ImpulseResponse(0) != nil {
		t.Fatal("ImpulseResponse(0) should be nil")
	}
}
