package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/filter/biquad"
	"github.com/giovannipollo/digital-filters/dsp/filter/iir"
	"github.com/giovannipollo/digital-filters/dsp/window"
)

const sampleRate = 48000.0

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func magnitude(t *testing.T, b, a []float64, freq float64) float64 {
	t.Helper()
	f, err := iir.New(b, a)
	if err != nil {
		t.Fatalf("iir.New: %v", err)
	}
	return cmplx.Abs(f.Response(freq, sampleRate))
}

func TestBilinearTransformNormalizesA0(t *testing.T) {
	got := BilinearTransform([3]float64{1, 1, 1}, sampleRate)
	if !almostEqual(got[0], 1, 1e-12) {
		t.Fatalf("got a0=%v, want 1", got[0])
	}
	for i := range got {
		if math.IsNaN(got[i]) || math.IsInf(got[i], 0) {
			t.Fatalf("coef[%d] invalid: %v", i, got[i])
		}
	}
	if got := BilinearTransform([3]float64{1, 1, 1}, 0); got != [3]float64{1, 0, 0} {
		t.Fatalf("invalid sample rate: got %v", got)
	}
}

func TestBiquadShapes(t *testing.T) {
	q := 1 / math.Sqrt2

	lp := Lowpass(1000, q, sampleRate)
	if !(magnitude(t, lp.Numerator(), lp.Denominator(), 100) > magnitude(t, lp.Numerator(), lp.Denominator(), 10000)) {
		t.Fatal("lowpass shape check failed")
	}

	hp := Highpass(1000, q, sampleRate)
	if !(magnitude(t, hp.Numerator(), hp.Denominator(), 10000) > magnitude(t, hp.Numerator(), hp.Denominator(), 100)) {
		t.Fatal("highpass shape check failed")
	}

	bp := Bandpass(1000, q, sampleRate)
	center := magnitude(t, bp.Numerator(), bp.Denominator(), 1000)
	if !almostEqual(center, 1, 1e-9) {
		t.Fatalf("bandpass center gain=%v, want 1", center)
	}

	if (Lowpass(0, q, sampleRate) != biquad.Coefficients{}) || (Highpass(sampleRate, q, sampleRate) != biquad.Coefficients{}) {
		t.Fatal("out-of-range frequency should yield the zero section")
	}
}

func TestButterworthLowpass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 5} {
		b, a, err := ButterworthLowpass(order, 1000, sampleRate)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		if len(b) != order+1 || len(a) != order+1 {
			t.Fatalf("order %d: len(b)=%d len(a)=%d, want %d", order, len(b), len(a), order+1)
		}
		if a[0] != 1 {
			t.Fatalf("order %d: a[0]=%v, want 1", order, a[0])
		}
		if g := iir.DCGain(b, a); !almostEqual(g, 1, 1e-9) {
			t.Fatalf("order %d: DC gain=%v, want 1", order, g)
		}
		if g := magnitude(t, b, a, 1000); !almostEqual(g, 1/math.Sqrt2, 1e-9) {
			t.Fatalf("order %d: cutoff gain=%v, want 1/sqrt(2)", order, g)
		}
		if g := magnitude(t, b, a, 20000); g > 0.1 {
			t.Fatalf("order %d: stopband gain=%v", order, g)
		}
	}
}

func TestButterworthHighpass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		b, a, err := ButterworthHighpass(order, 1000, sampleRate)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		if g := iir.DCGain(b, a); !almostEqual(g, 0, 1e-9) {
			t.Fatalf("order %d: DC gain=%v, want 0", order, g)
		}
		if g := magnitude(t, b, a, 1000); !almostEqual(g, 1/math.Sqrt2, 1e-9) {
			t.Fatalf("order %d: cutoff gain=%v, want 1/sqrt(2)", order, g)
		}
		if g := magnitude(t, b, a, sampleRate/2); !almostEqual(g, 1, 1e-9) {
			t.Fatalf("order %d: Nyquist gain=%v, want 1", order, g)
		}
	}
}

func TestButterworthBandpass(t *testing.T) {
	b, a, err := ButterworthBandpass(4, 500, 2000, sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 9 || len(a) != 9 {
		t.Fatalf("len(b)=%d len(a)=%d, want 9", len(b), len(a))
	}
	if g := magnitude(t, b, a, 1000); g < 0.95 {
		t.Fatalf("center gain=%v, want > 0.95", g)
	}
	if g := magnitude(t, b, a, 50); g > 0.01 {
		t.Fatalf("low stopband gain=%v", g)
	}
	if g := magnitude(t, b, a, 20000); g > 0.01 {
		t.Fatalf("high stopband gain=%v", g)
	}
}

func TestButterworthDispatch(t *testing.T) {
	wantB, wantA, _ := ButterworthHighpass(2, 300, sampleRate)
	b, a, err := Butterworth(BandHighpass, 2, 300, 5000, sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wantB {
		if b[i] != wantB[i] || a[i] != wantA[i] {
			t.Fatalf("dispatch differs at %d", i)
		}
	}

	if _, _, err := Butterworth(Band(7), 2, 300, 5000, sampleRate); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("unknown band: err=%v", err)
	}
}

func TestButterworthErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"zero order", func() error { _, _, err := ButterworthLowpass(0, 1000, sampleRate); return err }},
		{"zero cutoff", func() error { _, _, err := ButterworthLowpass(2, 0, sampleRate); return err }},
		{"cutoff at nyquist", func() error { _, _, err := ButterworthHighpass(2, sampleRate/2, sampleRate); return err }},
		{"bad sample rate", func() error { _, _, err := ButterworthLowpass(2, 1000, 0); return err }},
		{"inverted band", func() error { _, _, err := ButterworthBandpass(2, 2000, 500, sampleRate); return err }},
		{"band edge above nyquist", func() error { _, _, err := ButterworthBandpass(2, 500, 30000, sampleRate); return err }},
		{"empty cascade", func() error { _, _, err := Expand(nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, core.ErrConfiguration) {
				t.Fatalf("err=%v, want ErrConfiguration", err)
			}
		})
	}
}

func TestParseBand(t *testing.T) {
	cases := map[string]Band{
		"lowpass":  BandLowpass,
		"LOW":      BandLowpass,
		"highpass": BandHighpass,
		" high ":   BandHighpass,
		"bandpass": BandBandpass,
		"band":     BandBandpass,
	}
	for in, want := range cases {
		got, err := ParseBand(in)
		if err != nil || got != want {
			t.Fatalf("ParseBand(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseBand("bandstop"); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("bandstop: err=%v", err)
	}
	if BandBandpass.String() != "bandpass" || Band(9).String() != "band(9)" {
		t.Fatal("unexpected Band.String output")
	}
}

func TestExpandSingleSection(t *testing.T) {
	s := biquad.Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.1}
	b, a, err := Expand([]biquad.Coefficients{s})
	if err != nil {
		t.Fatal(err)
	}
	wantB := []float64{0.25, 0.5, 0.25}
	wantA := []float64{1, -0.2, 0.1}
	for i := range wantB {
		if b[i] != wantB[i] || a[i] != wantA[i] {
			t.Fatalf("Expand = %v / %v, want %v / %v", b, a, wantB, wantA)
		}
	}
}

func TestWindowedSincHamming(t *testing.T) {
	h, err := WindowedSincHamming(2, 0.1, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.06799016673899747, 0.8640196665220051, 0.06799016673899747}
	for i := range want {
		if !almostEqual(h[i], want[i], 1e-12) {
			t.Fatalf("h=%v, want %v", h, want)
		}
	}
}

func TestWindowedSincProperties(t *testing.T) {
	for _, w := range []window.Type{window.TypeRectangular, window.TypeHann, window.TypeHamming, window.TypeBlackman, window.TypeKaiser} {
		h, err := WindowedSinc(32, 2000, sampleRate, w)
		if err != nil {
			t.Fatalf("%v: %v", w, err)
		}
		if len(h) != 33 {
			t.Fatalf("%v: len=%d, want 33", w, len(h))
		}
		sum := 0.0
		for i, v := range h {
			sum += v
			if !almostEqual(v, h[len(h)-1-i], 1e-12) {
				t.Fatalf("%v: taps not symmetric at %d", w, i)
			}
		}
		if !almostEqual(sum, 1, 1e-12) {
			t.Fatalf("%v: tap sum=%v, want 1", w, sum)
		}
	}

	h, err := WindowedSinc(0, 1000, sampleRate, window.TypeHamming)
	if err != nil || len(h) != 1 || h[0] != 1 {
		t.Fatalf("order 0: h=%v err=%v", h, err)
	}

	if _, err := WindowedSinc(-1, 1000, sampleRate, window.TypeHamming); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("negative order: err=%v", err)
	}
	if _, err := WindowedSinc(8, 30000, sampleRate, window.TypeHamming); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("cutoff above nyquist: err=%v", err)
	}
}

func TestButterworthSectionsMatchDirectForm(t *testing.T) {
	sections, err := ButterworthSections(BandBandpass, 3, 500, 2000, sampleRate)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 4 {
		t.Fatalf("len(sections) = %d, want 4", len(sections))
	}
	chain, err := biquad.NewChain(sections)
	if err != nil {
		t.Fatal(err)
	}
	if chain.Order() != 6 {
		t.Fatalf("order = %d, want 6", chain.Order())
	}

	b, a, err := Expand(sections)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := iir.New(b, a)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 512; i++ {
		x := math.Sin(2*math.Pi*1000*float64(i)/sampleRate) + 0.5*math.Sin(2*math.Pi*80*float64(i)/sampleRate)
		got := chain.ProcessSample(x)
		want := direct.ProcessSample(x)
		if !almostEqual(got, want, 1e-9) {
			t.Fatalf("sample %d: cascade %v, direct %v", i, got, want)
		}
	}
}
