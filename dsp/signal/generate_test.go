package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/giovannipollo/digital-filters/dsp/core"
)

func testConfig() core.ProcessorConfig {
	return core.ApplyProcessorOptions(core.WithSampleRate(1000))
}

func TestToneShape(t *testing.T) {
	g := NewGenerator(testConfig())
	s, err := g.Sine(10, 2, 100)
	if err != nil {
		t.Fatal(err)
	}
	c, err := g.Cosine(10, 2, 100)
	if err != nil {
		t.Fatal(err)
	}
	for n := range s {
		if r := s[n]*s[n] + c[n]*c[n]; math.Abs(r-4) > 1e-12 {
			t.Fatalf("sample %d: sin^2+cos^2 = %v, want 4", n, r)
		}
	}
	if math.Abs(c[0]-2) > 1e-12 || s[0] != 0 {
		t.Fatalf("start values s=%v c=%v", s[0], c[0])
	}
}

func TestNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(testConfig(), WithSeed(42))
	g2 := NewGenerator(testConfig(), WithSeed(42))
	g3 := NewGenerator(testConfig(), WithSeed(43))

	a, _ := g1.GaussianNoise(0.1, 32)
	b, _ := g2.GaussianNoise(0.1, 32)
	c, _ := g3.GaussianNoise(0.1, 32)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded noise differs at %d", i)
		}
		same = same && a[i] == c[i]
	}
	if same {
		t.Fatal("different seeds gave identical noise")
	}

	next, _ := g1.GaussianNoise(0.1, 32)
	if next[0] == a[0] && next[1] == a[1] {
		t.Fatal("successive draws repeated")
	}
}

func TestWhiteNoiseRange(t *testing.T) {
	g := NewGenerator(testConfig())
	x, err := g.WhiteNoise(0.5, 4096)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range x {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("sample %d = %v out of range", i, v)
		}
	}
}

func TestChannels(t *testing.T) {
	g := NewGenerator(testConfig())
	m, err := g.Channels(3, 10, math.Pi/4, 0, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 50 || len(m[0]) != 3 {
		t.Fatalf("shape %dx%d", len(m), len(m[0]))
	}
	want, _ := g.Cosine(10, 1, 50)
	for n := range want {
		if math.Abs(m[n][0]-want[n]) > 1e-12 {
			t.Fatalf("channel 0 sample %d: %v, want %v", n, m[n][0], want[n])
		}
	}
	if math.Abs(m[0][2]-math.Cos(math.Pi/2)) > 1e-12 {
		t.Fatalf("channel 2 start %v", m[0][2])
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator(testConfig())
	if _, err := g.Sine(10, 1, 0); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Sine(0 samples): %v", err)
	}
	if _, err := g.WhiteNoise(-1, 4); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("WhiteNoise(-1): %v", err)
	}
	if _, err := g.Channels(0, 10, 0, 0, 4); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Channels(0): %v", err)
	}
	if err := Add(make([]float64, 2), make([]float64, 3)); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Fatalf("Add: %v", err)
	}
	if _, err := Normalize(nil, 1); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Normalize(nil): %v", err)
	}
}
