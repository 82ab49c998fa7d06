package conv

import (
	"errors"
	"math"
	"testing"
)

func naiveCausal(x, h []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		for k := 0; k < len(h) && k <= n; k++ {
			y[n] += h[k] * x[n-k]
		}
	}
	return y
}

func testSignal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2*math.Pi*float64(i)/37) + 0.3*math.Cos(float64(i)*0.71)
	}
	return x
}

func decaying(n int) []float64 {
	h := make([]float64, n)
	for i := range h {
		h[i] = math.Exp(-float64(i) / 20)
	}
	return h
}

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{name: "identity", a: []float64{1, 2, 3}, b: []float64{1}, want: []float64{1, 2, 3}},
		{name: "pair", a: []float64{1, 2, 3}, b: []float64{1, 1}, want: []float64{1, 3, 5, 3}},
		{name: "polynomial", a: []float64{1, 0, -1}, b: []float64{1, 2, 3, 4}, want: []float64{1, 2, 2, 2, -3, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Direct() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("index %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Direct empty input: err = %v", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("Direct empty kernel: err = %v", err)
	}
	if _, err := Causal(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Causal empty input: err = %v", err)
	}
	if _, err := NewBlockFilter(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("NewBlockFilter empty kernel: err = %v", err)
	}
}

func TestCausal(t *testing.T) {
	tests := []struct {
		name   string
		signal int
		kernel int
	}{
		{name: "short kernel", signal: 200, kernel: 5},
		{name: "kernel longer than signal", signal: 10, kernel: 40},
		{name: "fft path", signal: 1000, kernel: 100},
		{name: "fft path, short signal", signal: 30, kernel: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := testSignal(tt.signal)
			h := decaying(tt.kernel)
			got, err := Causal(x, h)
			if err != nil {
				t.Fatal(err)
			}
			want := naiveCausal(x, h)
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestBlockFilterStreaming(t *testing.T) {
	h := decaying(70)
	x := testSignal(500)
	want := naiveCausal(x, h)

	f, err := NewBlockFilter(h, 64)
	if err != nil {
		t.Fatal(err)
	}
	if f.BlockSize() != 64 || f.Taps() != 70 {
		t.Fatalf("BlockSize %d Taps %d", f.BlockSize(), f.Taps())
	}

	// Uneven block lengths, including blocks shorter than the tail.
	got := make([]float64, 0, len(x))
	for _, n := range []int{64, 3, 17, 64, 1, 64, 64, 50, 64, 64, 45} {
		start := len(got)
		end := min(start+n, len(x))
		out := make([]float64, end-start)
		if err := f.ProcessBlock(out, x[start:end]); err != nil {
			t.Fatal(err)
		}
		got = append(got, out...)
	}
	if len(got) != len(x) {
		t.Fatalf("processed %d samples, want %d", len(got), len(x))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}

	f.Reset()
	out := make([]float64, 10)
	if err := f.ProcessBlock(out, x[:10]); err != nil {
		t.Fatal(err)
	}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("after Reset index %d: got %v, want %v", i, out[i], want[i])
		}
	}

	if err := f.ProcessBlock(make([]float64, 65), make([]float64, 65)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("oversized block: err = %v", err)
	}
	if err := f.ProcessBlock(make([]float64, 2), make([]float64, 3)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("length mismatch: err = %v", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	for in, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128} {
		if got := nextPowerOf2(in); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
