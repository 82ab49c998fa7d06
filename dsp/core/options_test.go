package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(1000), WithWindowSize(512), WithHopSize(128))
	if cfg.SampleRate != 1000 {
		t.Fatalf("sample rate = %v, want 1000", cfg.SampleRate)
	}
	if cfg.WindowSize != 512 {
		t.Fatalf("window size = %d, want 512", cfg.WindowSize)
	}
	if cfg.HopSize != 128 {
		t.Fatalf("hop size = %d, want 128", cfg.HopSize)
	}
	if cfg.Overlap() != 384 {
		t.Fatalf("overlap = %d, want 384", cfg.Overlap())
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithWindowSize(-1), WithHopSize(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestHopClampedToWindow(t *testing.T) {
	cfg := ApplyProcessorOptions(WithWindowSize(32), WithHopSize(100))
	if cfg.HopSize != 32 {
		t.Fatalf("hop size = %d, want 32", cfg.HopSize)
	}
	if cfg.Overlap() != 0 {
		t.Fatalf("overlap = %d, want 0", cfg.Overlap())
	}
}

func TestSpans(t *testing.T) {
	cfg := ApplyProcessorOptions(WithWindowSize(8), WithHopSize(3))

	tests := []struct {
		n    int
		want []Span
	}{
		{0, nil},
		{5, []Span{{0, 5}}},
		{8, []Span{{0, 8}}},
		{14, []Span{{0, 8}, {8, 11}, {11, 14}}},
		{16, []Span{{0, 8}, {8, 11}, {11, 14}, {14, 16}}},
	}
	for _, tt := range tests {
		got := cfg.Spans(tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("Spans(%d) = %v, want %v", tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Spans(%d) = %v, want %v", tt.n, got, tt.want)
			}
		}
	}
}

func TestSpansCoverSignal(t *testing.T) {
	cfg := DefaultProcessorConfig()
	for _, n := range []int{1, 255, 256, 257, 320, 1000} {
		next := 0
		for _, s := range cfg.Spans(n) {
			if s.Start != next || s.Len() <= 0 {
				t.Fatalf("n=%d: span %v does not continue at %d", n, s, next)
			}
			next = s.End
		}
		if next != n {
			t.Fatalf("n=%d: spans end at %d", n, next)
		}
	}
}
