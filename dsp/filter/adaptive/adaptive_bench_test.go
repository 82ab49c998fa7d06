package adaptive

import (
	"fmt"
	"testing"

	"github.com/giovannipollo/digital-filters/internal/testutil"
)

func BenchmarkLMSAdapt(b *testing.B) {
	for _, taps := range []int{8, 32, 128} {
		b.Run(fmt.Sprintf("taps=%d", taps), func(b *testing.B) {
			l, _ := NewLMS(taps, 1e-3)
			x := testutil.DeterministicNoise(1, 1, 1024)
			i := 0
			for b.Loop() {
				l.Adapt(x[i&1023], 0.5)
				i++
			}
		})
	}
}

func BenchmarkWindowedProcessWindow(b *testing.B) {
	const window = 256
	in := testutil.NoiseMatrix(1, 1, window, 3)
	d := testutil.DeterministicNoise(2, 1, window)
	w, _ := NewWindowed(32, 1e-3, WithChannels(3))
	for b.Loop() {
		_, _ = w.ProcessWindow(in, d)
	}
}
