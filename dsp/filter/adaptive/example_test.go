package adaptive_test

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/filter/adaptive"
)

func ExampleLMS_Adapt() {
	l, _ := adaptive.NewLMS(2, 0.5)
	for _, x := range []float64{1, 1, 1} {
		y, e := l.Adapt(x, 1)
		fmt.Printf("y=%.3f e=%.3f\n", y, e)
	}
	// Output:
	// y=0.000 e=1.000
	// y=0.500 e=0.500
	// y=1.000 e=0.000
}

func ExampleWindowed_ProcessWindow() {
	w, _ := adaptive.NewWindowed(2, 0.5, adaptive.WithChannels(1))

	in := [][]float64{{1}, {1}, {1}}
	d := []float64{1, 1, 1}

	a, _ := w.ProcessWindow(in[:1], d[:1])
	b, _ := w.ProcessWindow(in[1:], d[1:])
	fmt.Println(a, b)
	// Output:
	// [[0]] [[0.5] [1]]
}
