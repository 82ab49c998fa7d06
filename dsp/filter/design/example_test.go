package design

import (
	"fmt"

	"github.com/giovannipollo/digital-filters/dsp/filter/iir"
)

func ExampleButterworthLowpass() {
	b, a, _ := ButterworthLowpass(2, 1000, 48000)
	fmt.Println(len(b), len(a))
	fmt.Printf("%.3f\n", iir.DCGain(b, a))
	// Output:
	// 3 3
	// 1.000
}

func ExampleWindowedSincHamming() {
	h, _ := WindowedSincHamming(2, 0.1, 2)
	fmt.Printf("%.4f\n", h)
	// Output:
	// [0.0680 0.8640 0.0680]
}
