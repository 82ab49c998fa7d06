// Package conv holds the convolution kernels behind batch FIR filtering and
// coefficient expansion.
//
// [Direct] returns the full linear convolution and is used to multiply
// polynomials. [Causal] returns only the first len(signal) samples, which is
// the output of a causal FIR filter started from zero history; kernels
// longer than 64 taps go through a [BlockFilter], an FFT overlap-add filter
// that carries its tail from one block to the next.
package conv
