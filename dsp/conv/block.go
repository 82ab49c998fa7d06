package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// BlockFilter is a streaming FIR filter evaluated by FFT overlap-add. Each
// call to ProcessBlock returns exactly as many samples as it is given; the
// part of the block response that spills past the block is kept and added
// to the next one, so consecutive blocks produce the causal response of the
// whole stream.
type BlockFilter struct {
	spectrum []complex128 // kernel FFT
	taps     int
	block    int
	plan     *algofft.Plan[complex128]

	work []complex128
	tail []float64 // taps-1 samples owed to the next block
}

// NewBlockFilter prepares kernel for blocks of at most blockSize samples.
// A blockSize <= 0 picks the larger of 256 and the kernel length rounded up
// to a power of two.
func NewBlockFilter(kernel []float64, blockSize int) (*BlockFilter, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize <= 0 {
		blockSize = max(256, nextPowerOf2(len(kernel)))
	}

	size := nextPowerOf2(blockSize + len(kernel) - 1)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", size, err)
	}

	f := &BlockFilter{
		spectrum: make([]complex128, size),
		taps:     len(kernel),
		block:    blockSize,
		plan:     plan,
		work:     make([]complex128, size),
		tail:     make([]float64, len(kernel)-1),
	}
	for i, v := range kernel {
		f.work[i] = complex(v, 0)
	}
	if err := plan.Forward(f.spectrum, f.work); err != nil {
		return nil, fmt.Errorf("conv: kernel fft: %w", err)
	}
	return f, nil
}

// BlockSize returns the largest block ProcessBlock accepts.
func (f *BlockFilter) BlockSize() int { return f.block }

// Taps returns the kernel length.
func (f *BlockFilter) Taps() int { return f.taps }

// ProcessBlock filters src into dst. Both must have the same length, at
// most BlockSize.
func (f *BlockFilter) ProcessBlock(dst, src []float64) error {
	n := len(src)
	if len(dst) != n || n > f.block {
		return fmt.Errorf("%w: dst %d, src %d, block size %d", ErrLengthMismatch, len(dst), n, f.block)
	}
	if n == 0 {
		return nil
	}

	clear(f.work)
	for i, v := range src {
		f.work[i] = complex(v, 0)
	}
	if err := f.plan.Forward(f.work, f.work); err != nil {
		return fmt.Errorf("conv: forward fft: %w", err)
	}
	for i := range f.work {
		f.work[i] *= f.spectrum[i]
	}
	if err := f.plan.Inverse(f.work, f.work); err != nil {
		return fmt.Errorf("conv: inverse fft: %w", err)
	}

	for i := range dst {
		dst[i] = real(f.work[i])
		if i < len(f.tail) {
			dst[i] += f.tail[i]
		}
	}
	// Shift the unspent tail down by n and add this block's spill.
	for i := range f.tail {
		v := real(f.work[i+n])
		if i+n < len(f.tail) {
			v += f.tail[i+n]
		}
		f.tail[i] = v
	}
	return nil
}

// Reset drops the carried tail.
func (f *BlockFilter) Reset() {
	clear(f.tail)
}
