package signalio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// ErrUnsupportedFormat is returned for WAV files this package cannot scale,
// such as 8-bit or floating-point data.
var ErrUnsupportedFormat = errors.New("signalio: unsupported WAV format")

// Recording is a multi-channel signal with its sampling parameters.
type Recording struct {
	SampleRate int
	BitDepth   int
	Frames     [][]float64 // [samples][channels]
}

// Channels returns the channel count, or 0 for an empty recording.
func (r Recording) Channels() int {
	if len(r.Frames) == 0 {
		return 0
	}
	return len(r.Frames[0])
}

// ReadWAV loads a 16-, 24- or 32-bit integer PCM WAV file.
func ReadWAV(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Recording{}, fmt.Errorf("invalid WAV file: %s", path)
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return Recording{}, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	bitDepth := int(dec.BitDepth)
	scale, err := fullScale(bitDepth)
	if err != nil {
		return Recording{}, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Recording{}, fmt.Errorf("failed to read PCM data: %w", err)
	}
	channels := buf.Format.NumChannels
	if channels < 1 {
		return Recording{}, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}

	frames := make([][]float64, len(buf.Data)/channels)
	for i := range frames {
		row := make([]float64, channels)
		for ch := range row {
			row[ch] = float64(buf.Data[i*channels+ch]) / scale
		}
		frames[i] = row
	}
	return Recording{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Frames:     frames,
	}, nil
}

// WriteWAV stores rec as integer PCM. Samples are clipped to the range of
// the bit depth; a zero BitDepth writes 16-bit.
func WriteWAV(path string, rec Recording) (err error) {
	bitDepth := rec.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}
	channels := rec.Channels()
	if channels == 0 {
		channels = 1
	}

	data := make([]int, 0, len(rec.Frames)*channels)
	for i, row := range rec.Frames {
		if len(row) != channels {
			return fmt.Errorf("%w: frame %d has %d channels, want %d", ErrShape, i, len(row), channels)
		}
		for _, v := range row {
			data = append(data, quantize(v, scale))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, rec.SampleRate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rec.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return enc.Close()
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

func quantize(v, scale float64) int {
	q := math.Round(v * scale)
	return int(math.Max(-scale, math.Min(scale-1, q)))
}
