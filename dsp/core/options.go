package core

// ProcessorConfig defines the streaming settings shared by drivers that feed
// filters in windows: the sample rate used for frequency-domain reporting and
// the window geometry used when splitting a recording into chunks.
type ProcessorConfig struct {
	SampleRate float64
	WindowSize int
	HopSize    int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the settings used for accelerometer-style
// acquisition: 64 Hz, 256-sample windows advanced by 64 samples.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 64,
		WindowSize: 256,
		HopSize:    64,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the window length in samples.
func WithWindowSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// WithHopSize sets how far consecutive windows advance. A hop smaller than
// the window length produces overlapping windows.
func WithHopSize(hop int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if hop > 0 {
			cfg.HopSize = hop
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
// A hop larger than the window is clamped to the window length so that no
// sample is ever skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.HopSize > cfg.WindowSize {
		cfg.HopSize = cfg.WindowSize
	}
	return cfg
}

// Overlap returns the number of samples shared by consecutive windows.
func (c ProcessorConfig) Overlap() int {
	return c.WindowSize - c.HopSize
}

// Span is a half-open sample range [Start, End).
type Span struct {
	Start, End int
}

// Len returns End - Start.
func (s Span) Len() int { return s.End - s.Start }

// Spans splits n samples into the chunks a sliding-window driver feeds to a
// stateful filter. The first chunk is a full window. Every later window
// advances by HopSize, so only its newest HopSize samples are new and form
// the next chunk. Samples left over after the last full window form a final
// shorter chunk, so the spans always cover [0, n) exactly once. A signal
// shorter than one window yields a single chunk.
func (c ProcessorConfig) Spans(n int) []Span {
	if n <= 0 {
		return nil
	}
	window := max(c.WindowSize, 1)
	hop := min(max(c.HopSize, 1), window)
	if n <= window {
		return []Span{{0, n}}
	}

	spans := []Span{{0, window}}
	end := window
	for ; end+hop <= n; end += hop {
		spans = append(spans, Span{end, end + hop})
	}
	if end < n {
		spans = append(spans, Span{end, n})
	}
	return spans
}
