package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/filter/biquad"
	"github.com/giovannipollo/digital-filters/dsp/filter/design"
	"github.com/giovannipollo/digital-filters/dsp/window"
	"github.com/giovannipollo/digital-filters/measure/compare"
)

const (
	defaultDataDirectory = "."

	defaultLogDirectory = "log"
	defaultLogFile      = "filtercmp.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultTaps     = 8
	defaultStepSize = 0.01
	defaultChannels = 1
)

var (
	// ErrNoTable is returned when the script does not return a table.
	ErrNoTable = errors.New("config: script must return a table")
	// ErrInvalid is returned for values that fail validation.
	ErrInvalid = errors.New("config: invalid value")
)

// DesignConfiguration describes a Butterworth design used when no explicit
// coefficients are given.
type DesignConfiguration struct {
	Band  string  `gluamapper:"band" json:"band"` // lowpass, highpass or bandpass
	Order int     `gluamapper:"order" json:"order"`
	Low   float64 `gluamapper:"low" json:"low"`   // Hz, highpass and bandpass edge
	High  float64 `gluamapper:"high" json:"high"` // Hz, lowpass and bandpass edge
}

// IIRConfiguration holds direct-form coefficients or a design.
type IIRConfiguration struct {
	B         []float64           `gluamapper:"b" json:"b"`
	A         []float64           `gluamapper:"a" json:"a"`
	Design    DesignConfiguration `gluamapper:"design" json:"design"`
	PadLength int                 `gluamapper:"pad_length" json:"pad_length"` // -1 selects the default
}

// FIRDesignConfiguration describes a windowed-sinc lowpass used when no
// explicit taps are given.
type FIRDesignConfiguration struct {
	Order  int     `gluamapper:"order" json:"order"`
	Cutoff float64 `gluamapper:"cutoff" json:"cutoff"` // Hz
	Window string  `gluamapper:"window" json:"window"` // hamming when empty
	Beta   float64 `gluamapper:"beta" json:"beta"`     // kaiser shape, 8 when zero
}

// FIRConfiguration holds FIR taps or a design.
type FIRConfiguration struct {
	Coefficients []float64              `gluamapper:"coefficients" json:"coefficients"`
	Design       FIRDesignConfiguration `gluamapper:"design" json:"design"`
}

// LMSConfiguration holds adaptive filter parameters.
type LMSConfiguration struct {
	Taps     int     `gluamapper:"taps" json:"taps"`
	StepSize float64 `gluamapper:"mu" json:"mu"`
	Channels int     `gluamapper:"channels" json:"channels"`
	Gated    bool    `gluamapper:"gated" json:"gated"`
}

// ToleranceConfiguration bounds the comparison metrics.
type ToleranceConfiguration struct {
	MSE    float64 `gluamapper:"mse" json:"mse"`
	MAE    float64 `gluamapper:"mae" json:"mae"`
	MaxAbs float64 `gluamapper:"max_abs" json:"max_abs"`
}

// Configuration is the complete filtercmp configuration.
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	SampleRate    float64                `gluamapper:"sample_rate" json:"sample_rate"`
	WindowSize    int                    `gluamapper:"window_size" json:"window_size"`
	HopSize       int                    `gluamapper:"hop_size" json:"hop_size"`
	FIR           FIRConfiguration       `gluamapper:"fir" json:"fir"`
	IIR           IIRConfiguration       `gluamapper:"iir" json:"iir"`
	LMS           LMSConfiguration       `gluamapper:"lms" json:"lms"`
	Tolerance     ToleranceConfiguration `gluamapper:"tolerance" json:"tolerance"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	processor := core.DefaultProcessorConfig()
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		SampleRate:    processor.SampleRate,
		WindowSize:    processor.WindowSize,
		HopSize:       processor.HopSize,
		IIR: IIRConfiguration{
			PadLength: -1,
		},
		LMS: LMSConfiguration{
			Taps:     defaultTaps,
			StepSize: defaultStepSize,
			Channels: defaultChannels,
		},
		Tolerance: ToleranceConfiguration{
			MSE:    compare.DefaultTolerance.MSE,
			MAE:    compare.DefaultTolerance.MAE,
			MaxAbs: compare.DefaultTolerance.MaxAbs,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// Load reads fileName over the defaults and validates the result. Relative
// data and log directories are resolved against the directory holding the
// configuration file.
func Load(fileName string) (*Configuration, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if err != nil {
		return nil, err
	}
	baseDirectory, _ := filepath.Split(fileName)

	options := Default()
	if err := ParseConfigurationFile(fileName, options); err != nil {
		return nil, err
	}

	options.DataDirectory = resolve(baseDirectory, options.DataDirectory)
	options.Logging.Directory = resolve(options.DataDirectory, options.Logging.Directory)

	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// Validate checks values that do not depend on a particular command.
func (c *Configuration) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %v must be positive", ErrInvalid, c.SampleRate)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window_size %d must be positive", ErrInvalid, c.WindowSize)
	}
	if c.HopSize < 1 || c.HopSize > c.WindowSize {
		return fmt.Errorf("%w: hop_size %d must be in [1, %d]", ErrInvalid, c.HopSize, c.WindowSize)
	}
	if c.LMS.Taps < 1 {
		return fmt.Errorf("%w: lms.taps %d must be positive", ErrInvalid, c.LMS.Taps)
	}
	if c.LMS.Channels < 1 {
		return fmt.Errorf("%w: lms.channels %d must be positive", ErrInvalid, c.LMS.Channels)
	}
	return nil
}

// Processor returns the streaming geometry as a core.ProcessorConfig.
func (c *Configuration) Processor() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(c.SampleRate),
		core.WithWindowSize(c.WindowSize),
		core.WithHopSize(c.HopSize),
	)
}

// Bounds returns the comparison tolerance.
func (c *Configuration) Bounds() compare.Tolerance {
	return compare.Tolerance{
		MSE:    c.Tolerance.MSE,
		MAE:    c.Tolerance.MAE,
		MaxAbs: c.Tolerance.MaxAbs,
	}
}

// FIRCoefficients returns the explicit FIR taps, or designs them from
// fir.design when none are given.
func (c *Configuration) FIRCoefficients() ([]float64, error) {
	if len(c.FIR.Coefficients) > 0 {
		return append([]float64(nil), c.FIR.Coefficients...), nil
	}
	d := c.FIR.Design
	if d.Cutoff == 0 {
		return nil, fmt.Errorf("%w: fir needs coefficients or design.cutoff", ErrInvalid)
	}
	w := window.TypeHamming
	if d.Window != "" {
		var err error
		if w, err = window.ParseType(d.Window); err != nil {
			return nil, fmt.Errorf("%w: fir.design.window: %v", ErrInvalid, err)
		}
	}
	var opts []window.Option
	if d.Beta > 0 {
		opts = append(opts, window.WithBeta(d.Beta))
	}
	return design.WindowedSinc(d.Order, d.Cutoff, c.SampleRate, w, opts...)
}

// IIRCoefficients returns the explicit (b, a) pair, or designs a
// Butterworth filter from iir.design when b and a are both empty.
func (c *Configuration) IIRCoefficients() (b, a []float64, err error) {
	if len(c.IIR.B) > 0 || len(c.IIR.A) > 0 {
		return append([]float64(nil), c.IIR.B...), append([]float64(nil), c.IIR.A...), nil
	}
	sections, err := c.IIRSections()
	if err != nil {
		return nil, nil, err
	}
	return design.Expand(sections)
}

// IIRSections returns the designed second-order sections. It returns nil
// without error when explicit b and a are configured.
func (c *Configuration) IIRSections() ([]biquad.Coefficients, error) {
	if len(c.IIR.B) > 0 || len(c.IIR.A) > 0 {
		return nil, nil
	}
	d := c.IIR.Design
	if d.Band == "" {
		return nil, fmt.Errorf("%w: iir needs b and a or a design", ErrInvalid)
	}
	band, err := design.ParseBand(d.Band)
	if err != nil {
		return nil, err
	}
	return design.ButterworthSections(band, d.Order, d.Low, d.High, c.SampleRate)
}

// DataFile resolves name against the data directory.
func (c *Configuration) DataFile(name string) string {
	return resolve(c.DataDirectory, name)
}

func resolve(base, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(base, name)
}
