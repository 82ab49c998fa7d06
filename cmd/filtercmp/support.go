package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/internal/config"
	"github.com/giovannipollo/digital-filters/measure/compare"
	"github.com/giovannipollo/digital-filters/signalio"
	timestats "github.com/giovannipollo/digital-filters/stats/time"
)

// common errors - keep in alphabetic order
var (
	ErrChannelRange       = errors.New("channel index out of range")
	ErrRequiredConfigFile = errors.New("config file is required")
	ErrRequiredDesired    = errors.New("desired signal file is required")
	ErrRequiredInput      = errors.New("input signal file is required")
	ErrUnknownKind        = errors.New("kind must be fir or iir")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// check for non-blank file name
func checkFileName(fileName string, missing error) (string, error) {
	if "" == fileName {
		return "", missing
	}

	return fileName, nil
}

// applyGlobalOverrides lets command-line flags replace file values.
func applyGlobalOverrides(c *cli.Context, configuration *config.Configuration) error {
	if c.GlobalIsSet("sample-rate") {
		configuration.SampleRate = c.GlobalFloat64("sample-rate")
	}
	if c.GlobalIsSet("window") {
		configuration.WindowSize = c.GlobalInt("window")
	}
	if c.GlobalIsSet("hop") {
		configuration.HopSize = c.GlobalInt("hop")
	}
	return configuration.Validate()
}

// applyLMSOverrides lets command flags replace lms.taps and lms.mu.
func applyLMSOverrides(c *cli.Context, lms *config.LMSConfiguration) {
	if c.IsSet("taps") {
		lms.Taps = c.Int("taps")
	}
	if c.IsSet("mu") {
		lms.StepSize = c.Float64("mu")
	}
}

// verify compares got against want, prints the report and logs it. The
// returned error wraps compare.ErrToleranceExceeded when the report fails
// the configured bounds.
func (m *metadata) verify(label string, got, want []float64) error {
	r, err := compare.Compare(got, want)
	if nil != err {
		return fmt.Errorf("%s: %w", label, err)
	}
	return m.report(label, r)
}

func (m *metadata) verifyMatrix(label string, got, want [][]float64) error {
	r, err := compare.CompareMatrix(got, want)
	if nil != err {
		return fmt.Errorf("%s: %w", label, err)
	}
	return m.report(label, r)
}

func (m *metadata) report(label string, r compare.Report) error {
	err := m.config.Bounds().Check(r)
	status := "ok"
	if nil != err {
		status = "FAIL"
	}
	fmt.Fprintf(m.w, "%-10s %s %s\n", label, r, status)
	if nil != err {
		m.log.Errorf("%s: %s", label, err)
		return fmt.Errorf("%s: %w", label, err)
	}
	m.log.Infof("%s: %s", label, r)
	return nil
}

// verifyReference compares got with the signal stored in name, if any.
func (m *metadata) verifyReference(name string, got []float64) error {
	if "" == name {
		return nil
	}
	want, err := m.readSignal(name, 0)
	if nil != err {
		return err
	}
	return m.verify("reference", got, want)
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".wav")
}

// readMatrix loads a [samples][channels] signal from a text or WAV file
// under the data directory.
func (m *metadata) readMatrix(name string) ([][]float64, error) {
	path := m.config.DataFile(name)
	if m.verbose {
		fmt.Fprintf(m.e, "reading signal: %s\n", path)
	}
	if !isWAV(path) {
		return signalio.ReadMatrixTextFile(path)
	}

	rec, err := signalio.ReadWAV(path)
	if nil != err {
		return nil, err
	}
	if float64(rec.SampleRate) != m.config.SampleRate {
		m.log.Warnf("%s: sample rate %d Hz differs from configured %g Hz", path, rec.SampleRate, m.config.SampleRate)
	}
	return rec.Frames, nil
}

// readSignal loads one column of a signal file.
func (m *metadata) readSignal(name string, channel int) ([]float64, error) {
	data, err := m.readMatrix(name)
	if nil != err {
		return nil, err
	}
	if len(data) > 0 && (channel < 0 || channel >= len(data[0])) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrChannelRange, channel, len(data[0]))
	}
	return signalio.Column(data, channel), nil
}

func (m *metadata) writeSignal(name string, x []float64) error {
	if "" != name {
		st := timestats.Calculate(x)
		m.log.Infof("%s: rms %.6g peak %.6g dc %.6g", name, st.RMS, st.Peak, st.DC)
	}
	return m.writeMatrix(name, signalio.Rows(x))
}

// writeMatrix stores data under the data directory; a blank name is a no-op.
func (m *metadata) writeMatrix(name string, data [][]float64) error {
	if "" == name {
		return nil
	}
	path := m.config.DataFile(name)
	if m.verbose {
		fmt.Fprintf(m.e, "writing signal: %s\n", path)
	}
	m.log.Infof("writing %d samples to %s", len(data), path)
	if isWAV(path) {
		return signalio.WriteWAV(path, signalio.Recording{
			SampleRate: int(math.Round(m.config.SampleRate)),
			Frames:     data,
		})
	}
	return signalio.WriteMatrixTextFile(path, data)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
