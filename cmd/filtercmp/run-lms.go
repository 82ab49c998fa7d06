package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/dsp/filter/adaptive"
)

// multiChannel is the per-sample interface shared by Array and Gated.
type multiChannel interface {
	Adapt(x []float64, d float64) (outs, errs []float64, err error)
}

func runLMS(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, desired, err := m.readAdaptive(c)
	if nil != err {
		return err
	}
	lms := m.config.LMS
	applyLMSOverrides(c, &lms)
	gated := lms.Gated || c.Bool("gated")

	channels := lms.Channels
	if len(input) > 0 {
		channels = len(input[0])
	}

	var filter multiChannel
	if gated {
		filter, err = adaptive.NewGated(lms.Taps, lms.StepSize, channels)
	} else {
		filter, err = adaptive.NewArray(lms.Taps, lms.StepSize, channels)
	}
	if nil != err {
		return err
	}
	m.log.Infof("lms: %d taps, mu %g, %d channels, gated %t, %d samples", lms.Taps, lms.StepSize, channels, gated, len(input))

	out := make([][]float64, len(input))
	for n, row := range input {
		if out[n], _, err = filter.Adapt(row, desired[n]); nil != err {
			return fmt.Errorf("sample %d: %w", n, err)
		}
	}

	var checks []error
	if gated {
		m.log.Info("lms: gated outputs have no one-shot reference")
	} else {
		ref, err := adaptive.Reference(input, desired, lms.Taps, lms.StepSize)
		if nil != err {
			return err
		}
		checks = append(checks, m.verifyMatrix("reference", out, ref))
	}

	mean := adaptive.ChannelMean(out)
	checks = append(checks, m.verifyReference(c.String("reference"), mean))
	if err := m.writeSignal(c.String("output"), mean); nil != err {
		return err
	}
	return errors.Join(checks...)
}

// readAdaptive loads the multi-channel input and the desired signal and
// checks that they have the same number of samples.
func (m *metadata) readAdaptive(c *cli.Context) ([][]float64, []float64, error) {
	inputName, err := checkFileName(c.String("input"), ErrRequiredInput)
	if nil != err {
		return nil, nil, err
	}
	desiredName, err := checkFileName(c.String("desired"), ErrRequiredDesired)
	if nil != err {
		return nil, nil, err
	}
	input, err := m.readMatrix(inputName)
	if nil != err {
		return nil, nil, err
	}
	desired, err := m.readSignal(desiredName, 0)
	if nil != err {
		return nil, nil, err
	}
	if len(input) != len(desired) {
		return nil, nil, fmt.Errorf("%w: %d input rows, %d desired samples", core.ErrDimensionMismatch, len(input), len(desired))
	}
	return input, desired, nil
}
