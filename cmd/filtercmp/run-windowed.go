package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/filter/adaptive"
)

func runWindowed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, desired, err := m.readAdaptive(c)
	if nil != err {
		return err
	}
	lms := m.config.LMS
	applyLMSOverrides(c, &lms)

	channels := lms.Channels
	if len(input) > 0 {
		channels = len(input[0])
	}
	w, err := adaptive.NewWindowed(lms.Taps, lms.StepSize, adaptive.WithChannels(channels))
	if nil != err {
		return err
	}

	spans := m.config.Processor().Spans(len(input))
	m.log.Infof("windowed: order %d, mu %g, %d channels, %d windows", w.Order(), lms.StepSize, channels, len(spans))

	out := make([][]float64, 0, len(input))
	for i, s := range spans {
		y, err := w.ProcessWindow(input[s.Start:s.End], desired[s.Start:s.End])
		if nil != err {
			return fmt.Errorf("window %d: %w", i, err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "window %d: samples [%d, %d)\n", i, s.Start, s.End)
		}
		out = append(out, y...)
	}

	ref, err := adaptive.Reference(input, desired, lms.Taps, lms.StepSize)
	if nil != err {
		return err
	}
	array, err := adaptive.NewArray(lms.Taps, lms.StepSize, channels)
	if nil != err {
		return err
	}
	perSample := make([][]float64, len(input))
	for n, row := range input {
		if perSample[n], _, err = array.Adapt(row, desired[n]); nil != err {
			return fmt.Errorf("sample %d: %w", n, err)
		}
	}

	mean := adaptive.ChannelMean(out)
	checks := []error{
		m.verifyMatrix("reference", out, ref),
		m.verifyMatrix("sample", out, perSample),
		m.verifyReference(c.String("reference"), mean),
	}
	if err := m.writeSignal(c.String("output"), mean); nil != err {
		return err
	}
	return errors.Join(checks...)
}
