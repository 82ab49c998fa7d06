package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/filter/fir"
)

func runFIR(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, err := checkFileName(c.String("input"), ErrRequiredInput)
	if nil != err {
		return err
	}
	h, err := m.config.FIRCoefficients()
	if nil != err {
		return err
	}
	x, err := m.readSignal(input, c.Int("channel"))
	if nil != err {
		return err
	}
	m.log.Infof("fir: %d taps over %d samples", len(h), len(x))

	batch, err := fir.Apply(x, h)
	if nil != err {
		return err
	}
	fast, err := fir.ApplyFast(x, h)
	if nil != err {
		return err
	}

	f, err := fir.New(h)
	if nil != err {
		return err
	}
	stream := make([]float64, len(x))
	for _, s := range m.config.Processor().Spans(len(x)) {
		if err := f.ProcessBlockTo(stream[s.Start:s.End], x[s.Start:s.End]); nil != err {
			return err
		}
	}

	checks := []error{
		m.verify("stream", stream, batch),
		m.verify("fast", fast, batch),
		m.verifyReference(c.String("reference"), batch),
	}
	if err := m.writeSignal(c.String("output"), batch); nil != err {
		return err
	}
	return errors.Join(checks...)
}
