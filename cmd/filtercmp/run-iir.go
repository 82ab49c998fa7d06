package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/filter/biquad"
	"github.com/giovannipollo/digital-filters/dsp/filter/iir"
)

func runIIR(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, err := checkFileName(c.String("input"), ErrRequiredInput)
	if nil != err {
		return err
	}
	b, a, err := m.config.IIRCoefficients()
	if nil != err {
		return err
	}
	x, err := m.readSignal(input, c.Int("channel"))
	if nil != err {
		return err
	}

	batch, err := iir.Apply(x, b, a)
	if nil != err {
		return err
	}

	f, err := iir.New(b, a)
	if nil != err {
		return err
	}
	m.log.Infof("iir: order %d over %d samples", f.Order(), len(x))

	perSample := make([]float64, len(x))
	for n, v := range x {
		perSample[n] = f.ProcessSample(v)
	}

	f.Reset()
	windowed := make([]float64, 0, len(x))
	for _, s := range m.config.Processor().Spans(len(x)) {
		windowed = append(windowed, f.ProcessWindow(x[s.Start:s.End])...)
	}

	checks := []error{
		m.verify("sample", perSample, batch),
		m.verify("windowed", windowed, batch),
	}

	sections, err := m.config.IIRSections()
	if nil != err {
		return err
	}
	if len(sections) > 0 {
		chain, err := biquad.NewChain(sections)
		if nil != err {
			return err
		}
		cascade := make([]float64, len(x))
		if err := chain.ProcessBlockTo(cascade, x); nil != err {
			return err
		}
		m.log.Debugf("iir: %d second-order sections", chain.NumSections())
		checks = append(checks, m.verify("cascade", cascade, batch))
	}
	checks = append(checks, m.verifyReference(c.String("reference"), batch))
	if err := m.writeSignal(c.String("output"), batch); nil != err {
		return err
	}
	return errors.Join(checks...)
}
