package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/filter/zerophase"
)

func runFiltfilt(c *cli.Context) error {

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

	padLength := m.config.IIR.PadLength
	if c.IsSet("pad") {
		padLength = c.Int("pad")
	}
	padded := c.Bool("padded") || c.IsSet("pad") || c.Bool("no-ic")

	var y []float64
	if padded {
		var opts []zerophase.Option
		if padLength >= 0 {
			opts = append(opts, zerophase.WithPadLength(padLength))
		}
		if c.Bool("no-ic") {
			opts = append(opts, zerophase.WithoutInitialConditions())
		}
		m.log.Infof("filtfilt: padded, pad length %d, %d samples", padLength, len(x))
		y, err = zerophase.ApplyPadded(x, b, a, opts...)
	} else {
		m.log.Infof("filtfilt: unpadded, %d samples", len(x))
		y, err = zerophase.Apply(x, b, a)
	}
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "filtfilt   samples=%d padded=%t\n", len(y), padded)

	check := m.verifyReference(c.String("reference"), y)
	if err := m.writeSignal(c.String("output"), y); nil != err {
		return err
	}
	return check
}
