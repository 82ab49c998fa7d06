package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/signal"
	"github.com/giovannipollo/digital-filters/signalio"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, err := checkFileName(c.String("output"), ErrRequiredInput)
	if nil != err {
		return err
	}
	desired, err := checkFileName(c.String("desired"), ErrRequiredDesired)
	if nil != err {
		return err
	}

	g := signal.NewGenerator(m.config.Processor(), signal.WithSeed(uint64(c.Int("seed"))))
	samples := c.Int("samples")
	freq := c.Float64("freq")

	x, err := g.Channels(c.Int("channels"), freq, c.Float64("spread"), c.Float64("noise"), samples)
	if nil != err {
		return err
	}
	d, err := g.Sine(freq, 1, samples)
	if nil != err {
		return err
	}

	if err := m.writeMatrix(input, x); nil != err {
		return err
	}
	if err := m.writeMatrix(desired, signalio.Rows(d)); nil != err {
		return err
	}
	fmt.Fprintf(m.w, "generate   samples=%d channels=%d\n", samples, len(x[0]))
	return nil
}
