package main

import (
	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/dsp/core"
	"github.com/giovannipollo/digital-filters/internal/config"
)

type infoOutput struct {
	File      string                `json:"file"`
	Processor core.ProcessorConfig  `json:"processor"`
	Config    *config.Configuration `json:"config"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, infoOutput{
		File:      m.file,
		Processor: m.config.Processor(),
		Config:    m.config,
	})
}
