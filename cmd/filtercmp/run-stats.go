package main

import (
	"math"

	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/signalio"
	timestats "github.com/giovannipollo/digital-filters/stats/time"
)

type channelStats struct {
	timestats.Stats
	RMSdB  *float64 `json:"rms_db,omitempty"`
	PeakdB *float64 `json:"peak_db,omitempty"`
}

type statsOutput struct {
	File     string         `json:"file"`
	Channels []channelStats `json:"channels"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	input, err := checkFileName(c.String("input"), ErrRequiredInput)
	if nil != err {
		return err
	}
	data, err := m.readMatrix(input)
	if nil != err {
		return err
	}

	out := statsOutput{File: m.config.DataFile(input)}
	if len(data) > 0 {
		for ch := range data[0] {
			st := timestats.Calculate(signalio.Column(data, ch))
			out.Channels = append(out.Channels, channelStats{
				Stats:  st,
				RMSdB:  level(st.RMSdB),
				PeakdB: level(st.PeakdB),
			})
		}
	}
	return printJson(m.w, out)
}

// level returns nil for the -Inf level of a silent channel.
func level(db float64) *float64 {
	if math.IsInf(db, 0) {
		return nil
	}
	return &db
}
