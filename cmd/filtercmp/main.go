// Command filtercmp runs the filters of this module over recorded signals and
// checks that the batch, streaming and windowed paths agree.
//
// Usage:
//
//	filtercmp --config filtercmp.conf [global flags] command [flags]
//
// Every command reads its signals relative to the data directory of the
// configuration file, prints one comparison report per check and exits
// non-zero when a report is outside the configured tolerance.
//
// Examples:
//
//	filtercmp -c filtercmp.conf fir -i input.txt -o fir.txt
//	filtercmp -c filtercmp.conf iir -i input.wav -r scipy_lfilter.txt
//	filtercmp -c filtercmp.conf filtfilt --padded -i input.txt
//	filtercmp -c filtercmp.conf windowed -i accel.txt -d target.txt
//	filtercmp -c filtercmp.conf generate -n 4000 --noise 0.1
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/giovannipollo/digital-filters/internal/config"
)

type metadata struct {
	file    string
	config  *config.Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// loggingStarted records that logger.Initialise succeeded, so that it runs
// once per process and is finalised on exit.
var loggingStarted bool

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if loggingStarted {
		logger.Finalise()
	}
	if err != nil {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "filtercmp"
	app.Usage = "compare batch, streaming and windowed digital filters"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = w
	app.ErrWriter = e

	signalFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Value: "",
			Usage: "*input signal `FILE` (text or .wav)",
		},
		cli.IntFlag{
			Name:  "channel",
			Value: 0,
			Usage: " input column to filter `INDEX`",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: " write the batch result to `FILE`",
		},
		cli.StringFlag{
			Name:  "reference, r",
			Value: "",
			Usage: " compare the batch result with the signal in `FILE`",
		},
	}
	adaptiveFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Value: "",
			Usage: "*multi-channel input `FILE` (one row per sample)",
		},
		cli.StringFlag{
			Name:  "desired, d",
			Value: "",
			Usage: "*desired signal `FILE`",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: " write the channel mean of the output to `FILE`",
		},
		cli.StringFlag{
			Name:  "reference, r",
			Value: "",
			Usage: " compare the channel mean with the signal in `FILE`",
		},
		cli.IntFlag{
			Name:  "taps, t",
			Value: 0,
			Usage: " override lms.taps `COUNT`",
		},
		cli.Float64Flag{
			Name:  "mu, m",
			Value: 0,
			Usage: " override lms.mu `STEP`",
		},
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.Float64Flag{
			Name:  "sample-rate, s",
			Value: 0,
			Usage: " override sample_rate `HZ`",
		},
		cli.IntFlag{
			Name:  "window, w",
			Value: 0,
			Usage: " override window_size `SAMPLES`",
		},
		cli.IntFlag{
			Name:  "hop",
			Value: 0,
			Usage: " override hop_size `SAMPLES`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "fir",
			Usage:     "FIR: batch against streaming and FFT paths",
			ArgsUsage: "\n   (* = required)",
			Flags:     signalFlags,
			Action:    runFIR,
		},
		{
			Name:      "iir",
			Usage:     "IIR: batch against per-sample and windowed paths",
			ArgsUsage: "\n   (* = required)",
			Flags:     signalFlags,
			Action:    runIIR,
		},
		{
			Name:      "filtfilt",
			Usage:     "zero-phase forward-backward IIR filtering",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "padded, p",
					Usage: " pad the edges and start from steady state",
				},
				cli.IntFlag{
					Name:  "pad",
					Value: -1,
					Usage: " override iir.pad_length `SAMPLES`",
				},
				cli.BoolFlag{
					Name:  "no-ic",
					Usage: " padded mode without steady-state initial conditions",
				},
			}, signalFlags...),
			Action: runFiltfilt,
		},
		{
			Name:      "lms",
			Usage:     "multi-channel LMS: per-sample against the one-shot reference",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "gated, g",
					Usage: " hold outputs at zero until the taps are filled",
				},
			}, adaptiveFlags...),
			Action: runLMS,
		},
		{
			Name:      "windowed",
			Usage:     "windowed LMS: sliding windows against per-sample and reference",
			ArgsUsage: "\n   (* = required)",
			Flags:     adaptiveFlags,
			Action:    runWindowed,
		},
		{
			Name:      "design",
			Usage:     "print the configured coefficients and their frequency response",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "iir",
					Usage: "+filter `KIND` [fir|iir]",
				},
				cli.IntFlag{
					Name:  "points, n",
					Value: 16,
					Usage: " number of response rows `COUNT`",
				},
			},
			Action: runDesign,
		},
		{
			Name:      "generate",
			Usage:     "write a multi-channel cosine input and a sine desired signal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "input.txt",
					Usage: "*multi-channel input `FILE`",
				},
				cli.StringFlag{
					Name:  "desired, d",
					Value: "desired.txt",
					Usage: "*desired signal `FILE`",
				},
				cli.IntFlag{
					Name:  "channels",
					Value: 3,
					Usage: " input column `COUNT`",
				},
				cli.IntFlag{
					Name:  "samples, n",
					Value: 1000,
					Usage: " signal length `COUNT`",
				},
				cli.Float64Flag{
					Name:  "freq, f",
					Value: 10,
					Usage: " tone frequency `HZ`",
				},
				cli.Float64Flag{
					Name:  "spread",
					Value: 0.25,
					Usage: " phase step between channels `RADIANS`",
				},
				cli.Float64Flag{
					Name:  "noise",
					Value: 0,
					Usage: " gaussian noise deviation `SIGMA`",
				},
				cli.IntFlag{
					Name:  "seed",
					Value: 1,
					Usage: " noise `SEED`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "stats",
			Usage:     "print time-domain statistics of each channel of a signal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "input, i",
					Value: "",
					Usage: "*signal `FILE`",
				},
			},
			Action: runStats,
		},
		{
			Name:   "info",
			Usage:  "display the effective configuration",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display filtercmp version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := config.Load(file)
		if nil != err {
			return err
		}
		if err := applyGlobalOverrides(c, configuration); nil != err {
			return err
		}

		if err := startLogging(configuration.Logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			verbose: verbose,
			log:     logger.New(app.Name),
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			m.log.Flush()
		}
		return nil
	}

	return app
}

// startLogging creates the log directory and initialises the logger once.
func startLogging(configuration logger.Configuration) error {
	if loggingStarted {
		return nil
	}
	if err := os.MkdirAll(configuration.Directory, 0o750); nil != err {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	if err := logger.Initialise(configuration); nil != err {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	loggingStarted = true
	return nil
}
