// SPDX-License-Identifier: MIT

// Package app implements the lvchain command: it loads a chain definition,
// simulates it, and reports the timeline and the stationary distribution.
package app

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvchain/config"
	"github.com/katalvlaran/lvchain/internal/logging"
	"github.com/katalvlaran/lvchain/internal/report"
	"github.com/rs/zerolog"
)

// Options holds the parsed command-line flags.
type Options struct {
	ConfigPath string
	Steps      int
	Digits     int
	PlotPath   string
	LogLevel   string

	// set records which flags appeared on the command line.
	set map[string]bool
}

// ParseFlags parses args (without the program name) into Options.
func ParseFlags(programName string, args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o Options
	fs.StringVar(&o.ConfigPath, "config", "", "YAML chain definition (default: built-in weather chain).")
	fs.IntVar(&o.Steps, "steps", config.DefaultSteps, "Number of transitions to simulate; overrides the config file.")
	fs.IntVar(&o.Digits, "digits", config.DefaultDigits, "Decimal places of the printed timeline; overrides the config file.")
	fs.StringVar(&o.PlotPath, "plot", "", "Write a chart of the timeline to this .png, .svg or .pdf file.")
	fs.StringVar(&o.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error, disabled.")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	return o, nil
}

// apply overlays explicitly set flags onto cfg.
func (o Options) apply(cfg *config.Config) {
	if o.set["steps"] {
		cfg.Steps = o.Steps
	}
	if o.set["digits"] {
		cfg.Digits = o.Digits
	}
}

// Run executes the command with args (args[0] is the program name).
// Results go to stdout; logs and usage go to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	programName := "lvchain"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	opts, err := ParseFlags(programName, cmdArgs, stderr)
	if err != nil {
		return err
	}
	log, err := logging.New(stderr, logging.Options{Level: opts.LogLevel, Console: true, Component: programName})
	if err != nil {
		return err
	}

	return execute(opts, stdout, log)
}

func execute(opts Options, stdout io.Writer, log zerolog.Logger) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)

	chain, err := cfg.Chain()
	if err != nil {
		return fmt.Errorf("build chain %q: %w", cfg.Name, err)
	}
	log.Info().Str("chain", cfg.Name).Int("states", chain.Size()).Float64("tolerance", chain.Tolerance()).Msg("chain ready")
	if period, perr := chain.Period(); perr != nil {
		log.Warn().Str("chain", cfg.Name).Msg("chain is reducible; the stationary distribution may not be unique")
	} else if period > 1 {
		log.Warn().Str("chain", cfg.Name).Int("period", period).Msg("chain is periodic; power iteration may not converge")
	}

	history, err := chain.Simulate(cfg.Initial, cfg.Steps)
	if err != nil {
		return fmt.Errorf("simulate %q: %w", cfg.Name, err)
	}
	log.Debug().Int("steps", cfg.Steps).Msg("simulation done")

	if err = report.WriteHistory(stdout, cfg.Name, chain, history, cfg.Digits); err != nil {
		return err
	}

	sopts := cfg.StationaryOptions()
	pi, err := chain.StationaryDistribution(&sopts)
	if err != nil {
		log.Error().Err(err).Int("max_iterations", sopts.MaxIterations).Msg("stationary distribution not found")
		return err
	}
	log.Debug().Int("max_iterations", sopts.MaxIterations).Float64("tolerance", sopts.Tolerance).Msg("stationary distribution found")

	if err = report.WriteStationary(stdout, chain.States(), pi); err != nil {
		return err
	}

	if opts.PlotPath != "" {
		if err = report.SaveChart(opts.PlotPath, cfg.Name, chain.States(), history); err != nil {
			return err
		}
		log.Info().Str("path", opts.PlotPath).Msg("chart written")
	}

	return nil
}
