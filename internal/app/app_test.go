// SPDX-License-Identifier: MIT

package app

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvchain/config"
	"github.com/katalvlaran/lvchain/internal/report"
	"github.com/katalvlaran/lvchain/markov"
	"github.com/stretchr/testify/require"
)

const twoStateYAML = `
name: two
states: [Sunny, Rainy]
transitions:
  - [0.9, 0.1]
  - [0.5, 0.5]
steps: 5
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(append([]string{"lvchain"}, args...), &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

func TestRun_DefaultWeatherChain(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "Weather Markov Chain Simulation\n"))
	require.Equal(t, config.DefaultSteps+1, strings.Count(out, "Step "))
	require.Contains(t, out, "Step  0: [1.000, 0.000, 0.000]  likely=Sunny\n")
	require.Contains(t, out, "Step  1: [0.700, 0.200, 0.100]  likely=Sunny\n")
	require.Contains(t, out, "Sunny   0.4655\n")
	require.Contains(t, out, "Cloudy  0.3276\n")
	require.Contains(t, out, "Rainy   0.2069\n")
}

func TestRun_ConfigFileAndFlags(t *testing.T) {
	path := writeConfig(t, twoStateYAML)
	out, _, err := run(t, "-config", path, "-steps", "2")
	require.NoError(t, err)

	want := "Two Markov Chain Simulation\n" +
		"--------------------------------\n" +
		"Step  0: [1.000, 0.000]  likely=Sunny\n" +
		"Step  1: [0.900, 0.100]  likely=Sunny\n" +
		"Step  2: [0.860, 0.140]  likely=Sunny\n" +
		"\nEstimated stationary distribution\n" +
		"--------------------------------\n" +
		"Sunny   0.8333\n" +
		"Rainy   0.1667\n"
	require.Equal(t, want, out)
}

func TestRun_ConfigStepsKeptWithoutFlag(t *testing.T) {
	out, _, err := run(t, "-config", writeConfig(t, twoStateYAML), "-digits", "1")
	require.NoError(t, err)
	require.Equal(t, 6, strings.Count(out, "Step "))
	require.Contains(t, out, "Step  1: [0.9, 0.1]  likely=Sunny\n")
}

func TestRun_Plot(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "timeline.svg")
	_, _, err := run(t, "-plot", chart)
	require.NoError(t, err)
	info, err := os.Stat(chart)
	require.NoError(t, err)
	require.Positive(t, info.Size())

	_, _, err = run(t, "-plot", filepath.Join(t.TempDir(), "timeline.txt"))
	require.ErrorIs(t, err, report.ErrChartFormat)
}

func TestRun_NotConvergedIsLogged(t *testing.T) {
	path := writeConfig(t, "transitions: [[0, 1, 0], [0.5, 0, 0.5], [0, 1, 0]]\nstationary:\n  max_iterations: 100\n")
	out, logs, err := run(t, "-config", path)
	require.ErrorIs(t, err, markov.ErrNotConverged)
	require.Contains(t, out, "Step  0: [1.000, 0.000, 0.000]  likely=S0\n")
	require.Contains(t, logs, "chain is periodic")
	require.Contains(t, logs, "stationary distribution not found")
}

func TestRun_Errors(t *testing.T) {
	cases := map[string]struct {
		args []string
		is   error
	}{
		"help":           {args: []string{"-h"}, is: flag.ErrHelp},
		"negative steps": {args: []string{"-steps", "-1"}, is: config.ErrInvalidConfig},
		"missing file":   {args: []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, is: os.ErrNotExist},
		"not stochastic": {args: []string{"-config", writeConfig(t, "transitions: [[0.6, 0.3], [0.2, 0.7]]\n")}, is: markov.ErrInvalidTransition},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.ErrorIs(t, err, tc.is)
		})
	}

	_, _, err := run(t, "-log-level", "loud")
	require.Error(t, err)
	_, _, err = run(t, "extra")
	require.Error(t, err)
	_, _, err = run(t, "-unknown")
	require.Error(t, err)
}

func TestParseFlags_TracksExplicitFlags(t *testing.T) {
	o, err := ParseFlags("lvchain", []string{"-digits", "4"}, &bytes.Buffer{})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Steps = 7
	o.apply(cfg)
	require.Equal(t, 7, cfg.Steps)
	require.Equal(t, 4, cfg.Digits)
}
