// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvchain/internal/report"
	"github.com/katalvlaran/lvchain/markov"
	"github.com/stretchr/testify/require"
)

func weather2(t *testing.T) *markov.Chain {
	t.Helper()
	c, err := markov.NewChainFromRows([][]float64{{0.9, 0.1}, {0.5, 0.5}}, markov.WithStates("Sunny", "Rainy"))
	require.NoError(t, err)

	return c
}

var history = [][]float64{{1, 0}, {0.9, 0.1}, {0.3, 0.7}}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteHistory(&buf, "weather", weather2(t), history, 3))

	want := "Weather Markov Chain Simulation\n" +
		"--------------------------------\n" +
		"Step  0: [1.000, 0.000]  likely=Sunny\n" +
		"Step  1: [0.900, 0.100]  likely=Sunny\n" +
		"Step  2: [0.300, 0.700]  likely=Rainy\n"
	require.Equal(t, want, buf.String())
}

func TestWriteHistory_BadDistribution(t *testing.T) {
	err := report.WriteHistory(&bytes.Buffer{}, "", weather2(t), [][]float64{{1, 0, 0}}, 3)
	require.ErrorIs(t, err, markov.ErrInvalidDistribution)
}

func TestWriteStationary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteStationary(&buf, []string{"Sunny", "Rainy"}, []float64{5.0 / 6, 1.0 / 6}))
	require.Equal(t, "\nEstimated stationary distribution\n"+
		"--------------------------------\n"+
		"Sunny   0.8333\n"+
		"Rainy   0.1667\n", buf.String())

	require.Error(t, report.WriteStationary(&buf, []string{"a"}, []float64{0.5, 0.5}))
}

func TestNewChart(t *testing.T) {
	p, err := report.NewChart("weather", []string{"Sunny", "Rainy"}, history)
	require.NoError(t, err)
	require.Equal(t, "Weather Markov chain", p.Title.Text)

	_, err = report.NewChart("x", []string{"Sunny", "Rainy"}, nil)
	require.Error(t, err)
	_, err = report.NewChart("x", []string{"Sunny"}, history)
	require.Error(t, err)
}

func TestSaveChart(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"history.png", "history.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, report.SaveChart(path, "weather", []string{"Sunny", "Rainy"}, history))
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	err := report.SaveChart(filepath.Join(dir, "history.txt"), "weather", []string{"Sunny", "Rainy"}, history)
	require.ErrorIs(t, err, report.ErrChartFormat)
}
