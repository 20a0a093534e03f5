// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions.
const (
	ChartWidth  = 6 * vg.Inch
	ChartHeight = 4 * vg.Inch
)

// ErrChartFormat is returned when the output extension is not supported.
var ErrChartFormat = errors.New("report: unsupported chart format")

// NewChart builds a line chart with one series per state: x is the step and y
// the probability of that state.
func NewChart(title string, states []string, history [][]float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.New("report: empty history")
	}

	p := plot.New()
	p.Title.Text = heading(title) + " Markov chain"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "probability"
	p.Y.Min, p.Y.Max = 0, 1

	series := make([]interface{}, 0, 2*len(states))
	for j, s := range states {
		pts := make(plotter.XYs, len(history))
		for step, d := range history {
			if len(d) != len(states) {
				return nil, fmt.Errorf("report: step %d has %d entries, want %d", step, len(d), len(states))
			}
			pts[step].X = float64(step)
			pts[step].Y = d[j]
		}
		series = append(series, s, pts)
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	return p, nil
}

// SaveChart renders the chart to path; the format follows the extension
// (.png, .svg, .pdf).
func SaveChart(path, title string, states []string, history [][]float64) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("%q: %w", path, ErrChartFormat)
	}
	p, err := NewChart(title, states, history)
	if err != nil {
		return err
	}

	return p.Save(ChartWidth, ChartHeight, path)
}
