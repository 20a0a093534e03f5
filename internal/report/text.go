// SPDX-License-Identifier: MIT

// Package report renders simulation results of a markov.Chain as text and charts.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lvchain/markov"
)

const rule = "--------------------------------"

// WriteHistory prints one line per distribution in history:
//
//	Step NN: [p0, p1, ...]  likely=<state>
func WriteHistory(w io.Writer, title string, c *markov.Chain, history [][]float64, digits int) error {
	if _, err := fmt.Fprintf(w, "%s Markov Chain Simulation\n%s\n", heading(title), rule); err != nil {
		return err
	}
	for step, d := range history {
		likely, err := c.MostLikelyState(d)
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if _, err = fmt.Fprintf(w, "Step %2d: [%s]  likely=%s\n", step, markov.FormatDistribution(d, digits), likely); err != nil {
			return err
		}
	}

	return nil
}

// WriteStationary prints one state per line with its probability.
func WriteStationary(w io.Writer, states []string, pi []float64) error {
	if len(states) != len(pi) {
		return fmt.Errorf("report: %d states for %d probabilities", len(states), len(pi))
	}
	if _, err := fmt.Fprintf(w, "\nEstimated stationary distribution\n%s\n", rule); err != nil {
		return err
	}
	for i, s := range states {
		if _, err := fmt.Fprintf(w, "%-7s %.4f\n", s, pi[i]); err != nil {
			return err
		}
	}

	return nil
}

// heading upper-cases the first letter of a chain name.
func heading(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Markov"
	}
	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(r)) + name[size:]
}
