// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// validateDistribution checks d against the chain and returns a private copy.
// Length must equal Size(); entries must be finite and ≥ −tol; the sum must
// be within tol of 1. Every public entry point calls it, so a vector that
// passed once is checked again on the next call.
// Complexity: O(n).
func (c *Chain) validateDistribution(d []float64) ([]float64, error) {
	n := len(c.states)
	if len(d) != n {
		return nil, fmt.Errorf("length %d, want %d: %w", len(d), n, ErrInvalidDistribution)
	}

	out := make([]float64, n)
	var sum float64
	for i, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("entry %d is %g: %w", i, v, ErrInvalidDistribution)
		}
		if v < -c.tol {
			return nil, fmt.Errorf("entry %d is negative (%g): %w", i, v, ErrInvalidDistribution)
		}
		out[i] = v
		sum += v
	}
	if math.Abs(sum-1.0) > c.tol {
		return nil, fmt.Errorf("must sum to 1.0 (got %.6f): %w", sum, ErrInvalidDistribution)
	}

	return out, nil
}

// uniform returns the distribution with 1/n in every component.
func uniform(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 / float64(n)
	}

	return out
}

// maxAbsDelta returns max_i |a[i]-b[i]|. Callers pass equal lengths.
func maxAbsDelta(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}

// FormatDistribution renders d as ", "-separated fixed-point values with the
// given number of decimal digits, e.g. "0.900, 0.100". Negative digits are
// treated as zero.
func FormatDistribution(d []float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = strconv.FormatFloat(v, 'f', digits, 64)
	}

	return strings.Join(parts, ", ")
}
