// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/lvchain/matrix"
)

// Step advances d by one time step: d·P.
// Errors: ErrInvalidDistribution. Complexity: O(n²).
func (c *Chain) Step(d []float64) ([]float64, error) {
	cur, err := c.validateDistribution(d)
	if err != nil {
		return nil, chainErrorf(opStep, err)
	}
	next, err := matrix.MulRowVector(c.p, cur)
	if err != nil {
		return nil, chainErrorf(opStep, err)
	}

	return next, nil
}

// Simulate returns steps+1 distributions: the validated d0 followed by the
// result of applying Step steps times. Every entry is its own slice.
//
// Errors:
//   - ErrInvalidArgument (steps < 0), ErrInvalidDistribution.
//
// Complexity:
//   - Time O(steps·n²), Space O(steps·n).
func (c *Chain) Simulate(d0 []float64, steps int) ([][]float64, error) {
	if steps < 0 {
		return nil, chainErrorf(opSimulate, fmt.Errorf("steps %d: %w", steps, ErrInvalidArgument))
	}
	cur, err := c.validateDistribution(d0)
	if err != nil {
		return nil, chainErrorf(opSimulate, err)
	}

	history := make([][]float64, 0, steps+1)
	history = append(history, cur)
	for s := 0; s < steps; s++ {
		// Step re-validates and allocates, so history entries never alias.
		if cur, err = c.Step(cur); err != nil {
			return nil, chainErrorf(opSimulate, fmt.Errorf("step %d: %w", s+1, err))
		}
		history = append(history, cur)
	}

	return history, nil
}

// NStepTransition returns P^steps, independent of any starting distribution.
// Errors: ErrInvalidArgument (steps < 0). Complexity: O(n³ log steps).
func (c *Chain) NStepTransition(steps int) (*matrix.Dense, error) {
	if steps < 0 {
		return nil, chainErrorf(opNStepTransition, fmt.Errorf("steps %d: %w", steps, ErrInvalidArgument))
	}
	pk, err := matrix.Pow(c.p, steps)
	if err != nil {
		return nil, chainErrorf(opNStepTransition, err)
	}

	return pk, nil
}

// DistributionAfter returns d0·P^steps computed through exponentiation by
// squaring. It agrees with the last entry of Simulate(d0, steps) up to
// floating-point rounding.
//
// Errors:
//   - ErrInvalidArgument (steps < 0), ErrInvalidDistribution.
//
// Complexity:
//   - Time O(n³ log steps + n²).
func (c *Chain) DistributionAfter(d0 []float64, steps int) ([]float64, error) {
	if steps < 0 {
		return nil, chainErrorf(opDistributionAfter, fmt.Errorf("steps %d: %w", steps, ErrInvalidArgument))
	}
	start, err := c.validateDistribution(d0)
	if err != nil {
		return nil, chainErrorf(opDistributionAfter, err)
	}
	pk, err := matrix.Pow(c.p, steps)
	if err != nil {
		return nil, chainErrorf(opDistributionAfter, err)
	}
	out, err := matrix.MulRowVector(pk, start)
	if err != nil {
		return nil, chainErrorf(opDistributionAfter, err)
	}

	return out, nil
}

// StationaryDistribution estimates π with π·P = π by power iteration.
//
// Implementation:
//   - Stage 1: resolve opts (nil → DefaultStationaryOptions) and validate bounds.
//   - Stage 2: start from the uniform distribution; apply Step; stop as soon as
//     the max per-component change drops below opts.Tolerance and return the
//     new iterate.
//   - Stage 3: after opts.MaxIterations steps without convergence fail with
//     ErrNotConverged; no partial result is returned.
//
// Behavior highlights:
//   - Periodic or reducible chains may never converge; MaxIterations is the
//     only bound on runtime.
//
// Complexity:
//   - Time O(MaxIterations·n²), Space O(n).
func (c *Chain) StationaryDistribution(opts *StationaryOptions) ([]float64, error) {
	o := DefaultStationaryOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, chainErrorf(opStationary, err)
	}

	cur := uniform(len(c.states))
	var delta float64
	for iter := 1; iter <= o.MaxIterations; iter++ {
		next, err := c.Step(cur)
		if err != nil {
			return nil, chainErrorf(opStationary, fmt.Errorf("iteration %d: %w", iter, err))
		}
		delta = maxAbsDelta(cur, next)
		cur = next
		if delta < o.Tolerance {
			return cur, nil
		}
	}

	return nil, chainErrorf(opStationary,
		fmt.Errorf("%d iterations, last delta %g: %w", o.MaxIterations, delta, ErrNotConverged))
}

// MostLikelyState returns the label of the largest component of d.
// Ties resolve to the lowest index.
// Errors: ErrInvalidDistribution. Complexity: O(n).
func (c *Chain) MostLikelyState(d []float64) (string, error) {
	v, err := c.validateDistribution(d)
	if err != nil {
		return "", chainErrorf(opMostLikelyState, err)
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return c.states[best], nil
}
