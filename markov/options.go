// SPDX-License-Identifier: MIT

// Package markov: functional configuration for chain construction and the
// options struct of the stationary search.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Three tolerances are explicit and independent: the validation tolerance
//     of a chain (WithTolerance), the convergence tolerance of the stationary
//     search (StationaryOptions.Tolerance), and whatever tolerance a caller
//     passes to matrix.AlmostEqual.
//   - Option constructors panic only on nonsensical values (programmer error);
//     user-data problems surface as errors from NewChain.
package markov

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance bounds negative entries and row/distribution sum drift.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps StationaryDistribution.
	DefaultMaxIterations = 10000

	// DefaultConvergenceTolerance is the max per-component change that ends
	// the stationary search.
	DefaultConvergenceTolerance = 1e-12

	// defaultStatePrefix names synthesized labels S0..Sn-1.
	defaultStatePrefix = "S"
)

const panicToleranceInvalid = "markov: WithTolerance: tolerance must be finite, non-negative"

// Option configures NewChain.
type Option func(*chainOptions)

// chainOptions is the resolved construction configuration.
type chainOptions struct {
	tolerance float64
	states    []string
	statesSet bool
}

// WithStates sets the ordered state labels. The length must equal the chain
// size; NewChain reports ErrInvalidArgument otherwise. Labels are copied.
func WithStates(labels ...string) Option {
	cp := append([]string(nil), labels...)

	return func(o *chainOptions) {
		o.states = cp
		o.statesSet = true
	}
}

// WithTolerance sets the validation tolerance used for the transition matrix
// at construction and for every distribution passed to the chain afterwards.
// Panics if tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *chainOptions) { o.tolerance = tol }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(opts ...Option) chainOptions {
	o := chainOptions{tolerance: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// defaultStates synthesizes S0..S(n-1).
func defaultStates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", defaultStatePrefix, i)
	}

	return out
}

// StationaryOptions bounds the power iteration in StationaryDistribution.
//
// Fields:
//   - MaxIterations - number of Step applications allowed; must be > 0.
//   - Tolerance     - the search stops once max_i |next[i]-cur[i]| < Tolerance; must be > 0.
//
// Example:
//
//	opts := markov.DefaultStationaryOptions()
//	opts.MaxIterations = 500
//	pi, err := chain.StationaryDistribution(&opts)
type StationaryOptions struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultStationaryOptions returns {DefaultMaxIterations, DefaultConvergenceTolerance}.
func DefaultStationaryOptions() StationaryOptions {
	return StationaryOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultConvergenceTolerance,
	}
}

// validate checks both bounds; NaN tolerance is rejected.
func (o StationaryOptions) validate() error {
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max iterations %d must be positive: %w", o.MaxIterations, ErrInvalidArgument)
	}
	if !(o.Tolerance > 0) {
		return fmt.Errorf("tolerance %g must be positive: %w", o.Tolerance, ErrInvalidArgument)
	}

	return nil
}
