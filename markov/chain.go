// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvchain/matrix"
)

// Chain is an immutable finite Markov chain: a validated row-stochastic
// transition matrix, ordered state labels and the validation tolerance.
// All methods are safe for concurrent use.
type Chain struct {
	p      *matrix.Dense // square, row-stochastic within tol
	states []string      // len == p.Rows()
	tol    float64       // validation tolerance (>= 0)
}

// NewChain validates tm and wraps it into a Chain.
//
// Implementation:
//   - Stage 1: tm must be non-nil and square (matrix.ErrNilMatrix / matrix.ErrShape).
//   - Stage 2: resolve options; a WithStates list must match the size
//     (ErrInvalidArgument); without it labels S0..S(n-1) are synthesized.
//   - Stage 3: every row must have entries ≥ −tol and |Σ row − 1| ≤ tol
//     (ErrInvalidTransition). This is the only time the matrix is checked.
//
// Complexity:
//   - Time O(n²), Space O(n) beyond the shared matrix.
func NewChain(tm *matrix.Dense, opts ...Option) (*Chain, error) {
	if err := matrix.ValidateSquare(tm); err != nil {
		return nil, chainErrorf(opNewChain, err)
	}
	n := tm.Rows()
	o := gatherOptions(opts...)

	states := defaultStates(n)
	if o.statesSet {
		if len(o.states) != n {
			return nil, chainErrorf(opNewChain,
				fmt.Errorf("%d state labels for a %d-state matrix: %w", len(o.states), n, ErrInvalidArgument))
		}
		states = o.states
	}

	c := &Chain{p: tm, states: states, tol: o.tolerance}
	if err := c.validateTransitions(); err != nil {
		return nil, chainErrorf(opNewChain, err)
	}

	return c, nil
}

// NewChainFromRows builds the transition matrix from raw rows (matrix.NewDense)
// and then behaves exactly like NewChain.
func NewChainFromRows(rows [][]float64, opts ...Option) (*Chain, error) {
	tm, err := matrix.NewDense(rows)
	if err != nil {
		return nil, chainErrorf(opNewChain, err)
	}

	return NewChain(tm, opts...)
}

// validateTransitions enforces the row-stochastic invariant within c.tol.
func (c *Chain) validateTransitions() error {
	n := c.p.Rows()
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < n; i++ {
		row, err := c.p.Row(i)
		if err != nil {
			return err
		}
		sum = 0
		for j = 0; j < n; j++ {
			if row[j] < -c.tol {
				return fmt.Errorf("row %d: negative probability %g at column %d: %w", i, row[j], j, ErrInvalidTransition)
			}
			sum += row[j]
		}
		if math.Abs(sum-1.0) > c.tol {
			return fmt.Errorf("row %d must sum to 1.0 (got %.6f): %w", i, sum, ErrInvalidTransition)
		}
	}

	return nil
}

// Size returns the number of states.
func (c *Chain) Size() int { return len(c.states) }

// States returns a copy of the ordered state labels.
func (c *Chain) States() []string { return append([]string(nil), c.states...) }

// Tolerance returns the validation tolerance.
func (c *Chain) Tolerance() float64 { return c.tol }

// TransitionMatrix returns the (immutable) transition matrix.
func (c *Chain) TransitionMatrix() *matrix.Dense { return c.p }
