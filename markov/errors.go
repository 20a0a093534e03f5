// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
// Callers match with errors.Is. Shape problems of the transition matrix are
// reported with matrix.ErrShape so one sentinel covers both packages.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition indicates a transition row with a negative entry
	// beyond tolerance or a row sum that deviates from 1 beyond tolerance.
	ErrInvalidTransition = errors.New("markov: invalid transition matrix")

	// ErrInvalidDistribution indicates a distribution with the wrong length,
	// a negative or NaN entry, or a sum that deviates from 1 beyond tolerance.
	ErrInvalidDistribution = errors.New("markov: invalid distribution")

	// ErrInvalidArgument flags a parameter outside its domain: negative step
	// counts, non-positive iteration or tolerance bounds, or a states list
	// whose length differs from the chain size.
	ErrInvalidArgument = errors.New("markov: invalid argument")

	// ErrNotConverged is returned when StationaryDistribution exhausts its
	// iteration budget. No partial result accompanies it.
	ErrNotConverged = errors.New("markov: stationary distribution did not converge")

	// ErrReducible is returned by Period when some state cannot reach another.
	ErrReducible = errors.New("markov: chain is reducible")
)

// Operation tags.
const (
	opNewChain          = "NewChain"
	opStep              = "Step"
	opSimulate          = "Simulate"
	opNStepTransition   = "NStepTransition"
	opDistributionAfter = "DistributionAfter"
	opStationary        = "StationaryDistribution"
	opMostLikelyState   = "MostLikelyState"
	opReachable         = "Reachable"
	opPeriod            = "Period"
)

// chainErrorf wraps err with an operation tag, preserving the sentinel.
func chainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
