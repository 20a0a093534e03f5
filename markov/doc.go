// SPDX-License-Identifier: MIT

// Package markov models finite, discrete-time Markov chains on top of the
// immutable matrix engine in lvchain/matrix.
//
// 🚀 What is a Markov chain?
//
//	A set of states plus a row-stochastic transition matrix P, where P[i][j]
//	is the probability of moving from state i to state j in one step. A
//	distribution d (a row vector) evolves as d' = d·P.
//
// ✨ Key features:
//   - NewChain validates P once: square, entries ≥ −tol, rows sum to 1 ± tol
//   - Step / Simulate: iterative evolution with fresh snapshots per step
//   - NStepTransition / DistributionAfter: P^k by exponentiation by squaring
//   - StationaryDistribution: power iteration from the uniform distribution,
//     bounded by MaxIterations
//   - MostLikelyState: arg-max label, first maximum wins on ties
//   - Reachable / IsIrreducible / Period / IsErgodic: BFS over the transition
//     graph (edge i→j when P[i][j] > 0) to classify the chain
//
// ⚙️ Usage:
//
//	chain, err := markov.NewChainFromRows(
//	  [][]float64{{0.9, 0.1}, {0.5, 0.5}},
//	  markov.WithStates("Sunny", "Rainy"),
//	)
//	history, err := chain.Simulate([]float64{1, 0}, 12)
//	pi, err := chain.StationaryDistribution(nil) // defaults: 10000 iters, 1e-12
//
// Limitations:
//
//	Power iteration is not guaranteed to converge for periodic or reducible
//	chains. A chain alternating strictly between two states, started away
//	from its fixed point, oscillates forever; StationaryDistribution then
//	returns ErrNotConverged after MaxIterations. No eigen-solver fallback is
//	attempted. IsErgodic reports ahead of time whether convergence is
//	guaranteed.
//
// Every distribution argument is re-validated on every call; every returned
// distribution is a freshly allocated slice. A *Chain is immutable and safe
// for concurrent use.
package markov
