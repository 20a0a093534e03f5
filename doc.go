// SPDX-License-Identifier: MIT

// Package lvchain is a small toolkit for finite, discrete-time Markov chains:
// an immutable dense matrix engine and a validated chain model built on it.
//
// 🚀 What is lvchain?
//
//	Two library packages and a demo command:
//		• matrix: immutable row-major Dense, Mul, MulRowVector, Pow by squaring,
//		  Transpose, Identity, AlmostEqual
//		• markov: Chain with Step, Simulate, NStepTransition, DistributionAfter,
//		  StationaryDistribution, MostLikelyState and structural checks
//		  (Reachable, IsIrreducible, Period, IsErgodic)
//		• cmd/lvchain: YAML-configured simulation with a text report and an
//		  optional PNG/SVG chart
//
// ✨ Why choose lvchain?
//
//   - Validated once, immutable forever: every *Dense and *Chain is safe for
//     concurrent use without locks
//   - Sentinel errors matched with errors.Is, wrapped with the failing operation
//   - Explicit tolerances for construction, convergence and comparison
//
// Quick example:
//
//	chain, _ := markov.NewChainFromRows(
//		[][]float64{{0.9, 0.1}, {0.5, 0.5}},
//		markov.WithStates("Sunny", "Rainy"),
//	)
//	pi, _ := chain.StationaryDistribution(nil) // ≈ [0.8333 0.1667]
//
// Layout:
//
//	matrix/           - dense matrix engine
//	markov/           - chain model
//	config/           - YAML chain definitions
//	internal/logging/ - zerolog setup for the command
//	internal/report/  - text and chart rendering
//	internal/app/     - flag parsing and the run loop
//	cmd/lvchain/      - main
package lvchain
