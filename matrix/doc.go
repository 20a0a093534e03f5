// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra engine behind lvchain.
//
// 🚀 What is it?
//
//	A small, immutable, row-major float64 matrix type (*Dense) with the
//	handful of kernels a finite Markov chain needs:
//	  • Mul           - standard product a×b (i→k→j triple loop)
//	  • MulRowVector  - v×M for a row vector v (one time step of a chain)
//	  • Pow           - M^k by exponentiation by squaring, O(log k) products
//	  • Transpose     - Mᵀ
//	  • Identity      - I_n
//	  • AlmostEqual   - absolute, per-entry comparison under a tolerance
//
// ✨ Guarantees:
//   - No exported mutator exists. Every kernel returns a freshly allocated
//     *Dense; inputs are never touched. Concurrent read-only use is safe
//     without locks.
//   - Strict, front-loaded validation: shapes are checked before any
//     arithmetic, so partial results are never returned.
//   - Sentinel errors (ErrShape, ErrDimensionMismatch, ErrInvalidArgument, ...)
//     matched with errors.Is; messages carry the operation tag ("Mul: ...").
//   - Deterministic loop orders; identical inputs give bit-identical outputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvchain/matrix"
//
//	p, err := matrix.NewDense([][]float64{{0.9, 0.1}, {0.5, 0.5}})
//	if err != nil { ... }
//	p10, err := matrix.Pow(p, 10)  // 4 multiplications + 2 accumulations
//	next, err := matrix.MulRowVector(p, []float64{1, 0}) // [0.9 0.1]
//
// Performance:
//
//   - Mul:          O(r·n·c)
//   - MulRowVector: O(r·c)
//   - Pow:          O(n³ · log k)
//
// Sparse storage, non-float element types and SIMD kernels are out of scope.
package matrix
