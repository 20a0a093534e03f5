// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, err) so the final message reads "Mul: matrix: ...";
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> argument range.

var (
	// ErrShape is returned when a matrix cannot be built from the given rows
	// (no rows, an empty row, ragged rows) or when a square matrix is required
	// but the input is not square.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols() != b.Rows(), or a row vector whose length
	// differs from the matrix row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidArgument flags a parameter outside its domain: a negative
	// exponent or an identity size <= 0.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value in construction input.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
