// SPDX-License-Identifier: MIT

// Arithmetic kernels on *Dense: product,
// row-vector product, exponentiation by squaring, transpose, identity and
// approximate equality. All kernels perform strict fail-fast validation and
// never mutate their operands.
//
// Notes:
//   - Every kernel allocates exactly one result (Pow allocates one per product).
//   - Loop orders are fixed; results are bit-reproducible for identical inputs.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul          = "Mul"
	opMulRowVector = "MulRowVector"
	opPow          = "Pow"
	opTranspose    = "Transpose"
	opIdentity     = "Identity"
)

// Mul returns the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: i→k→j triple loop over the flat buffers. For every (i,j) the
//     terms a[i,k]*b[k,j] are added in ascending k, so each entry equals the
//     textbook Σ_k a[i,k]*b[k,j] accumulated in float64.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDense(aRows, bCols)

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulRowVector treats v as a 1×n row vector and returns v×m as a fresh slice
// of length m.Cols(): out[j] = Σ_i v[i]*m[i,j].
// This is the one-step advance of a probability distribution under a
// transition matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(v) != m.Rows() (wrapped with "MulRowVector").
//
// Complexity:
//   - Time O(r*c), Space O(c).
func MulRowVector(m *Dense, v []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulRowVector, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opMulRowVector, err)
	}

	out := make([]float64, m.c)
	var i, j, base int
	var vi float64
	// i-outer keeps the walk over m.data contiguous; each out[j] still sums in ascending i.
	for i = 0; i < m.r; i++ {
		vi = v[i]
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[j] += vi * m.data[base+j]
		}
	}

	return out, nil
}

// Pow returns m^k for a square m and k >= 0 by exponentiation by squaring.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); reject k < 0 (ErrInvalidArgument).
//   - Stage 2: acc := I, base := m. While k > 0: if the low bit of k is set,
//     acc = acc×base; halve k; if bits remain, base = base×base.
//
// Behavior highlights:
//   - k == 0 returns the identity of matching size.
//   - At most 2·⌊log2 k⌋+1 products; no intermediate powers are kept.
//
// Errors:
//   - ErrNilMatrix, ErrShape (non-square), ErrInvalidArgument (k < 0).
//
// Complexity:
//   - Time O(n³ log k), Space O(n²).
func Pow(m *Dense, k int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", k, ErrInvalidArgument))
	}

	acc, err := Identity(m.r)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := m
	for k > 0 {
		if k&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return acc, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrInvalidArgument when n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("size %d: %w", n, ErrInvalidArgument))
	}
	id := newDense(n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// AlmostEqual reports whether a and b have the same shape and every pair of
// entries differs by at most tol in absolute value.
// A nil operand compares unequal. A negative tol is treated as |tol|.
// Complexity: O(r*c), Space O(1).
func AlmostEqual(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return false
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	tol = math.Abs(tol)
	for idx := range a.data {
		if !(math.Abs(a.data[idx]-b.data[idx]) <= tol) {
			return false
		}
	}

	return true
}
