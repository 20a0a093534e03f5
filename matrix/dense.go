// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & read-only accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Guarantee immutability: no exported mutator; every accessor that hands out
//     a slice hands out a copy.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At: O(1); Row: O(c); ToSlice: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew  = "NewDense" // ctor tag used in error wrappers
	ctxFrom = "FromRows" // generic ctor tag
	ctxAt   = "At"       // accessor tag
	ctxRow  = "Row"      // accessor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Real is the set of element types FromRows accepts and coerces to float64.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dense is an immutable row-major matrix of float64 values.
//   - r,c hold dimensions (both >= 1 for every value reachable from the public API).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// The zero value is not usable; build one with NewDense, FromRows or a kernel.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense builds an immutable matrix from nested rows.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and finite-value policy.
//
// Implementation:
//   - Stage 1: reject len(rows)==0, an empty first row, or any ragged row (ErrShape).
//   - Stage 2: reject NaN/±Inf (ErrNaNInf).
//   - Stage 3: copy into a fresh flat buffer; the caller's slices are not retained.
//
// Errors:
//   - ErrShape, ErrNaNInf (wrapped with "NewDense").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows [][]float64) (*Dense, error) {
	return fromRows(ctxNew, rows)
}

// FromRows is the generic form of NewDense: every element is coerced to float64.
// Handy for integer literals such as FromRows([][]int{{1, 2}, {3, 4}}).
// Complexity: O(r*c).
func FromRows[T Real](rows [][]T) (*Dense, error) {
	return fromRows(ctxFrom, rows)
}

// fromRows is the single validation+copy path shared by NewDense and FromRows.
func fromRows[T Real](tag string, rows [][]T) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(tag, fmt.Errorf("no rows: %w", ErrShape))
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(tag, fmt.Errorf("row 0 is empty: %w", ErrShape))
	}

	var i, j int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(tag, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), cols, ErrShape))
		}
	}

	m := newDense(len(rows), cols)
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			v = float64(rows[i][j])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(tag, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// newDense allocates a zero r×c buffer. Callers guarantee r,c >= 1.
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols). Complexity: O(1).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols(). Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// At returns the element at (row, col).
// Returns ErrOutOfRange (wrapped as "Dense.At(row,col)") on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i. Mutating the result never affects m.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToSlice returns a deep copy of the matrix as nested rows.
// Complexity: O(r*c).
func (m *Dense) ToSlice() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer: one bracketed, comma-separated row per line.
//
//	[1, 2]
//	[3, 4]
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
