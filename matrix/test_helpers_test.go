// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvchain/matrix"
	"github.com/stretchr/testify/require"
)

// exact is the comparison tolerance for results that must match bit for bit.
const exact = 0.0

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err)

	return m
}

// weather2 is the two-state chain used across the matrix tests.
func weather2(t testing.TB) *matrix.Dense {
	return MustDense(t, [][]float64{{0.9, 0.1}, {0.5, 0.5}})
}

// stochastic builds an n×n row-stochastic matrix from n*n positive weights.
func stochastic(n int, w []float64) [][]float64 {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		var sum float64
		for j := 0; j < n; j++ {
			sum += w[i*n+j]
		}
		for j := 0; j < n; j++ {
			rows[i][j] = w[i*n+j] / sum
		}
	}

	return rows
}

// reshape slices a flat buffer into r rows of c values.
func reshape(r, c int, flat []float64) [][]float64 {
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = append([]float64(nil), flat[i*c:(i+1)*c]...)
	}

	return rows
}
