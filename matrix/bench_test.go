// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvchain/matrix"
)

// benchStochastic builds a deterministic n×n row-stochastic matrix.
func benchStochastic(b *testing.B, n int) *matrix.Dense {
	w := make([]float64, n*n)
	for i := range w {
		w[i] = float64(i%7 + 1) // fill with a predictable positive pattern
	}
	m, err := matrix.NewDense(stochastic(n, w))
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}

	return m
}

// BenchmarkMul measures the triple-loop product on square inputs.
func BenchmarkMul(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		m := benchStochastic(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Mul(m, m); err != nil {
					b.Fatalf("Mul failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkPow shows the O(log k) growth of exponentiation by squaring.
func BenchmarkPow(b *testing.B) {
	m := benchStochastic(b, 16)
	for _, k := range []int{16, 1 << 10, 1 << 20} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Pow(m, k); err != nil {
					b.Fatalf("Pow failed: %v", err)
				}
			}
		})
	}
}
