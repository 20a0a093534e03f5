// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvchain/matrix"
)

// ExampleMul multiplies two small integer matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{2, 0}, {1, 2}})

	p, _ := matrix.Mul(a, b)
	fmt.Print(p)
	// Output:
	// [4, 4]
	// [10, 8]
}

// ExamplePow raises the Fibonacci Q-matrix to the 10th power with four
// squarings instead of nine products.
func ExamplePow() {
	q, _ := matrix.FromRows([][]int{{1, 1}, {1, 0}})

	q10, _ := matrix.Pow(q, 10)
	fmt.Print(q10)
	// Output:
	// [89, 55]
	// [55, 34]
}

// ExampleMulRowVector advances a distribution by one step.
func ExampleMulRowVector() {
	p, _ := matrix.NewDense([][]float64{{0.9, 0.1}, {0.5, 0.5}})

	next, _ := matrix.MulRowVector(p, []float64{1, 0})
	fmt.Println(next)
	// Output:
	// [0.9 0.1]
}
