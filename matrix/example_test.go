// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/e4ga/matrix"
)

// ExampleDeterminant shows the sign of a reflection.
func ExampleDeterminant() {
	m, _ := matrix.NewFromRows([][]float64{
		{1, 0},
		{0, -1},
	})
	det, _ := matrix.Determinant(m)
	fmt.Println(det)
	// Output: -1
}
