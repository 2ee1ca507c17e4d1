// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"

	"github.com/katalvlaran/e4ga/matrix"
)

// VersorMatrix returns the 4x4 matrix of the linear map x -> ApplyVersor(v, x)
// restricted to vectors. Column j holds the image of the j-th basis vector.
// For any invertible versor the matrix is orthogonal.
//
// Errors:
//   - ErrSingular (wrapped) when |v * reverse(v)| <= eps.
//
// Complexity: 4 sandwiches, O(Dimension^2) writes.
func VersorMatrix(v Multivector, eps float64) (*matrix.Dense, error) {
	vi, err := CheckedVersorInverse(v, eps)
	if err != nil {
		return nil, fmt.Errorf("VersorMatrix: %w", err)
	}
	m, err := matrix.NewDense(Dimension, Dimension)
	if err != nil {
		return nil, fmt.Errorf("VersorMatrix: %w", err)
	}
	var (
		j, i int
		img  Multivector
	)
	for j = 0; j < Dimension; j++ {
		img = ApplyVersorWI(v, Basis(BasisBlade(1)<<j, 1), vi)
		for i = 0; i < Dimension; i++ {
			if err = m.Set(i, j, img.Get(BasisBlade(1)<<i)); err != nil {
				return nil, fmt.Errorf("VersorMatrix: %w", err)
			}
		}
	}
	return m, nil
}
