// SPDX-License-Identifier: MIT

// Package matrix - linear algebra kernels.
//
// Determinism & Performance:
//   - Fixed loop orders; *Dense operands take a flat-slice fast path, other
//     Matrix implementations go through At/Set.
//   - Operands are never mutated; every result is a fresh *Dense.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opAllClose    = "AllClose"
	opMaxAbsDiff  = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns a*b.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: i→k→j accumulation on flat buffers, or i→j→k via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var av float64
		for i = 0; i < aRows; i++ {
			for k = 0; k < aCols; k++ {
				av = da.data[i*aCols+k]
				if av == 0 {
					continue // skip zero
				}
				for j = 0; j < bCols; j++ {
					res.data[i*bCols+j] += av * db.data[k*bCols+j]
				}
			}
		}
		return res, nil
	}

	var av, bv, sum float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}
	return res, nil
}

// Transpose returns mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}
	return res, nil
}

// Determinant returns det(m) by LU elimination with partial pivoting.
// Implementation:
//   - Stage 1: validate square shape and copy m into a scratch buffer.
//   - Stage 2: for each column pick the row with the largest |pivot|, swap it
//     up (flipping the sign) and eliminate below.
//   - Stage 3: det = sign * Π U[i][i]; an all-zero column ends early with 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}
	n := m.Rows()
	if n != m.Cols() {
		return 0, matrixErrorf(opDeterminant, fmt.Errorf("%dx%d: %w", n, m.Cols(), ErrNonSquare))
	}
	u := make([]float64, n*n)
	var (
		i, j, k, p int
		err        error
		f          float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if u[i*n+j], err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opDeterminant, err)
			}
		}
	}
	det := 1.0
	for k = 0; k < n; k++ {
		// Pivot selection.
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(u[i*n+k]) > math.Abs(u[p*n+k]) {
				p = i
			}
		}
		if u[p*n+k] == 0 {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				u[k*n+j], u[p*n+j] = u[p*n+j], u[k*n+j]
			}
			det = -det
		}
		det *= u[k*n+k]
		// Eliminate below the pivot.
		for i = k + 1; i < n; i++ {
			f = u[i*n+k] / u[k*n+k]
			for j = k; j < n; j++ {
				u[i*n+j] -= f * u[k*n+j]
			}
		}
	}
	return det, nil
}

// AllClose reports whether a and b have the same shape and |a[i,j]-b[i,j]| <= eps
// everywhere. NaN compares unequal to everything.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, eps float64) (bool, error) {
	d, err := maxAbsDiff(opAllClose, a, b)
	if err != nil {
		return false, err
	}
	return d <= eps, nil
}

// MaxAbsDiff returns the largest |a[i,j]-b[i,j]| over same-shaped a and b.
// A NaN difference is returned as NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	return maxAbsDiff(opMaxAbsDiff, a, b)
}

func maxAbsDiff(op string, a, b Matrix) (float64, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(op, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, matrixErrorf(op, ErrDimensionMismatch)
	}
	var (
		av, bv float64
		worst  float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(op, err)
			}
			d := math.Abs(av - bv)
			if math.IsNaN(d) {
				return d, nil
			}
			if d > worst {
				worst = d
			}
		}
	}
	return worst, nil
}
