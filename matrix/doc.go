// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense matrix used to inspect the
// linear maps induced by versors.
//
// What & Why:
//
//	A versor V acts on vectors as x -> V x V^-1. Written as a matrix, that
//	action must be orthogonal (MᵀM = I, det M = ±1). This package holds the
//	Dense storage and the handful of kernels needed to check it: Mul,
//	Transpose, Determinant and AllClose.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks that return ErrOutOfRange.
//	Mul is O(r*n*c); Determinant is O(n³) (LU elimination with partial
//	pivoting; a singular matrix reports determinant 0).
package matrix
