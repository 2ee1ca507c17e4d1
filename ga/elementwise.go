// SPDX-License-Identifier: MIT
// Package: ga
//
// Purpose:
//   - Private per-group element-wise kernels (ew*) shared by the arithmetic,
//     involution and comparison operators.
//
// Design:
//   - All ew* are unexported micro-kernels over one group slice.
//   - Callers guarantee equal lengths; there are no bounds checks beyond Go's own.
//   - ewInverseHadamard divides without a zero check (caller responsibility).

package ga

import "math"

// ewCopy writes dst[i] = a[i].
func ewCopy(dst, a []float64) { copy(dst, a) }

// ewScale writes dst[i] = s * a[i].
func ewScale(dst, a []float64, s float64) {
	for i, v := range a {
		dst[i] = s * v
	}
}

// ewAdd writes dst[i] = a[i] + b[i].
func ewAdd(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// ewSub writes dst[i] = a[i] - b[i].
func ewSub(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ewNegate writes dst[i] = -a[i].
func ewNegate(dst, a []float64) {
	for i, v := range a {
		dst[i] = -v
	}
}

// ewHadamard writes dst[i] = a[i] * b[i].
func ewHadamard(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ewInverseHadamard writes dst[i] = a[i] / b[i]. No zero guard.
func ewInverseHadamard(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// ewEquals reports |a[i] - b[i]| <= eps for all i. NaN is never equal.
func ewEquals(a, b []float64, eps float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// ewZero reports |a[i]| <= eps for all i. NaN is never zero.
func ewZero(a []float64, eps float64) bool {
	for _, v := range a {
		if !(math.Abs(v) <= eps) {
			return false
		}
	}
	return true
}

// zeroGroup is a scratch all-zero group used where an operand lacks a group.
var zeroGroup [maxGroupSize]float64

// groupOrZero returns m's group g or a read-only zero slice of the right size.
func groupOrZero(m Multivector, g Grade) []float64 {
	if s := m.group(g); s != nil {
		return s
	}
	return zeroGroup[:GroupSize[g]]
}

// coordinatewise applies a binary per-group kernel over the groups in gu,
// treating groups missing from either operand as zero.
func coordinatewise(gu GradeUsage, a, b Multivector, kernel func(dst, x, y []float64)) Multivector {
	return build(gu, func(g Grade, dst []float64) {
		kernel(dst, groupOrZero(a, g), groupOrZero(b, g))
	})
}
