// SPDX-License-Identifier: MIT

// Package ga - norms, inverses and the versor sandwich.
//
// Contract:
//   - Unit, VersorInverse and the ApplyVersor family are total: a singular
//     operand produces NaN/Inf coordinates instead of an error.
//   - CheckedUnit / CheckedVersorInverse reject |norm| <= eps with ErrSingular.
//   - Sandwich results are restricted to the groups of the transformed
//     operand X, which is where a versor maps a blade.

package ga

import "math"

// Norm2 returns the scalar part of a * reverse(a). The metric is Euclidean,
// so the value is the sum of squared coordinates and never negative.
func Norm2(a Multivector) float64 {
	return SP(a, Reverse(a)).ScalarPart()
}

// Norm returns sqrt(|Norm2(a)|).
func Norm(a Multivector) float64 {
	return math.Sqrt(math.Abs(Norm2(a)))
}

// Unit returns a / Norm(a). Undefined (NaN/Inf) when Norm(a) == 0.
func Unit(a Multivector) Multivector {
	return Scale(a, 1/Norm(a))
}

// CheckedUnit is Unit with a singularity guard.
//
// Errors:
//   - ErrSingular when Norm(a) <= eps.
func CheckedUnit(a Multivector, eps float64) (Multivector, error) {
	n := Norm(a)
	if !(n > eps) {
		return Multivector{}, gaErrorf("CheckedUnit", "norm %g <= eps %g", ErrSingular, n, eps)
	}
	return Scale(a, 1/n), nil
}

// VersorInverse returns reverse(v) / (v * reverse(v)). For a versor the
// denominator is a scalar, so GP(v, VersorInverse(v)) == 1.
func VersorInverse(v Multivector) Multivector {
	r := Reverse(v)
	return Scale(r, 1/SP(r, v).ScalarPart())
}

// CheckedVersorInverse is VersorInverse with a singularity guard.
//
// Errors:
//   - ErrSingular when |v * reverse(v)| <= eps.
func CheckedVersorInverse(v Multivector, eps float64) (Multivector, error) {
	r := Reverse(v)
	n2 := SP(r, v).ScalarPart()
	if !(math.Abs(n2) > eps) {
		return Multivector{}, gaErrorf("CheckedVersorInverse", "norm2 %g <= eps %g", ErrSingular, n2, eps)
	}
	return Scale(r, 1/n2), nil
}

// ApplyVersor returns v * x * v^-1 restricted to the groups of x.
func ApplyVersor(v, x Multivector) Multivector {
	return ApplyVersorWI(v, x, VersorInverse(v))
}

// ApplyUnitVersor is ApplyVersor for a unit versor: the inverse is reverse(v).
// The caller guarantees Norm(v) == 1.
func ApplyUnitVersor(v, x Multivector) Multivector {
	return ApplyVersorWI(v, x, Reverse(v))
}

// ApplyVersorWI is ApplyVersor with a precomputed inverse vi.
func ApplyVersorWI(v, x, vi Multivector) Multivector {
	return ExtractGrade(GP(GP(v, x), vi), x.gu)
}
