// SPDX-License-Identifier: MIT

package ga

// Sign tables, one factor per grade group 0..4.
var (
	reverseSigns           = [NumGrades]float64{1, 1, -1, -1, 1}
	gradeInvolutionSigns   = [NumGrades]float64{1, -1, 1, -1, 1}
	cliffordConjugateSigns = [NumGrades]float64{1, -1, -1, 1, 1}
)

// applySigns scales each present group of a by its sign.
func applySigns(a Multivector, signs *[NumGrades]float64) Multivector {
	return build(a.gu, func(g Grade, dst []float64) {
		ewScale(dst, a.group(g), signs[g])
	})
}

// Reverse reverses the order of basis vectors in every blade.
func Reverse(a Multivector) Multivector { return applySigns(a, &reverseSigns) }

// GradeInvolution negates the odd groups.
func GradeInvolution(a Multivector) Multivector { return applySigns(a, &gradeInvolutionSigns) }

// CliffordConjugate is Reverse composed with GradeInvolution.
func CliffordConjugate(a Multivector) Multivector { return applySigns(a, &cliffordConjugateSigns) }

// Negate returns -a.
func Negate(a Multivector) Multivector {
	return build(a.gu, func(g Grade, dst []float64) {
		ewNegate(dst, a.group(g))
	})
}
