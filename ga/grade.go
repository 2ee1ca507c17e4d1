// SPDX-License-Identifier: MIT

package ga

// ExtractGrade projects a onto the groups selected by gu.
// The result keeps exactly the groups present in both a and gu.
func ExtractGrade(a Multivector, gu GradeUsage) Multivector {
	return build(a.gu&gu, func(g Grade, dst []float64) {
		ewCopy(dst, a.group(g))
	})
}

// ExtractGrade0 returns the scalar part of a.
func ExtractGrade0(a Multivector) Multivector { return ExtractGrade(a, GU0) }

// ExtractGrade1 returns the vector part of a.
func ExtractGrade1(a Multivector) Multivector { return ExtractGrade(a, GU1) }

// ExtractGrade2 returns the bivector part of a.
func ExtractGrade2(a Multivector) Multivector { return ExtractGrade(a, GU2) }

// ExtractGrade3 returns the trivector part of a.
func ExtractGrade3(a Multivector) Multivector { return ExtractGrade(a, GU3) }

// ExtractGrade4 returns the pseudoscalar part of a.
func ExtractGrade4(a Multivector) Multivector { return ExtractGrade(a, GU4) }

// GradeBitmap returns the groups of a holding at least one coordinate with
// magnitude > eps. Structural presence alone does not count.
func GradeBitmap(a Multivector, eps float64) GradeUsage {
	var gu GradeUsage
	for g := Grade(0); g < NumGrades; g++ {
		if s := a.group(g); s != nil && !ewZero(s, eps) {
			gu |= g.Usage()
		}
	}
	return gu
}
