// SPDX-License-Identifier: MIT

package ga

// Add returns a + b. The result holds the union of both operands' groups.
// Complexity: O(16).
func Add(a, b Multivector) Multivector {
	return coordinatewise(a.gu|b.gu, a, b, ewAdd)
}

// Subtract returns a - b over the union of both operands' groups.
func Subtract(a, b Multivector) Multivector {
	return coordinatewise(a.gu|b.gu, a, b, ewSub)
}

// Scale returns s * a, keeping a's groups.
func Scale(a Multivector, s float64) Multivector {
	return build(a.gu, func(g Grade, dst []float64) {
		ewScale(dst, a.group(g), s)
	})
}

// Hadamard returns the coordinate-wise product of a and b. Only groups
// present in both operands can be non-zero, so only those are kept.
func Hadamard(a, b Multivector) Multivector {
	return coordinatewise(a.gu&b.gu, a, b, ewHadamard)
}

// InverseHadamard returns the coordinate-wise quotient a / b over a's groups.
// There is no zero check: a coordinate divided by a zero (or absent) divisor
// becomes ±Inf or NaN.
func InverseHadamard(a, b Multivector) Multivector {
	return coordinatewise(a.gu, a, b, ewInverseHadamard)
}

// Increment returns a + 1.
func Increment(a Multivector) Multivector { return Add(a, Scalar(1)) }

// Decrement returns a - 1.
func Decrement(a Multivector) Multivector { return Subtract(a, Scalar(1)) }

// Equals reports whether every coordinate of a - b has magnitude <= eps.
// Groups absent from one operand are compared against zero.
func Equals(a, b Multivector, eps float64) bool {
	for g := Grade(0); g < NumGrades; g++ {
		if !(a.gu | b.gu).Has(g) {
			continue
		}
		if !ewEquals(groupOrZero(a, g), groupOrZero(b, g), eps) {
			return false
		}
	}
	return true
}

// Zero reports whether every coordinate of a has magnitude <= eps.
func Zero(a Multivector, eps float64) bool { return ewZero(a.c, eps) }
