// SPDX-License-Identifier: MIT

package ga

// GP returns the geometric product a*b.
// Every pair of present groups contributes; group1*group1, for example,
// writes both the scalar and the bivector group.
// Complexity: at most 25 kernels, O(256) multiply-adds.
func GP(a, b Multivector) Multivector { return product(ProductGeometric, a, b) }

// OP returns the outer product a^b: group i of a meets group j of b only when
// i+j <= 4, and contributes to group i+j.
func OP(a, b Multivector) Multivector { return product(ProductOuter, a, b) }

// SP returns the scalar product: the grade-0 part of GP(a, b).
func SP(a, b Multivector) Multivector { return product(ProductScalar, a, b) }

// LC returns the left contraction: for each group pair (i, j) with i <= j,
// the grade j-i part of the partial geometric product.
func LC(a, b Multivector) Multivector { return product(ProductLeftContraction, a, b) }

// RC returns the right contraction: for each group pair (i, j) with i >= j,
// the grade i-j part of the partial geometric product.
func RC(a, b Multivector) Multivector { return product(ProductRightContraction, a, b) }

// HIP returns the Hestenes inner product: grade |i-j| of each partial
// product, with scalar groups excluded on either side.
func HIP(a, b Multivector) Multivector { return product(ProductHestenes, a, b) }

// MHIP returns the modified Hestenes inner product: grade |i-j| of each
// partial product, scalars included.
func MHIP(a, b Multivector) Multivector { return product(ProductModifiedHestenes, a, b) }

// Dual returns a * I^-1, mapping group k to group 4-k.
func Dual(a Multivector) Multivector { return unary(&dualKernels, a) }

// Undual returns a * I; Undual(Dual(a)) == a.
func Undual(a Multivector) Multivector { return unary(&undualKernels, a) }
