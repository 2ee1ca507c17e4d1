// SPDX-License-Identifier: MIT

// Package ga implements arithmetic over the geometric (Clifford) algebra of
// 4-dimensional Euclidean space.
//
// What & Why:
//
//	A Multivector is a sum of basis blades drawn from five grade groups:
//	scalar (1 coordinate), vector (4), bivector (6), trivector (4) and
//	pseudoscalar (1). Only the groups that are present are stored; a
//	5-bit GradeUsage bitmap records which ones, and the coordinate buffer
//	is exactly as long as those groups require.
//
//	Products are evaluated group by group. For each kind of product
//	(geometric, outer, scalar, contractions, Hestenes inner products) a
//	dense [kind][groupA][groupB] table holds a small bilinear kernel that
//	was derived once, at package init, from the basis-blade multiplication
//	table. Absent groups are skipped, so sparse operands stay cheap.
//
// Operators:
//
//	GP, OP, SP, LC, RC, HIP, MHIP           products
//	Dual, Undual                            duality w.r.t. the pseudoscalar
//	Reverse, GradeInvolution,
//	CliffordConjugate, Negate               sign-table involutions
//	Norm2, Norm, Unit                       norms
//	VersorInverse, ApplyVersor,
//	ApplyUnitVersor, ApplyVersorWI          versor sandwich
//	Exp, Sinh, Cosh                         truncated series
//	ExtractGrade, GradeBitmap, Equals, Zero grade and tolerance helpers
//
// All operators are pure: they never mutate their operands and always return
// a fresh Multivector. They never return errors either; a singular operand
// (e.g. Unit of a zero multivector) yields NaN/Inf coordinates. Use
// CheckedUnit / CheckedVersorInverse where a sentinel error is preferred.
//
// Grade presence:
//
//	A result keeps every group that some kernel wrote, even if the written
//	coordinates cancel to zero. GradeBitmap(A, eps) answers the numeric
//	question; Compress(eps) drops the numerically empty groups.
//
// Text form:
//
//	Format / String render "1.5 + 2*e1 - 0.5*e1^e2"; Parse reads it back.
package ga
