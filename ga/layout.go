// SPDX-License-Identifier: MIT

// Package ga - grade layout of the 4D Euclidean algebra.
//
// Purpose:
//   - Fix the order of the 16 basis blades inside each of the five grade groups.
//   - Map a 5-bit GradeUsage to its buffer size and per-group offsets.
//
// Layout (blade bitmaps: e1=1, e2=2, e3=4, e4=8):
//
//	group 0  [1]                               size 1
//	group 1  [e1 e2 e3 e4]                     size 4
//	group 2  [e1^e2 e1^e3 e1^e4 e2^e3 e2^e4 e3^e4]  size 6
//	group 3  [e1^e2^e3 e1^e2^e4 e1^e3^e4 e2^e3^e4]  size 4
//	group 4  [e1^e2^e3^e4]                     size 1
//
// Complexity quicksheet:
//   - Size and Offset: O(1) table lookups.

package ga

import (
	"math/bits"
	"strconv"
	"strings"
)

// Dimension is the number of orthonormal basis vectors.
const Dimension = 4

// NumGrades is the number of grade groups (0..Dimension).
const NumGrades = Dimension + 1

// NumBlades is the number of basis blades of the full algebra (2^Dimension).
const NumBlades = 1 << Dimension

// maxGroupSize is the largest group (the bivectors).
const maxGroupSize = 6

// Grade identifies one of the five grade groups.
type Grade uint8

// Grade groups of the algebra.
const (
	GradeScalar       Grade = 0
	GradeVector       Grade = 1
	GradeBivector     Grade = 2
	GradeTrivector    Grade = 3
	GradePseudoscalar Grade = 4
)

// Valid reports whether g names one of the five groups.
func (g Grade) Valid() bool { return g < NumGrades }

// Usage returns the single-bit GradeUsage of g.
func (g Grade) Usage() GradeUsage { return GradeUsage(1) << g }

// GradeUsage is a 5-bit bitmap; bit k is set iff grade group k is stored.
type GradeUsage uint8

// Single-group usages and the full algebra.
const (
	GU0   GradeUsage = 1 << iota // scalar
	GU1                          // vector
	GU2                          // bivector
	GU3                          // trivector
	GU4                          // pseudoscalar
	GUAll GradeUsage = GU0 | GU1 | GU2 | GU3 | GU4

	// GUEven and GUOdd select the even and odd subalgebras.
	GUEven = GU0 | GU2 | GU4
	GUOdd  = GU1 | GU3
)

// Has reports whether group g is present in gu.
func (gu GradeUsage) Has(g Grade) bool { return gu&(1<<g) != 0 }

// Valid reports whether gu uses only the five defined bits.
func (gu GradeUsage) Valid() bool { return gu&^GUAll == 0 }

// Grades lists the present groups in ascending order.
func (gu GradeUsage) Grades() []Grade {
	out := make([]Grade, 0, bits.OnesCount8(uint8(gu&GUAll)))
	for g := Grade(0); g < NumGrades; g++ {
		if gu.Has(g) {
			out = append(out, g)
		}
	}
	return out
}

// String renders gu as "{0,2}".
func (gu GradeUsage) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for g := Grade(0); g < NumGrades; g++ {
		if !gu.Has(g) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(g)))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// GroupSize is the coordinate count of each grade group.
var GroupSize = [NumGrades]int{1, 4, 6, 4, 1}

// usageSize is the buffer length of every GradeUsage value.
var usageSize = [1 << NumGrades]int{
	0, 1, 4, 5, 6, 7, 10, 11,
	4, 5, 8, 9, 10, 11, 14, 15,
	1, 2, 5, 6, 7, 8, 11, 12,
	5, 6, 9, 10, 11, 12, 15, 16,
}

// Size returns the coordinate count of a buffer laid out for gu.
// Complexity: O(1).
func Size(gu GradeUsage) int { return usageSize[gu&GUAll] }

// Offset returns the index of group g's first coordinate in a buffer laid out
// for gu: the total size of the groups below g. The result is meaningful
// only when gu.Has(g).
// Complexity: O(1).
func Offset(gu GradeUsage, g Grade) int {
	return usageSize[gu&(g.Usage()-1)]
}

// BasisBlade is a basis blade given by the bitmap of its basis vectors
// (e1=1, e2=2, e3=4, e4=8; 0 is the scalar unit).
type BasisBlade uint8

// groupBlades is the canonical blade order within each group.
var groupBlades = [NumGrades][]BasisBlade{
	{0},
	{1, 2, 4, 8},
	{3, 5, 9, 6, 10, 12},
	{7, 11, 13, 14},
	{15},
}

// bladeIndex is the inverse of groupBlades: position of a blade inside its group.
var bladeIndex = buildBladeIndex()

func buildBladeIndex() [NumBlades]uint8 {
	var idx [NumBlades]uint8
	for g := Grade(0); g < NumGrades; g++ {
		for i, b := range groupBlades[g] {
			idx[b] = uint8(i)
		}
	}
	return idx
}

// Grade returns the grade of the blade (its number of basis vectors).
func (b BasisBlade) Grade() Grade { return Grade(bits.OnesCount8(uint8(b & (NumBlades - 1)))) }

// Index returns the position of b within its grade group.
func (b BasisBlade) Index() int { return int(bladeIndex[b&(NumBlades-1)]) }

// String renders the blade as "1", "e1", "e1^e3", ...
func (b BasisBlade) String() string {
	b &= NumBlades - 1
	if b == 0 {
		return "1"
	}
	var sb strings.Builder
	for i := 0; i < Dimension; i++ {
		if b&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('^')
		}
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(i + 1))
	}
	return sb.String()
}

// GroupBlades returns the canonical blade order of group g.
func GroupBlades(g Grade) []BasisBlade {
	out := make([]BasisBlade, len(groupBlades[g]))
	copy(out, groupBlades[g])
	return out
}

// ProductGrades returns the groups that product kind can write when a
// group-ga operand meets a group-gb operand. It is 0 when the pair never
// contributes (e.g. outer product with ga+gb > 4).
func ProductGrades(kind ProductKind, ga, gb Grade) GradeUsage {
	k := PartialProduct(kind, ga, gb)
	if k == nil {
		return 0
	}
	return k.dst
}
