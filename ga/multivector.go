// SPDX-License-Identifier: MIT

// Package ga - sparse Multivector value type.
//
// Purpose:
//   - One GradeUsage bitmap plus one contiguous buffer holding the present
//     groups back to back in ascending grade order.
//   - Value semantics: no exported method mutates the buffer, and every
//     constructor copies caller data, so sharing the slice between copies is safe.
//
// Invariant:
//   - len(c) == Size(gu) for every Multivector value.

package ga

import "math"

// Multivector is an element of the algebra. The zero value is the exact zero.
type Multivector struct {
	gu GradeUsage // present groups
	c  []float64  // coordinates, len == Size(gu)
}

// Basis vectors and the unit pseudoscalar.
var (
	E1 = Basis(1, 1)
	E2 = Basis(2, 1)
	E3 = Basis(4, 1)
	E4 = Basis(8, 1)
	I  = Basis(15, 1)
)

// New builds a Multivector from a GradeUsage and its packed coordinates.
// The slice is copied.
//
// Errors:
//   - ErrBadGrade if gu uses bits above grade 4.
//   - ErrCoordinateCount if len(coords) != Size(gu).
//
// Complexity: O(Size(gu)).
func New(gu GradeUsage, coords []float64) (Multivector, error) {
	if !gu.Valid() {
		return Multivector{}, gaErrorf("New", "usage %#x", ErrBadGrade, uint8(gu))
	}
	if len(coords) != Size(gu) {
		return Multivector{}, gaErrorf("New", "usage %s wants %d, got %d", ErrCoordinateCount, gu, Size(gu), len(coords))
	}
	return newFromSlice(gu, coords), nil
}

// FromGrade builds a single-group Multivector. coords must hold
// GroupSize[g] values in the canonical blade order of the group.
func FromGrade(g Grade, coords ...float64) (Multivector, error) {
	if !g.Valid() {
		return Multivector{}, gaErrorf("FromGrade", "grade %d", ErrBadGrade, g)
	}
	if len(coords) != GroupSize[g] {
		return Multivector{}, gaErrorf("FromGrade", "grade %d wants %d, got %d", ErrCoordinateCount, g, GroupSize[g], len(coords))
	}
	return newFromSlice(g.Usage(), coords), nil
}

// Scalar returns s as a grade-0 Multivector.
func Scalar(s float64) Multivector {
	return Multivector{gu: GU0, c: []float64{s}}
}

// Vector returns x1*e1 + x2*e2 + x3*e3 + x4*e4.
func Vector(x1, x2, x3, x4 float64) Multivector {
	return Multivector{gu: GU1, c: []float64{x1, x2, x3, x4}}
}

// Basis returns coeff times the basis blade b.
func Basis(b BasisBlade, coeff float64) Multivector {
	b &= NumBlades - 1
	g := b.Grade()
	c := make([]float64, GroupSize[g])
	c[b.Index()] = coeff
	return Multivector{gu: g.Usage(), c: c}
}

func newFromSlice(gu GradeUsage, coords []float64) Multivector {
	if gu == 0 {
		return Multivector{}
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return Multivector{gu: gu, c: c}
}

// GradeUsage returns the structural grade bitmap.
func (m Multivector) GradeUsage() GradeUsage { return m.gu }

// Coordinates returns a copy of the packed coordinate buffer.
func (m Multivector) Coordinates() []float64 {
	out := make([]float64, len(m.c))
	copy(out, m.c)
	return out
}

// group returns the internal slice of group g, or nil when absent.
func (m Multivector) group(g Grade) []float64 {
	if !m.gu.Has(g) {
		return nil
	}
	off := Offset(m.gu, g)
	return m.c[off : off+GroupSize[g]]
}

// Group returns a copy of group g's coordinates, or nil when g is absent.
func (m Multivector) Group(g Grade) []float64 {
	src := m.group(g)
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// Get returns the coordinate of basis blade b (0 when its group is absent).
func (m Multivector) Get(b BasisBlade) float64 {
	b &= NumBlades - 1
	s := m.group(b.Grade())
	if s == nil {
		return 0
	}
	return s[b.Index()]
}

// ScalarPart returns the grade-0 coordinate.
func (m Multivector) ScalarPart() float64 { return m.Get(0) }

// LargestCoordinate returns the largest absolute coordinate (0 for zero).
func (m Multivector) LargestCoordinate() float64 {
	maxAbs := 0.0
	for _, v := range m.c {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// LargestBasisBlade returns the absolute value of the largest coordinate and
// the blade it belongs to. The zero multivector reports (0, scalar).
func (m Multivector) LargestBasisBlade() (float64, BasisBlade) {
	var (
		maxAbs float64
		blade  BasisBlade
	)
	for g := Grade(0); g < NumGrades; g++ {
		for i, v := range m.group(g) {
			if a := math.Abs(v); a > maxAbs {
				maxAbs, blade = a, groupBlades[g][i]
			}
		}
	}
	return maxAbs, blade
}

// Clone returns a copy with its own buffer.
func (m Multivector) Clone() Multivector { return newFromSlice(m.gu, m.c) }

// Compress drops every present group whose coordinates are all within eps of
// zero. Structural presence then matches GradeBitmap(m, eps).
func (m Multivector) Compress(eps float64) Multivector {
	return ExtractGrade(m, GradeBitmap(m, eps))
}

// String renders m with DefaultFormat.
func (m Multivector) String() string { return Format(m, DefaultFormat) }

// accumulator is the dense scratch target of product and unary kernels.
// Only groups flagged in gu are packed into the result.
type accumulator struct {
	c  [NumGrades][maxGroupSize]float64
	gu GradeUsage
}

// result packs the written groups into a fresh Multivector.
func (acc *accumulator) result() Multivector {
	if acc.gu == 0 {
		return Multivector{}
	}
	out := make([]float64, 0, Size(acc.gu))
	for g := Grade(0); g < NumGrades; g++ {
		if acc.gu.Has(g) {
			out = append(out, acc.c[g][:GroupSize[g]]...)
		}
	}
	return Multivector{gu: acc.gu, c: out}
}

// build allocates a Multivector for gu and lets fill write each group slice.
func build(gu GradeUsage, fill func(g Grade, dst []float64)) Multivector {
	if gu == 0 {
		return Multivector{}
	}
	out := Multivector{gu: gu, c: make([]float64, Size(gu))}
	for g := Grade(0); g < NumGrades; g++ {
		if gu.Has(g) {
			fill(g, out.group(g))
		}
	}
	return out
}
