// SPDX-License-Identifier: MIT

// Package ga - product dispatch.
//
// Purpose:
//   - Hold one bilinear kernel per (product kind, group A, group B) in a dense
//     table, derived once from the basis-blade multiplication table.
//   - Hold the unary duality kernels (group k -> group 4-k).
//   - Drive every product by visiting only the groups present in both operands.
//
// Derivation:
//   - e_a * e_b = sign(a,b) * e_(a xor b), where sign(a,b) counts the swaps
//     needed to reorder the concatenated basis vectors. The Euclidean metric
//     is the identity, so no further factor appears for repeated vectors.
//   - Each kind keeps the subset of blade products whose result grade it selects.
//
// Complexity:
//   - Table build: O(kinds * 16 * 16) once at package init.
//   - A product visits at most 25 group pairs; each kernel holds <= 36 terms.

package ga

import "math/bits"

// ProductKind selects a bilinear product.
type ProductKind uint8

// Product kinds served by the dispatch table.
const (
	ProductGeometric ProductKind = iota
	ProductOuter
	ProductScalar
	ProductLeftContraction
	ProductRightContraction
	ProductHestenes
	ProductModifiedHestenes
	numProductKinds
)

var productKindNames = [numProductKinds]string{
	"gp", "op", "sp", "lc", "rc", "hip", "mhip",
}

// String returns the short operator name ("gp", "op", ...).
func (k ProductKind) String() string {
	if k >= numProductKinds {
		return "unknown"
	}
	return productKindNames[k]
}

// term is one signed coordinate product: dst[c] += sign * a[ia] * b[ib].
type term struct {
	ia, ib, ic uint8
	dst        Grade
	sign       float64
}

// Kernel is the partial product of one group of A with one group of B.
type Kernel struct {
	kind   ProductKind
	ga, gb Grade
	dst    GradeUsage
	terms  []term
}

// Dest returns the groups this kernel writes.
func (k *Kernel) Dest() GradeUsage { return k.dst }

// Eval computes the partial product of the group slices a (group ga) and
// b (group gb) and returns one slice per destination group (nil for groups
// the kernel does not write).
//
// Inputs must be sized GroupSize[ga] and GroupSize[gb]; a violation is a
// programming error and panics with an index error.
func (k *Kernel) Eval(a, b []float64) [NumGrades][]float64 {
	var acc accumulator
	k.apply(a, b, &acc)
	var out [NumGrades][]float64
	for g := Grade(0); g < NumGrades; g++ {
		if k.dst.Has(g) {
			out[g] = append([]float64(nil), acc.c[g][:GroupSize[g]]...)
		}
	}
	return out
}

// apply accumulates the kernel's contribution into acc and flags its groups.
func (k *Kernel) apply(a, b []float64, acc *accumulator) {
	for _, t := range k.terms {
		acc.c[t.dst][t.ic] += t.sign * a[t.ia] * b[t.ib]
	}
	acc.gu |= k.dst
}

// unaryTerm moves one coordinate: dst[ic] = sign * src[ia].
type unaryTerm struct {
	ia, ic uint8
	sign   float64
}

// unaryKernel maps group src to group dst.
type unaryKernel struct {
	src, dst Grade
	terms    []unaryTerm
}

func (k *unaryKernel) apply(a []float64, acc *accumulator) {
	for _, t := range k.terms {
		acc.c[k.dst][t.ic] += t.sign * a[t.ia]
	}
	acc.gu |= k.dst.Usage()
}

var (
	kernels       = buildKernels()
	dualKernels   = buildDuality(true)
	undualKernels = buildDuality(false)
)

// PartialProduct returns the kernel of kind for the group pair (ga, gb), or
// nil when the pair never contributes to that product.
func PartialProduct(kind ProductKind, ga, gb Grade) *Kernel {
	if kind >= numProductKinds || !ga.Valid() || !gb.Valid() {
		return nil
	}
	return kernels[kind][ga][gb]
}

// reorderingSign returns the sign of e_a * e_b caused by moving the basis
// vectors of b past those of a into canonical order.
func reorderingSign(a, b BasisBlade) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount8(uint8(a & b))
		a >>= 1
	}
	if swaps&1 == 0 {
		return 1
	}
	return -1
}

// bladeGP is the geometric product of two basis blades under the Euclidean metric.
func bladeGP(a, b BasisBlade) (BasisBlade, float64) {
	return a ^ b, reorderingSign(a, b)
}

// keeps reports whether kind retains a blade product of grades ga*gb -> gc.
func keeps(kind ProductKind, ga, gb, gc Grade) bool {
	switch kind {
	case ProductGeometric:
		return true
	case ProductOuter:
		return gc == ga+gb
	case ProductScalar:
		return gc == 0
	case ProductLeftContraction:
		return ga <= gb && gc == gb-ga
	case ProductRightContraction:
		return ga >= gb && gc == ga-gb
	case ProductHestenes:
		return ga != 0 && gb != 0 && gc == absDiff(ga, gb)
	case ProductModifiedHestenes:
		return gc == absDiff(ga, gb)
	}
	return false
}

func absDiff(a, b Grade) Grade {
	if a > b {
		return a - b
	}
	return b - a
}

// buildKernels derives the dense kernel table from the blade multiplication table.
func buildKernels() [numProductKinds][NumGrades][NumGrades]*Kernel {
	var table [numProductKinds][NumGrades][NumGrades]*Kernel
	for kind := ProductKind(0); kind < numProductKinds; kind++ {
		for ga := Grade(0); ga < NumGrades; ga++ {
			for gb := Grade(0); gb < NumGrades; gb++ {
				k := &Kernel{kind: kind, ga: ga, gb: gb}
				for ia, ba := range groupBlades[ga] {
					for ib, bb := range groupBlades[gb] {
						bc, sign := bladeGP(ba, bb)
						gc := bc.Grade()
						if !keeps(kind, ga, gb, gc) {
							continue
						}
						k.terms = append(k.terms, term{
							ia: uint8(ia), ib: uint8(ib), ic: uint8(bc.Index()),
							dst: gc, sign: sign,
						})
						k.dst |= gc.Usage()
					}
				}
				if len(k.terms) > 0 {
					table[kind][ga][gb] = k
				}
			}
		}
	}
	return table
}

// buildDuality derives dual (A * I^-1) or undual (A * I) kernels.
// I^-1 = reverse(I) / (I * reverse(I)); both factors are exact signs here.
func buildDuality(inverse bool) [NumGrades]*unaryKernel {
	const pseudo = BasisBlade(NumBlades - 1)
	coeff := 1.0
	if inverse {
		_, sq := bladeGP(pseudo, pseudo)
		coeff = reverseSigns[GradePseudoscalar] * sq
	}
	var table [NumGrades]*unaryKernel
	for g := Grade(0); g < NumGrades; g++ {
		k := &unaryKernel{src: g, dst: NumGrades - 1 - g}
		for ia, ba := range groupBlades[g] {
			bc, sign := bladeGP(ba, pseudo)
			k.terms = append(k.terms, unaryTerm{
				ia: uint8(ia), ic: uint8(bc.Index()), sign: sign * coeff,
			})
		}
		table[g] = k
	}
	return table
}

// product evaluates kind over every pair of groups present in a and b.
func product(kind ProductKind, a, b Multivector) Multivector {
	var acc accumulator
	for ga := Grade(0); ga < NumGrades; ga++ {
		sa := a.group(ga)
		if sa == nil {
			continue
		}
		for gb := Grade(0); gb < NumGrades; gb++ {
			sb := b.group(gb)
			if sb == nil {
				continue
			}
			if k := kernels[kind][ga][gb]; k != nil {
				k.apply(sa, sb, &acc)
			}
		}
	}
	return acc.result()
}

// unary evaluates a per-group linear map table over the groups present in a.
func unary(table *[NumGrades]*unaryKernel, a Multivector) Multivector {
	var acc accumulator
	for g := Grade(0); g < NumGrades; g++ {
		if s := a.group(g); s != nil {
			table[g].apply(s, &acc)
		}
	}
	return acc.result()
}
