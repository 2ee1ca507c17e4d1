// SPDX-License-Identifier: MIT

package ga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteSign multiplies e_a * e_b by bubble-sorting the concatenated basis
// vector list and cancelling equal neighbours (e_i * e_i = 1).
func bruteSign(a, b BasisBlade) float64 {
	var list []int
	for i := 0; i < Dimension; i++ {
		if a&(1<<i) != 0 {
			list = append(list, i)
		}
	}
	for i := 0; i < Dimension; i++ {
		if b&(1<<i) != 0 {
			list = append(list, i)
		}
	}
	sign := 1.0
	for i := 0; i < len(list); i++ {
		for j := 0; j+1 < len(list)-i; j++ {
			if list[j] > list[j+1] {
				list[j], list[j+1] = list[j+1], list[j]
				sign = -sign
			}
		}
	}
	return sign
}

func TestReorderingSign_MatchesBruteForce(t *testing.T) {
	for a := BasisBlade(0); a < NumBlades; a++ {
		for b := BasisBlade(0); b < NumBlades; b++ {
			require.Equal(t, bruteSign(a, b), reorderingSign(a, b), "%s * %s", a, b)
		}
	}
}

func TestKernels_TermCounts(t *testing.T) {
	// The geometric product touches every coordinate pair exactly once.
	for ga := Grade(0); ga < NumGrades; ga++ {
		for gb := Grade(0); gb < NumGrades; gb++ {
			k := kernels[ProductGeometric][ga][gb]
			require.NotNil(t, k)
			require.Len(t, k.terms, GroupSize[ga]*GroupSize[gb])
		}
	}
	// Every other kind keeps a subset of the geometric terms.
	for kind := ProductOuter; kind < numProductKinds; kind++ {
		for ga := Grade(0); ga < NumGrades; ga++ {
			for gb := Grade(0); gb < NumGrades; gb++ {
				if k := kernels[kind][ga][gb]; k != nil {
					require.LessOrEqual(t, len(k.terms), GroupSize[ga]*GroupSize[gb])
					require.Zero(t, k.dst&^kernels[ProductGeometric][ga][gb].dst, "%v %d x %d", kind, ga, gb)
				}
			}
		}
	}
}

func TestDualityKernels_AreInverse(t *testing.T) {
	for g := Grade(0); g < NumGrades; g++ {
		d, u := dualKernels[g], undualKernels[NumGrades-1-g]
		require.Equal(t, NumGrades-1-g, d.dst)
		require.Len(t, d.terms, GroupSize[g])
		for _, t1 := range d.terms {
			// undual maps the dual coordinate back with the reciprocal sign.
			var back *unaryTerm
			for i := range u.terms {
				if u.terms[i].ia == t1.ic {
					back = &u.terms[i]
				}
			}
			require.NotNil(t, back)
			require.Equal(t, t1.ia, back.ic)
			require.Equal(t, 1.0, t1.sign*back.sign)
		}
	}
}

func TestProductKind_String(t *testing.T) {
	require.Equal(t, "gp", ProductGeometric.String())
	require.Equal(t, "mhip", ProductModifiedHestenes.String())
	require.Equal(t, "unknown", numProductKinds.String())
	require.Nil(t, PartialProduct(numProductKinds, 0, 0))
	require.Nil(t, PartialProduct(ProductGeometric, 5, 0))
}
