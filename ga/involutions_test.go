// SPDX-License-Identifier: MIT

package ga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/e4ga/ga"
)

func TestInvolutions_SignTables(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		fn    func(ga.Multivector) ga.Multivector
		signs [ga.NumGrades]float64
	}{
		{"reverse", ga.Reverse, [ga.NumGrades]float64{1, 1, -1, -1, 1}},
		{"gradeInvolution", ga.GradeInvolution, [ga.NumGrades]float64{1, -1, 1, -1, 1}},
		{"cliffordConjugate", ga.CliffordConjugate, [ga.NumGrades]float64{1, -1, -1, 1, 1}},
		{"negate", ga.Negate, [ga.NumGrades]float64{-1, -1, -1, -1, -1}},
	}
	all := make([]float64, ga.NumBlades)
	for i := range all {
		all[i] = float64(i + 1)
	}
	a, err := ga.New(ga.GUAll, all)
	require.NoError(t, err)
	for _, tc := range cases {
		got := tc.fn(a)
		require.Equal(t, a.GradeUsage(), got.GradeUsage(), tc.name)
		for g := ga.Grade(0); g < ga.NumGrades; g++ {
			for _, b := range ga.GroupBlades(g) {
				require.Equal(t, tc.signs[g]*a.Get(b), got.Get(b), "%s on %s", tc.name, b)
			}
		}
	}
}

func TestReverse_MatchesBasisReordering(t *testing.T) {
	t.Parallel()
	// reverse(e1^e2) = e2^e1 = -e1^e2.
	requireEqualMV(t, ga.GP(ga.E2, ga.E1), ga.Reverse(ga.GP(ga.E1, ga.E2)), 0)
	// reverse(e1^e2^e3) = e3^e2^e1.
	e123 := ga.GP(ga.GP(ga.E1, ga.E2), ga.E3)
	e321 := ga.GP(ga.GP(ga.E3, ga.E2), ga.E1)
	requireEqualMV(t, e321, ga.Reverse(e123), 0)
}

func TestInvolutions_KeepAbsentGroupsAbsent(t *testing.T) {
	t.Parallel()
	v := ga.Add(ga.E1, ga.Basis(7, 2))
	for _, fn := range []func(ga.Multivector) ga.Multivector{ga.Reverse, ga.GradeInvolution, ga.CliffordConjugate, ga.Negate} {
		require.Equal(t, ga.GUOdd, fn(v).GradeUsage())
	}
}
