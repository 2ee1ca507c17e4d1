// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/e4ga/matrix"
)

// hide wraps a Matrix to force the At/Set fallback paths.
type hide struct{ matrix.Matrix }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestMul_FastAndFallback_Match(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := mustRows(t, [][]float64{{58, 64}, {139, 154}})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	for _, got := range []*matrix.Dense{fast, slow} {
		ok, err := matrix.AllClose(got, want, 0)
		require.NoError(t, err)
		assert.True(t, ok, "got\n%s", got)
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2}})
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	want := mustRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})
	ok, err := matrix.AllClose(at, want, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDeterminant(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"zero leading pivot", [][]float64{{0, -1}, {1, 0}}, 1},
		{"reflection", [][]float64{{1, 0}, {0, -1}}, -1},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"general", [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Determinant(mustRows(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := matrix.Determinant(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1, 2 + 1e-9}})
	ok, err := matrix.AllClose(a, b, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, mustRows(t, [][]float64{{1, math.NaN()}}), 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustRows(t, [][]float64{{1}, {2}}), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2.5}, {2, 4}})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(a, a)
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = matrix.MaxAbsDiff(a, mustRows(t, [][]float64{{math.NaN(), 0}, {0, 0}}))
	require.NoError(t, err)
	require.True(t, math.IsNaN(d))

	_, err = matrix.MaxAbsDiff(a, mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MaxAbsDiff(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
