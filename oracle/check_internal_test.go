// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/e4ga/ga"
	"github.com/katalvlaran/e4ga/random"
)

func TestEnv_ObserveKeepsWorstAndNaN(t *testing.T) {
	e := &env{}
	e.observe(0.1, "a")
	e.observe(0.05, "b")
	require.Equal(t, 0.1, e.worst)
	require.Equal(t, "a", e.detail)

	e.observe(math.NaN(), "nan")
	e.observe(1e9, "big")
	require.True(t, math.IsNaN(e.worst))
	require.Equal(t, "nan", e.detail)
}

func TestCheck_Iterations(t *testing.T) {
	c := Check{Iterations: 1000}
	require.Equal(t, 500, c.iterations(0.5))
	require.Equal(t, 1, c.iterations(1e-9))
	c.minIterations = MinUniformityDraws
	require.Equal(t, MinUniformityDraws, c.iterations(0.01))
}

func TestRunOne_FailureModes(t *testing.T) {
	r := NewRunner()
	cases := []struct {
		name string
		run  func(e *env) error
	}{
		{"nan deviation", func(e *env) error { e.observe(math.NaN(), "nan"); return nil }},
		{"draw failure", func(e *env) error { return random.ErrConstructFailed }},
		{"over tolerance", func(e *env) error { e.observe(1, "one"); return nil }},
	}
	for _, tc := range cases {
		res, err := r.runOne(context.Background(), selected{check: Check{Name: tc.name, Tolerance: 0.5, Iterations: 1, run: tc.run}})
		require.NoError(t, err, tc.name)
		require.False(t, res.Passed, tc.name)
	}
}

func TestReferenceProduct_MatchesKernels(t *testing.T) {
	a := ga.Add(ga.Scalar(2), ga.Add(ga.E1, ga.Basis(3, 1)))
	b := ga.Add(ga.E2, ga.Basis(7, 1))
	require.True(t, ga.Equals(ga.LC(a, b), referenceProduct(ga.ProductLeftContraction, a, b), 1e-12))
	require.True(t, ga.Equals(ga.HIP(a, b), referenceProduct(ga.ProductHestenes, a, b), 1e-12))
}

