// SPDX-License-Identifier: MIT

package random_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/e4ga/ga"
	"github.com/katalvlaran/e4ga/random"
)

func TestGenerator_SameSeedSameStream(t *testing.T) {
	t.Parallel()
	a := random.New(random.WithSeed(42))
	b := random.New(random.WithSeed(42))
	for i := 0; i < 16; i++ {
		va, err := a.RandomVersor(1, i%5)
		require.NoError(t, err)
		vb, err := b.RandomVersor(1, i%5)
		require.NoError(t, err)
		require.Equal(t, va.Coordinates(), vb.Coordinates())
	}
	require.Equal(t, int64(42), a.Seed())
}

func TestGenerator_Reseed(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(7))
	first := []float64{g.Float64(), g.Float64(), g.Float64()}
	g.Reseed(7)
	again := []float64{g.Float64(), g.Float64(), g.Float64()}
	require.Equal(t, first, again)

	seed := g.ReseedFromTime()
	require.Equal(t, seed, g.Seed())
}

func TestGenerator_WithRandShareSource(t *testing.T) {
	t.Parallel()
	src := rand.New(rand.NewSource(3))
	want := rand.New(rand.NewSource(3)).Float64()
	g := random.New(random.WithRand(src))
	require.Equal(t, want, g.Float64())
	require.Zero(t, g.Seed())
}

func TestFloat64_Range(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(11))
	const n = 1 << 16
	sum := 0.0
	for i := 0; i < n; i++ {
		v := g.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		sum += v
	}
	assert.InDelta(t, 0.5, sum/n, 0.01)
}

func TestRandomBlade_IsHomogeneous(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(5))
	for grade := 0; grade <= ga.Dimension; grade++ {
		for i := 0; i < 50; i++ {
			b, err := g.RandomBlade(2, grade)
			require.NoError(t, err)
			require.Equal(t, ga.Grade(grade).Usage(), b.GradeUsage(), "grade %d", grade)
			require.Less(t, b.LargestCoordinate(), 8.0)
		}
	}
}

func TestRandomBladeEx_RespectsBasis(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(9))
	// e1 and e3 only: the only bivector is e1^e3.
	b, err := g.RandomBladeEx(1, 2, 0b0101, 0.01, 4)
	require.NoError(t, err)
	require.NotZero(t, b.Get(5))
	for _, blade := range ga.GroupBlades(ga.GradeBivector) {
		if blade != 5 {
			require.Zero(t, b.Get(blade), "blade %s", blade)
		}
	}
}

func TestRandomVersor_IsInvertible(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(13))
	for grade := 1; grade <= ga.Dimension; grade++ {
		for i := 0; i < 50; i++ {
			v, err := g.RandomVersor(1, grade)
			require.NoError(t, err)
			p := ga.GP(v, ga.VersorInverse(v))
			require.InDelta(t, 1, p.ScalarPart(), 1e-6)
			require.True(t, ga.Zero(ga.Subtract(p, ga.Scalar(p.ScalarPart())), 1e-6))
		}
	}
}

func TestRandomBladeEx_Errors(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(1))
	cases := []struct {
		name       string
		scale      float64
		grade      int
		basis      uint8
		minNorm    float64
		largest    float64
		wantTarget error
	}{
		{"negative grade", 1, -1, 0xF, 0.01, 4, random.ErrBadGrade},
		{"grade above 4", 1, 5, 0xF, 0.01, 4, random.ErrBadGrade},
		{"empty basis", 1, 1, 0, 0.01, 4, random.ErrInsufficientBasis},
		{"high bits ignored", 1, 3, 0xF3, 0.01, 4, random.ErrInsufficientBasis},
		{"nan scale", math.NaN(), 1, 0xF, 0.01, 4, random.ErrBadParameter},
		{"negative min norm", 1, 1, 0xF, -1, 4, random.ErrBadParameter},
		{"zero bound", 1, 1, 0xF, 0.01, 0, random.ErrBadParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.RandomBladeEx(tc.scale, tc.grade, tc.basis, tc.minNorm, tc.largest)
			require.ErrorIs(t, err, tc.wantTarget)
			_, err = g.RandomVersorEx(tc.scale, tc.grade, tc.basis, tc.minNorm, tc.largest)
			require.ErrorIs(t, err, tc.wantTarget)
		})
	}
}

func TestRandomBladeEx_ConstructFailedIsLogged(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	g := random.New(
		random.WithSeed(1),
		random.WithMaxAttempts(5),
		random.WithLogger(zap.New(core)),
	)
	// A minimum norm of 10 is out of reach for unit-range vectors.
	_, err := g.RandomBladeEx(1, 1, 0xF, 10, 4)
	require.ErrorIs(t, err, random.ErrConstructFailed)
	require.Equal(t, 1, logs.FilterMessage("random draw exhausted attempts").Len())
}

func TestRandomMultivector(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(21))
	m, err := g.RandomMultivector(3, ga.GUEven)
	require.NoError(t, err)
	require.Equal(t, ga.GUEven, m.GradeUsage())
	require.LessOrEqual(t, m.LargestCoordinate(), 3.0)

	_, err = g.RandomMultivector(1, ga.GradeUsage(0x20))
	require.ErrorIs(t, err, random.ErrBadGrade)
}

func TestRandomVector_ZeroOutsideBasis(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithSeed(2))
	v := g.RandomVector(1, 0b1000)
	require.Zero(t, v.Get(1))
	require.Zero(t, v.Get(2))
	require.Zero(t, v.Get(4))
	require.NotZero(t, v.Get(8))
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { random.WithRand(nil) })
	require.Panics(t, func() { random.WithMaxAttempts(0) })
	require.Panics(t, func() { random.WithLogger(nil) })
}

// halfSource makes every Float64 draw exactly 0.5, so every symmetric
// coordinate is zero.
type halfSource struct{}

func (halfSource) Int63() int64 { return 1 << 62 }
func (halfSource) Seed(int64)   {}

func TestRandomBladeEx_ZeroNormAcceptedWithoutMinimum(t *testing.T) {
	t.Parallel()
	g := random.New(random.WithRand(rand.New(halfSource{})), random.WithMaxAttempts(3))
	x, err := g.RandomBladeEx(1, 1, 0xF, 0, 1)
	require.NoError(t, err)
	require.Equal(t, ga.GU1, x.GradeUsage())
	require.True(t, ga.Zero(x, 0))

	_, err = g.RandomBladeEx(1, 1, 0xF, 0.01, 1)
	require.ErrorIs(t, err, random.ErrConstructFailed)
}
