// SPDX-License-Identifier: MIT

package random

import (
	"math"
	"math/bits"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/e4ga/ga"
)

// Generator is an explicit random-multivector source.
type Generator struct {
	rng         *rand.Rand
	seed        int64
	maxAttempts int
	log         *zap.Logger
}

// New builds a Generator from opts (see options.go for defaults).
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)
	return &Generator{
		rng:         cfg.rng,
		seed:        cfg.seed,
		maxAttempts: cfg.maxAttempts,
		log:         cfg.log,
	}
}

// Float64 returns a uniform draw in [0, 1).
func (g *Generator) Float64() float64 { return g.rng.Float64() }

// Seed returns the seed of the current source.
func (g *Generator) Seed() int64 { return g.seed }

// Reseed restarts the source at seed.
func (g *Generator) Reseed(seed int64) {
	g.seed = seed
	g.rng.Seed(seed)
}

// ReseedFromTime restarts the source from the wall clock and returns the seed.
func (g *Generator) ReseedFromTime() int64 {
	g.Reseed(time.Now().UnixNano())
	return g.seed
}

// symmetric returns a uniform draw in [-1, 1).
func (g *Generator) symmetric() float64 { return 2*g.rng.Float64() - 1 }

// RandomVector returns a grade-1 vector whose coordinates on the basis
// vectors selected by basis (bit i = e_{i+1}) are uniform in [-scale, scale);
// the other coordinates are zero. The draw order is e1..e4, skipping
// unselected vectors.
func (g *Generator) RandomVector(scale float64, basis uint8) ga.Multivector {
	var x [ga.Dimension]float64
	for i := 0; i < ga.Dimension; i++ {
		if basis&(1<<i) != 0 {
			x[i] = scale * g.symmetric()
		}
	}
	return ga.Vector(x[0], x[1], x[2], x[3])
}

// RandomMultivector returns a multivector with exactly the groups of gu,
// every coordinate uniform in [-scale, scale).
//
// Errors:
//   - ErrBadGrade if gu has bits above grade 4.
func (g *Generator) RandomMultivector(scale float64, gu ga.GradeUsage) (ga.Multivector, error) {
	if !gu.Valid() {
		return ga.Multivector{}, randomErrorf("RandomMultivector", "usage %#x", ErrBadGrade, uint8(gu))
	}
	c := make([]float64, ga.Size(gu))
	for i := range c {
		c[i] = scale * g.symmetric()
	}
	return ga.New(gu, c)
}

// RandomBlade is RandomBladeEx over all four basis vectors with
// DefaultMinimumNorm and a largest-coordinate bound of
// DefaultLargestFactor*scale.
func (g *Generator) RandomBlade(scale float64, grade int) (ga.Multivector, error) {
	return g.RandomBladeEx(scale, grade, 0xF, DefaultMinimumNorm, DefaultLargestFactor*scale)
}

// RandomVersor is RandomVersorEx with the defaults of RandomBlade.
func (g *Generator) RandomVersor(scale float64, grade int) (ga.Multivector, error) {
	return g.RandomVersorEx(scale, grade, 0xF, DefaultMinimumNorm, DefaultLargestFactor*scale)
}

// RandomBladeEx draws a grade-`grade` blade as the outer product of `grade`
// random vectors restricted to basis, rescaled by scale*r/norm2.
// With minimumNorm == 0 a candidate of zero norm is returned unscaled
// instead of being redrawn.
//
// Errors:
//   - ErrBadGrade, ErrInsufficientBasis, ErrBadParameter on invalid input.
//   - ErrConstructFailed when every attempt was rejected.
//
// Complexity: O(attempts * grade) products.
func (g *Generator) RandomBladeEx(scale float64, grade int, basis uint8, minimumNorm, largestCoordinate float64) (ga.Multivector, error) {
	return g.sample("RandomBladeEx", ga.OP, scale, grade, basis, minimumNorm, largestCoordinate)
}

// RandomVersorEx is RandomBladeEx with the geometric product as the fold, so
// the result is an invertible versor that need not be a blade.
func (g *Generator) RandomVersorEx(scale float64, grade int, basis uint8, minimumNorm, largestCoordinate float64) (ga.Multivector, error) {
	return g.sample("RandomVersorEx", ga.GP, scale, grade, basis, minimumNorm, largestCoordinate)
}

// sample runs the rejection loop shared by blades and versors.
// Implementation:
//   - Stage 1: validate grade, basis capacity and the numeric bounds.
//   - Stage 2: per attempt draw r, fold grade vectors into 1 with combine.
//   - Stage 3: reject near-singular candidates (|n2| < minimumNorm²) and
//     candidates whose scaled largest coordinate reaches the bound.
func (g *Generator) sample(
	method string,
	combine func(a, b ga.Multivector) ga.Multivector,
	scale float64, grade int, basis uint8,
	minimumNorm, largestCoordinate float64,
) (ga.Multivector, error) {
	if grade < 0 || grade > ga.Dimension {
		return ga.Multivector{}, randomErrorf(method, "grade %d", ErrBadGrade, grade)
	}
	basis &= 0xF
	if have := bits.OnesCount8(basis); have < grade {
		return ga.Multivector{}, randomErrorf(method, "basis %04b has %d vectors, grade %d", ErrInsufficientBasis, basis, have, grade)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return ga.Multivector{}, randomErrorf(method, "scale %g", ErrBadParameter, scale)
	}
	if !(minimumNorm >= 0) || math.IsInf(minimumNorm, 0) {
		return ga.Multivector{}, randomErrorf(method, "minimumNorm %g", ErrBadParameter, minimumNorm)
	}
	if !(largestCoordinate > 0) {
		return ga.Multivector{}, randomErrorf(method, "largestCoordinate %g", ErrBadParameter, largestCoordinate)
	}

	minNorm2 := minimumNorm * minimumNorm
	var (
		r, n2, mul float64
		x          ga.Multivector
		i          int
	)
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		r = g.Float64()
		x = ga.Scalar(1)
		for i = 0; i < grade; i++ {
			x = combine(x, g.RandomVector(1, basis))
		}
		n2 = ga.Norm2(x)
		if math.Abs(n2) < minNorm2 {
			continue
		}
		if n2 == 0 {
			// Only reachable with minimumNorm == 0; keep the candidate unscaled.
			if x.LargestCoordinate() >= largestCoordinate {
				continue
			}
			return x, nil
		}
		mul = scale * r / n2
		if math.Abs(mul)*x.LargestCoordinate() >= largestCoordinate {
			continue
		}
		if attempt > 1 {
			g.log.Debug("random draw accepted after rejections",
				zap.String("method", method),
				zap.Int("grade", grade),
				zap.Int("attempts", attempt),
			)
		}
		return ga.Scale(x, mul), nil
	}
	g.log.Debug("random draw exhausted attempts",
		zap.String("method", method),
		zap.Int("grade", grade),
		zap.Float64("scale", scale),
		zap.Int("max_attempts", g.maxAttempts),
	)
	return ga.Multivector{}, randomErrorf(method, "%d attempts", ErrConstructFailed, g.maxAttempts)
}
