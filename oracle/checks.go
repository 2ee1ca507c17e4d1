// SPDX-License-Identifier: MIT

// Package oracle - the check registry.
//
// Tolerances are absolute and sized for the default draw scale of 1
// (coordinates below 4). Every check that composes products states its
// operand construction next to it.

package oracle

import (
	"math"

	"github.com/katalvlaran/e4ga/ga"
	"github.com/katalvlaran/e4ga/matrix"
)

const (
	baseIterations = 1000
	histogramBins  = 256

	// versorLargest keeps sandwich operands away from near-singular versors.
	versorLargest = 2.0
	singularEps   = 1e-12
)

var registry = []Check{
	{Name: "uniformity-mean", Description: "mean of Float64 draws is 0.5", Tolerance: 0.01,
		Iterations: MinUniformityDraws, minIterations: MinUniformityDraws, run: checkUniformityMean},
	{Name: "uniformity-histogram", Description: "every one of 256 bins holds 0.75x..1.25x its expected count", Tolerance: 0.25,
		Iterations: MinUniformityDraws, minIterations: MinUniformityDraws, run: checkUniformityHistogram},
	{Name: "additive-inverse", Description: "A + (-A) = 0", Tolerance: 1e-5,
		Iterations: baseIterations, run: checkAdditiveInverse},
	{Name: "gp-distributivity-left", Description: "A*(B+C) = A*B + A*C", Tolerance: 1e-4,
		Iterations: baseIterations, run: checkDistributivityLeft},
	{Name: "gp-distributivity-right", Description: "(A+B)*C = A*C + B*C", Tolerance: 1e-4,
		Iterations: baseIterations, run: checkDistributivityRight},
	{Name: "gp-associativity", Description: "A*(B*C) = (A*B)*C", Tolerance: 1e-3,
		Iterations: baseIterations, run: checkAssociativity},
	{Name: "grade-decomposition", Description: "sum of grade parts is A; ExtractGradeK agrees with the complement", Tolerance: 1e-6,
		Iterations: baseIterations, run: checkGradeDecomposition},
	{Name: "blade-grade-bitmap", Description: "a random grade-k blade has numeric grade bitmap {k}", Tolerance: 0,
		Iterations: baseIterations, run: checkBladeGradeBitmap},
	{Name: "product-consistency", Description: "sp, lc, rc, hip, mhip equal their grade selections of gp", Tolerance: 1e-4,
		Iterations: baseIterations, run: checkProductConsistency},
	{Name: "outer-nilpotency", Description: "A ^ A = 0 for a non-scalar blade A", Tolerance: 1e-5,
		Iterations: baseIterations, run: checkOuterNilpotency},
	{Name: "duality-involution", Description: "undual(dual(A)) = A = dual(undual(A))", Tolerance: 1e-6,
		Iterations: baseIterations, run: checkDuality},
	{Name: "versor-metric-preservation", Description: "mhip(X,Y) = mhip(VXV^-1, VYV^-1)", Tolerance: 1e-4,
		Iterations: baseIterations, run: checkMetricPreservation},
	{Name: "versor-roundtrip", Description: "applying V then V^-1 restores X", Tolerance: 1e-4,
		Iterations: baseIterations, run: checkVersorRoundTrip},
	{Name: "versor-inverse", Description: "V^-1*V = V*V^-1 = 1", Tolerance: 1e-3,
		Iterations: baseIterations, run: checkVersorInverse},
	{Name: "unit-norm", Description: "norm(unit(V)) = 1", Tolerance: 1e-9,
		Iterations: baseIterations, run: checkUnitNorm},
	{Name: "series-identity", Description: "exp(A,12) = sinh(A,12) + cosh(A,12) for bivector generators", Tolerance: 0.032,
		Iterations: baseIterations, run: checkSeriesIdentity},
	{Name: "involution-signs", Description: "reverse, grade involution, Clifford conjugate and negate scale each group by its sign", Tolerance: 1e-6,
		Iterations: baseIterations, run: checkInvolutionSigns},
	{Name: "parse-roundtrip", Description: "Parse(Format(A)) = A", Tolerance: 1e-6,
		Iterations: baseIterations, run: checkParseRoundTrip},
	{Name: "metric-ground-truth", Description: "ei*ej has scalar part 1 if i == j else 0", Tolerance: 1e-6,
		Iterations: 1, run: checkMetricGroundTruth},
	{Name: "versor-matrix-orthogonal", Description: "the vector matrix M of a versor has M^T M = I and |det M| = 1", Tolerance: 1e-6,
		Iterations: baseIterations, run: checkVersorMatrix},
	{Name: "hadamard-roundtrip", Description: "InverseHadamard(Hadamard(A,B),B) = A for B away from zero", Tolerance: 1e-12,
		Iterations: baseIterations, run: checkHadamardRoundTrip},
	{Name: "increment-decrement", Description: "decrement(increment(A)) = A and increment adds 1 to the scalar part", Tolerance: 1e-12,
		Iterations: baseIterations, run: checkIncrementDecrement},
}

// Checks returns a copy of the registry in run order.
func Checks() []Check {
	out := make([]Check, len(registry))
	copy(out, registry)
	return out
}

// CheckNames lists the registry names in run order.
func CheckNames() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = c.Name
	}
	return out
}

func checkUniformityMean(e *env) error {
	sum := 0.0
	if err := e.loop(func(int) error {
		sum += e.gen.Float64()
		return nil
	}); err != nil {
		return err
	}
	mean := sum / float64(e.iters)
	e.observe(math.Abs(mean-0.5), "mean %.6f over %d draws", mean, e.iters)
	return nil
}

func checkUniformityHistogram(e *env) error {
	var bins [histogramBins]int
	if err := e.loop(func(int) error {
		bins[int(e.gen.Float64()*histogramBins)]++
		return nil
	}); err != nil {
		return err
	}
	expected := float64(e.iters) / histogramBins
	for b, n := range bins {
		e.observe(math.Abs(float64(n)/expected-1), "bin %d holds %d, expected %.1f", b, n, expected)
	}
	return nil
}

func checkAdditiveInverse(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		e.observe(largest(ga.Add(a, ga.Negate(a))), "A = %v", a)
		return nil
	})
}

// parityTriple draws three versors whose grades share one parity.
func parityTriple(e *env, i int) (a, b, c ga.Multivector, err error) {
	parity := i % 2
	if a, err = e.gen.RandomVersor(1, gradeOfParity(e.gen, parity)); err != nil {
		return
	}
	if b, err = e.gen.RandomVersor(1, gradeOfParity(e.gen, parity)); err != nil {
		return
	}
	c, err = e.gen.RandomVersor(1, gradeOfParity(e.gen, parity))
	return
}

func checkDistributivityLeft(e *env) error {
	return e.loop(func(i int) error {
		a, b, c, err := parityTriple(e, i)
		if err != nil {
			return err
		}
		lhs := ga.GP(a, ga.Add(b, c))
		rhs := ga.Add(ga.GP(a, b), ga.GP(a, c))
		e.observe(deviation(lhs, rhs), "A = %v, B = %v, C = %v", a, b, c)
		return nil
	})
}

func checkDistributivityRight(e *env) error {
	return e.loop(func(i int) error {
		a, b, c, err := parityTriple(e, i)
		if err != nil {
			return err
		}
		lhs := ga.GP(ga.Add(a, b), c)
		rhs := ga.Add(ga.GP(a, c), ga.GP(b, c))
		e.observe(deviation(lhs, rhs), "A = %v, B = %v, C = %v", a, b, c)
		return nil
	})
}

func checkAssociativity(e *env) error {
	return e.loop(func(i int) error {
		a, b, c, err := parityTriple(e, i)
		if err != nil {
			return err
		}
		lhs := ga.GP(a, ga.GP(b, c))
		rhs := ga.GP(ga.GP(a, b), c)
		e.observe(deviation(lhs, rhs), "A = %v, B = %v, C = %v", a, b, c)
		return nil
	})
}

var extractFixed = [ga.NumGrades]func(ga.Multivector) ga.Multivector{
	ga.ExtractGrade0, ga.ExtractGrade1, ga.ExtractGrade2, ga.ExtractGrade3, ga.ExtractGrade4,
}

func checkGradeDecomposition(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		var sum ga.Multivector
		for g := ga.Grade(0); g < ga.NumGrades; g++ {
			sum = ga.Add(sum, ga.ExtractGrade(a, g.Usage()))
			rest := ga.ExtractGrade(a, ga.GUAll&^g.Usage())
			e.observe(deviation(extractFixed[g](a), ga.Subtract(a, rest)), "grade %d of A = %v", g, a)
		}
		e.observe(deviation(sum, a), "sum of grades of A = %v", a)
		return nil
	})
}

func checkBladeGradeBitmap(e *env) error {
	return e.loop(func(int) error {
		k := anyGrade(e.gen)
		b, err := e.gen.RandomBlade(1, k)
		if err != nil {
			return err
		}
		got := ga.GradeBitmap(b, singularEps)
		want := ga.Grade(k).Usage()
		if b.LargestCoordinate() <= singularEps {
			// scale*r underflowed to a numerically empty blade.
			want = 0
		}
		dev := 0.0
		if got != want {
			dev = 1
		}
		e.observe(dev, "grade %d blade %v has bitmap %v", k, b, got)
		return nil
	})
}

// selectGrade applies the grade selection rule of kind to a ga x gb product.
func selectGrade(kind ga.ProductKind, x, y ga.Grade) (ga.Grade, bool) {
	diff := x - y
	if y > x {
		diff = y - x
	}
	switch kind {
	case ga.ProductScalar:
		return 0, true
	case ga.ProductLeftContraction:
		return y - x, x <= y
	case ga.ProductRightContraction:
		return x - y, x >= y
	case ga.ProductHestenes:
		return diff, x != 0 && y != 0
	case ga.ProductModifiedHestenes:
		return diff, true
	}
	return 0, false
}

// referenceProduct rebuilds a contraction from per-group geometric products.
func referenceProduct(kind ga.ProductKind, a, b ga.Multivector) ga.Multivector {
	var sum ga.Multivector
	for _, x := range a.GradeUsage().Grades() {
		ax := ga.ExtractGrade(a, x.Usage())
		for _, y := range b.GradeUsage().Grades() {
			gc, ok := selectGrade(kind, x, y)
			if !ok {
				continue
			}
			p := ga.GP(ax, ga.ExtractGrade(b, y.Usage()))
			sum = ga.Add(sum, ga.ExtractGrade(p, gc.Usage()))
		}
	}
	return sum
}

var contractions = []struct {
	kind ga.ProductKind
	fn   func(a, b ga.Multivector) ga.Multivector
}{
	{ga.ProductScalar, ga.SP},
	{ga.ProductLeftContraction, ga.LC},
	{ga.ProductRightContraction, ga.RC},
	{ga.ProductHestenes, ga.HIP},
	{ga.ProductModifiedHestenes, ga.MHIP},
}

func checkProductConsistency(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		b, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		for _, c := range contractions {
			e.observe(deviation(c.fn(a, b), referenceProduct(c.kind, a, b)), "%v of A = %v, B = %v", c.kind, a, b)
		}
		return nil
	})
}

func checkOuterNilpotency(e *env) error {
	return e.loop(func(int) error {
		k := 1 + int(e.gen.Float64()*ga.Dimension)
		a, err := e.gen.RandomBlade(1, k)
		if err != nil {
			return err
		}
		e.observe(largest(ga.OP(a, a)), "grade %d blade A = %v", k, a)
		return nil
	})
}

func checkDuality(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		e.observe(deviation(ga.Undual(ga.Dual(a)), a), "undual(dual(A)), A = %v", a)
		e.observe(deviation(ga.Dual(ga.Undual(a)), a), "dual(undual(A)), A = %v", a)
		return nil
	})
}

// boundedVersor draws a versor of grade 1..4 with coordinates under versorLargest.
func boundedVersor(e *env) (ga.Multivector, error) {
	k := 1 + int(e.gen.Float64()*ga.Dimension)
	return e.gen.RandomVersorEx(1, k, 0xF, 0.01, versorLargest)
}

func checkMetricPreservation(e *env) error {
	return e.loop(func(i int) error {
		v, err := boundedVersor(e)
		if err != nil {
			return err
		}
		k := anyGrade(e.gen)
		x, err := e.gen.RandomBlade(1, k)
		if err != nil {
			return err
		}
		y, err := e.gen.RandomBlade(1, k)
		if err != nil {
			return err
		}
		var vx, vy ga.Multivector
		if i%2 == 0 {
			vx, vy = ga.ApplyVersor(v, x), ga.ApplyVersor(v, y)
		} else {
			u := ga.Unit(v)
			vx, vy = ga.ApplyUnitVersor(u, x), ga.ApplyUnitVersor(u, y)
		}
		e.observe(deviation(ga.MHIP(x, y), ga.MHIP(vx, vy)), "V = %v, X = %v, Y = %v", v, x, y)
		return nil
	})
}

func checkVersorRoundTrip(e *env) error {
	return e.loop(func(int) error {
		v, err := boundedVersor(e)
		if err != nil {
			return err
		}
		x, err := e.gen.RandomBlade(1, anyGrade(e.gen))
		if err != nil {
			return err
		}
		vi, err := ga.CheckedVersorInverse(v, singularEps)
		if err != nil {
			e.observe(math.Inf(1), "V = %v: %v", v, err)
			return nil
		}
		back := ga.ApplyVersor(vi, ga.ApplyVersorWI(v, x, vi))
		e.observe(deviation(back, x), "V = %v, X = %v", v, x)
		return nil
	})
}

// unitDeviation measures how far p is from the scalar 1.
func unitDeviation(p ga.Multivector) float64 {
	s := p.ScalarPart()
	return math.Max(math.Abs(s-1), largest(ga.Subtract(p, ga.Scalar(s))))
}

func checkVersorInverse(e *env) error {
	return e.loop(func(int) error {
		v, err := e.gen.RandomVersor(1, anyGrade(e.gen))
		if err != nil {
			return err
		}
		vi := ga.VersorInverse(v)
		e.observe(unitDeviation(ga.GP(vi, v)), "V^-1*V, V = %v", v)
		e.observe(unitDeviation(ga.GP(v, vi)), "V*V^-1, V = %v", v)
		return nil
	})
}

func checkUnitNorm(e *env) error {
	return e.loop(func(int) error {
		v, err := e.gen.RandomVersor(1, 1+int(e.gen.Float64()*ga.Dimension))
		if err != nil {
			return err
		}
		u, err := ga.CheckedUnit(v, singularEps)
		if err != nil {
			e.observe(math.Inf(1), "V = %v: %v", v, err)
			return nil
		}
		e.observe(math.Abs(ga.Norm(u)-1), "V = %v", v)
		return nil
	})
}

func checkSeriesIdentity(e *env) error {
	return e.loop(func(i int) error {
		a, err := e.gen.RandomBlade(1, 2)
		if err != nil {
			return err
		}
		if i%2 == 1 {
			b, err := e.gen.RandomBlade(1, 2)
			if err != nil {
				return err
			}
			a = ga.Add(a, b)
		}
		const order = ga.DefaultSeriesOrder
		sum := ga.Add(ga.Sinh(a, order), ga.Cosh(a, order))
		e.observe(deviation(ga.Exp(a, order), sum), "A = %v", a)
		return nil
	})
}

var involutions = []struct {
	name  string
	fn    func(ga.Multivector) ga.Multivector
	signs [ga.NumGrades]float64
}{
	{"reverse", ga.Reverse, [ga.NumGrades]float64{1, 1, -1, -1, 1}},
	{"gradeInvolution", ga.GradeInvolution, [ga.NumGrades]float64{1, -1, 1, -1, 1}},
	{"cliffordConjugate", ga.CliffordConjugate, [ga.NumGrades]float64{1, -1, -1, 1, 1}},
	{"negate", ga.Negate, [ga.NumGrades]float64{-1, -1, -1, -1, -1}},
}

func checkInvolutionSigns(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		for _, inv := range involutions {
			got := inv.fn(a)
			if got.GradeUsage() != a.GradeUsage() {
				e.observe(math.Inf(1), "%s changed usage %v -> %v", inv.name, a.GradeUsage(), got.GradeUsage())
				continue
			}
			for _, g := range a.GradeUsage().Grades() {
				want := ga.Scale(ga.ExtractGrade(a, g.Usage()), inv.signs[g])
				e.observe(deviation(ga.ExtractGrade(got, g.Usage()), want), "%s grade %d of A = %v", inv.name, g, a)
			}
		}
		return nil
	})
}

func checkParseRoundTrip(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		s := ga.Format(a, ga.DefaultFormat)
		b, err := ga.Parse(s)
		if err != nil {
			e.observe(math.Inf(1), "Parse(%q): %v", s, err)
			return nil
		}
		e.observe(deviation(b, a), "text %q", s)
		return nil
	})
}

func checkMetricGroundTruth(e *env) error {
	basis := [ga.Dimension]ga.Multivector{ga.E1, ga.E2, ga.E3, ga.E4}
	return e.loop(func(int) error {
		for i, x := range basis {
			for j, y := range basis {
				want := 0.0
				if i == j {
					want = 1
				}
				got := ga.GP(x, y).ScalarPart()
				e.observe(math.Abs(got-want), "e%d*e%d scalar part %g", i+1, j+1, got)
			}
		}
		return nil
	})
}

func checkVersorMatrix(e *env) error {
	identity, err := matrix.NewIdentity(ga.Dimension)
	if err != nil {
		return err
	}
	return e.loop(func(int) error {
		v, err := boundedVersor(e)
		if err != nil {
			return err
		}
		m, err := ga.VersorMatrix(v, singularEps)
		if err != nil {
			e.observe(math.Inf(1), "V = %v: %v", v, err)
			return nil
		}
		mt, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		mtm, err := matrix.Mul(mt, m)
		if err != nil {
			return err
		}
		dev, err := matrix.MaxAbsDiff(mtm, identity)
		if err != nil {
			return err
		}
		e.observe(dev, "M^T M for V = %v", v)

		det, err := matrix.Determinant(m)
		if err != nil {
			return err
		}
		e.observe(math.Abs(math.Abs(det)-1), "det %g for V = %v", det, v)
		return nil
	})
}

func checkHadamardRoundTrip(e *env) error {
	return e.loop(func(int) error {
		gu := anyUsage(e.gen)
		a, err := e.gen.RandomMultivector(1, gu)
		if err != nil {
			return err
		}
		c := make([]float64, ga.Size(gu))
		for i := range c {
			c[i] = 1 + e.gen.Float64()
		}
		b, err := ga.New(gu, c)
		if err != nil {
			return err
		}
		e.observe(deviation(ga.InverseHadamard(ga.Hadamard(a, b), b), a), "A = %v, B = %v", a, b)
		return nil
	})
}

func checkIncrementDecrement(e *env) error {
	return e.loop(func(int) error {
		a, err := e.gen.RandomMultivector(1, anyUsage(e.gen))
		if err != nil {
			return err
		}
		inc := ga.Increment(a)
		e.observe(deviation(ga.Decrement(inc), a), "decrement(increment(A)), A = %v", a)
		e.observe(math.Abs(inc.ScalarPart()-a.ScalarPart()-1), "increment scalar part, A = %v", a)
		return nil
	})
}
