// Package e4ga is a geometric algebra engine for 4-dimensional Euclidean
// space: sparse multivectors, grade-group product dispatch, versors and
// truncated series, plus a property oracle that checks the algebra on
// random inputs.
//
// What is inside?
//
//	ga/      : Multivector, products (gp, op, sp, lc, rc, hip, mhip),
//	            duality, involutions, norms, versor sandwich, Exp/Sinh/Cosh,
//	            text Format/Parse, versor -> 4x4 matrix
//	random/  : seeded Generator: uniform scalars, vectors, and
//	            rejection-sampled blades and versors
//	matrix/  : small dense row-major matrices (Mul, Transpose, Determinant)
//	oracle/  : registry of algebraic identities + concurrent Runner + reports
//	cmd/e4gacheck/: CLI running the oracle, exit status 1 on any failure
//	examples/: runnable walkthrough
//
// Quick example:
//
//	r := ga.ExpDefault(ga.Basis(3, -math.Pi/4)) // rotor, 90° in the e1^e2 plane
//	v := ga.ApplyVersor(r, ga.E1)               // ≈ e2
//
// Storage is sparse by grade group: a 5-bit GradeUsage says which of the
// scalar, vector, bivector, trivector and pseudoscalar groups are stored,
// and only those coordinates are kept and multiplied.
//
//	go get github.com/katalvlaran/e4ga/ga
package e4ga
