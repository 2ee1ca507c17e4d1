// SPDX-License-Identifier: MIT

// Package random draws random multivectors of the 4D Euclidean algebra.
//
// A Generator owns one *rand.Rand and is threaded explicitly through every
// draw, so a fixed seed reproduces the same sequence of blades and versors.
// A Generator is NOT safe for concurrent use; give each goroutine its own
// (the oracle runner seeds one per check).
//
// Blades and versors are built by rejection sampling:
//
//  1. draw r in [0,1);
//  2. fold `grade` random vectors (coordinates in [-1,1] on the basis
//     vectors selected by a 4-bit mask) into the scalar 1 with the outer
//     product (RandomBladeEx) or the geometric product (RandomVersorEx);
//  3. reject when |norm2| < minimumNorm², or when the scaled candidate
//     would reach largestCoordinate;
//  4. otherwise return candidate * scale * r / norm2.
//
// Rejection is bounded by WithMaxAttempts; exhausting it returns
// ErrConstructFailed instead of looping forever on a bad parameter set.
//
// Options:
//   - WithSeed / WithRand / WithTimeSeed choose the source.
//   - WithMaxAttempts bounds the rejection loop.
//   - WithLogger attaches a *zap.Logger for retry diagnostics.
//
// Option constructors panic on meaningless values; draws return sentinel
// errors (see errors.go) wrapped with the method name.
package random
