// SPDX-License-Identifier: MIT
// Package ga: sentinel error set.
//
// Algebra operators are total and never return errors. Sentinels here are
// produced only by constructors (New/FromGrade), the checked helpers
// (CheckedUnit, CheckedVersorInverse, VersorMatrix) and the text parser.
// Callers branch with errors.Is; context is attached with %w.

package ga

import (
	"errors"
	"fmt"
)

var (
	// ErrCoordinateCount indicates that a coordinate slice does not match
	// the size required by the requested GradeUsage or Grade.
	ErrCoordinateCount = errors.New("ga: coordinate count mismatch")

	// ErrBadGrade indicates a grade outside [0,4] or a GradeUsage with bits
	// outside the 5-bit range.
	ErrBadGrade = errors.New("ga: invalid grade")

	// ErrSingular indicates that a norm or a versor's squared norm is within
	// the caller's epsilon of zero, so the element cannot be inverted.
	ErrSingular = errors.New("ga: singular element")

	// ErrParse indicates malformed multivector text.
	ErrParse = errors.New("ga: malformed multivector text")
)

// gaErrorf wraps err with a method tag: "<method>: <detail>: <err>".
func gaErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
