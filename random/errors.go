// SPDX-License-Identifier: MIT

// Package random - sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Methods attach context with %w: "RandomBladeEx: grade 7: random: invalid grade".
//   - Validation panics are confined to option constructors.

package random

import (
	"errors"
	"fmt"
)

// ErrBadGrade indicates a grade outside [0, 4] or a grade usage with bits
// above grade 4.
var ErrBadGrade = errors.New("random: invalid grade")

// ErrInsufficientBasis indicates that the basis mask selects fewer basis
// vectors than the requested grade, so no non-zero blade exists.
var ErrInsufficientBasis = errors.New("random: basis mask too small for grade")

// ErrBadParameter indicates a non-finite scale, a negative or non-finite
// minimum norm, or a non-positive largest-coordinate bound.
var ErrBadParameter = errors.New("random: invalid parameter")

// ErrConstructFailed indicates that rejection sampling exhausted its attempt
// budget without an acceptable candidate.
// Usage: if errors.Is(err, ErrConstructFailed) { /* relax bounds or reseed */ }.
var ErrConstructFailed = errors.New("random: construction failed")

// randomErrorf wraps err as "<method>: <detail>: <err>".
func randomErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
