// SPDX-License-Identifier: MIT

// Package oracle - Check type and the per-run environment handed to checks.

package oracle

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/e4ga/ga"
	"github.com/katalvlaran/e4ga/random"
)

const (
	// MinUniformityDraws is the floor on draws for the uniformity checks;
	// below it the 256-bin histogram band is too tight to be meaningful.
	MinUniformityDraws = 1 << 18

	// MaxIterationScale bounds WithIterationScale.
	MaxIterationScale = 1e6

	// ctxPoll is how many iterations run between context checks.
	ctxPoll = 64
)

// Check is one algebraic property with its tolerance.
type Check struct {
	// Name is the stable identifier used by WithChecks and reports.
	Name string
	// Description states the identity in one line.
	Description string
	// Tolerance is the largest acceptable deviation.
	Tolerance float64
	// Iterations is the base loop count, multiplied by the iteration scale.
	Iterations int

	minIterations int
	run           func(e *env) error
}

// env is the state of one check execution.
type env struct {
	ctx   context.Context
	gen   *random.Generator
	iters int

	worst  float64
	detail string
}

// observe records dev if it is the worst so far. NaN beats everything.
func (e *env) observe(dev float64, format string, args ...any) {
	if math.IsNaN(e.worst) {
		return
	}
	if math.IsNaN(dev) || dev > e.worst {
		e.worst = dev
		e.detail = fmt.Sprintf(format, args...)
	}
}

// loop runs body e.iters times, polling the context.
func (e *env) loop(body func(i int) error) error {
	for i := 0; i < e.iters; i++ {
		if i%ctxPoll == 0 {
			if err := e.ctx.Err(); err != nil {
				return err
			}
		}
		if err := body(i); err != nil {
			return err
		}
	}
	return nil
}

// iterations resolves the loop count of c under scale.
func (c Check) iterations(scale float64) int {
	n := int(math.Ceil(float64(c.Iterations) * scale))
	if n < 1 {
		n = 1
	}
	if n < c.minIterations {
		n = c.minIterations
	}
	return n
}

// deviation is the largest absolute coordinate of a - b.
func deviation(a, b ga.Multivector) float64 {
	return largest(ga.Subtract(a, b))
}

// largest is LargestCoordinate that propagates NaN.
func largest(m ga.Multivector) float64 {
	worst := 0.0
	for _, v := range m.Coordinates() {
		if math.IsNaN(v) {
			return v
		}
		if a := math.Abs(v); a > worst {
			worst = a
		}
	}
	return worst
}

// gradeOfParity returns a uniformly chosen grade in [0,4] with grade%2 == parity.
func gradeOfParity(gen *random.Generator, parity int) int {
	if parity == 0 {
		return 2 * int(gen.Float64()*3) // 0, 2, 4
	}
	return 1 + 2*int(gen.Float64()*2) // 1, 3
}

// anyGrade returns a uniformly chosen grade in [0,4].
func anyGrade(gen *random.Generator) int { return int(gen.Float64() * ga.NumGrades) }

// anyUsage returns a uniformly chosen non-empty grade usage.
func anyUsage(gen *random.Generator) ga.GradeUsage {
	return ga.GradeUsage(1 + int(gen.Float64()*float64(ga.GUAll)))
}
