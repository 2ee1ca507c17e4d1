// SPDX-License-Identifier: MIT

package oracle

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/e4ga/random"
)

// Runner executes a selection of checks concurrently.
type Runner struct {
	cfg config
}

// NewRunner builds a Runner from opts (see options.go for defaults).
func NewRunner(opts ...Option) *Runner {
	return &Runner{cfg: newConfig(opts...)}
}

// selected pairs a check with its registry index, which fixes its seed.
type selected struct {
	index int
	check Check
}

// Select resolves names against the registry, keeping registry order.
// An empty list selects every check.
//
// Errors:
//   - ErrUnknownCheck (wrapped with the name).
func Select(names ...string) ([]Check, error) {
	sel, err := selectIndexed(names)
	if err != nil {
		return nil, err
	}
	out := make([]Check, len(sel))
	for i, s := range sel {
		out[i] = s.check
	}
	return out, nil
}

func selectIndexed(names []string) ([]selected, error) {
	if len(names) == 0 {
		out := make([]selected, len(registry))
		for i, c := range registry {
			out[i] = selected{index: i, check: c}
		}
		return out, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := make([]selected, 0, len(names))
	for i, c := range registry {
		if want[c.Name] {
			out = append(out, selected{index: i, check: c})
			delete(want, c.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("Select: %q: %w", n, ErrUnknownCheck)
		}
	}
	return out, nil
}

// Run executes the configured checks and collects one Result per check.
// Implementation:
//   - Stage 1: resolve check names (ErrUnknownCheck on a miss).
//   - Stage 2: run checks through an errgroup limited to the parallelism;
//     check i of the registry draws from a Generator seeded seed+i.
//   - Stage 3: assemble the Report in registry order.
//
// A check that cannot draw its operands (random.ErrConstructFailed) fails
// with the error as detail; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	sel, err := selectIndexed(r.cfg.names)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	log := r.cfg.log
	log.Info("oracle run started",
		zap.Int64("seed", r.cfg.seed),
		zap.Float64("iteration_scale", r.cfg.scale),
		zap.Int("checks", len(sel)),
		zap.Int("parallelism", r.cfg.parallelism),
	)

	results := make([]Result, len(sel))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.parallelism)
	for i, s := range sel {
		i, s := i, s
		g.Go(func() error {
			res, err := r.runOne(gctx, s)
			if err != nil {
				return err
			}
			results[i] = res
			if res.Passed {
				log.Debug("check passed", zap.String("check", res.Name), zap.Float64("deviation", res.Deviation), zap.Duration("took", res.Duration))
			} else {
				log.Warn("check failed", zap.String("check", res.Name), zap.Float64("deviation", res.Deviation), zap.Float64("tolerance", res.Tolerance), zap.String("detail", res.Detail))
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	rep := &Report{Seed: r.cfg.seed, IterationScale: r.cfg.scale, Results: results}
	log.Info("oracle run finished", zap.Bool("passed", rep.Passed()), zap.Int("failures", len(rep.Failures())))
	return rep, nil
}

// runOne executes one check. Only context errors are returned.
func (r *Runner) runOne(ctx context.Context, s selected) (Result, error) {
	c := s.check
	e := &env{
		ctx: ctx,
		gen: random.New(
			random.WithSeed(r.cfg.seed+int64(s.index)),
			random.WithLogger(r.cfg.log.With(zap.String("check", c.Name))),
		),
		iters: c.iterations(r.cfg.scale),
	}
	start := time.Now()
	err := c.run(e)
	res := Result{
		Name:        c.Name,
		Description: c.Description,
		Deviation:   e.worst,
		Tolerance:   c.Tolerance,
		Iterations:  e.iters,
		Detail:      e.detail,
		Duration:    time.Since(start),
	}
	switch {
	case err != nil && ctx.Err() != nil:
		return Result{}, err
	case err != nil:
		res.Deviation = math.Inf(1)
		res.Detail = err.Error()
	default:
		res.Passed = e.worst <= c.Tolerance
	}
	return res, nil
}
