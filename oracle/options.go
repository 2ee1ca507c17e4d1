// SPDX-License-Identifier: MIT

// Package oracle - functional options for Runner.
//
// Option constructors panic on meaningless values; Run never panics.

package oracle

import (
	"runtime"

	"go.uber.org/zap"
)

const (
	// DefaultSeed is the run seed when WithSeed is not given.
	DefaultSeed int64 = 1

	// DefaultIterationScale multiplies every check's base iteration count.
	DefaultIterationScale = 1.0
)

// Option customizes a Runner.
type Option func(*config)

type config struct {
	seed        int64
	scale       float64
	parallelism int
	names       []string
	log         *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:        DefaultSeed,
		scale:       DefaultIterationScale,
		parallelism: runtime.GOMAXPROCS(0),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed sets the run seed. Check i of the registry draws from seed+i.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIterationScale multiplies base iteration counts (0.01 for a smoke run,
// 10 for a soak). Every check still runs at least once, and the uniformity
// checks never drop below MinUniformityDraws.
// Panics if s is not a positive finite number.
func WithIterationScale(s float64) Option {
	if !(s > 0) || s > MaxIterationScale {
		panic("oracle: WithIterationScale(s<=0 or too large)")
	}
	return func(c *config) { c.scale = s }
}

// WithParallelism bounds the number of checks running at once.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("oracle: WithParallelism(n<1)")
	}
	return func(c *config) { c.parallelism = n }
}

// WithChecks restricts the run to the named checks, in registry order.
// An empty list keeps every check. Unknown names surface from Run as
// ErrUnknownCheck.
func WithChecks(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(c *config) { c.names = cp }
}

// WithLogger attaches a logger for per-check progress. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("oracle: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}
