// SPDX-License-Identifier: MIT

// Package oracle checks the algebraic identities of package ga on random
// inputs and reports the worst observed deviation per identity.
//
// A Check couples a property (additive inverse, gp associativity, versor
// metric preservation, parse round trip, ...) with an absolute tolerance and
// a base iteration count. The Runner executes a selection of checks, each
// with its own random.Generator seeded from the run seed and the check's
// position in the registry, so a check reproduces the same draws whether it
// runs alone or alongside the others and regardless of scheduling.
//
// Deviations are measured as the largest absolute coordinate of a
// difference multivector (or the analogous scalar). A NaN deviation always
// fails. Failures are data, not errors: Run returns an error only for an
// unknown check name or a cancelled context.
//
// Options:
//   - WithSeed, WithIterationScale, WithParallelism, WithChecks, WithLogger.
//
// Reports render as one line per check (WriteText) or as YAML (WriteYAML).
package oracle
