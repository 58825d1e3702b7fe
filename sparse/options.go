// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegree is the branching factor of the backing B-tree. 32 keeps
	// nodes cache-friendly for small coordinate keys; raise it for very
	// large stores, lower it only in tests.
	DefaultDegree = 32
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDegreeInvalid = "sparse: WithDegree: degree must be at least 2"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	degree int // B-tree branching factor; DefaultDegree
}

// ---------- Constructors (WithX) ----------

// WithDegree sets the branching factor of the backing B-tree.
// Implementation:
//   - Stage 1: validate degree ≥ 2 (a B-tree needs at least two children).
//   - Stage 2: return a setter that writes degree into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - Purely a performance knob: every degree yields identical semantics
//     and identical iteration order.
//
// Inputs:
//   - degree: branching factor, ≥ 2.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when degree < 2.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithDegree(degree int) Option {
	if degree < 2 {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = degree }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply setters in order; last-writer-wins semantics.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		degree: DefaultDegree,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
