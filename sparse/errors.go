// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors return
// these sentinels and tests match them via errors.Is. User-triggered error
// conditions never panic; panics are reserved for programmer errors (wrong
// coordinate arity, unresolved cursor access) and carry the stable message
// constants defined next to their call sites.

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrDimensionality is returned by New when the requested number of
	// dimensions is below MinDims. The dimensionality is fixed for the
	// lifetime of a Matrix, so this is checked exactly once.
	ErrDimensionality = errors.New("sparse: dimensionality must be at least 2")
)
