// SPDX-License-Identifier: MIT
// Package pwl: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the pwl
// package. All operations return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package pwl

import "errors"

var (
	// ErrEmptyFunction indicates evaluation reached a function node that holds
	// no knots. It can surface at any dimension of a nested evaluation.
	ErrEmptyFunction = errors.New("pwl: function has no knots")

	// ErrOutOfBounds indicates the query point lies outside [min knot, max knot]
	// and the effective out-of-bounds policy is OOBDie. The wrapped message
	// carries the offending X.
	ErrOutOfBounds = errors.New("pwl: out of bounds")

	// ErrConfiguration indicates an unrecognized out-of-bounds policy string.
	// Detected at lookup time, when the policy is first consulted.
	ErrConfiguration = errors.New("pwl: bad configuration")

	// ErrNaNInf signals a NaN or ±Inf value where a finite number is required
	// (knot keys, scalar knot values, query points).
	ErrNaNInf = errors.New("pwl: NaN or Inf encountered")

	// ErrKnotArity indicates Knot was called with fewer than one key plus a value.
	ErrKnotArity = errors.New("pwl: knot needs at least one key and a value")

	// ErrNilFunc indicates a nil *Func was supplied where a function is required.
	ErrNilFunc = errors.New("pwl: nil function")

	// ErrDimension indicates the argument count handed to Eval does not match
	// the depth of the function along the evaluated path.
	ErrDimension = errors.New("pwl: argument count does not match function depth")

	// ErrNoValue is how the scalar convenience wrapper (Eval) reports the
	// OOBUndef short-circuit. The step-wise Evaluate chain reports the same
	// outcome as the NoValue result, which is not an error.
	ErrNoValue = errors.New("pwl: no value for query (undef out-of-bounds policy)")
)
