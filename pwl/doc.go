// Package pwl builds continuous piece-wise-linear functions from sparse
// knots, with nested functions providing arbitrarily deep multi-dimensional
// interpolation evaluated one argument at a time.
//
// Overview:
//
//   - A Func maps real keys to values; evaluating at x linearly
//     interpolates between the two knots bracketing x.
//   - A knot's value may itself be a Func. Evaluation then returns a
//     *Continuation instead of a number; each further argument descends one
//     dimension, and once no nested values remain the whole pending stack
//     reduces bottom-up to a single Scalar.
//   - Out-of-domain queries are governed by an OOBPolicy: die (error),
//     extrapolate (continue the boundary slope), level (clamp flat) or
//     undef (yield the contagious NoValue result).
//
// When to use:
//
//   - Sparse calibration tables: f(rpm) = duty, f(temp)(rpm) = duty, ...
//   - Rate/tariff lookups where intermediate points are taken linearly.
//   - Any place a tiny tabulated function beats fitting a curve.
//
// Key features:
//
//   - Insertion in any order; keys are sorted lazily on first lookup.
//   - O(1) direct hits through a key→position index, O(log n) otherwise.
//   - Autovivification: f.Knot(0, 10, 30) creates the intermediate
//     dimension node on the fly.
//   - Curried insertion cursor: f.At(0).At(10).Set(30).
//   - Typed evaluation results (Scalar | *Continuation | NoValue) selected
//     by type switch, plus a variadic Eval convenience wrapper.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyFunction: evaluation reached a node with zero knots.
//   - ErrOutOfBounds:   OOBDie policy fired; the message carries the X.
//   - ErrConfiguration: unknown policy string, detected at lookup time.
//   - ErrNaNInf:        NaN or ±Inf key, value or query.
//   - ErrKnotArity:     Knot called without at least one key and a value.
//   - ErrNilFunc:       nil *Func supplied as a nested value.
//   - ErrDimension:     Eval argument count does not match function depth.
//   - ErrNoValue:       Eval's scalar wrapper hit the OOBUndef short-circuit.
//
// Policy inheritance:
//
//   - Each lookup resolves its policy as: node-local option → policy of the
//     outermost node of the current evaluation chain → OOBDie.
//   - Autovivified intermediate nodes never carry a local policy, so a
//     single WithOOB at the root governs the whole tree unless a subtree
//     attached via KnotFunc overrides it.
//
// Complexity:
//
//   - Knot: O(path length); the next lookup pays O(n log n) to re-sort.
//   - Evaluate/Continuation.Eval: O(w log n) per dimension, where w is the
//     pending-frontier width (1 for the first dimension, at most doubling
//     per nested dimension) and n the node's knot count.
//
// Thread safety:
//
//   - A Func is not safe for concurrent mutation. Evaluation is read-only;
//     synchronize externally (e.g. sync.RWMutex) or publish the tree once
//     and treat it as immutable. A *Continuation borrows the tree and must
//     not outlive it nor race with Knot.
//
// See example_test.go for runnable scenarios, including the nested 2-D
// fan-curve table.
package pwl
