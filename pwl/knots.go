// SPDX-License-Identifier: MIT
// File: knots.go
// Role: per-node knot storage — canonical keys, insertion (including
// arbitrary-depth paths with autovivification) and the lazily rebuilt
// ascending key order plus key→position index.
//
// Invariants:
//   - keys within one node are unique; a later insert overwrites.
//   - order, once rebuilt, is strictly ascending; index mirrors it.
//   - any mutation marks the node dirty; order/index are rebuilt on the
//     next lookup, never eagerly.

package pwl

import (
	"fmt"
	"math"
	"sort"
)

// canonKey validates x and collapses it to a canonical numeric form.
// NaN and ±Inf are rejected; negative zero collapses to positive zero so
// that -0.0 and 0.0 address the same knot.
func canonKey(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: key %v", ErrNaNInf, x)
	}
	if x == 0 {
		return 0, nil
	}

	return x, nil
}

// canonScalar validates a scalar knot value. Same finiteness rule as keys,
// but no -0 collapsing: the payload is returned as given.
func canonScalar(y float64) (float64, error) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: value %v", ErrNaNInf, y)
	}

	return y, nil
}

// insert stores v at key, overwriting any previous value, and invalidates
// the cached order/index. key must already be canonical.
// Complexity: O(1).
func (f *Func) insert(key float64, v Value) {
	f.knots[key] = v
	f.dirty = true
}

// insertPath descends path[0], path[1], ... autovivifying empty child nodes,
// and stores v at the final key. Intermediate slots holding a scalar are
// overwritten by a fresh empty child (upsert semantics). Keys are
// canonicalized here; the first invalid key aborts the whole insertion.
// Complexity: O(len(path)).
func (f *Func) insertPath(path []float64, v Value) error {
	if len(path) == 0 {
		return ErrKnotArity
	}

	node := f
	for depth := 0; depth < len(path)-1; depth++ {
		k, err := canonKey(path[depth])
		if err != nil {
			return err
		}
		node = node.autovivify(k)
	}

	k, err := canonKey(path[len(path)-1])
	if err != nil {
		return err
	}
	node.insert(k, v)

	return nil
}

// autovivify returns the nested child at key, creating a fresh empty node
// (no local policy — it inherits at evaluation time) when the slot is
// missing or holds a scalar. key must already be canonical.
func (f *Func) autovivify(key float64) *Func {
	if cur, ok := f.knots[key]; ok && cur.IsFunc() {
		return cur.Func()
	}
	child := New()
	f.insert(key, FuncValue(child))

	return child
}

// ordered returns the ascending key sequence, rebuilding the cached order
// and index first if the node was mutated since the last lookup.
// Complexity: O(n log n) after a mutation, O(1) otherwise.
func (f *Func) ordered() []float64 {
	if f.dirty {
		f.rebuild()
	}

	return f.order
}

// rebuild regenerates order (ascending) and index (key→position) from the
// knot map and clears the dirty flag.
func (f *Func) rebuild() {
	f.order = f.order[:0]
	for k := range f.knots {
		f.order = append(f.order, k)
	}
	sort.Float64s(f.order)

	f.index = make(map[float64]int, len(f.order))
	for i, k := range f.order {
		f.index[k] = i
	}
	f.dirty = false
}
