// SPDX-License-Identifier: MIT
// File: function.go
// Role: the public Func type — construction, knot insertion (flat path,
// nested-function leaves and the curried cursor form), evaluation entry
// points and trivial accessors.
//
// Concurrency:
//   - A Func is a plain mutable value. Evaluation reads it, Knot mutates it.
//     Concurrent use across goroutines requires external synchronization.

package pwl

import "fmt"

// Func is one node of a piece-wise-linear function tree: a sparse set of
// x→Value knots plus an optional out-of-bounds policy. A knot's value may
// itself be a *Func, adding one evaluation dimension per nesting level.
// Children are owned by their parent; the structure is a strict tree.
type Func struct {
	knots map[float64]Value
	order []float64       // ascending keys, rebuilt lazily
	index map[float64]int // key → position in order
	dirty bool
	oob   OOBPolicy
}

// New creates an empty function node.
//
//	f := pwl.New(pwl.WithOOB(pwl.OOBLevel))
//
// Without options the node carries no local policy and resolves to OOBDie
// at lookup time (or to the chain's policy when evaluated as a descendant).
func New(opts ...Option) *Func {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Func{
		knots: make(map[float64]Value),
		oob:   cfg.OOB,
	}
}

// Knot inserts or overwrites a scalar knot. The last argument is the value;
// everything before it is the key path, one key per dimension:
//
//	f.Knot(10, 30)        // f(10) = 30
//	f.Knot(0, 10, 30)     // f(0)(10) = 30 — two dimensions
//
// Intermediate path nodes are autovivified as empty functions (no local
// policy; they inherit at evaluation time), and a scalar sitting where a
// deeper path descends is overwritten by the new child. Fewer than two
// arguments fail with ErrKnotArity; non-finite numbers with ErrNaNInf.
// Complexity: O(len(args)).
func (f *Func) Knot(args ...float64) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: got %d argument(s)", ErrKnotArity, len(args))
	}

	y, err := canonScalar(args[len(args)-1])
	if err != nil {
		return err
	}

	return f.insertPath(args[:len(args)-1], ScalarValue(y))
}

// KnotFunc inserts or overwrites a knot whose value is a nested function,
// adding one evaluation dimension under the given key path. sub keeps any
// policy it was constructed with; an empty path fails with ErrKnotArity.
func (f *Func) KnotFunc(sub *Func, path ...float64) error {
	if sub == nil {
		return ErrNilFunc
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: got no keys", ErrKnotArity)
	}

	return f.insertPath(path, FuncValue(sub))
}

// Cursor is the curried insertion shape: each At fixes one more dimension
// key, Set or SetFunc stores the value. It converges on the same insertion
// logic as Knot/KnotFunc — an alternate call shape, no new semantics.
//
//	f.At(0).At(10).Set(30)   // same as f.Knot(0, 10, 30)
//
// The first invalid key poisons the cursor; Set reports that error.
type Cursor struct {
	f    *Func
	path []float64
	err  error
}

// At opens a cursor fixing the first dimension key.
func (f *Func) At(key float64) *Cursor {
	c := &Cursor{f: f}

	return c.At(key)
}

// At fixes the next dimension key.
func (c *Cursor) At(key float64) *Cursor {
	if c.err != nil {
		return c
	}
	k, err := canonKey(key)
	if err != nil {
		c.err = err

		return c
	}
	c.path = append(c.path, k)

	return c
}

// Set stores a scalar at the cursor's key path.
func (c *Cursor) Set(y float64) error {
	if c.err != nil {
		return c.err
	}
	v, err := canonScalar(y)
	if err != nil {
		return err
	}

	return c.f.insertPath(c.path, ScalarValue(v))
}

// SetFunc stores a nested function at the cursor's key path.
func (c *Cursor) SetFunc(sub *Func) error {
	if c.err != nil {
		return c.err
	}
	if sub == nil {
		return ErrNilFunc
	}

	return c.f.insertPath(c.path, FuncValue(sub))
}

// Evaluate resolves one dimension at x and returns a typed Result:
//
//   - Scalar — both bracketing values were plain numbers.
//   - *Continuation — a bracketing value is nested; call Eval with the next
//     dimension's argument.
//   - NoValue — the OOBUndef policy fired; further Eval calls yield NoValue.
//
// The node's own policy doubles as the inherited fallback for every
// descendant reached through the returned continuation chain.
// Errors: ErrEmptyFunction, ErrOutOfBounds, ErrConfiguration, ErrNaNInf.
// Complexity: O(log n) per dimension.
func (f *Func) Evaluate(x float64) (Result, error) {
	x, err := canonQuery(x)
	if err != nil {
		return nil, err
	}

	node, undefined, err := f.lookupPair(x, f.oob)
	if err != nil {
		return nil, err
	}
	if undefined {
		return NoValue{}, nil
	}

	if !node.yDn.IsFunc() && !node.yUp.IsFunc() {
		return Scalar(mxb(node.x, node.xDn, node.xUp, node.yDn.Scalar(), node.yUp.Scalar())), nil
	}

	st := &evalStack{frontiers: [][]evalNode{{node}}}

	return &Continuation{stack: st, inherited: f.oob}, nil
}

// Eval feeds all dimension arguments through the Evaluate/Continuation
// chain and unwraps the final Scalar. It fails with ErrDimension when the
// argument count does not match the function's depth along the evaluated
// path, and with ErrNoValue when the chain short-circuits under OOBUndef.
func (f *Func) Eval(xs ...float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: no arguments", ErrDimension)
	}

	res, err := f.Evaluate(xs[0])
	if err != nil {
		return 0, err
	}

	for _, x := range xs[1:] {
		switch r := res.(type) {
		case *Continuation:
			res, err = r.Eval(x)
			if err != nil {
				return 0, err
			}
		case NoValue:
			// contagious: remaining arguments change nothing
		case Scalar:
			return 0, fmt.Errorf("%w: %d argument(s) for a shallower function", ErrDimension, len(xs))
		}
	}

	switch r := res.(type) {
	case Scalar:
		return r.Float(), nil
	case NoValue:
		return 0, ErrNoValue
	default:
		return 0, fmt.Errorf("%w: %d argument(s) left dimensions unresolved", ErrDimension, len(xs))
	}
}

// Len returns the number of knots stored directly on this node.
func (f *Func) Len() int { return len(f.knots) }

// Keys returns a copy of the ascending key sequence.
func (f *Func) Keys() []float64 {
	keys := f.ordered()
	out := make([]float64, len(keys))
	copy(out, keys)

	return out
}

// Knots returns the node's control points in ascending key order.
func (f *Func) Knots() []Knot {
	keys := f.ordered()
	out := make([]Knot, len(keys))
	for i, k := range keys {
		out[i] = Knot{X: k, Y: f.knots[k]}
	}

	return out
}

// Min returns the smallest knot key, or ErrEmptyFunction.
func (f *Func) Min() (float64, error) {
	keys := f.ordered()
	if len(keys) == 0 {
		return 0, ErrEmptyFunction
	}

	return keys[0], nil
}

// Max returns the largest knot key, or ErrEmptyFunction.
func (f *Func) Max() (float64, error) {
	keys := f.ordered()
	if len(keys) == 0 {
		return 0, ErrEmptyFunction
	}

	return keys[len(keys)-1], nil
}

// Policy returns the node's local out-of-bounds policy; OOBInherit means
// the node defers to its evaluation context.
func (f *Func) Policy() OOBPolicy { return f.oob }
