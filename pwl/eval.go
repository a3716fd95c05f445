// SPDX-License-Identifier: MIT
// File: eval.go
// Role: the multi-dimension evaluation engine — typed results, the
// transient frontier/stack bookkeeping, deferred descent through nested
// dimensions and the final bottom-up reduction to one scalar.
//
// Notes on implementation choices:
//   - The caller never probes "is this callable": evaluation returns a
//     closed Result — Scalar, *Continuation or NoValue — and selects
//     behavior by type switch.
//   - A child's resolved value is written back into its parent slot through
//     an index into the same evaluation stack (arena-style handle), never
//     through a pointer into the tree: evaluation nodes are transient and
//     tree nodes are independently owned.
//   - The whole stack lives for exactly one evaluation chain and is
//     discarded with its final Result.

package pwl

import (
	"fmt"
	"math"
)

// Result is the outcome of one evaluation step: a final Scalar, a
// *Continuation awaiting the next dimension's argument, or NoValue.
// The set of implementations is closed.
type Result interface {
	isResult()
}

// Scalar is a fully resolved interpolation result.
type Scalar float64

func (Scalar) isResult() {}

// Float unwraps the scalar as a plain float64.
func (s Scalar) Float() float64 { return float64(s) }

// NoValue is the defined "no result" outcome of the OOBUndef policy.
// It is contagious: Eval on a NoValue yields the same NoValue for any
// argument, so surplus dimension arguments pass through harmlessly.
type NoValue struct{}

func (NoValue) isResult() {}

// Eval keeps yielding the same NoValue regardless of x.
func (nv NoValue) Eval(_ float64) (Result, error) { return nv, nil }

// Continuation is a pending multi-dimension evaluation: at least one
// bracketing knot of the previous dimension holds a nested function.
// Eval descends one dimension with the next argument.
//
// A Continuation borrows the function tree it was produced from. It must
// not be invoked after those nodes are mutated or dropped, and each
// Continuation is meant to be consumed once — Eval returns the next step.
type Continuation struct {
	stack     *evalStack
	inherited OOBPolicy
}

func (*Continuation) isResult() {}

// slot addresses one of the two neighbor values of an evaluation node.
type slot int

const (
	slotDn slot = iota
	slotUp
)

// slotRef is a write-back handle: which node of which frontier, and which
// of its two neighbor values, receives a child's resolved scalar.
type slotRef struct {
	frontier int
	node     int
	s        slot
}

// evalNode captures one dimension's neighbor resolution: the query x, the
// bracketing keys and their values, plus an optional write-back reference
// into the parent frontier.
type evalNode struct {
	x, xDn, xUp float64
	yDn, yUp    Value
	parent      slotRef
	hasParent   bool
}

func (n *evalNode) slotValue(s slot) Value {
	if s == slotDn {
		return n.yDn
	}

	return n.yUp
}

func (n *evalNode) setSlot(s slot, v Value) {
	if s == slotDn {
		n.yDn = v
	} else {
		n.yUp = v
	}
}

// evalStack is the ordered sequence of frontiers for one evaluation chain,
// from the first-evaluated dimension (index 0) to the most recent.
type evalStack struct {
	frontiers [][]evalNode
}

// canonQuery validates an evaluation argument. NaN and ±Inf are rejected;
// negative zero collapses to positive zero so hits match stored keys.
func canonQuery(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: query %v", ErrNaNInf, x)
	}
	if x == 0 {
		return 0, nil
	}

	return x, nil
}

// lookupPair resolves one dimension against node f: locate the bracketing
// keys for x, settle the out-of-bounds policy, and capture the pair as an
// evalNode. The boolean result reports the OOBUndef short-circuit.
func (f *Func) lookupPair(x float64, inherited OOBPolicy) (evalNode, bool, error) {
	lo, hi, side, err := f.locate(x)
	if err != nil {
		return evalNode{}, false, err
	}

	keys := f.ordered()
	if side != oobNone {
		// The policy is consulted, and therefore validated, only when the
		// query actually falls outside the domain.
		p, err := resolvePolicy(f.oob, inherited)
		if err != nil {
			return evalNode{}, false, err
		}

		var undefined bool
		lo, hi, undefined, err = applyOOB(lo, hi, side, len(keys), p, x)
		if err != nil || undefined {
			return evalNode{}, undefined, err
		}
	}

	return evalNode{
		x:   x,
		xDn: keys[lo], xUp: keys[hi],
		yDn: f.knots[keys[lo]], yUp: f.knots[keys[hi]],
	}, false, nil
}

// Eval supplies the next dimension's argument to a pending evaluation.
//
// Every nested neighbor value in the top frontier is looked up at x inside
// its own function node; the results become the new top frontier, each
// carrying a write-back handle to the exact parent slot it must fill. When
// no nested values remain the stack reduces bottom-up to a Scalar;
// otherwise another *Continuation is returned. An OOBUndef anywhere
// short-circuits the whole chain to NoValue.
// Complexity: O(w log n) for frontier width w and node size n.
func (c *Continuation) Eval(x float64) (Result, error) {
	x, err := canonQuery(x)
	if err != nil {
		return nil, err
	}

	ti := len(c.stack.frontiers) - 1
	top := c.stack.frontiers[ti]
	next := make([]evalNode, 0, 2*len(top))
	deeper := false

	for ni := range top {
		for _, s := range [2]slot{slotDn, slotUp} {
			v := top[ni].slotValue(s)
			if !v.IsFunc() {
				continue
			}

			node, undefined, err := v.Func().lookupPair(x, c.inherited)
			if err != nil {
				return nil, err
			}
			if undefined {
				return NoValue{}, nil
			}

			node.parent = slotRef{frontier: ti, node: ni, s: s}
			node.hasParent = true
			if node.yDn.IsFunc() || node.yUp.IsFunc() {
				deeper = true
			}
			next = append(next, node)
		}
	}

	c.stack.frontiers = append(c.stack.frontiers, next)
	if deeper {
		return &Continuation{stack: c.stack, inherited: c.inherited}, nil
	}

	return c.stack.reduce(), nil
}

// reduce folds the stack once every pending value is a scalar: frontiers
// are walked from the most recently pushed down to the first, each node's
// line value is computed, and nodes with a write-back handle store their
// scalar into the referenced parent slot before that parent's own frontier
// is visited. The bottom frontier's node yields the final result.
func (st *evalStack) reduce() Result {
	var out float64
	for fi := len(st.frontiers) - 1; fi >= 0; fi-- {
		fr := st.frontiers[fi]
		for ni := range fr {
			n := &fr[ni]
			y := mxb(n.x, n.xDn, n.xUp, n.yDn.Scalar(), n.yUp.Scalar())
			if n.hasParent {
				st.frontiers[n.parent.frontier][n.parent.node].setSlot(n.parent.s, ScalarValue(y))
			} else {
				out = y
			}
		}
	}

	return Scalar(out)
}

// mxb evaluates the line through (xDn,yDn) and (xUp,yUp) at x. Equal y
// endpoints short-circuit to that value, which covers direct hits and
// level-clamped pairs without ever dividing by xUp-xDn == 0.
func mxb(x, xDn, xUp, yDn, yUp float64) float64 {
	if yDn == yUp {
		return yDn
	}
	m := (yUp - yDn) / (xUp - xDn)
	b := yUp - m*xUp

	return m*x + b
}
