// SPDX-License-Identifier: MIT
// File: locate.go
// Role: neighbor location over the sorted key sequence, and resolution of
// the effective out-of-bounds policy into an adjusted neighbor pair.
//
// Notes on implementation choices:
//   - Direct hits short-circuit through the key→position index in O(1).
//   - The binary search is an explicit iterative loop narrowing a closed
//     index range [lo,hi] under the invariant keys[lo] <= x <= keys[hi]:
//     query <= keys[mid] pulls hi down to mid, otherwise lo rises to mid.
//     It stops once the range spans at most two indices; the surviving
//     pair brackets the query with adjacent indices.

package pwl

import "fmt"

// oobSide tells which side of the domain a query fell on, if any.
type oobSide int

const (
	oobNone oobSide = iota
	oobLeft
	oobRight
)

// locate finds the indices of the two knots bracketing x in keys.
// A direct hit yields lo == hi. Out-of-domain queries clamp to the nearest
// boundary index (lo == hi) and report which side was crossed; the policy
// layer decides what to make of that.
// Complexity: O(1) for hits, O(log n) otherwise.
func (f *Func) locate(x float64) (lo, hi int, side oobSide, err error) {
	keys := f.ordered()
	n := len(keys)
	if n == 0 {
		return 0, 0, oobNone, ErrEmptyFunction
	}

	if i, ok := f.index[x]; ok {
		return i, i, oobNone, nil
	}
	if x < keys[0] {
		return 0, 0, oobLeft, nil
	}
	if x > keys[n-1] {
		return n - 1, n - 1, oobRight, nil
	}

	lo, hi = 0, n-1
	for hi-lo+1 > 2 {
		// mid is strictly inside (lo,hi) for any range of three or more,
		// so both branches shrink the range.
		mid := lo + (hi-lo)/2
		if x <= keys[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo, hi, oobNone, nil
}

// resolvePolicy merges the node-local policy with the one inherited from the
// evaluation chain (first defined wins) and falls back to OOBDie. Unknown
// policy strings fail here, at lookup time, with ErrConfiguration.
func resolvePolicy(local, inherited OOBPolicy) (OOBPolicy, error) {
	p := local
	if p == OOBInherit {
		p = inherited
	}
	if p == OOBInherit {
		p = OOBDie
	}
	if !p.Known() {
		return OOBInherit, fmt.Errorf("%w: invalid oob option (%s)", ErrConfiguration, string(p))
	}

	return p, nil
}

// applyOOB converts an out-of-bounds indicator into an adjusted neighbor
// pair under policy p. For in-range locations it is the identity.
// The boolean result reports the OOBUndef short-circuit: the caller must
// yield NoValue instead of a pair.
//
//   - OOBDie:         fail with ErrOutOfBounds, carrying the query.
//   - OOBExtrapolate: shift the interior index one step inward so two
//     distinct keys support a true linear extension; a single-knot table
//     has no second key and stays flat.
//   - OOBLevel:       keep lo == hi at the boundary (constant).
//   - OOBUndef:       no pair; evaluation yields NoValue.
func applyOOB(lo, hi int, side oobSide, n int, p OOBPolicy, x float64) (int, int, bool, error) {
	if side == oobNone {
		return lo, hi, false, nil
	}

	switch p {
	case OOBDie:
		return 0, 0, false, fmt.Errorf("%w: given X (%v) was out of bounds of function min or max", ErrOutOfBounds, x)
	case OOBExtrapolate:
		if n > 1 {
			if side == oobLeft {
				hi = 1
			} else {
				lo = n - 2
			}
		}

		return lo, hi, false, nil
	case OOBLevel:
		return lo, hi, false, nil
	case OOBUndef:
		return 0, 0, true, nil
	default:
		// resolvePolicy validated p; reaching here is a programmer error.
		panic("pwl: unreachable policy " + string(p))
	}
}
