// Package pwl defines the core types and configuration options for
// piece-wise-linear function trees.
//
// This file declares OOBPolicy, Options, the functional Option set,
// the Value tagged union and the Knot pair.
package pwl

// OOBPolicy selects what happens when a query point falls outside the
// function's knot domain [min, max].
//
//   - OOBDie         — fail with ErrOutOfBounds (the default).
//   - OOBExtrapolate — continue the slope of the two boundary knots.
//   - OOBLevel       — clamp to the boundary knot's value (flat).
//   - OOBUndef       — yield the NoValue result instead of a number.
//
// The zero value OOBInherit means "no local policy": the node defers to the
// policy of the outermost node in the current evaluation chain, and finally
// to OOBDie. Policy strings are validated at lookup time; an unknown string
// fails with ErrConfiguration.
type OOBPolicy string

const (
	// OOBInherit defers to the evaluation chain's policy, then to OOBDie.
	OOBInherit OOBPolicy = ""

	// OOBDie fails with ErrOutOfBounds on any out-of-domain query.
	OOBDie OOBPolicy = "die"

	// OOBExtrapolate extends the boundary segment's slope beyond the domain.
	// A single-knot function has no slope and falls back to flat clamping.
	OOBExtrapolate OOBPolicy = "extrapolate"

	// OOBLevel returns the boundary knot's value for out-of-domain queries.
	OOBLevel OOBPolicy = "level"

	// OOBUndef makes out-of-domain queries yield NoValue. NoValue is
	// contagious: once produced, further dimension arguments keep yielding it.
	OOBUndef OOBPolicy = "undef"
)

// Known reports whether p is one of the recognized policies.
// OOBInherit is not itself a policy and reports false.
func (p OOBPolicy) Known() bool {
	switch p {
	case OOBDie, OOBExtrapolate, OOBLevel, OOBUndef:
		return true
	default:
		return false
	}
}

// Options configures a Func at construction.
//
// OOB — out-of-bounds policy for lookups performed directly on this node.
// It is also offered as the inherited fallback to descendant nodes that do
// not carry a policy of their own (autovivified nodes never do).
type Options struct {
	OOB OOBPolicy
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithOOB sets the out-of-bounds policy for the new function node.
// The string is validated lazily, at the first lookup that consults it;
// an unknown policy fails that lookup with ErrConfiguration.
func WithOOB(p OOBPolicy) Option {
	return func(o *Options) { o.OOB = p }
}

// DefaultOptions returns an Options struct initialized with defaults:
// no local policy (OOBInherit), which resolves to OOBDie at lookup time.
func DefaultOptions() Options {
	return Options{OOB: OOBInherit}
}

// Value is the tagged union stored at a knot: either a scalar or a nested
// function (one more dimension). The zero Value is the scalar 0.
type Value struct {
	y  float64
	fn *Func
}

// ScalarValue wraps a plain number as a knot value.
func ScalarValue(y float64) Value { return Value{y: y} }

// FuncValue wraps a nested function as a knot value.
func FuncValue(f *Func) Value { return Value{fn: f} }

// IsFunc reports whether the value is a nested function.
func (v Value) IsFunc() bool { return v.fn != nil }

// Scalar returns the scalar payload. Meaningful only when IsFunc is false.
func (v Value) Scalar() float64 { return v.y }

// Func returns the nested function, or nil for a scalar value.
func (v Value) Func() *Func { return v.fn }

// Knot is one stored control point: key X mapped to Value Y.
type Knot struct {
	X float64
	Y Value
}
