package pwl_test

import (
	"testing"

	"github.com/katalvlaran/interpol/pwl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRamp returns a function with knots (0,0),(10,10),(20,15) under the
// given construction options.
func buildRamp(t *testing.T, opts ...pwl.Option) *pwl.Func {
	t.Helper()
	f := pwl.New(opts...)
	require.NoError(t, f.Knot(0, 0))
	require.NoError(t, f.Knot(10, 10))
	require.NoError(t, f.Knot(20, 15))

	return f
}

// TestLocate_SegmentSelection sweeps queries across every segment of a
// larger table and checks each lands on the line through its bracketing
// knots — i.e. the binary search picked adjacent, correct neighbors.
func TestLocate_SegmentSelection(t *testing.T) {
	xs := []float64{-10, -2, 0, 3, 7, 11, 40}
	ys := []float64{5, 1, 0, 9, -3, 8, 80}
	f := pwl.New()
	for i := range xs {
		require.NoError(t, f.Knot(xs[i], ys[i]))
	}

	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		y0, y1 := ys[i], ys[i+1]
		for _, frac := range []float64{0.1, 0.5, 0.9} {
			x := x0 + frac*(x1-x0)
			want := y0 + (y1-y0)*(x-x0)/(x1-x0)
			got, err := f.Eval(x)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "segment [%v,%v] at x=%v", x0, x1, x)
		}
	}
}

// TestLocate_EmptyFunction checks that evaluating a function with no knots
// fails with ErrEmptyFunction.
func TestLocate_EmptyFunction(t *testing.T) {
	_, err := pwl.New().Eval(1)
	assert.ErrorIs(t, err, pwl.ErrEmptyFunction)

	_, err = pwl.New().Evaluate(1)
	assert.ErrorIs(t, err, pwl.ErrEmptyFunction)
}

// TestOOB_DieDefault verifies the default policy fails out-of-domain
// queries with ErrOutOfBounds and the documented message body.
func TestOOB_DieDefault(t *testing.T) {
	f := buildRamp(t)

	_, err := f.Eval(-1)
	require.ErrorIs(t, err, pwl.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "given X (-1) was out of bounds of function min or max")

	_, err = f.Eval(21)
	assert.ErrorIs(t, err, pwl.ErrOutOfBounds)
}

// TestOOB_Level confirms flat clamping to the boundary knots.
func TestOOB_Level(t *testing.T) {
	f := buildRamp(t, pwl.WithOOB(pwl.OOBLevel))

	below, err := f.Eval(-100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, below, "below min clamps to min knot's y")

	above, err := f.Eval(100)
	require.NoError(t, err)
	assert.Equal(t, 15.0, above, "above max clamps to max knot's y")
}

// TestOOB_Extrapolate confirms the boundary segment's slope continues
// beyond the domain on both sides.
func TestOOB_Extrapolate(t *testing.T) {
	f := buildRamp(t, pwl.WithOOB(pwl.OOBExtrapolate))

	// Two lowest knots (0,0),(10,10): slope 1.
	below, err := f.Eval(-5)
	require.NoError(t, err)
	assert.Equal(t, -5.0, below)

	// Two highest knots (10,10),(20,15): slope 0.5.
	above, err := f.Eval(30)
	require.NoError(t, err)
	assert.Equal(t, 20.0, above)
}

// TestOOB_ExtrapolateSingleKnot checks the single-knot fallback: with no
// second knot to take a slope from, extrapolation degenerates to flat.
func TestOOB_ExtrapolateSingleKnot(t *testing.T) {
	f := pwl.New(pwl.WithOOB(pwl.OOBExtrapolate))
	require.NoError(t, f.Knot(5, 7))

	for _, x := range []float64{-10, 0, 100} {
		got, err := f.Eval(x)
		require.NoError(t, err)
		assert.Equal(t, 7.0, got, "single-knot extrapolation stays flat at x=%v", x)
	}
}

// TestOOB_Undef verifies the NoValue outcome: Evaluate yields the NoValue
// result, the scalar Eval wrapper reports ErrNoValue.
func TestOOB_Undef(t *testing.T) {
	f := buildRamp(t, pwl.WithOOB(pwl.OOBUndef))

	res, err := f.Evaluate(-1)
	require.NoError(t, err)
	assert.IsType(t, pwl.NoValue{}, res)

	_, err = f.Eval(-1)
	assert.ErrorIs(t, err, pwl.ErrNoValue)

	// In-domain queries are unaffected by the policy.
	got, err := f.Eval(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

// TestOOB_UnknownPolicy checks that an unrecognized policy string fails
// with ErrConfiguration — but only once an out-of-domain query actually
// consults it; in-domain lookups never touch the policy.
func TestOOB_UnknownPolicy(t *testing.T) {
	f := buildRamp(t, pwl.WithOOB(pwl.OOBPolicy("bogus")))

	got, err := f.Eval(5)
	require.NoError(t, err, "in-domain lookup must not validate the policy")
	assert.Equal(t, 5.0, got)

	_, err = f.Eval(-1)
	require.ErrorIs(t, err, pwl.ErrConfiguration)
	assert.Contains(t, err.Error(), "invalid oob option (bogus)")
}

// TestOOB_BoundaryIsInDomain pins down that the domain is the closed
// interval: querying exactly min or max is a direct hit, never OOB.
func TestOOB_BoundaryIsInDomain(t *testing.T) {
	f := buildRamp(t) // die policy

	lo, err := f.Eval(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)

	hi, err := f.Eval(20)
	require.NoError(t, err)
	assert.Equal(t, 15.0, hi)
}
