package pwl_test

import (
	"fmt"

	"github.com/katalvlaran/interpol/pwl"
)

// ExampleFunc_Eval demonstrates the simplest use: two knots and a query
// between them.
//
// Scenario:
//
//	Fan duty is 30% at 10°C and 50% at 20°C; what about 15°C?
func ExampleFunc_Eval() {
	f := pwl.New()
	_ = f.Knot(10, 30)
	_ = f.Knot(20, 50)

	duty, err := f.Eval(15)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f(15) = %v\n", duty)
	// Output:
	// f(15) = 40
}

// ExampleFunc_Eval_nested demonstrates a two-dimension table: the outer
// key selects a load level, the inner key a temperature.
//
// Scenario:
//
//	At load 0 the curve is 10→30, 20→50; at load 2 it is 10→30, 20→70;
//	load 4 is pinned to 100 regardless of temperature. Queries between
//	stored loads blend the neighboring curves linearly.
func ExampleFunc_Eval_nested() {
	f := pwl.New()
	_ = f.Knot(0, 10, 30)
	_ = f.Knot(0, 20, 50)
	_ = f.Knot(2, 10, 30)
	_ = f.Knot(2, 20, 70)
	_ = f.Knot(4, 100)

	for _, q := range [][2]float64{{0, 15}, {1, 20}, {3, 15}} {
		y, err := f.Eval(q[0], q[1])
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("f(%v)(%v) = %v\n", q[0], q[1], y)
	}
	// Output:
	// f(0)(15) = 40
	// f(1)(20) = 60
	// f(3)(15) = 75
}

// ExampleFunc_Evaluate demonstrates the typed step-wise protocol: each
// Result is inspected by type switch, never by probing callability.
func ExampleFunc_Evaluate() {
	f := pwl.New()
	_ = f.Knot(0, 10, 30)
	_ = f.Knot(0, 20, 50)
	_ = f.Knot(2, 10, 30)
	_ = f.Knot(2, 20, 70)

	res, err := f.Evaluate(1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	switch r := res.(type) {
	case pwl.Scalar:
		fmt.Println("done:", r.Float())
	case *pwl.Continuation:
		fmt.Println("one more dimension needed")
		next, _ := r.Eval(15)
		fmt.Printf("f(1)(15) = %v\n", next.(pwl.Scalar).Float())
	case pwl.NoValue:
		fmt.Println("no value")
	}
	// Output:
	// one more dimension needed
	// f(1)(15) = 45
}

// ExampleWithOOB demonstrates out-of-bounds policies on the same table.
func ExampleWithOOB() {
	knots := [][2]float64{{0, 0}, {10, 10}, {20, 15}}

	level := pwl.New(pwl.WithOOB(pwl.OOBLevel))
	extra := pwl.New(pwl.WithOOB(pwl.OOBExtrapolate))
	for _, k := range knots {
		_ = level.Knot(k[0], k[1])
		_ = extra.Knot(k[0], k[1])
	}

	l, _ := level.Eval(30)
	e, _ := extra.Eval(30)
	fmt.Printf("level: f(30) = %v\n", l)
	fmt.Printf("extrapolate: f(30) = %v\n", e)
	// Output:
	// level: f(30) = 15
	// extrapolate: f(30) = 20
}
