// Package interpol builds continuous piece-wise-linear functions from sparse
// knots — including nested, multi-dimensional functions evaluated one
// argument at a time.
//
// 🚀 What is interpol?
//
//	A small, focused library for tabulated numeric functions:
//		• Knots: sparse x→y control points, inserted in any order
//		• Lookup: binary-search neighbor location in O(log n)
//		• Policies: die / extrapolate / level / undef behavior outside the domain
//		• Dimensions: a knot's y may itself be a function — evaluation descends
//		  one dimension per argument and reduces bottom-up to a scalar
//
// ✨ Why choose interpol?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest errors – sentinel errors, errors.Is-friendly, no panics on user input
//   - Pure computation – no I/O, no goroutines, no hidden state between calls
//
// Everything is organized under two subpackages:
//
//	pwl/     — core piece-wise-linear engine: Func, Knot, Evaluate, policies
//	pwlyaml/ — declarative YAML documents ⇄ *pwl.Func (Load / Dump)
//
// Quick ASCII example:
//
//	y
//	50 ┤        ●
//	40 ┤      ⟋
//	30 ┤  ●⟋
//	   └──┴─────┴── x
//	     10    20
//
//	two knots (10,30) and (20,50); evaluating at 15 yields 40.
//
// Dive into README.md for full examples and the multi-dimension tutorial.
//
//	go get github.com/katalvlaran/interpol/pwl
package interpol
