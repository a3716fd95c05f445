// Package pwlyaml loads and dumps pwl function trees as YAML documents,
// so interpolation tables live in configuration instead of code.
//
// What:
//
//   - Load([]byte) parses a node document — an optional "oob" policy plus
//     a "knots" mapping of number → (number | nested node) — into a
//     *pwl.Func of arbitrary depth.
//   - Dump(*pwl.Func) renders the inverse document with knots in ascending
//     key order; Load(Dump(f)) reproduces f.
//
// Why:
//
//   - Calibration tables, tariffs and fan curves are data, not code; ops
//     can edit a YAML file without recompiling.
//
// Errors:
//
//   - ErrBadDocument: not a node mapping, unknown field, missing knots,
//     non-numeric key or value.
//   - pwl.ErrConfiguration: unrecognized oob policy string — validated at
//     load time, since a document is configuration and should fail fast.
//   - ErrNilFunc: Dump called with nil.
//
// Example document:
//
//	oob: level
//	knots:
//	  0:
//	    knots:
//	      10: 30
//	      20: 50
//	  4: 100
package pwlyaml
