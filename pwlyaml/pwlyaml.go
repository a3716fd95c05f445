// SPDX-License-Identifier: MIT
// File: pwlyaml.go
// Role: declarative YAML documents ⇄ *pwl.Func. Load builds a function
// tree from a document; Dump renders a tree back, ascending keys, so
// round trips are stable.
//
// Document shape (one node):
//
//	oob: level          # optional: die | extrapolate | level | undef
//	knots:
//	  0:                # a knot value is a number or a nested node
//	    knots:
//	      10: 30
//	      20: 50
//	  4: 100

package pwlyaml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/interpol/pwl"
)

// Sentinel errors for document handling. Policy validation reuses
// pwl.ErrConfiguration so callers match one sentinel across packages.
var (
	// ErrBadDocument indicates the YAML does not follow the node shape:
	// wrong types, unknown fields, a missing knots mapping or a bad key.
	ErrBadDocument = errors.New("pwlyaml: malformed function document")

	// ErrNilFunc indicates Dump was handed a nil *pwl.Func.
	ErrNilFunc = errors.New("pwlyaml: nil function")
)

// Load parses a YAML function document and builds the corresponding tree.
// Policies are validated here, at load time, unlike pwl's lazy lookup-time
// check: a document is configuration and should fail fast.
func Load(data []byte) (*pwl.Func, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return buildNode(raw, "$")
}

// buildNode converts one decoded mapping into a *pwl.Func. where is the
// document path used in error context ("$", "$.knots[2]", ...).
func buildNode(raw any, where string) (*pwl.Func, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: node at %s is not a mapping", ErrBadDocument, where)
	}

	var opts []pwl.Option
	for field, v := range doc {
		switch field {
		case "oob":
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: oob at %s is not a string", ErrBadDocument, where)
			}
			p := pwl.OOBPolicy(s)
			if !p.Known() {
				return nil, fmt.Errorf("%w: invalid oob option (%s) at %s", pwl.ErrConfiguration, s, where)
			}
			opts = append(opts, pwl.WithOOB(p))
		case "knots":
			// handled below
		default:
			return nil, fmt.Errorf("%w: unknown field %q at %s", ErrBadDocument, field, where)
		}
	}

	knots, ok := doc["knots"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: node at %s has no knots mapping", ErrBadDocument, where)
	}

	f := pwl.New(opts...)
	for key, v := range knots {
		x, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: knot key %q at %s is not a number", ErrBadDocument, key, where)
		}

		if y, ok := asScalar(v); ok {
			if err := f.Knot(x, y); err != nil {
				return nil, err
			}

			continue
		}

		sub, err := buildNode(v, fmt.Sprintf("%s.knots[%s]", where, key))
		if err != nil {
			return nil, err
		}
		if err := f.KnotFunc(sub, x); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// asScalar normalizes the numeric types the YAML decoder may produce.
func asScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Dump renders the tree as a YAML function document with knots in
// ascending key order. Loading the output reproduces the tree.
func Dump(f *pwl.Func) ([]byte, error) {
	if f == nil {
		return nil, ErrNilFunc
	}

	return yaml.Marshal(dumpNode(f))
}

// dumpNode builds the ordered mapping for one node. yaml.MapSlice keeps
// the emission order we choose: oob first, then knots ascending.
// MapSlice keys must be strings for the encoder, so knot keys are rendered
// with the shortest exact float form; Load parses them back via ParseFloat.
func dumpNode(f *pwl.Func) yaml.MapSlice {
	var doc yaml.MapSlice
	if p := f.Policy(); p != pwl.OOBInherit {
		doc = append(doc, yaml.MapItem{Key: "oob", Value: string(p)})
	}

	// A node without knots still needs a mapping-typed knots field: an
	// empty MapSlice would marshal as a sequence, which Load rejects.
	if f.Len() == 0 {
		return append(doc, yaml.MapItem{Key: "knots", Value: map[string]any{}})
	}

	knots := make(yaml.MapSlice, 0, f.Len())
	for _, k := range f.Knots() {
		var v any
		if k.Y.IsFunc() {
			v = dumpNode(k.Y.Func())
		} else {
			v = k.Y.Scalar()
		}
		knots = append(knots, yaml.MapItem{
			Key:   strconv.FormatFloat(k.X, 'g', -1, 64),
			Value: v,
		})
	}

	return append(doc, yaml.MapItem{Key: "knots", Value: knots})
}
