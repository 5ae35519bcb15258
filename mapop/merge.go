package mapop

import (
	"errors"

	"github.com/psd-format/go-psd/debug"
	"github.com/psd-format/go-psd/ir"
)

// ErrNotObject reports a merge or filter target that is not a
// mapping node.
var ErrNotObject = errors.New("operand is not an object")

// Merge folds overrides into base, left to right, and returns the
// result. base is shallow-cloned so the caller's node keeps its
// entry set, though value nodes are shared with the result.
//
// A key absent from the accumulator is always set. A key already
// present is only replaced when force is true or the override value
// is not null-or-empty, so later mappings cannot blank out earlier
// data by accident.
func Merge(base *ir.Node, overrides []*ir.Node, force bool) (*ir.Node, error) {
	if base == nil || base.Type != ir.ObjectType {
		return nil, ErrNotObject
	}
	res := base.ShallowClone()
	for _, over := range overrides {
		if over == nil || over.Type != ir.ObjectType {
			return nil, ErrNotObject
		}
		for i, f := range over.Fields {
			key := f.String
			val := over.Values[i]
			switch {
			case !res.Has(key):
				res.Set(key, val)
			case force || !IsNullOrEmpty(val):
				if debug.Merge() {
					debug.Logf("merge: overriding %q with %v\n", key, val)
				}
				res.Set(key, val)
			default:
				if debug.Merge() {
					debug.Logf("merge: skipping null-or-empty override for %q\n", key)
				}
			}
		}
	}
	return res, nil
}

// IsNullOrEmpty reports whether a value is null or the empty string.
// Empty mappings and sequences are not null-or-empty.
func IsNullOrEmpty(node *ir.Node) bool {
	if node == nil {
		return true
	}
	switch node.Type {
	case ir.NullType:
		return true
	case ir.StringType:
		return node.String == ""
	default:
		return false
	}
}
