package mapop

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/psd-format/go-psd/debug"
	"github.com/psd-format/go-psd/gomap"
	"github.com/psd-format/go-psd/ir"
)

// FilterOptions selects which top-level entries Filter keeps or
// removes. Keep rules win over remove rules; within each group the
// order below is the precedence order.
type FilterOptions struct {
	// KeepKeys pins entries by key regardless of any other rule.
	KeepKeys []string
	// KeepTypes pins entries by value type.
	KeepTypes []ir.Type
	// KeepNullOrEmpty pins null and empty-string values.
	KeepNullOrEmpty bool

	// NullOrEmpty removes null and empty-string values.
	NullOrEmpty bool
	// RemoveTypes removes entries by value type.
	RemoveTypes []ir.Type
	// RemoveKeys removes entries by key.
	RemoveKeys []string
	// Where removes entries matching an expression over the
	// variables key, type and value.
	Where string
	// RemoveAll removes every entry no other rule pinned.
	RemoveAll bool
}

// Filter removes entries from node in place according to opts.
// node must be a mapping; entries keep their relative order.
func Filter(node *ir.Node, opts FilterOptions) error {
	if node == nil || node.Type != ir.ObjectType {
		return ErrNotObject
	}
	if debug.Filter() {
		debug.LogAny(opts)
	}
	var program *vm.Program
	if opts.Where != "" {
		var err error
		program, err = expr.Compile(opts.Where, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("compiling where expression: %w", err)
		}
	}
	// Keys snapshot: Delete mutates the slices we would otherwise
	// be ranging over.
	for _, key := range node.Keys() {
		val := ir.Get(node, key)
		remove, err := opts.shouldRemove(key, val, program)
		if err != nil {
			return err
		}
		if remove {
			if debug.Filter() {
				debug.Logf("filter: removing %q\n", key)
			}
			node.Delete(key)
		}
	}
	return nil
}

func (o *FilterOptions) shouldRemove(key string, val *ir.Node, program *vm.Program) (bool, error) {
	switch {
	case slices.Contains(o.KeepKeys, key):
		return false, nil
	case val != nil && slices.Contains(o.KeepTypes, val.Type):
		return false, nil
	case o.KeepNullOrEmpty && IsNullOrEmpty(val):
		return false, nil
	case o.NullOrEmpty && IsNullOrEmpty(val):
		return true, nil
	case val != nil && slices.Contains(o.RemoveTypes, val.Type):
		return true, nil
	case slices.Contains(o.RemoveKeys, key):
		return true, nil
	}
	if program != nil {
		match, err := o.evalWhere(key, val, program)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return o.RemoveAll, nil
}

func (o *FilterOptions) evalWhere(key string, val *ir.Node, program *vm.Program) (bool, error) {
	native, err := gomap.ToNative(val)
	if err != nil {
		return false, fmt.Errorf("evaluating where expression for %q: %w", key, err)
	}
	typeName := ir.NullType.String()
	if val != nil {
		typeName = val.Type.String()
	}
	env := map[string]any{
		"key":   key,
		"type":  typeName,
		"value": native,
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating where expression for %q: %w", key, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("where expression returned %T, want bool", out)
	}
	return b, nil
}
