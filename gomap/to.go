package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"

	"github.com/psd-format/go-psd/debug"
	"github.com/psd-format/go-psd/ir"
)

// IRMarshaler lets a type control its own conversion to IR.
type IRMarshaler interface {
	ToPsdIR() (*ir.Node, error)
}

// ToIR converts a Go value to an IR node.
//
// Structs become objects with entries in field declaration order,
// honoring the `psd` tag and the KeyCase option; maps become objects
// with sorted keys; slices and arrays become arrays; nil values
// become null. Types implementing IRMarshaler or
// encoding.TextMarshaler convert through those. Kinds with no IR
// counterpart (chan, func, complex) coerce to their string form so
// the encoder's forgiving fallback applies all the way down; the
// only failures are pointer cycles, exceeded depth, and non-string
// map keys.
func ToIR(v interface{}, opts ...MapOption) (*ir.Node, error) {
	mo := newMapOptions(opts...)
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string)
	node, err := toIRValue(reflect.ValueOf(v), "", 0, visited, mo)
	if err == nil && debug.Convert() {
		debug.Logf("convert: %T -> %v\n", v, node)
	}
	return node, err
}

func toIRValue(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, mo *mapOptions) (*ir.Node, error) {
	if depth > mo.maxDepth {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("nesting deeper than %d levels", mo.maxDepth),
		}
	}
	if !val.IsValid() {
		return ir.Null(), nil
	}

	if val.CanInterface() && (val.Kind() != reflect.Ptr || !val.IsNil()) {
		if m, ok := val.Interface().(IRMarshaler); ok {
			return m.ToPsdIR()
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			text, err := tm.MarshalText()
			if err != nil {
				return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
			}
			return ir.FromString(string(text)), nil
		}
	}

	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return ir.Null(), nil
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, depth, visited, mo)
		delete(visited, ptrAddr)
		return node, err

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, depth, visited, mo)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(val.Bytes())), nil
		}
		return toIRSlice(val, fieldPath, depth, visited, mo)

	case reflect.Map:
		return toIRMap(val, fieldPath, depth, visited, mo)

	case reflect.Struct:
		res := ir.Object()
		if err := toIRStructInto(res, val, fieldPath, depth, visited, mo); err != nil {
			return nil, err
		}
		return res, nil

	default:
		// chan, func, complex, unsafe pointer: string coercion, per
		// the encoder's forgiving fallback.
		if val.CanInterface() {
			return ir.FromString(fmt.Sprint(val.Interface())), nil
		}
		return ir.FromString(val.String()), nil
	}
}

func toIRSlice(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, mo *mapOptions) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
	}
	n := val.Len()
	values := make([]*ir.Node, n)
	for i := 0; i < n; i++ {
		node, err := toIRValue(val.Index(i), elemPath(fieldPath, i), depth+1, visited, mo)
		if err != nil {
			return nil, err
		}
		values[i] = node
	}
	return ir.FromSlice(values), nil
}

func toIRMap(val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, mo *mapOptions) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}
	if !val.IsNil() {
		ptr := val.Pointer()
		if prevPath, seen := visited[ptr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptr] = fieldPath
		defer delete(visited, ptr)
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	res := ir.Object()
	for _, key := range keys {
		node, err := toIRValue(val.MapIndex(reflect.ValueOf(key).Convert(val.Type().Key())), joinPath(fieldPath, key), depth+1, visited, mo)
		if err != nil {
			return nil, err
		}
		res.Set(key, node)
	}
	return res, nil
}

// toIRStructInto appends the struct's entries to res; embedded
// structs flatten into the same object.
func toIRStructInto(res *ir.Node, val reflect.Value, fieldPath string, depth int, visited map[uintptr]string, mo *mapOptions) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if err := toIRStructInto(res, val.Field(i), fieldPath, depth, visited, mo); err != nil {
				return err
			}
			continue
		}
		tag := parseFieldTag(sf)
		if tag.Skip {
			continue
		}
		fv := val.Field(i)
		if tag.OmitEmpty && fv.IsZero() {
			continue
		}
		name := tag.Name
		if !tag.Explicit {
			name = mo.keyCase.apply(name)
		}
		node, err := toIRValue(fv, joinPath(fieldPath, name), depth+1, visited, mo)
		if err != nil {
			return err
		}
		res.Set(name, node)
	}
	return nil
}

func joinPath(fieldPath, name string) string {
	if fieldPath == "" {
		return name
	}
	return fieldPath + "." + name
}

func elemPath(fieldPath string, i int) string {
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}
