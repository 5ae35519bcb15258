package gomap

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/psd-format/go-psd/ir"
)

// IRUnmarshaler lets a type control its own conversion from IR.
type IRUnmarshaler interface {
	FromPsdIR(node *ir.Node) error
}

// FromIR converts an IR node to a Go value. v must be a non-nil
// pointer to the target. Shape mismatches (object into int, array
// into struct, ...) fail fast with an *UnmarshalError carrying the
// field path; nothing is coerced silently.
func FromIR(node *ir.Node, v interface{}) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if u, ok := v.(IRUnmarshaler); ok {
		return u.FromPsdIR(node)
	}
	return fromIRValue(node, val.Elem(), "")
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "IR node is nil"}
	}

	if val.Kind() == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(val.Type()))
			}
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		if u, ok := val.Interface().(IRUnmarshaler); ok {
			return u.FromPsdIR(node)
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	}

	switch val.Kind() {
	case reflect.String:
		return fromIRToString(node, val, fieldPath)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromIRToInt(node, val, fieldPath)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromIRToUint(node, val, fieldPath)

	case reflect.Float32, reflect.Float64:
		return fromIRToFloat(node, val, fieldPath)

	case reflect.Bool:
		return fromIRToBool(node, val, fieldPath)

	case reflect.Slice, reflect.Array:
		return fromIRToSlice(node, val, fieldPath)

	case reflect.Map:
		return fromIRToMap(node, val, fieldPath)

	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)

	case reflect.Interface:
		return fromIRToInterface(node, val, fieldPath)

	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func fromIRToString(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.StringType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected string, got %s", node.Type),
		}
	}
	if val.CanSet() {
		val.SetString(node.String)
	}
	return nil
}

func fromIRToInt(node *ir.Node, val reflect.Value, fieldPath string) error {
	var intVal int64
	switch {
	case node.Type == ir.NumberType && node.Int64 != nil:
		intVal = *node.Int64
	case node.Type == ir.StringType:
		parsed, err := strconv.ParseInt(node.String, 10, 64)
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot convert string %q to int", node.String),
				Err:       err,
			}
		}
		intVal = parsed
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected integer, got %s", node.Type),
		}
	}
	if val.OverflowInt(intVal) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", intVal, val.Type()),
		}
	}
	if val.CanSet() {
		val.SetInt(intVal)
	}
	return nil
}

func fromIRToUint(node *ir.Node, val reflect.Value, fieldPath string) error {
	var uintVal uint64
	switch {
	case node.Type == ir.NumberType && node.Int64 != nil:
		if *node.Int64 < 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("negative value %d cannot be converted to unsigned integer", *node.Int64),
			}
		}
		uintVal = uint64(*node.Int64)
	case node.Type == ir.StringType:
		parsed, err := strconv.ParseUint(node.String, 10, 64)
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot convert string %q to uint", node.String),
				Err:       err,
			}
		}
		uintVal = parsed
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected integer, got %s", node.Type),
		}
	}
	if val.OverflowUint(uintVal) {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("value %d overflows %s", uintVal, val.Type()),
		}
	}
	if val.CanSet() {
		val.SetUint(uintVal)
	}
	return nil
}

func fromIRToFloat(node *ir.Node, val reflect.Value, fieldPath string) error {
	var floatVal float64
	switch {
	case node.Type == ir.NumberType && node.Float64 != nil:
		floatVal = *node.Float64
	case node.Type == ir.NumberType && node.Int64 != nil:
		floatVal = float64(*node.Int64)
	case node.Type == ir.StringType:
		parsed, err := strconv.ParseFloat(node.String, 64)
		if err != nil {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot convert string %q to float", node.String),
				Err:       err,
			}
		}
		floatVal = parsed
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected number, got %s", node.Type),
		}
	}
	if val.CanSet() {
		val.SetFloat(floatVal)
	}
	return nil
}

func fromIRToBool(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.BoolType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected bool, got %s", node.Type),
		}
	}
	if val.CanSet() {
		val.SetBool(node.Bool)
	}
	return nil
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected array, got %s", node.Type),
		}
	}
	length := len(node.Values)
	if val.Kind() == reflect.Array {
		if val.Len() != length {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("array length mismatch: expected %d, got %d", val.Len(), length),
			}
		}
	} else {
		if val.IsNil() || val.Cap() < length {
			val.Set(reflect.MakeSlice(val.Type(), length, length))
		} else {
			val.SetLen(length)
		}
	}
	for i := 0; i < length; i++ {
		if err := fromIRValue(node.Values[i], val.Index(i), elemPath(fieldPath, i)); err != nil {
			return err
		}
	}
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected object, got %s", node.Type),
		}
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key()),
		}
	}
	val.Set(reflect.MakeMapWithSize(typ, len(node.Fields)))
	for i, f := range node.Fields {
		key := f.String
		elem := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(node.Values[i], elem, joinPath(fieldPath, key)); err != nil {
			return err
		}
		val.SetMapIndex(reflect.ValueOf(key).Convert(typ.Key()), elem)
	}
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("expected object, got %s", node.Type),
		}
	}

	type fieldInfo struct {
		index []int
	}
	byName := map[string]fieldInfo{}
	byFold := map[string]fieldInfo{}

	var collect func(typ reflect.Type, index []int) error
	collect = func(typ reflect.Type, index []int) error {
		for i := 0; i < typ.NumField(); i++ {
			sf := typ.Field(i)
			if !sf.IsExported() {
				continue
			}
			fullIndex := append(append([]int{}, index...), i)
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if err := collect(sf.Type, fullIndex); err != nil {
					return err
				}
				continue
			}
			tag := parseFieldTag(sf)
			if tag.Skip {
				continue
			}
			if _, exists := byName[tag.Name]; exists {
				return &UnmarshalError{
					FieldPath: fieldPath,
					Message:   fmt.Sprintf("field name conflict on %q", tag.Name),
				}
			}
			info := fieldInfo{index: fullIndex}
			byName[tag.Name] = info
			if _, exists := byFold[foldKey(tag.Name)]; !exists {
				byFold[foldKey(tag.Name)] = info
			}
		}
		return nil
	}
	if err := collect(val.Type(), nil); err != nil {
		return err
	}

	for i, f := range node.Fields {
		key := f.String
		info, found := byName[key]
		if !found {
			// loose match tolerates key-case renaming on the way out
			info, found = byFold[foldKey(key)]
		}
		if !found {
			continue
		}
		fieldVal := val.FieldByIndex(info.index)
		if !fieldVal.IsValid() {
			continue
		}
		if err := fromIRValue(node.Values[i], fieldVal, joinPath(fieldPath, key)); err != nil {
			return err
		}
	}
	return nil
}

// fromIRToInterface infers the concrete Go type from the IR node
// kind: objects become map[string]any, arrays []any, numbers int64
// or float64.
func fromIRToInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	v, err := toNative(node, fieldPath)
	if err != nil {
		return err
	}
	if val.CanSet() {
		if v == nil {
			val.Set(reflect.Zero(val.Type()))
		} else {
			val.Set(reflect.ValueOf(v))
		}
	}
	return nil
}

func toNative(node *ir.Node, fieldPath string) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, &UnmarshalError{FieldPath: fieldPath, Message: "number node has no value"}
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			el, err := toNative(v, elemPath(fieldPath, i))
			if err != nil {
				return nil, err
			}
			res[i] = el
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			el, err := toNative(node.Values[i], joinPath(fieldPath, f.String))
			if err != nil {
				return nil, err
			}
			res[f.String] = el
		}
		return res, nil
	default:
		return nil, &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported IR type %s", node.Type),
		}
	}
}

// ToNative converts an IR node to plain Go values (map[string]any,
// []any, scalars). It is the interface{} path of FromIR exposed for
// callers that feed generic encoders.
func ToNative(node *ir.Node) (any, error) {
	return toNative(node, "")
}
