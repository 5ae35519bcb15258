// Package ir provides the intermediate representation (IR) for PSD
// documents.
//
// The IR is a tree of Node values. A Node is a recursive tagged
// union: the Type field selects the node's kind, and values are
// placed in fields depending on that kind.
//
//   - NullType: null value
//   - BoolType: boolean (Bool)
//   - NumberType: numeric value (Int64 or Float64, never both)
//   - StringType: string value (String)
//   - ArrayType: ordered list of nodes (Values)
//   - ObjectType: ordered key-value pairs (Fields and Values)
//
// Objects keep insertion order: Fields[i] is the string-typed key
// for Values[i], keys are unique, and Set replaces in place while a
// new key appends. Order is semantically significant because the
// encoder preserves it verbatim, and merge/filter/convert operations
// must not disturb it.
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// Nodes can be compared for a total order with Compare, deep-copied
// with Clone, and entry-copied with ShallowClone (fresh key/value
// slices over shared value nodes).
//
// The IR is representable in JSON via MarshalJSON/UnmarshalJSON,
// which allows node trees to be manipulated in contexts without PSD
// support.
//
// Node structures are not thread-safe and do not guard against
// cyclic references; converters own those guards.
//
// Related packages:
//
//   - github.com/psd-format/go-psd/encode - Encodes IR nodes to PSD literal text
//   - github.com/psd-format/go-psd/gomap - Converts Go values to/from IR
//   - github.com/psd-format/go-psd/mapop - Merge and filter operations on IR objects
package ir
