// Package gomap converts Go values to and from the PSD IR.
//
// ToIR walks a Go value into an ir.Node tree; FromIR walks a tree
// back into Go values. Both directions are plain reflection with no
// code generation. Struct fields keep declaration order, which the
// encoder then preserves verbatim; Go maps are unordered, so their
// keys are sorted. Field naming follows the `psd` struct tag
// (`psd:"name,omitempty"`, `psd:"-"`) and, for untagged fields, the
// optional KeyCase renaming.
//
// ToIR guards against pointer cycles and excessive depth (MaxDepth);
// everything else converts, with kinds that have no IR counterpart
// coercing to strings instead of failing. FromIR is strict: shape
// mismatches return an *UnmarshalError naming the field path.
package gomap
