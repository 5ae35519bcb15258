// Package encode renders IR nodes as PSD literal text.
//
// The output is deterministic: object entry order and array element
// order are preserved verbatim, the indent unit is fixed at 4
// spaces, and lines are joined with "\n". Strings are single-quoted
// with quote doubling as the only escape, null and booleans render
// as $null/$true/$false, integers render bare, and floats always
// carry a decimal point. Anything the encoder does not recognize
// falls back to the string rule rather than failing, so loosely
// typed trees always serialize.
//
// The encoder performs no line wrapping and, by default, no key
// alignment; see AlignKeys and NestArrays for the optional modes.
// It does not detect cycles; callers that accept untrusted nesting
// should set MaxDepth.
package encode
