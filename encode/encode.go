package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/psd-format/go-psd/ir"
	"github.com/psd-format/go-psd/token"
)

// indentUnit is the number of spaces per indent level. It is part of
// the format contract and is not configurable.
const indentUnit = 4

// ErrMaxDepth is returned when input nesting exceeds the configured
// maximum (see MaxDepth).
var ErrMaxDepth = errors.New("max depth exceeded")

type EncState struct {
	depth    int
	maxDepth int
	align    bool
	nest     bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as PSD literal text.
//
// Objects open with "@{", carry one "key = value" line per entry at
// 4*depth spaces, and close with "}" one level out; an empty object
// is the exact literal "@{}". Arrays open with "@(", carry one
// element per line one level deeper, and close with ")"; an empty
// array is "@()". Lines are joined with "\n" and no trailing newline
// is written.
//
// The default entry depth is 1 (top-level object entries indented 4
// spaces, closing brace in column 0); see Depth.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		depth:    1,
		maxDepth: 512,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		return encodeScalar(node, w, es)
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, level int) error {
	return writeString(w, "\n"+strings.Repeat(" ", indentUnit*level))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// Object encoding

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: object at depth %d", ErrMaxDepth, es.depth)
	}
	if len(node.Fields) == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, token.EmptyObject))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, token.OpenObject)); err != nil {
		return err
	}
	width := 0
	if es.align {
		for _, f := range node.Fields {
			width = max(width, len(f.String))
		}
	}
	for i, f := range node.Fields {
		if err := writeNL(w, es.depth); err != nil {
			return err
		}
		if err := writeField(w, f.String, width, es); err != nil {
			return err
		}
		if err := encodeObjectValue(node.Values[i], w, es); err != nil {
			return err
		}
	}
	if err := writeNL(w, es.depth-1); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, token.CloseObject))
}

// writeField writes the unquoted key and the " = " separator. When
// width is non-zero the key is padded so the separators align.
func writeField(w io.Writer, f string, width int, es *EncState) error {
	pad := ""
	if width > len(f) {
		pad = strings.Repeat(" ", width-len(f))
	}
	f = applyColor(es, ir.ObjectType, FieldColor, f)
	sep := applyColor(es, ir.ObjectType, SepColor, "=")
	return writeString(w, f+pad+" "+sep+" ")
}

func encodeObjectValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		es.depth++
		err := encodeObject(node, w, es)
		es.depth--
		return err
	case ir.ArrayType:
		es.depth++
		err := encodeArray(node, w, es)
		es.depth--
		return err
	default:
		return encodeScalar(node, w, es)
	}
}

// Array encoding
//
// On entry es.depth is the element indent level; the closing bracket
// dedents one level.

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: array at depth %d", ErrMaxDepth, es.depth)
	}
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, token.EmptyArray))
	}
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, token.OpenArray)); err != nil {
		return err
	}
	if err := encodeArrayElements(node.Values, w, es); err != nil {
		return err
	}
	if err := writeNL(w, es.depth-1); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, token.CloseArray))
}

func encodeArrayElements(values []*ir.Node, w io.Writer, es *EncState) error {
	for _, v := range values {
		if v.Type == ir.ArrayType && !es.nest {
			// Legacy splice: a sub-sequence contributes its elements
			// to the enclosing element list.
			if err := encodeArrayElements(v.Values, w, es); err != nil {
				return err
			}
			continue
		}
		if err := writeNL(w, es.depth); err != nil {
			return err
		}
		var err error
		switch v.Type {
		case ir.ObjectType:
			es.depth++
			err = encodeObject(v, w, es)
			es.depth--
		case ir.ArrayType:
			es.depth++
			err = encodeArray(v, w, es)
			es.depth--
		default:
			err = encodeScalar(v, w, es)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Scalar encoding

func encodeScalar(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, token.Null))
	case ir.BoolType:
		v := token.False
		if node.Bool {
			v = token.True
		}
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(node.String)))
	default:
		// Forgiving fallback: an unrecognized kind renders through
		// the string rule rather than failing.
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(node.String)))
	}
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	switch {
	case node.Int64 != nil:
		v := strconv.FormatInt(*node.Int64, 10)
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
	case node.Float64 != nil:
		v := formatFloat(*node.Float64)
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
	default:
		// Malformed number node: string fallback.
		return writeString(w, applyColor(es, ir.StringType, ValueColor, token.Quote(node.String)))
	}
}

// formatFloat renders a float with its decimal point preserved, so
// the numeric kind survives re-parsing (1 encodes as "1.0").
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(v, ".nN") {
		v += ".0"
	}
	return v
}
