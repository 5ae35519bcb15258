package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/psd-format/go-psd/debug"
	"github.com/psd-format/go-psd/encode"
	"github.com/psd-format/go-psd/format"
	"github.com/psd-format/go-psd/gomap"
	"github.com/psd-format/go-psd/ir"
)

// ErrUnknownSuffix reports a path whose suffix maps to no format.
// Suffix dispatch is fatal by design: writing the wrong syntax into
// a file a downstream reader trusts is worse than stopping.
var ErrUnknownSuffix = format.ErrBadFormat

// Decode parses data in the given format into an IR node. The PSD
// literal forms have no reader here; requesting them is an error.
func Decode(data []byte, f format.Format) (*ir.Node, error) {
	switch {
	case f.IsJSON():
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return fromJSON(v)
	case f.IsYAML():
		var v any
		if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return fromYAML(v)
	default:
		return nil, fmt.Errorf("no reader for %s input", f)
	}
}

// Write renders node to w in the given format. Literal forms go
// through the encoder verbatim with a trailing newline.
func Write(w io.Writer, node *ir.Node, f format.Format, encOpts ...encode.EncodeOption) error {
	switch {
	case f.IsLiteral():
		if debug.Encode() {
			debug.Logf("encode: writing %s literal for %v\n", f, node)
		}
		if err := encode.Encode(node, w, encOpts...); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case f.IsJSON():
		v, err := gomap.ToNative(node)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case f.IsYAML():
		v, err := toYAML(node)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

// Load reads the file at path, choosing the format by suffix.
func Load(path string) (*ir.Node, error) {
	f, err := format.ForPath(path)
	if err != nil {
		return nil, err
	}
	if f.IsLiteral() {
		return nil, fmt.Errorf("loading %s files is not supported, convert from json or yaml instead", f.Suffix())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// Save writes node to the file at path, choosing the format by
// suffix.
func Save(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	f, err := format.ForPath(path)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, node, f, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func fromJSON(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("decoding json number %q: %w", x, err)
		}
		return ir.FromFloat(f), nil
	case []any:
		values := make([]*ir.Node, len(x))
		for i, el := range x {
			node, err := fromJSON(el)
			if err != nil {
				return nil, err
			}
			values[i] = node
		}
		return ir.FromSlice(values), nil
	case map[string]any:
		// json objects are decoded into Go maps, so key order is
		// gone; fall back to sorted keys like gomap does.
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := ir.Object()
		for _, key := range keys {
			child, err := fromJSON(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, child)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported json value of type %T", v)
	}
}
