package gomap

import (
	"bytes"

	"github.com/psd-format/go-psd/encode"
)

// Marshal converts a Go value to PSD literal bytes. It first
// converts the value to an IR node (ToIR), then encodes the node
// (passing through any options added with WithEncodeOptions).
func Marshal(v interface{}, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
