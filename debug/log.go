package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/psd-format/go-psd/encode"
	"github.com/psd-format/go-psd/ir"
)

// Psd wraps a node so %v renders it as a PSD literal.
type Psd struct{ *ir.Node }

func (p Psd) String() string {
	x := p.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	fmt.Fprint(os.Stderr, spew.Sdump(v))
}
