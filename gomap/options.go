package gomap

import (
	"github.com/iancoleman/strcase"

	"github.com/psd-format/go-psd/encode"
)

// KeyCase selects how struct field names without an explicit tag
// name are rendered as mapping keys.
type KeyCase int

const (
	KeyCaseNone KeyCase = iota
	KeyCaseCamel
	KeyCasePascal
	KeyCaseSnake
	KeyCaseKebab
)

func (kc KeyCase) apply(name string) string {
	switch kc {
	case KeyCaseCamel:
		return strcase.ToLowerCamel(name)
	case KeyCasePascal:
		return strcase.ToCamel(name)
	case KeyCaseSnake:
		return strcase.ToSnake(name)
	case KeyCaseKebab:
		return strcase.ToKebab(name)
	default:
		return name
	}
}

type mapOptions struct {
	maxDepth int
	keyCase  KeyCase
	encOpts  []encode.EncodeOption
}

type MapOption func(*mapOptions)

func newMapOptions(opts ...MapOption) *mapOptions {
	mo := &mapOptions{maxDepth: 512}
	for _, opt := range opts {
		opt(mo)
	}
	return mo
}

// MaxDepth bounds conversion recursion; exceeding it is a
// MarshalError. The default is 512.
func MaxDepth(n int) MapOption {
	return func(mo *mapOptions) { mo.maxDepth = n }
}

func WithKeyCase(kc KeyCase) MapOption {
	return func(mo *mapOptions) { mo.keyCase = kc }
}

// WithEncodeOptions forwards encoder options through Marshal.
func WithEncodeOptions(eOpts ...encode.EncodeOption) MapOption {
	return func(mo *mapOptions) { mo.encOpts = append(mo.encOpts, eOpts...) }
}

// ToEncodeOptions extracts the encoder options from map options.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapOptions(opts...).encOpts
}
