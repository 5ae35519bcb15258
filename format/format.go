package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	PsdFormat Format = iota
	ScriptFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":      PsdFormat,
		"psd":    PsdFormat,
		"s":      ScriptFormat,
		"script": ScriptFormat,
		"ps1":    ScriptFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath selects a format by file name suffix. An unrecognized
// suffix is an error; callers surface it as fatal.
func ForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".psd1":
		return PsdFormat, nil
	case ".ps1":
		return ScriptFormat, nil
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized suffix in %q", ErrBadFormat, path)
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PsdFormat:
		return []byte("psd"), nil
	case ScriptFormat:
		return []byte("script"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// IsLiteral reports whether the format is one of the PSD literal
// forms written verbatim by the encoder.
func (f Format) IsLiteral() bool {
	return f == PsdFormat || f == ScriptFormat
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PsdFormat:
		return ".psd1"
	case ScriptFormat:
		return ".ps1"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PsdFormat, ScriptFormat, JSONFormat, YAMLFormat}
}
