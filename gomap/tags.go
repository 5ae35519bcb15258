package gomap

import (
	"reflect"
	"strings"
)

const tagName = "psd"

type fieldTag struct {
	Name      string
	Explicit  bool
	OmitEmpty bool
	Skip      bool
}

// parseFieldTag reads the `psd` struct tag:
//
//	Field string `psd:"name,omitempty"`
//	Field string `psd:"-"`
func parseFieldTag(sf reflect.StructField) fieldTag {
	res := fieldTag{Name: sf.Name}
	tag, ok := sf.Tag.Lookup(tagName)
	if !ok {
		return res
	}
	name, rest, _ := strings.Cut(tag, ",")
	if name == "-" && rest == "" {
		res.Skip = true
		return res
	}
	if name != "" {
		res.Name = name
		res.Explicit = true
	}
	for _, opt := range strings.Split(rest, ",") {
		if opt == "omitempty" {
			res.OmitEmpty = true
		}
	}
	return res
}

// foldKey normalizes a key for loose matching, so "user_name",
// "userName" and "UserName" all resolve to the same struct field.
func foldKey(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		switch r {
		case '_', '-', ' ':
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
