package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/psd-format/go-psd/ir"
)

func mustEncode(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return buf.String()
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "$null"},
		{"true", ir.FromBool(true), "$true"},
		{"false", ir.FromBool(false), "$false"},
		{"int", ir.FromInt(42), "42"},
		{"negative int", ir.FromInt(-7), "-7"},
		{"float", ir.FromFloat(3.14), "3.14"},
		{"whole float keeps point", ir.FromFloat(1), "1.0"},
		{"string", ir.FromString("hello"), "'hello'"},
		{"empty string", ir.FromString(""), "''"},
		{"quote doubling", ir.FromString("O'Reilly"), "'O''Reilly'"},
		{"only quotes", ir.FromString("''"), "''''''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustEncode(t, tt.node); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	if got := mustEncode(t, ir.Object()); got != "@{}" {
		t.Errorf("empty object = %q, want %q", got, "@{}")
	}
	if got := mustEncode(t, ir.FromSlice(nil)); got != "@()" {
		t.Errorf("empty array = %q, want %q", got, "@()")
	}
}

func TestEncodeObject(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "Name", Val: ir.FromString("demo")},
		{Key: "Count", Val: ir.FromInt(3)},
		{Key: "Enabled", Val: ir.FromBool(true)},
		{Key: "Comment", Val: ir.Null()},
	})
	want := strings.Join([]string{
		"@{",
		"    Name = 'demo'",
		"    Count = 3",
		"    Enabled = $true",
		"    Comment = $null",
		"}",
	}, "\n")
	if got := mustEncode(t, node); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeNestedObject(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "Outer", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "Inner", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "Message", Val: ir.FromString("Yes, it's deep!")},
			})},
			{Key: "Empty", Val: ir.Object()},
		})},
	})
	want := strings.Join([]string{
		"@{",
		"    Outer = @{",
		"        Inner = @{",
		"            Message = 'Yes, it''s deep!'",
		"        }",
		"        Empty = @{}",
		"    }",
		"}",
	}, "\n")
	if got := mustEncode(t, node); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeArrayInObject(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "Key", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
		})},
	})
	want := strings.Join([]string{
		"@{",
		"    Key = @(",
		"        1",
		"        2",
		"        3",
		"    )",
		"}",
	}, "\n")
	if got := mustEncode(t, node); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeObjectInArray(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "Servers", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "Host", Val: ir.FromString("a")},
			}),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "Host", Val: ir.FromString("b")},
			}),
		})},
	})
	want := strings.Join([]string{
		"@{",
		"    Servers = @(",
		"        @{",
		"            Host = 'a'",
		"        }",
		"        @{",
		"            Host = 'b'",
		"        }",
		"    )",
		"}",
	}, "\n")
	if got := mustEncode(t, node); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeArrayFlattening(t *testing.T) {
	// Sub-sequences splice into the enclosing element list unless
	// NestArrays is set.
	inner := ir.FromSlice([]*ir.Node{ir.FromInt(2), ir.FromInt(3)})
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), inner, ir.FromInt(4)})

	want := strings.Join([]string{
		"@(",
		"    1",
		"    2",
		"    3",
		"    4",
		")",
	}, "\n")
	if got := mustEncode(t, node); got != want {
		t.Errorf("flattened =\n%s\nwant\n%s", got, want)
	}

	wantNested := strings.Join([]string{
		"@(",
		"    1",
		"    @(",
		"        2",
		"        3",
		"    )",
		"    4",
		")",
	}, "\n")
	if got := mustEncode(t, node, NestArrays(true)); got != wantNested {
		t.Errorf("nested =\n%s\nwant\n%s", got, wantNested)
	}
}

func TestEncodeAlignKeys(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: ir.FromInt(1)},
		{Key: "Long", Val: ir.FromInt(2)},
	})
	want := strings.Join([]string{
		"@{",
		"    A    = 1",
		"    Long = 2",
		"}",
	}, "\n")
	if got := mustEncode(t, node, AlignKeys(true)); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: ir.FromInt(1)},
		{Key: "Nested", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "B", Val: ir.FromInt(2)},
		})},
	})
	// entries at 4*depth spaces, closing brace one level out
	want := strings.Join([]string{
		"@{",
		"        A = 1",
		"        Nested = @{",
		"            B = 2",
		"        }",
		"    }",
	}, "\n")
	if got := mustEncode(t, node, Depth(2)); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeMaxDepth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "B", Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: "C", Val: ir.FromInt(1)},
			})},
		})},
	})
	buf := bytes.NewBuffer(nil)
	err := Encode(node, buf, MaxDepth(2))
	if !errors.Is(err, ErrMaxDepth) {
		t.Errorf("Encode() error = %v, want ErrMaxDepth", err)
	}
	if err := Encode(node, bytes.NewBuffer(nil), MaxDepth(3)); err != nil {
		t.Errorf("Encode() at limit error: %v", err)
	}
}

func TestEncodeUnknownKindFallsBackToString(t *testing.T) {
	node := &ir.Node{Type: ir.Type(99), String: "it's raw"}
	if got := mustEncode(t, node); got != "'it''s raw'" {
		t.Errorf("Encode() = %q, want %q", got, "'it''s raw'")
	}
}

func TestEncodeWithColorsKeepsStructure(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "Name", Val: ir.FromString("demo")},
	})
	plain := mustEncode(t, node)
	colored := mustEncode(t, node, EncodeColors(NewColors()))
	if !strings.Contains(colored, "Name") {
		t.Errorf("colored output lost the key: %q", colored)
	}
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain: %q", colored)
	}
}

func TestMustString(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "A", Val: ir.FromInt(1)},
	})
	want := "@{\n    A = 1\n}"
	if got := MustString(node); got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}
