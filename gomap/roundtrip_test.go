package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type rtInner struct {
	Message string
	Flags   []bool
}

type rtOuter struct {
	Name    string
	Count   int
	Ratio   float64
	Nested  rtInner
	Tags    map[string]string
	Null    *rtInner
	Numbers []int64
}

func TestRoundTrip(t *testing.T) {
	in := rtOuter{
		Name:  "demo",
		Count: 3,
		Ratio: 0.5,
		Nested: rtInner{
			Message: "it's nested",
			Flags:   []bool{true, false},
		},
		Tags:    map[string]string{"env": "dev", "app": "psd"},
		Numbers: []int64{1, 2, 3},
	}
	node, err := ToIR(in)
	if err != nil {
		t.Fatalf("ToIR() error: %v", err)
	}
	var out rtOuter
	if err := FromIR(node, &out); err != nil {
		t.Fatalf("FromIR() error: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestMarshal(t *testing.T) {
	type cfg struct {
		Name    string
		Enabled bool
	}
	d, err := Marshal(cfg{Name: "x", Enabled: true})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "@{\n    Name = 'x'\n    Enabled = $true\n}"
	if string(d) != want {
		t.Errorf("Marshal() = %q, want %q", string(d), want)
	}
}
