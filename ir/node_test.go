package ir

import (
	"slices"
	"testing"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	obj := Object()
	obj.Set("b", FromInt(1))
	obj.Set("a", FromInt(2))
	obj.Set("c", FromInt(3))

	want := []string{"b", "a", "c"}
	if got := obj.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	// Re-setting an existing key replaces in place.
	obj.Set("a", FromInt(9))
	if got := obj.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() after re-set = %v, want %v", got, want)
	}
	v := Get(obj, "a")
	if v == nil || v.Int64 == nil || *v.Int64 != 9 {
		t.Errorf("Get(a) = %v, want 9", v)
	}
}

func TestDelete(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "c", Val: FromInt(3)},
	})
	if !obj.Delete("b") {
		t.Fatal("Delete(b) = false, want true")
	}
	if obj.Delete("b") {
		t.Error("second Delete(b) = true, want false")
	}
	want := []string{"a", "c"}
	if got := obj.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if obj.Has("b") {
		t.Error("Has(b) = true after delete")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"zulu":  FromInt(1),
		"alpha": FromInt(2),
		"mike":  FromInt(3),
	})
	want := []string{"alpha", "mike", "zulu"}
	if got := obj.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestToMap(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromString("x")},
	})
	m := ToMap(obj)
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["b"].String != "x" {
		t.Errorf("ToMap()[b] = %v, want 'x'", m["b"])
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("ToMap(non-object) != nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "nested", Val: FromKeyVals([]KeyVal{
			{Key: "x", Val: FromInt(1)},
		})},
	})
	cp := obj.Clone()
	Get(cp, "nested").Set("x", FromInt(2))

	orig := Get(Get(obj, "nested"), "x")
	if orig.Int64 == nil || *orig.Int64 != 1 {
		t.Errorf("Clone() shares nested values: got %v, want 1", orig)
	}
}

func TestShallowCloneSharesValues(t *testing.T) {
	inner := FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}})
	obj := FromKeyVals([]KeyVal{{Key: "nested", Val: inner}})
	cp := obj.ShallowClone()

	// Entry-level mutation of the clone leaves the original alone.
	cp.Set("extra", FromInt(2))
	if obj.Has("extra") {
		t.Error("ShallowClone() shares entry slices")
	}

	// Value nodes are shared.
	if Get(cp, "nested") != inner {
		t.Error("ShallowClone() copied value nodes")
	}
}

func TestVisit(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromInt(2), FromInt(3)})},
	})
	count := 0
	err := obj.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit() error: %v", err)
	}
	// obj, 1, array, 2, 3
	if count != 5 {
		t.Errorf("Visit() saw %d nodes, want 5", count)
	}
}
