package mapop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psd-format/go-psd/ir"
)

func fixture() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "Name", Val: ir.FromString("demo")},
		{Key: "Empty", Val: ir.FromString("")},
		{Key: "Missing", Val: ir.Null()},
		{Key: "Count", Val: ir.FromInt(3)},
		{Key: "Enabled", Val: ir.FromBool(true)},
		{Key: "List", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
	})
}

func TestFilterNullOrEmpty(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{NullOrEmpty: true}))
	assert.Equal(t, []string{"Name", "Count", "Enabled", "List"}, node.Keys())
}

func TestFilterRemoveKeys(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{RemoveKeys: []string{"Count", "List"}}))
	assert.Equal(t, []string{"Name", "Empty", "Missing", "Enabled"}, node.Keys())
}

func TestFilterRemoveTypes(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{RemoveTypes: []ir.Type{ir.BoolType, ir.ArrayType}}))
	assert.Equal(t, []string{"Name", "Empty", "Missing", "Count"}, node.Keys())
}

func TestFilterRemoveAllWithKeeps(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{
		RemoveAll: true,
		KeepKeys:  []string{"Name"},
		KeepTypes: []ir.Type{ir.NumberType},
	}))
	assert.Equal(t, []string{"Name", "Count"}, node.Keys())
}

func TestFilterKeepWinsOverRemove(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{
		RemoveKeys: []string{"Name"},
		KeepKeys:   []string{"Name"},
	}))
	assert.True(t, node.Has("Name"))

	node = fixture()
	require.NoError(t, Filter(node, FilterOptions{
		NullOrEmpty:     true,
		KeepNullOrEmpty: true,
	}))
	assert.True(t, node.Has("Empty"))
	assert.True(t, node.Has("Missing"))
}

func TestFilterWhere(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{
		Where: `type == "Number" && value > 2`,
	}))
	assert.False(t, node.Has("Count"))
	assert.True(t, node.Has("Name"))

	node = fixture()
	require.NoError(t, Filter(node, FilterOptions{
		Where: `key startsWith "E"`,
	}))
	assert.Equal(t, []string{"Name", "Missing", "Count", "List"}, node.Keys())
}

func TestFilterWhereNilValue(t *testing.T) {
	node := ir.Object()
	node.Set("ghost", nil)
	node.Set("real", ir.FromInt(1))

	require.NoError(t, Filter(node, FilterOptions{Where: `value == nil`}))
	assert.Equal(t, []string{"real"}, node.Keys())

	// nil values also survive a Where that does not match them
	node = ir.Object()
	node.Set("ghost", nil)
	require.NoError(t, Filter(node, FilterOptions{Where: `type == "Number"`}))
	assert.True(t, node.Has("ghost"))
}

func TestFilterWhereBadExpression(t *testing.T) {
	node := fixture()
	err := Filter(node, FilterOptions{Where: `key ==`})
	assert.Error(t, err)
	// nothing removed on a compile error
	assert.Len(t, node.Keys(), 6)
}

func TestFilterRejectsNonObjects(t *testing.T) {
	assert.ErrorIs(t, Filter(ir.FromInt(1), FilterOptions{}), ErrNotObject)
	assert.ErrorIs(t, Filter(nil, FilterOptions{}), ErrNotObject)
}

func TestFilterNoRulesKeepsEverything(t *testing.T) {
	node := fixture()
	require.NoError(t, Filter(node, FilterOptions{}))
	assert.Len(t, node.Keys(), 6)
}
