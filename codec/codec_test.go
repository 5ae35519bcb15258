package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psd-format/go-psd/format"
	"github.com/psd-format/go-psd/ir"
)

func fixture() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "Name", Val: ir.FromString("demo")},
		{Key: "Count", Val: ir.FromInt(3)},
		{Key: "Ratio", Val: ir.FromFloat(0.5)},
		{Key: "Enabled", Val: ir.FromBool(true)},
		{Key: "Missing", Val: ir.Null()},
		{Key: "List", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2),
		})},
	})
}

func TestSavePsdLiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.psd1")
	require.NoError(t, Save(path, fixture()))

	d, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `@{
    Name = 'demo'
    Count = 3
    Ratio = 0.5
    Enabled = $true
    Missing = $null
    List = @(
        1
        2
    )
}
`
	assert.Equal(t, want, string(d))
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, Save(path, fixture()))

	node, err := Load(path)
	require.NoError(t, err)

	// json round trips values; objects come back with sorted keys
	assert.Equal(t, "demo", ir.Get(node, "Name").String)
	assert.Equal(t, int64(3), *ir.Get(node, "Count").Int64)
	assert.Equal(t, 0.5, *ir.Get(node, "Ratio").Float64)
	assert.True(t, ir.Get(node, "Enabled").Bool)
	assert.Equal(t, ir.NullType, ir.Get(node, "Missing").Type)
	assert.Len(t, ir.Get(node, "List").Values, 2)
}

func TestYAMLRoundTripKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	in := fixture()
	require.NoError(t, Save(path, in))

	node, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.Keys(), node.Keys())
	assert.Equal(t, int64(3), *ir.Get(node, "Count").Int64)
	assert.Equal(t, 0.5, *ir.Get(node, "Ratio").Float64)
}

func TestLoadLiteralUnsupported(t *testing.T) {
	_, err := Load("config.psd1")
	assert.Error(t, err)
	_, err = Load("script.ps1")
	assert.Error(t, err)
}

func TestUnknownSuffixIsFatal(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "doc.toml"), fixture())
	assert.ErrorIs(t, err, format.ErrBadFormat)

	_, err = Load("doc.toml")
	assert.ErrorIs(t, err, format.ErrBadFormat)
}

func TestDecodeJSONNumbers(t *testing.T) {
	node, err := Decode([]byte(`{"i": 7, "f": 1.25}`), format.JSONFormat)
	require.NoError(t, err)
	i := ir.Get(node, "i")
	require.NotNil(t, i.Int64)
	assert.Equal(t, int64(7), *i.Int64)
	f := ir.Get(node, "f")
	require.NotNil(t, f.Float64)
	assert.Equal(t, 1.25, *f.Float64)
}

func TestDecodeLiteralRejected(t *testing.T) {
	_, err := Decode([]byte("@{}"), format.PsdFormat)
	assert.Error(t, err)
}
