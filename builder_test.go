package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleKeyValues(t *testing.T) {
	doc, err := ParseString("name = \"tom\"\nage = 30\n")
	require.NoError(t, err)

	k, ok := doc.Get("name")
	require.True(t, ok)
	s, ok := k.Value.AsString()
	require.True(t, ok)
	assert.Equal(t, "tom", s)

	k, ok = doc.Get("age")
	require.True(t, ok)
	n, ok := k.Value.AsInt64()
	require.True(t, ok)
	assert.EqualValues(t, 30, n)
}

func TestDottedKeysCreateNesting(t *testing.T) {
	doc, err := ParseString("physical.color = \"orange\"\nphysical.shape = \"round\"\n")
	require.NoError(t, err)

	k, ok := doc.Get("physical.color")
	require.True(t, ok)
	v, _ := k.Value.AsString()
	assert.Equal(t, "orange", v)
}

func TestTableHeadersAndReopenForSubtable(t *testing.T) {
	src := "[a]\nx = 1\n[a.b]\ny = 2\n"
	doc, err := ParseString(src)
	require.NoError(t, err)

	k, ok := doc.Get("a.x")
	require.True(t, ok)
	n, _ := k.Value.AsInt64()
	assert.EqualValues(t, 1, n)

	k, ok = doc.Get("a.b.y")
	require.True(t, ok)
	n, _ = k.Value.AsInt64()
	assert.EqualValues(t, 2, n)
}

func TestRedefinitionOfDottedThenHeaderIsRejected(t *testing.T) {
	src := "[fruit]\napple.color = \"red\"\n[fruit.apple]\ntexture = \"smooth\"\n"
	_, err := ParseString(src)
	require.Error(t, err)
}

func TestArrayOfTablesAccumulates(t *testing.T) {
	src := "[[products]]\nname = \"hammer\"\n[[products]]\nname = \"nail\"\n"
	doc, err := ParseString(src)
	require.NoError(t, err)

	k, ok := doc.Root.Child("products")
	require.True(t, ok)
	require.Equal(t, ArrayTable, k.Kind)
	arr, ok := k.Value.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 2)

	first, ok := arr[0].AsTable()
	require.True(t, ok)
	nameKey, ok := first.Child("name")
	require.True(t, ok)
	s, _ := nameKey.Value.AsString()
	assert.Equal(t, "hammer", s)
}

func TestArrayOfTablesSubtableAttachesToLastElement(t *testing.T) {
	src := "[[fruits]]\nname = \"apple\"\n[fruits.varieties]\nk = 1\n"
	doc, err := ParseString(src)
	require.NoError(t, err)

	k, ok := doc.Root.Child("fruits")
	require.True(t, ok)
	arr, ok := k.Value.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 1)

	elem, ok := arr[0].AsTable()
	require.True(t, ok)
	varieties, ok := elem.Child("varieties")
	require.True(t, ok)
	leaf, ok := varieties.Child("k")
	require.True(t, ok)
	n, _ := leaf.Value.AsInt64()
	assert.EqualValues(t, 1, n)
}

func TestDuplicateTableHeaderRejected(t *testing.T) {
	_, err := ParseString("[a]\nx = 1\n[a]\ny = 2\n")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrDuplicateKey, perr.Kind)
}

func TestSuperTableDefinedAfterSubtableIsPromoted(t *testing.T) {
	src := "[x.y]\nz = 1\n[x]\nw = 2\n"
	doc, err := ParseString(src)
	require.NoError(t, err)

	k, ok := doc.Get("x.w")
	require.True(t, ok)
	n, _ := k.Value.AsInt64()
	assert.EqualValues(t, 2, n)
}

func TestInlineTableAndArray(t *testing.T) {
	doc, err := ParseString("point = { x = 1, y = 2 }\nlist = [1, 2, 3]\n")
	require.NoError(t, err)

	k, ok := doc.Get("point")
	require.True(t, ok)
	tbl, ok := k.Value.AsTable()
	require.True(t, ok)
	xk, ok := tbl.Child("x")
	require.True(t, ok)
	n, _ := xk.Value.AsInt64()
	assert.EqualValues(t, 1, n)

	k, ok = doc.Get("list")
	require.True(t, ok)
	arr, ok := k.Value.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 3)
}

func TestDuplicateKeyRejected(t *testing.T) {
	_, err := ParseString("a = 1\na = 2\n")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrDuplicateKey, perr.Kind)
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "# leading comment\n\nkey = \"value\" # trailing comment\n\n"
	doc, err := ParseString(src)
	require.NoError(t, err)
	k, ok := doc.Get("key")
	require.True(t, ok)
	v, _ := k.Value.AsString()
	assert.Equal(t, "value", v)
}
