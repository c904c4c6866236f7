package tomlquery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tomlquery "github.com/ehuss/toml-query"
	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/resolve"
)

func doc(t *testing.T, src string) *tomlquery.Document {
	t.Helper()
	root, err := ir.DecodeYAML([]byte(src))
	require.NoError(t, err)
	return tomlquery.New(root)
}

func TestDocumentRead(t *testing.T) {
	d := doc(t, `
a:
  b: [10, 20]
`)
	n, err := d.Read("a.b[0]")
	require.NoError(t, err)
	assert.Equal(t, int64(10), n.Int)

	_, err = d.Read("a.b[2]")
	require.ErrorIs(t, err, tomlquery.ErrNotFound)
}

func TestDocumentInsertReadRoundTrip(t *testing.T) {
	d := doc(t, `a: {}`)
	require.NoError(t, d.Insert("a.c[]", ir.FromInt(5)))

	c, err := d.Read("a.c")
	require.NoError(t, err)
	require.Equal(t, ir.ArrayType, c.Type)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, int64(5), c.Values[0].Int)

	want, err := ir.DecodeYAML([]byte("a:\n  c: [5]\n"))
	require.NoError(t, err)
	assert.True(t, ir.Equal(want, d.Root()))
}

func TestDocumentDeleteThenRead(t *testing.T) {
	d := doc(t, `
a:
  b: 1
`)
	removed, err := d.Delete("a.b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed.Int)

	_, err = d.Read("a.b")
	require.ErrorIs(t, err, tomlquery.ErrNotFound)
}

func TestDocumentSetIdempotent(t *testing.T) {
	d := doc(t, `a: {}`)
	for i := 0; i < 2; i++ {
		require.NoError(t, d.Set("a.b", ir.FromInt(7)))
		got, err := d.ReadInt("a.b")
		require.NoError(t, err)
		assert.Equal(t, int64(7), got)
	}
}

func TestDocumentNoCoercion(t *testing.T) {
	d := doc(t, `
table:
  a: 1
array: [10]
`)
	_, err := d.Read("array.key")
	require.ErrorIs(t, err, tomlquery.ErrTypeMismatch)

	_, err = d.Read("table[0]")
	require.ErrorIs(t, err, tomlquery.ErrTypeMismatch)
}

func TestDocumentParseError(t *testing.T) {
	d := doc(t, `a: 1`)
	_, err := d.Read("a..b")
	require.ErrorIs(t, err, tomlquery.ErrParse)

	require.ErrorIs(t, d.Insert("", ir.FromInt(1)), tomlquery.ErrParse)
	require.ErrorIs(t, d.Update("a[", ir.FromInt(1)), tomlquery.ErrParse)
	require.ErrorIs(t, d.Set("a[x]", ir.FromInt(1)), tomlquery.ErrParse)
	_, err = d.Delete("a.")
	require.ErrorIs(t, err, tomlquery.ErrParse)
}

func TestDocumentUpdatePreservesOrder(t *testing.T) {
	d := doc(t, `
x: 1
y: 2
z: 3
`)
	require.NoError(t, d.Update("y", ir.FromString("mid")))
	assert.Equal(t, []string{"x", "y", "z"}, d.Root().Fields)
	got, err := d.ReadString("y")
	require.NoError(t, err)
	assert.Equal(t, "mid", got)
}

func TestDocumentSeparatorOption(t *testing.T) {
	root, err := ir.DecodeYAML([]byte("a.b:\n  c: 1\n"))
	require.NoError(t, err)
	d := tomlquery.New(root, tomlquery.WithSeparator('/'))
	got, err := d.ReadInt("a.b/c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestTypedAccessors(t *testing.T) {
	d := doc(t, `
s: hello
i: 42
f: 2.5
b: true
t: "2024-05-01T12:00:00Z"
arr: [1, 2]
tab:
  k: v
`)
	s, err := d.ReadString("s")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	i, err := d.ReadInt("i")
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	f, err := d.ReadFloat("f")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b, err := d.ReadBool("b")
	require.NoError(t, err)
	assert.True(t, b)

	ts, err := d.ReadDatetime("t")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	arr, err := d.ReadArray("arr")
	require.NoError(t, err)
	require.Len(t, arr, 2)
	assert.Equal(t, int64(2), arr[1].Int)

	tab, err := d.ReadTable("tab")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, tab.Fields)
}

func TestTypedMismatchNamesBothKinds(t *testing.T) {
	d := doc(t, `a: 42`)
	_, err := d.ReadString("a")
	require.ErrorIs(t, err, tomlquery.ErrTypeMismatch)

	var rerr *resolve.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ir.StringType, rerr.Expected)
	assert.Equal(t, ir.IntegerType, rerr.Actual)
	assert.Contains(t, rerr.Error(), "String")
	assert.Contains(t, rerr.Error(), "Integer")
}

func TestTypedAbsent(t *testing.T) {
	d := doc(t, `a: 1`)
	_, err := d.ReadString("missing")
	require.ErrorIs(t, err, tomlquery.ErrNotFound)
}

func TestAsPassesFailureThrough(t *testing.T) {
	d := doc(t, `a: 1`)
	n, err := d.Read("missing")
	_, asErr := tomlquery.As(n, err, ir.StringType)
	assert.Same(t, err, asErr)

	n, err = d.Read("a")
	require.NoError(t, err)
	got, err := tomlquery.As(n, nil, ir.IntegerType)
	require.NoError(t, err)
	assert.Same(t, n, got)

	_, err = tomlquery.As(n, nil, ir.BoolType)
	require.ErrorIs(t, err, tomlquery.ErrTypeMismatch)
}

func TestReadMutAllowsInPlaceEdit(t *testing.T) {
	d := doc(t, `
a:
  b: 1
`)
	n, err := d.ReadMut("a.b")
	require.NoError(t, err)
	n.Int = 9
	got, err := d.ReadInt("a.b")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestCloneForAtomicity(t *testing.T) {
	d := doc(t, `scalar: 1`)
	scratch := tomlquery.New(d.Root().Clone())
	err := scratch.Insert("scalar.a.b", ir.FromInt(2))
	require.ErrorIs(t, err, tomlquery.ErrTypeMismatch)
	// the original tree never saw the failed call
	got, err := d.ReadInt("scalar")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
