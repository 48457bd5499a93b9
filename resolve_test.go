package roseredis

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("a.3.-1.03.")
	require.NoError(t, err)
	require.Equal(t, Path{
		{Text: "a", Index: -1},
		{Text: "3", Index: 3},
		{Text: "-1", Index: -1},
		{Text: "03", Index: 3},
		{Text: "", Index: -1},
	}, p)
	require.Equal(t, "a.3.-1.03.", p.String())

	_, err = ParsePath("")
	var pathErr InvalidPathError
	require.ErrorAs(t, err, &pathErr)
}

func TestSetRoundTrip(t *testing.T) {
	paths := []string{"a", "a.b", "a.b.c", "x.0", "x.1.y", "0", "0.1.2", "list.3", "m..n"}
	values := []any{"v", 1, 2.5, nil, []any{"p"}, H{"k": "v"}}

	for _, path := range paths {
		for _, v := range values {
			root := NewMap()
			require.NoError(t, Set(root, path, v))

			ref, err := Resolve(root, path)
			require.NoError(t, err)
			got, ok := ref.Get()
			require.True(t, ok, path)
			require.Equal(t, v, got, path)

			got, ok = root.Lookup(path)
			require.True(t, ok, path)
			require.Equal(t, v, got, path)
		}
	}
}

func TestSetIndexCreatesSequence(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a.0.x", 1))

	a, _ := root.Get("a")
	require.IsType(t, &Seq{}, a)

	want := map[string]any{"a": []any{map[string]any{"x": 1}}}
	if diff := cmp.Diff(want, root.Native()); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRootIsNeverConverted(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "0.b", 1))
	require.NoError(t, Set(root, "1", 2))

	want := map[string]any{"0": map[string]any{"b": 1}, "1": 2}
	require.Equal(t, want, root.Native())
}

func TestMapConvertedToSequenceKeepsIndexKeys(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a", H{"0": "x", "2": "y", "name": "z"}))
	require.NoError(t, Set(root, "a.1", "w"))

	want := map[string]any{"a": []any{"x", "w", "y"}}
	require.Equal(t, want, root.Native())
}

func TestSequenceConvertedToMap(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a.0", "x"))
	require.NoError(t, Set(root, "a.b", 1))

	want := map[string]any{"a": map[string]any{"0": "x", "b": 1}}
	require.Equal(t, want, root.Native())
}

func TestScalarOnPathIsReplaced(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a", 5))
	require.NoError(t, Set(root, "a.b.c", true))

	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": true}}}
	require.Equal(t, want, root.Native())
}

func TestSetOverwritesContainer(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a.b", 1))
	require.NoError(t, Set(root, "a", "flat"))

	require.Equal(t, map[string]any{"a": "flat"}, root.Native())
}

func TestSequenceGrowsWithHoles(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a.2", "z"))

	require.Equal(t, map[string]any{"a": []any{nil, nil, "z"}}, root.Native())
}

func TestFarIndexIsStoredByName(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "sales.20000000", 1))

	require.Equal(t, map[string]any{"sales": map[string]any{"20000000": 1}}, root.Native())
	v, ok := root.Lookup("sales.20000000")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.NoError(t, Set(root, "list.0", "x"))
	require.NoError(t, Set(root, "list.5000", "y"))
	require.Equal(t, map[string]any{"0": "x", "5000": "y"}, root.Native()["list"])

	require.NoError(t, Increment(root, "hits.4096.n", 1))
	v, _ = root.Lookup("hits.4096.n")
	require.Equal(t, int64(1), v)
}

func TestIndexWithinGapGrowsSequence(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a", []any{"x"}))
	require.NoError(t, Set(root, "a."+strconv.Itoa(1+MaxIndexGap), "y"))

	a, _ := root.Get("a")
	require.IsType(t, &Seq{}, a)
	require.Equal(t, MaxIndexGap+2, a.(*Seq).Len())
}

func TestSeqPutIsBounded(t *testing.T) {
	s := NewSeq()
	require.False(t, s.Put(MaxIndexGap+1, "x"))
	require.False(t, s.Put(-1, "x"))
	require.Equal(t, 0, s.Len())

	require.True(t, s.Put(MaxIndexGap, "x"))
	require.Equal(t, MaxIndexGap+1, s.Len())
}

func TestNativeValuesAreAdopted(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "doc", map[string]any{"b": 1, "a": []any{"x"}}))
	require.NoError(t, Set(root, "doc.a.1", "y"))
	require.NoError(t, Set(root, "doc.c", 3))

	want := map[string]any{"doc": map[string]any{"a": []any{"x", "y"}, "b": 1, "c": 3}}
	require.Equal(t, want, root.Native())
}

func TestIncrement(t *testing.T) {
	root := NewMap()
	require.NoError(t, Increment(root, "n.hits", 2))
	require.NoError(t, Increment(root, "n.hits", 3))

	v, _ := root.Lookup("n.hits")
	require.Equal(t, int64(5), v)

	require.NoError(t, Increment(root, "f", 1))
	require.NoError(t, Increment(root, "f", 0.5))
	v, _ = root.Lookup("f")
	require.Equal(t, 1.5, v)

	require.NoError(t, Set(root, "s", "abc"))
	require.NoError(t, Increment(root, "s", int32(4)))
	v, _ = root.Lookup("s")
	require.Equal(t, int64(4), v)

	require.NoError(t, Set(root, "list.1", 10))
	require.NoError(t, Increment(root, "list.1", -1))
	v, _ = root.Lookup("list.1")
	require.Equal(t, int64(9), v)

	require.NoError(t, Increment(root, "u", uint64(math.MaxUint64)))
	v, _ = root.Lookup("u")
	require.Equal(t, float64(math.MaxUint64), v)

	require.NoError(t, Increment(root, "w", uint(7)))
	v, _ = root.Lookup("w")
	require.Equal(t, int64(7), v)
}

func TestIncrementErrors(t *testing.T) {
	root := NewMap()

	var deltaErr InvalidDeltaError
	require.ErrorAs(t, Increment(root, "a", "1"), &deltaErr)
	require.Equal(t, "a", deltaErr.Path)

	var pathErr InvalidPathError
	require.ErrorAs(t, Increment(root, "", 1), &pathErr)
	require.ErrorAs(t, Increment(root, "", "x"), &pathErr)
	require.ErrorAs(t, Set(root, "", 1), &pathErr)
	require.Equal(t, 0, root.Len())
}

func TestLookupDoesNotCreate(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "a.b", 1))

	_, ok := root.Lookup("a.c")
	require.False(t, ok)
	_, ok = root.Lookup("a.b.c")
	require.False(t, ok)
	_, ok = root.Lookup("")
	require.False(t, ok)

	require.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, root.Native())
}

func TestMarshalJSONKeepsInsertionOrder(t *testing.T) {
	root := NewMap()
	require.NoError(t, Set(root, "z", 1))
	require.NoError(t, Set(root, "a.1", "x"))
	require.NoError(t, Set(root, "m.y", true))
	require.NoError(t, Set(root, "m.b", nil))

	b, err := json.Marshal(root)
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":[null,"x"],"m":{"y":true,"b":null}}`, string(b))
	require.Equal(t, []string{"z", "a", "m"}, root.Keys())
}
