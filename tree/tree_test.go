package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testdirs/tree"
)

func TestTree_SetKeepsInsertionOrder(t *testing.T) {
	tr := tree.New().
		Set("z.txt", tree.Text("1")).
		Set("a.txt", tree.Text("2")).
		Set("m.txt", tree.Text("3")).
		Set("z.txt", tree.Text("4"))

	assert.Equal(t, []string{"z.txt", "a.txt", "m.txt"}, tr.Names())
	assert.Equal(t, 3, tr.Len())

	got, ok := tr.Get("z.txt")
	require.True(t, ok)
	assert.Equal(t, tree.Text("4"), got)

	var seen []string
	for name := range tr.All() {
		seen = append(seen, name)
	}
	assert.Equal(t, tr.Names(), seen)
}

func TestTree_Delete(t *testing.T) {
	tr := tree.New().Set("a", tree.Text("1")).Set("b", tree.Text("2"))
	tr.Delete("a")
	tr.Delete("missing")

	assert.Equal(t, []string{"b"}, tr.Names())
	_, ok := tr.Get("a")
	assert.False(t, ok)
}

func TestTree_NilIsEmpty(t *testing.T) {
	var tr *tree.Tree
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Names())
	assert.Equal(t, "", tr.Source())
	for range tr.All() {
		t.Fatal("nil tree yielded an entry")
	}
	_, ok := tr.Get("x")
	assert.False(t, ok)
}

func TestTree_SetOnNilReturnsNewTree(t *testing.T) {
	var tr *tree.Tree
	got := tr.Set("a", tree.Text("x")).Set("b", tree.Text("y"))
	require.NotNil(t, got)
	assert.Equal(t, []string{"a", "b"}, got.Names())
}

func TestTree_MergeKeepsProvenanceOfMergedEntries(t *testing.T) {
	base := tree.New().Set("a", tree.NewSymlink("x")).WithSource("/src")
	merged := base.Merge(tree.New().Set("b", tree.NewSymlink("y")))
	assert.Equal(t, "/src", merged.Source())
	assert.Equal(t, []string{"a", "b"}, merged.Names())
}

func TestTree_ZeroValueIsUsable(t *testing.T) {
	var tr tree.Tree
	tr.Set("a", tree.Text("x"))
	assert.Equal(t, 1, tr.Len())
}

func TestFromMap_SortsNames(t *testing.T) {
	tr := tree.FromMap(map[string]tree.Content{
		"c": tree.Text("c"),
		"a": tree.Text("a"),
		"b": tree.New(),
	})
	assert.Equal(t, []string{"a", "b", "c"}, tr.Names())
}

func TestTree_Merge(t *testing.T) {
	base := tree.New().Set("a", tree.Text("1")).Set("b", tree.Text("2")).WithSource("/src")
	extra := tree.New().Set("b", tree.Text("override")).Set("c", tree.Text("3"))

	merged := base.Merge(extra)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Names())
	got, _ := merged.Get("b")
	assert.Equal(t, tree.Text("override"), got)
	assert.Equal(t, "/src", merged.Source())

	// The receiver is untouched.
	got, _ = base.Get("b")
	assert.Equal(t, tree.Text("2"), got)
	assert.Equal(t, 2, base.Len())
}

func TestTree_WithSource(t *testing.T) {
	tr := tree.New().Set("a", tree.Text("1"))
	sourced := tr.WithSource("/somewhere")

	assert.Equal(t, "", tr.Source())
	assert.Equal(t, "/somewhere", sourced.Source())
	assert.Equal(t, tr.Names(), sourced.Names())
}
