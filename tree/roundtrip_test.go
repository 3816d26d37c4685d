package tree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testdirs/fs/billy"
	"github.com/jmgilman/go/testdirs/tree"
)

func TestRoundTrip_ScanThenMaterialize(t *testing.T) {
	fsys, dir := localDir(t)
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, tree.Materialize(fsys, src, tree.New().
		Set("README.md", tree.Text("# hi")).
		Set("bin/data", tree.Bytes{0xff, 0x00}).
		Set("pkg", tree.New().
			Set("a.go", tree.Text("package pkg")).
			Set("internal", tree.New().Set("b.go", tree.Text("package internal"))))))

	scanned, err := tree.Scan(fsys, src, tree.ScanOptions{})
	require.NoError(t, err)
	require.NoError(t, tree.Materialize(fsys, dst, scanned))

	srcView, err := tree.Render(fsys, src)
	require.NoError(t, err)
	dstView, err := tree.Render(fsys, dst)
	require.NoError(t, err)
	assert.Equal(t, dropRoot(srcView), dropRoot(dstView))

	assert.Equal(t, "\xff\x00", readFile(t, filepath.Join(dst, "bin", "data")))
	assert.Equal(t, "package internal", readFile(t, filepath.Join(dst, "pkg", "internal", "b.go")))
}

func TestRoundTrip_RelativeSymlinkSurvivesDeeperDestination(t *testing.T) {
	skipWithoutSymlinks(t)
	fsys, dir := localDir(t)

	// src/a/b/link -> ../sibling.txt resolves to src/a/sibling.txt.
	src := filepath.Join(dir, "src", "a", "b")
	writeFile(t, filepath.Join(dir, "src", "a", "sibling.txt"), "sibling")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.Symlink(filepath.FromSlash("../sibling.txt"), filepath.Join(src, "link")))

	scanned, err := tree.Scan(fsys, src, tree.ScanOptions{})
	require.NoError(t, err)

	dst := filepath.Join(src, "c")
	require.NoError(t, tree.Materialize(fsys, dst, scanned))

	raw, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(raw))
	assert.Equal(t, filepath.FromSlash("../../sibling.txt"), raw)
	assert.Equal(t, "sibling", readFile(t, filepath.Join(dst, "link")))
}

func TestRoundTrip_ScannedSubtreeInsideSyntheticTree(t *testing.T) {
	skipWithoutSymlinks(t)
	fsys, dir := localDir(t)

	src := filepath.Join(dir, "fixtures", "project")
	writeFile(t, filepath.Join(src, "config.json"), "{}")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	require.NoError(t, os.Symlink(filepath.FromSlash("../config.json"), filepath.Join(src, "nested", "config")))

	scanned, err := tree.Scan(fsys, src, tree.ScanOptions{})
	require.NoError(t, err)

	dst := filepath.Join(dir, "out")
	require.NoError(t, tree.Materialize(fsys, dst, tree.New().
		Set("deep/er/project", scanned).
		Set("plain", tree.NewSymlink("deep"))))

	// The subtree keeps its provenance and is re-based; the synthetic link
	// is written as given.
	link := filepath.Join(dst, "deep", "er", "project", "nested", "config")
	raw, err := os.Readlink(link)
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(raw))
	assert.Equal(t, "{}", readFile(t, link))

	plain, err := os.Readlink(filepath.Join(dst, "plain"))
	require.NoError(t, err)
	assert.Equal(t, "deep", plain)
}

func TestRoundTrip_RelativeScanIntoAbsoluteDestination(t *testing.T) {
	skipWithoutSymlinks(t)
	dir := t.TempDir()
	fsys, err := billy.NewLocal().Chroot(dir)
	require.NoError(t, err)

	require.NoError(t, tree.Materialize(fsys, "src", tree.New().
		Set("a.txt", tree.Text("a")).
		Set("sub/link", tree.NewSymlink("../a.txt"))))

	scanned, err := tree.Scan(fsys, "src", tree.ScanOptions{})
	require.NoError(t, err)
	require.NoError(t, tree.Materialize(fsys, "/out/deeper", scanned))

	link := filepath.Join(dir, "out", "deeper", "sub", "link")
	raw, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("../../../src/a.txt"), raw)
	assert.Equal(t, "a", readFile(t, link))
}

func TestRoundTrip_ExtrasSymlinksAreLiteral(t *testing.T) {
	skipWithoutSymlinks(t)
	fsys, dir := localDir(t)
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a")

	scanned, err := tree.Scan(fsys, src, tree.ScanOptions{
		Extras: tree.New().Set("extra", tree.NewSymlink("a.txt")),
	})
	require.NoError(t, err)

	dst := filepath.Join(dir, "out")
	require.NoError(t, tree.Materialize(fsys, dst, scanned))

	raw, err := os.Readlink(filepath.Join(dst, "extra"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", raw)
	assert.Equal(t, "a", readFile(t, filepath.Join(dst, "extra")))
}
