package tree_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/billy"
	"github.com/jmgilman/go/testdirs/fs/core"
	"github.com/jmgilman/go/testdirs/tree"
)

func TestMaterialize_Files(t *testing.T) {
	fsys, dir := localDir(t)

	tr := tree.New().
		Set("text.txt", tree.Text("hello")).
		Set("bytes.bin", tree.Bytes{0x00, 0x01, 0xfe}).
		Set("int.txt", tree.Int(42)).
		Set("bool.txt", tree.Bool(true)).
		Set("null.txt", tree.Null{}).
		Set("undefined.txt", tree.Undefined{}).
		Set("empty.txt", tree.Text(""))

	require.NoError(t, tree.Materialize(fsys, dir, tr))

	assert.Equal(t, "hello", readFile(t, filepath.Join(dir, "text.txt")))
	assert.Equal(t, "\x00\x01\xfe", readFile(t, filepath.Join(dir, "bytes.bin")))
	assert.Equal(t, "42", readFile(t, filepath.Join(dir, "int.txt")))
	assert.Equal(t, "true", readFile(t, filepath.Join(dir, "bool.txt")))
	assert.Equal(t, "null", readFile(t, filepath.Join(dir, "null.txt")))
	assert.Equal(t, "undefined", readFile(t, filepath.Join(dir, "undefined.txt")))
	assert.Equal(t, "", readFile(t, filepath.Join(dir, "empty.txt")))
}

func TestMaterialize_EmptyTreeCreatesDirectory(t *testing.T) {
	fsys, dir := localDir(t)
	dest := filepath.Join(dir, "a", "b")

	require.NoError(t, tree.Materialize(fsys, dest, tree.New()))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// A nil tree behaves like an empty one.
	require.NoError(t, tree.Materialize(fsys, filepath.Join(dir, "c"), nil))
	assert.DirExists(t, filepath.Join(dir, "c"))
}

func TestMaterialize_DeepNesting(t *testing.T) {
	fsys, dir := localDir(t)

	tr := tree.New().Set("a", tree.New().
		Set("b", tree.New().
			Set("c", tree.New().
				Set("d.txt", tree.Text("x")))))

	require.NoError(t, tree.Materialize(fsys, dir, tr))
	assert.Equal(t, "x", readFile(t, filepath.Join(dir, "a", "b", "c", "d.txt")))
}

func TestMaterialize_FlatPathMatchesNestedDirectory(t *testing.T) {
	fsys, dir := localDir(t)
	flat := filepath.Join(dir, "flat")
	nested := filepath.Join(dir, "nested")

	require.NoError(t, tree.Materialize(fsys, flat, tree.New().
		Set("subdir/file.txt", tree.Text("content"))))
	require.NoError(t, tree.Materialize(fsys, nested, tree.New().
		Set("subdir", tree.New().Set("file.txt", tree.Text("content")))))

	flatView, err := tree.Render(fsys, flat)
	require.NoError(t, err)
	nestedView, err := tree.Render(fsys, nested)
	require.NoError(t, err)

	assert.Equal(t, dropRoot(nestedView), dropRoot(flatView))
	assert.Equal(t, "content", readFile(t, filepath.Join(flat, "subdir", "file.txt")))
}

func TestMaterialize_FlatPathIntoExistingDirectory(t *testing.T) {
	fsys, dir := localDir(t)

	tr := tree.New().
		Set("a/one.txt", tree.Text("1")).
		Set("a", tree.New().Set("two.txt", tree.Text("2")))

	require.NoError(t, tree.Materialize(fsys, dir, tr))
	assert.Equal(t, "1", readFile(t, filepath.Join(dir, "a", "one.txt")))
	assert.Equal(t, "2", readFile(t, filepath.Join(dir, "a", "two.txt")))
}

func TestMaterialize_HardLink(t *testing.T) {
	fsys, dir := localDir(t)

	tr := tree.New().
		Set("original.txt", tree.Text("shared")).
		Set("sub", tree.New().
			Set("link.txt", tree.NewLink("../original.txt")))

	require.NoError(t, tree.Materialize(fsys, dir, tr))

	a, err := os.Stat(filepath.Join(dir, "original.txt"))
	require.NoError(t, err)
	b, err := os.Lstat(filepath.Join(dir, "sub", "link.txt"))
	require.NoError(t, err)
	assert.True(t, os.SameFile(a, b))
	assert.Zero(t, b.Mode()&fs.ModeSymlink)
}

func TestMaterialize_HardLinkToMissingTarget(t *testing.T) {
	fsys, dir := localDir(t)

	err := tree.Materialize(fsys, dir, tree.New().Set("l", tree.NewLink("missing.txt")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMaterialize_SymlinkWrittenLiterally(t *testing.T) {
	skipWithoutSymlinks(t)
	fsys, dir := localDir(t)

	tr := tree.New().
		Set("target.txt", tree.Text("target")).
		Set("dir", tree.New().Set("file.txt", tree.Text("in dir"))).
		Set("nested/link.txt", tree.NewSymlink("../target.txt")).
		Set("dirlink", tree.NewSymlink("dir")).
		Set("dangling", tree.NewSymlink("nowhere"))

	require.NoError(t, tree.Materialize(fsys, dir, tr))

	raw, err := os.Readlink(filepath.Join(dir, "nested", "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("../target.txt"), raw)
	assert.Equal(t, "target", readFile(t, filepath.Join(dir, "nested", "link.txt")))
	assert.Equal(t, "in dir", readFile(t, filepath.Join(dir, "dirlink", "file.txt")))

	info, err := os.Lstat(filepath.Join(dir, "dangling"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink)
}

func TestMaterialize_FileMode(t *testing.T) {
	fsys, dir := localDir(t)

	tr := tree.New().
		Set("script.sh", tree.MustWithMode(tree.Text("#!/bin/sh\n"), 0o755)).
		Set("secret", tree.MustWithMode(tree.Text("x"), 0o600)).
		Set("private", tree.MustWithMode(tree.New().Set("a.txt", tree.Text("a")), 0o700))

	require.NoError(t, tree.Materialize(fsys, dir, tr))

	info, err := os.Stat(filepath.Join(dir, "secret"))
	require.NoError(t, err)
	if runtimeEnforcesModes() {
		assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

		info, err = os.Stat(filepath.Join(dir, "script.sh"))
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o755), info.Mode().Perm())

		info, err = os.Stat(filepath.Join(dir, "private"))
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0o700), info.Mode().Perm())
	}
	assert.Equal(t, "a", readFile(t, filepath.Join(dir, "private", "a.txt")))
}

func TestMaterialize_ReadOnlyDirectoryRejectsWrites(t *testing.T) {
	skipWithoutPermissions(t)
	fsys, dir := localDir(t)
	ro := filepath.Join(dir, "ro")
	t.Cleanup(func() { _ = os.Chmod(ro, 0o755) })

	require.NoError(t, tree.Materialize(fsys, dir, tree.New().
		Set("ro", tree.MustWithMode(tree.New(), 0o555))))

	err := os.WriteFile(filepath.Join(ro, "new.txt"), []byte("x"), 0o644)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestMaterialize_ReadOnlyDirectoryFailsForChildren(t *testing.T) {
	skipWithoutPermissions(t)
	fsys, dir := localDir(t)
	ro := filepath.Join(dir, "ro")
	t.Cleanup(func() { _ = os.Chmod(ro, 0o755) })

	tr := tree.New().
		Set("before.txt", tree.Text("written")).
		Set("ro", tree.MustWithMode(tree.New().Set("child.txt", tree.Text("x")), 0o555)).
		Set("after.txt", tree.Text("never written"))

	err := tree.Materialize(fsys, dir, tr)
	require.Error(t, err)
	assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrPermission)

	// No rollback: earlier entries stay, later ones were never attempted.
	assert.FileExists(t, filepath.Join(dir, "before.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "after.txt"))
}

func TestMaterialize_InvalidNames(t *testing.T) {
	fsys, dir := localDir(t)

	for _, name := range []string{"", ".", "./", "a/..", "../escape.txt", "a/../../escape.txt", "/abs.txt"} {
		t.Run(name, func(t *testing.T) {
			err := tree.Materialize(fsys, dir, tree.New().Set(name, tree.Text("x")))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "escape.txt"))
}

func TestMaterialize_MalformedContent(t *testing.T) {
	fsys, dir := localDir(t)

	tests := []struct {
		name    string
		content tree.Content
	}{
		{name: "zero meta", content: tree.Meta{}},
		{name: "zero link", content: tree.Link{}},
		{name: "zero symlink", content: tree.Symlink{}},
		{name: "nil content", content: nil},
		{name: "nil tree", content: (*tree.Tree)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.Materialize(fsys, dir, tree.New().Set("entry", tt.content))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestMaterialize_ErrorCarriesPath(t *testing.T) {
	fsys, dir := localDir(t)
	writeFile(t, filepath.Join(dir, "blocker"), "file, not a directory")

	err := tree.Materialize(fsys, dir, tree.New().Set("blocker/child.txt", tree.Text("x")))
	require.Error(t, err)

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.NotEmpty(t, platformErr.Context()[errors.KeyPath])
	assert.NotEmpty(t, platformErr.Context()[errors.KeyOp])
}

func TestMaterialize_MemoryFS(t *testing.T) {
	fsys := billy.NewMemory()

	tr := tree.New().
		Set("a.txt", tree.Text("a")).
		Set("dir/b.txt", tree.Int(2)).
		Set("secret", tree.MustWithMode(tree.Text("s"), 0o600))

	require.NoError(t, tree.Materialize(fsys, "/work", tr))

	data, err := fsys.ReadFile("/work/dir/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	info, err := fsys.Stat("/work/secret")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestMaterialize_MemoryFSHasNoHardLinks(t *testing.T) {
	fsys := billy.NewMemory()

	err := tree.Materialize(fsys, "/work", tree.New().
		Set("a.txt", tree.Text("a")).
		Set("b.txt", tree.NewLink("a.txt")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotImplemented, errors.GetCode(err))
	assert.ErrorIs(t, err, core.ErrUnsupported)
}

// dropRoot removes the root line of a rendered snapshot.
func dropRoot(view string) string {
	for i, r := range view {
		if r == '\n' {
			return view[i+1:]
		}
	}
	return ""
}

func runtimeEnforcesModes() bool {
	return filepath.Separator == '/'
}
