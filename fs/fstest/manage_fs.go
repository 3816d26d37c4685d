package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestManageFS tests file management: Remove and RemoveAll.
func TestManageFS(t *testing.T, filesystem core.FS) {
	TestManageFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestManageFSWithConfig tests file management with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("RemoveFile", func(t *testing.T) {
		config.skip(t, "ManageFS/RemoveFile")
		if err := filesystem.WriteFile("remove.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(remove.txt): setup failed: %v", err)
		}
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(remove.txt): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("remove.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(remove.txt) after Remove: got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		config.skip(t, "ManageFS/RemoveNotExist")
		if err := filesystem.Remove("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		config.skip(t, "ManageFS/RemoveAll")
		if err := filesystem.MkdirAll("tree/a/b", 0o755); err != nil {
			t.Fatalf("MkdirAll(tree/a/b): setup failed: %v", err)
		}
		for _, p := range []string{"tree/top.txt", "tree/a/mid.txt", "tree/a/b/leaf.txt"} {
			if err := filesystem.WriteFile(p, []byte(p), 0o644); err != nil {
				t.Fatalf("WriteFile(%q): setup failed: %v", p, err)
			}
		}
		if err := filesystem.RemoveAll("tree"); err != nil {
			t.Fatalf("RemoveAll(tree): got error %v, want nil", err)
		}
		if exists, err := filesystem.Exists("tree"); err != nil || exists {
			t.Errorf("Exists(tree) after RemoveAll: got (%v, %v), want (false, nil)", exists, err)
		}
	})

	t.Run("RemoveAllNotExist", func(t *testing.T) {
		config.skip(t, "ManageFS/RemoveAllNotExist")
		if err := filesystem.RemoveAll("nonexistent"); err != nil {
			t.Errorf("RemoveAll(nonexistent): got error %v, want nil", err)
		}
	})

	t.Run("RemoveAllKeepsSymlinkTargets", func(t *testing.T) {
		config.skip(t, "ManageFS/RemoveAllKeepsSymlinkTargets")
		sfs, ok := filesystem.(core.SymlinkFS)
		if !ok {
			t.Skip("SymlinkFS not supported")
		}
		if err := filesystem.MkdirAll("kept", 0o755); err != nil {
			t.Fatalf("MkdirAll(kept): setup failed: %v", err)
		}
		if err := filesystem.WriteFile("kept/precious.txt", []byte("keep me"), 0o644); err != nil {
			t.Fatalf("WriteFile(kept/precious.txt): setup failed: %v", err)
		}
		if err := filesystem.MkdirAll("doomed", 0o755); err != nil {
			t.Fatalf("MkdirAll(doomed): setup failed: %v", err)
		}
		if err := sfs.Symlink("../kept", "doomed/link"); err != nil {
			t.Fatalf("Symlink(../kept, doomed/link): setup failed: %v", err)
		}

		if err := filesystem.RemoveAll("doomed"); err != nil {
			t.Fatalf("RemoveAll(doomed): got error %v, want nil", err)
		}
		if _, err := filesystem.ReadFile("kept/precious.txt"); err != nil {
			t.Errorf("ReadFile(kept/precious.txt) after RemoveAll(doomed): got error %v, want nil", err)
		}
	})
}
