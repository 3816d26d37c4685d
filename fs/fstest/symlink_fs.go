package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestSymlinkFS tests symlink operations (Symlink, Readlink).
// Skips if fs doesn't implement core.SymlinkFS.
func TestSymlinkFS(t *testing.T, filesystem core.FS) {
	TestSymlinkFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestSymlinkFSWithConfig tests symlink operations with behavior
// configuration.
func TestSymlinkFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	sfs, ok := filesystem.(core.SymlinkFS)
	if !ok {
		t.Skip("SymlinkFS not supported")
	}

	targetContent := []byte("target file content")
	if err := filesystem.MkdirAll("links/dir", 0o755); err != nil {
		t.Fatalf("MkdirAll(links/dir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("links/target.txt", targetContent, 0o644); err != nil {
		t.Fatalf("WriteFile(links/target.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("links/dir/inner.txt", []byte("inner"), 0o644); err != nil {
		t.Fatalf("WriteFile(links/dir/inner.txt): setup failed: %v", err)
	}

	t.Run("File", func(t *testing.T) {
		config.skip(t, "SymlinkFS/File")
		if err := sfs.Symlink("target.txt", "links/file-link"); err != nil {
			t.Fatalf("Symlink(target.txt, links/file-link): got error %v, want nil", err)
		}

		target, err := sfs.Readlink("links/file-link")
		if err != nil {
			t.Fatalf("Readlink(links/file-link): got error %v, want nil", err)
		}
		if target != "target.txt" {
			t.Errorf("Readlink(links/file-link): got %q, want %q", target, "target.txt")
		}

		data, err := filesystem.ReadFile("links/file-link")
		if err != nil {
			t.Fatalf("ReadFile(links/file-link) through symlink: got error %v, want nil", err)
		}
		if !bytes.Equal(data, targetContent) {
			t.Errorf("ReadFile(links/file-link): got %q, want %q", data, targetContent)
		}
	})

	t.Run("ReadDirReportsSymlink", func(t *testing.T) {
		config.skip(t, "SymlinkFS/ReadDirReportsSymlink")
		if err := sfs.Symlink("dir", "links/dir-link"); err != nil {
			t.Fatalf("Symlink(dir, links/dir-link): got error %v, want nil", err)
		}
		entries, err := filesystem.ReadDir("links")
		if err != nil {
			t.Fatalf("ReadDir(links): got error %v, want nil", err)
		}
		for _, e := range entries {
			if e.Name() != "dir-link" {
				continue
			}
			if e.Type()&fs.ModeSymlink == 0 {
				t.Errorf("ReadDir(links): dir-link Type() = %v, want symlink", e.Type())
			}
			if e.IsDir() {
				t.Errorf("ReadDir(links): dir-link IsDir() = true, want false")
			}
			return
		}
		t.Errorf("ReadDir(links): dir-link not listed")
	})

	t.Run("Dangling", func(t *testing.T) {
		config.skip(t, "SymlinkFS/Dangling")
		if err := sfs.Symlink("missing.txt", "links/dangling"); err != nil {
			t.Fatalf("Symlink(missing.txt, links/dangling): got error %v, want nil", err)
		}
		target, err := sfs.Readlink("links/dangling")
		if err != nil {
			t.Fatalf("Readlink(links/dangling): got error %v, want nil", err)
		}
		if target != "missing.txt" {
			t.Errorf("Readlink(links/dangling): got %q, want %q", target, "missing.txt")
		}
		if _, err := filesystem.Stat("links/dangling"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(links/dangling): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Existing", func(t *testing.T) {
		config.skip(t, "SymlinkFS/Existing")
		if err := sfs.Symlink("target.txt", "links/target.txt"); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Symlink onto existing file: got error %v, want fs.ErrExist", err)
		}
	})
}
