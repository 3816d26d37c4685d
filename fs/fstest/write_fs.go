package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestWriteFS tests write operations: WriteFile, Mkdir, MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	TestWriteFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestWriteFSWithConfig tests write operations with behavior configuration.
func TestWriteFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("WriteFile", func(t *testing.T) {
		config.skip(t, "WriteFS/WriteFile")
		if err := filesystem.WriteFile("write.txt", []byte("first"), 0o644); err != nil {
			t.Fatalf("WriteFile(write.txt): got error %v, want nil", err)
		}
		// A second write truncates.
		if err := filesystem.WriteFile("write.txt", []byte("2nd"), 0o644); err != nil {
			t.Fatalf("WriteFile(write.txt): overwrite got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("write.txt")
		if err != nil {
			t.Fatalf("ReadFile(write.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, []byte("2nd")) {
			t.Errorf("ReadFile(write.txt): got %q, want %q", data, "2nd")
		}
	})

	t.Run("WriteEmptyFile", func(t *testing.T) {
		config.skip(t, "WriteFS/WriteEmptyFile")
		if err := filesystem.WriteFile("empty.txt", nil, 0o644); err != nil {
			t.Fatalf("WriteFile(empty.txt): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("empty.txt")
		if err != nil {
			t.Fatalf("Stat(empty.txt): got error %v, want nil", err)
		}
		if info.Size() != 0 {
			t.Errorf("Stat(empty.txt): Size() = %d, want 0", info.Size())
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		config.skip(t, "WriteFS/Mkdir")
		if err := filesystem.Mkdir("newdir", 0o755); err != nil {
			t.Fatalf("Mkdir(newdir): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("newdir")
		if err != nil {
			t.Fatalf("Stat(newdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(newdir): IsDir() = false, want true")
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		config.skip(t, "WriteFS/MkdirExisting")
		if err := filesystem.Mkdir("twice", 0o755); err != nil {
			t.Fatalf("Mkdir(twice): setup failed: %v", err)
		}
		if err := filesystem.Mkdir("twice", 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(twice): second call got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		config.skip(t, "WriteFS/MkdirMissingParent")
		if err := filesystem.Mkdir("missing/child", 0o755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(missing/child): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("MkdirUnderFile", func(t *testing.T) {
		config.skip(t, "WriteFS/MkdirUnderFile")
		if err := filesystem.WriteFile("plain", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(plain): setup failed: %v", err)
		}
		if err := filesystem.Mkdir("plain/child", 0o755); err == nil {
			t.Errorf("Mkdir(plain/child): got nil error, want failure")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		config.skip(t, "WriteFS/MkdirAll")
		if err := filesystem.MkdirAll("a/b/c/d", 0o755); err != nil {
			t.Fatalf("MkdirAll(a/b/c/d): got error %v, want nil", err)
		}
		// Idempotent on existing directories.
		if err := filesystem.MkdirAll("a/b", 0o755); err != nil {
			t.Errorf("MkdirAll(a/b): got error %v, want nil", err)
		}
		for _, p := range []string{"a", "a/b", "a/b/c", "a/b/c/d"} {
			info, err := filesystem.Stat(p)
			if err != nil {
				t.Errorf("Stat(%q): got error %v, want nil", p, err)
				continue
			}
			if !info.IsDir() {
				t.Errorf("Stat(%q): IsDir() = false, want true", p)
			}
		}
	})
}
