package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile,
// Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	TestReadFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll("testdir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/sub): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		config.skip(t, "ReadFS/Open")
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open(testdir/testfile.txt): got error %v, want nil", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				t.Errorf("Close(): got error %v", closeErr)
			}
		}()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v, want nil", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadAll(): got %q, want %q", data, testContent)
		}

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("File.Stat(): got error %v, want nil", err)
		}
		if info.Size() != int64(len(testContent)) {
			t.Errorf("File.Stat(): Size() = %d, want %d", info.Size(), len(testContent))
		}
	})

	t.Run("Stat", func(t *testing.T) {
		config.skip(t, "ReadFS/Stat")
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(testdir/testfile.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Errorf("Stat(testdir/testfile.txt): IsDir() = true, want false")
		}

		info, err = filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(testdir): IsDir() = false, want true")
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		config.skip(t, "ReadFS/ReadDir")
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
		}
		if len(entries) != 2 {
			t.Fatalf("ReadDir(testdir): got %d entries, want 2", len(entries))
		}
		// Entries are sorted by name.
		if entries[0].Name() != "sub" || !entries[0].IsDir() {
			t.Errorf("ReadDir(testdir)[0]: got %q (dir=%v), want sub/", entries[0].Name(), entries[0].IsDir())
		}
		if entries[1].Name() != "testfile.txt" || entries[1].IsDir() {
			t.Errorf("ReadDir(testdir)[1]: got %q (dir=%v), want testfile.txt", entries[1].Name(), entries[1].IsDir())
		}
		if !entries[1].Type().IsRegular() {
			t.Errorf("ReadDir(testdir)[1]: Type() = %v, want regular", entries[1].Type())
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		config.skip(t, "ReadFS/ReadFile")
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(testdir/testfile.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, testContent) {
			t.Errorf("ReadFile(testdir/testfile.txt): got %q, want %q", data, testContent)
		}
	})

	t.Run("NotExist", func(t *testing.T) {
		config.skip(t, "ReadFS/NotExist")
		if _, err := filesystem.Open("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
		if _, err := filesystem.Stat("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
		if _, err := filesystem.ReadDir("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		config.skip(t, "ReadFS/Exists")
		for path, want := range map[string]bool{
			"testdir":              true,
			"testdir/testfile.txt": true,
			"nonexistent":          false,
		} {
			got, err := filesystem.Exists(path)
			if err != nil {
				t.Errorf("Exists(%q): got error %v, want nil", path, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", path, got, want)
			}
		}
	})
}
