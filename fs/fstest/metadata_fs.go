package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestMetadataFS tests metadata operations (Lstat, Chmod).
// Skips if fs doesn't implement core.MetadataFS.
func TestMetadataFS(t *testing.T, filesystem core.FS) {
	TestMetadataFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestMetadataFSWithConfig tests metadata operations with behavior
// configuration.
func TestMetadataFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	mfs, ok := filesystem.(core.MetadataFS)
	if !ok {
		t.Skip("MetadataFS not supported")
	}

	t.Run("Lstat", func(t *testing.T) {
		config.skip(t, "MetadataFS/Lstat")
		data := []byte("lstat")
		if err := filesystem.WriteFile("lstat.txt", data, 0o644); err != nil {
			t.Fatalf("WriteFile(lstat.txt): setup failed: %v", err)
		}
		info, err := mfs.Lstat("lstat.txt")
		if err != nil {
			t.Fatalf("Lstat(lstat.txt): got error %v, want nil", err)
		}
		if info.Name() != "lstat.txt" {
			t.Errorf("Lstat(lstat.txt): Name() = %q, want %q", info.Name(), "lstat.txt")
		}
		if info.Size() != int64(len(data)) {
			t.Errorf("Lstat(lstat.txt): Size() = %d, want %d", info.Size(), len(data))
		}

		if _, err := mfs.Lstat("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Lstat(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("Chmod", func(t *testing.T) {
		config.skip(t, "MetadataFS/Chmod")
		if err := filesystem.WriteFile("chmod.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(chmod.txt): setup failed: %v", err)
		}
		err := mfs.Chmod("chmod.txt", 0o600)
		if !config.EnforcesModes {
			if err != nil && !errors.Is(err, core.ErrUnsupported) {
				t.Errorf("Chmod(chmod.txt): got error %v, want nil or core.ErrUnsupported", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Chmod(chmod.txt): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("chmod.txt")
		if err != nil {
			t.Fatalf("Stat(chmod.txt): got error %v, want nil", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("Stat(chmod.txt): Mode().Perm() = %v, want %v", info.Mode().Perm(), fs.FileMode(0o600))
		}
	})

	t.Run("ModeAtCreation", func(t *testing.T) {
		config.skip(t, "MetadataFS/ModeAtCreation")
		if err := filesystem.WriteFile("created.txt", []byte("x"), 0o600); err != nil {
			t.Fatalf("WriteFile(created.txt): setup failed: %v", err)
		}
		info, err := filesystem.Stat("created.txt")
		if err != nil {
			t.Fatalf("Stat(created.txt): got error %v, want nil", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("Stat(created.txt): Mode().Perm() = %v, want %v", info.Mode().Perm(), fs.FileMode(0o600))
		}
	})
}
