package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestChrootFS tests scoped filesystem views.
// Skips if fs doesn't implement core.ChrootFS.
func TestChrootFS(t *testing.T, filesystem core.FS) {
	TestChrootFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestChrootFSWithConfig tests scoped filesystem views with behavior
// configuration.
func TestChrootFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	cfs, ok := filesystem.(core.ChrootFS)
	if !ok {
		t.Skip("ChrootFS not supported")
	}

	// root/
	//   chroot-dir/
	//     inside.txt
	//   outside.txt
	if err := filesystem.Mkdir("chroot-dir", 0o755); err != nil {
		t.Fatalf("Mkdir(chroot-dir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("chroot-dir/inside.txt", []byte("inside"), 0o644); err != nil {
		t.Fatalf("WriteFile(chroot-dir/inside.txt): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("outside.txt", []byte("outside"), 0o644); err != nil {
		t.Fatalf("WriteFile(outside.txt): setup failed: %v", err)
	}

	t.Run("ScopedAccess", func(t *testing.T) {
		config.skip(t, "ChrootFS/ScopedAccess")
		scoped, err := cfs.Chroot("chroot-dir")
		if err != nil {
			t.Fatalf("Chroot(chroot-dir): got error %v, want nil", err)
		}
		if scoped.Type() != filesystem.Type() {
			t.Errorf("Chroot(chroot-dir).Type() = %v, want %v", scoped.Type(), filesystem.Type())
		}

		data, err := scoped.ReadFile("inside.txt")
		if err != nil {
			t.Errorf("scoped.ReadFile(inside.txt): got error %v, want nil", err)
		} else if !bytes.Equal(data, []byte("inside")) {
			t.Errorf("scoped.ReadFile(inside.txt): got %q, want %q", data, "inside")
		}

		if _, err := scoped.ReadFile("outside.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("scoped.ReadFile(outside.txt): got error %v, want fs.ErrNotExist", err)
		}

		if err := scoped.WriteFile("new.txt", []byte("new"), 0o644); err != nil {
			t.Fatalf("scoped.WriteFile(new.txt): got error %v, want nil", err)
		}
		if _, err := filesystem.Stat("chroot-dir/new.txt"); err != nil {
			t.Errorf("Stat(chroot-dir/new.txt): got error %v, want nil", err)
		}
	})

	t.Run("Traversal", func(t *testing.T) {
		config.skip(t, "ChrootFS/Traversal")
		scoped, err := cfs.Chroot("chroot-dir")
		if err != nil {
			t.Fatalf("Chroot(chroot-dir): got error %v, want nil", err)
		}
		if data, err := scoped.ReadFile("../outside.txt"); err == nil {
			t.Errorf("scoped.ReadFile(../outside.txt): escaped the chroot and read %q", data)
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		config.skip(t, "ChrootFS/MissingDirectory")
		if _, err := cfs.Chroot("nonexistent"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Chroot(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("FileTarget", func(t *testing.T) {
		config.skip(t, "ChrootFS/FileTarget")
		if _, err := cfs.Chroot("outside.txt"); err == nil {
			t.Errorf("Chroot(outside.txt): got nil error, want failure")
		}
	})
}
