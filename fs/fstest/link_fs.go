package fstest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestLinkFS tests hard link creation.
// Skips if fs doesn't implement core.LinkFS.
func TestLinkFS(t *testing.T, filesystem core.FS) {
	TestLinkFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestLinkFSWithConfig tests hard link creation with behavior configuration.
func TestLinkFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	lfs, ok := filesystem.(core.LinkFS)
	if !ok {
		t.Skip("LinkFS not supported")
	}

	if err := filesystem.WriteFile("original.txt", []byte("before"), 0o644); err != nil {
		t.Fatalf("WriteFile(original.txt): setup failed: %v", err)
	}

	err := lfs.Link("original.txt", "hard.txt")
	if !config.HardLinks {
		if !errors.Is(err, core.ErrUnsupported) {
			t.Errorf("Link(original.txt, hard.txt): got error %v, want core.ErrUnsupported", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Link(original.txt, hard.txt): got error %v, want nil", err)
	}

	// Writes through one name are visible through the other.
	if err := filesystem.WriteFile("original.txt", []byte("after"), 0o644); err != nil {
		t.Fatalf("WriteFile(original.txt): got error %v, want nil", err)
	}
	data, err := filesystem.ReadFile("hard.txt")
	if err != nil {
		t.Fatalf("ReadFile(hard.txt): got error %v, want nil", err)
	}
	if !bytes.Equal(data, []byte("after")) {
		t.Errorf("ReadFile(hard.txt): got %q, want %q", data, "after")
	}

	if err := lfs.Link("missing.txt", "hard2.txt"); err == nil {
		t.Errorf("Link(missing.txt, hard2.txt): got nil error, want failure")
	}
}
