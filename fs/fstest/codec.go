package fstest

import (
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
	"github.com/jmgilman/go/testdirs/tree"
)

// TestTreeCodec checks that trees survive a materialize, scan, materialize
// cycle on the provider.
func TestTreeCodec(t *testing.T, filesystem core.FS) {
	TestTreeCodecWithConfig(t, filesystem, LocalTestConfig())
}

// TestTreeCodecWithConfig checks the tree codec with behavior configuration.
func TestTreeCodecWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	fixture := tree.New().
		Set("README.md", tree.Text("# fixture")).
		Set("data.bin", tree.Bytes{0x00, 0xff}).
		Set("src", tree.New().
			Set("main.go", tree.Text("package main")).
			Set("internal/util.go", tree.Text("package internal")))
	if _, ok := filesystem.(core.SymlinkFS); ok {
		fixture.Set("src/readme", tree.NewSymlink("../README.md"))
	}

	t.Run("Materialize", func(t *testing.T) {
		config.skip(t, "TreeCodec/Materialize")
		if err := tree.Materialize(filesystem, "codec/src", fixture); err != nil {
			t.Fatalf("Materialize(codec/src): got error %v, want nil", err)
		}
		data, err := filesystem.ReadFile("codec/src/src/internal/util.go")
		if err != nil {
			t.Fatalf("ReadFile(codec/src/src/internal/util.go): got error %v, want nil", err)
		}
		if string(data) != "package internal" {
			t.Errorf("ReadFile(codec/src/src/internal/util.go): got %q, want %q", data, "package internal")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		config.skip(t, "TreeCodec/RoundTrip")
		if err := tree.Materialize(filesystem, "codec/rt-src", fixture); err != nil {
			t.Fatalf("Materialize(codec/rt-src): setup failed: %v", err)
		}
		scanned, err := tree.Scan(filesystem, "codec/rt-src", tree.ScanOptions{})
		if err != nil {
			t.Fatalf("Scan(codec/rt-src): got error %v, want nil", err)
		}
		if scanned.Source() == "" {
			t.Errorf("Scan(codec/rt-src): Source() is empty, want provenance")
		}
		if err := tree.Materialize(filesystem, "codec/rt-dst", scanned); err != nil {
			t.Fatalf("Materialize(codec/rt-dst): got error %v, want nil", err)
		}

		want, err := tree.Render(filesystem, "codec/rt-src")
		if err != nil {
			t.Fatalf("Render(codec/rt-src): got error %v, want nil", err)
		}
		got, err := tree.Render(filesystem, "codec/rt-dst")
		if err != nil {
			t.Fatalf("Render(codec/rt-dst): got error %v, want nil", err)
		}
		if body(got) != body(want) {
			t.Errorf("Render(codec/rt-dst):\n%s\nwant:\n%s", got, want)
		}

		data, err := filesystem.ReadFile("codec/rt-dst/data.bin")
		if err != nil {
			t.Fatalf("ReadFile(codec/rt-dst/data.bin): got error %v, want nil", err)
		}
		if string(data) != "\x00\xff" {
			t.Errorf("ReadFile(codec/rt-dst/data.bin): got %q, want %q", data, "\x00\xff")
		}
	})

	t.Run("SymlinkAcrossPathForms", func(t *testing.T) {
		config.skip(t, "TreeCodec/SymlinkAcrossPathForms")
		if _, ok := filesystem.(core.SymlinkFS); !ok {
			t.Skip("filesystem does not support symlinks")
		}
		if err := tree.Materialize(filesystem, "codec/forms-src", fixture); err != nil {
			t.Fatalf("Materialize(codec/forms-src): setup failed: %v", err)
		}
		scanned, err := tree.Scan(filesystem, "codec/forms-src", tree.ScanOptions{})
		if err != nil {
			t.Fatalf("Scan(codec/forms-src): got error %v, want nil", err)
		}
		if err := tree.Materialize(filesystem, "/codec/forms/deeper/dst", scanned); err != nil {
			t.Fatalf("Materialize(/codec/forms/deeper/dst): got error %v, want nil", err)
		}

		data, err := filesystem.ReadFile("/codec/forms/deeper/dst/src/readme")
		if err != nil {
			t.Fatalf("ReadFile(/codec/forms/deeper/dst/src/readme) through symlink: got error %v, want nil", err)
		}
		if string(data) != "# fixture" {
			t.Errorf("ReadFile(/codec/forms/deeper/dst/src/readme): got %q, want %q", data, "# fixture")
		}
	})

	t.Run("EmptyScan", func(t *testing.T) {
		config.skip(t, "TreeCodec/EmptyScan")
		scanned, err := tree.Scan(filesystem, "codec/does-not-exist", tree.ScanOptions{})
		if err != nil {
			t.Fatalf("Scan(codec/does-not-exist): got error %v, want nil", err)
		}
		if scanned.Len() != 0 {
			t.Errorf("Scan(codec/does-not-exist): got %d entries, want 0", scanned.Len())
		}
	})
}

// body strips the root line from a rendered tree.
func body(view string) string {
	for i := range len(view) {
		if view[i] == '\n' {
			return view[i+1:]
		}
	}
	return ""
}
