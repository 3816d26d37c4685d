package fstest

import (
	"errors"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// TestWalkFS tests directory tree traversal with Walk.
func TestWalkFS(t *testing.T, filesystem core.FS) {
	TestWalkFSWithConfig(t, filesystem, LocalTestConfig())
}

// TestWalkFSWithConfig tests directory tree traversal with behavior
// configuration.
func TestWalkFSWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	// walk/
	//   a.txt
	//   sub/
	//     b.txt
	//     deeper/
	//       c.txt
	//   empty/
	if err := filesystem.MkdirAll("walk/sub/deeper", 0o755); err != nil {
		t.Fatalf("MkdirAll(walk/sub/deeper): setup failed: %v", err)
	}
	if err := filesystem.MkdirAll("walk/empty", 0o755); err != nil {
		t.Fatalf("MkdirAll(walk/empty): setup failed: %v", err)
	}
	for _, p := range []string{"walk/a.txt", "walk/sub/b.txt", "walk/sub/deeper/c.txt"} {
		if err := filesystem.WriteFile(p, []byte(p), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", p, err)
		}
	}

	t.Run("VisitsEverything", func(t *testing.T) {
		config.skip(t, "WalkFS/VisitsEverything")
		var visited []string
		err := filesystem.Walk("walk", func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): got error %v, want nil", err)
		}

		want := []string{
			"walk",
			"walk/a.txt",
			"walk/empty",
			"walk/sub",
			"walk/sub/b.txt",
			"walk/sub/deeper",
			"walk/sub/deeper/c.txt",
		}
		// Lexical order within each directory.
		if !slices.Equal(visited, want) {
			t.Errorf("Walk(walk): visited %v, want %v", visited, want)
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		config.skip(t, "WalkFS/SkipDir")
		var visited []string
		err := filesystem.Walk("walk", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "sub" {
				return fs.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(walk): got error %v, want nil", err)
		}
		for _, p := range visited {
			if p == "walk/sub/b.txt" {
				t.Errorf("Walk(walk): visited %q inside a skipped directory", p)
			}
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		config.skip(t, "WalkFS/MissingRoot")
		err := filesystem.Walk("nonexistent", func(_ string, _ fs.DirEntry, err error) error {
			return err
		})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk(nonexistent): got error %v, want fs.ErrNotExist", err)
		}
	})
}
