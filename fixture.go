package testdirs

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/core"
	"github.com/jmgilman/go/testdirs/tree"
)

// Fixture is a materialized directory tree. Release it when done; a fixture
// created with NewT is released automatically.
type Fixture struct {
	path    string
	fsys    core.FS
	tree    *tree.Tree
	cleanup bool
	logger  *slog.Logger

	once       sync.Once
	releaseErr error
}

// Path returns the fixture's root directory.
func (f *Fixture) Path() string {
	return f.path
}

// Join returns a path below the fixture root.
func (f *Fixture) Join(parts ...string) string {
	return filepath.Join(append([]string{f.path}, parts...)...)
}

// FS returns a filesystem scoped to the fixture root.
func (f *Fixture) FS() (core.FS, error) {
	cfs, ok := f.fsys.(core.ChrootFS)
	if !ok {
		return nil, errors.WithContext(
			errors.New(errors.CodeNotImplemented, "filesystem does not support scoped views"),
			errors.KeyPath, f.path,
		)
	}
	scoped, err := cfs.Chroot(f.path)
	if err != nil {
		return nil, errors.WrapFS(err, "chroot", f.path, "failed to scope filesystem to fixture")
	}
	return scoped, nil
}

// Tree returns the tree the fixture was created from.
func (f *Fixture) Tree() *tree.Tree {
	return f.tree
}

// Scan reads the fixture's current contents back into a tree.
func (f *Fixture) Scan(opts tree.ScanOptions) (*tree.Tree, error) {
	return tree.Scan(f.fsys, f.path, opts)
}

// Snapshot renders the fixture's current contents with tree.Render.
func (f *Fixture) Snapshot() (string, error) {
	return tree.Render(f.fsys, f.path)
}

// Release removes the fixture directory unless cleanup was disabled.
// Read-only directories inside the fixture are made writable first. It is
// safe to call more than once and tolerates the directory being gone.
func (f *Fixture) Release() error {
	f.once.Do(func() {
		if !f.cleanup {
			f.logger.Debug("fixture kept", "path", f.path)
			return
		}
		f.releaseErr = remove(f.fsys, f.path)
		if f.releaseErr != nil {
			f.logger.Debug("fixture release failed", "path", f.path, "error", f.releaseErr)
			return
		}
		f.logger.Debug("fixture released", "path", f.path)
	})
	return f.releaseErr
}

// Close implements io.Closer by calling Release.
func (f *Fixture) Close() error {
	return f.Release()
}

// runAfter runs the after hooks in order, stopping at the first failure.
func (f *Fixture) runAfter(ctx context.Context, hooks []AfterHook) error {
	for i, h := range hooks {
		if err := h(ctx, f); err != nil {
			return errors.WrapWithContext(err, errors.CodeHookFailed, "after hook failed", map[string]interface{}{
				"hook":         i,
				errors.KeyPath: f.path,
			})
		}
	}
	return nil
}

// remove deletes dir and everything below it. Directories are made
// writable on the way down so read-only fixtures can be removed.
func remove(fsys core.FS, dir string) error {
	exists, err := fsys.Exists(dir)
	if err != nil {
		return errors.WrapFS(err, "stat", dir, "failed to check fixture directory")
	}
	if !exists {
		return nil
	}

	if mfs, ok := fsys.(core.MetadataFS); ok {
		// Best effort: RemoveAll reports anything that still blocks removal.
		_ = fsys.Walk(dir, func(p string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				_ = mfs.Chmod(p, 0o755)
			}
			return nil
		})
	}

	if err := fsys.RemoveAll(dir); err != nil {
		return errors.WrapFS(err, "remove", dir, "failed to remove fixture directory")
	}
	return nil
}
