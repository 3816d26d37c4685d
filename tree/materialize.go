package tree

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/core"
)

const (
	defaultDirMode  fs.FileMode = 0o755
	defaultFileMode fs.FileMode = 0o644
)

// Materialize writes t beneath dest on fsys.
//
// dest is created if needed, so an empty tree produces an empty directory.
// Entries are written one at a time, depth-first, in the tree's order:
//
//   - Meta is stripped and its mode applied once the file or directory
//     exists (directories before their children are written).
//   - Link becomes a hard link to the marker path resolved against the
//     entry's parent directory.
//   - Symlink becomes a symbolic link. When the tree carries provenance the
//     target is re-based with Rebase; otherwise it is written literally.
//   - Primitives are written as files, creating missing parents.
//   - A nested *Tree becomes a directory and is materialized recursively.
//
// The first failure aborts the run and is returned as an errors.PlatformError
// naming the operation and path. Entries already written are left in place.
func Materialize(fsys core.FS, dest string, t *Tree) error {
	dest = filepath.Clean(dest)
	if err := fsys.MkdirAll(dest, defaultDirMode); err != nil {
		return errors.WrapFS(err, "mkdir", dest, "failed to create destination directory")
	}
	m := &materializer{fsys: fsys}
	return m.writeTree(dest, t)
}

type materializer struct {
	fsys core.FS
}

func (m *materializer) writeTree(dir string, t *Tree) error {
	for name, c := range t.All() {
		if err := m.writeEntry(dir, t.sourceOf(name), name, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *materializer) writeEntry(dir, source, name string, c Content) error {
	if err := validateName(name); err != nil {
		return err
	}
	p := filepath.Join(dir, filepath.FromSlash(name))

	c, meta, err := unwrap(c)
	if err != nil {
		return errors.WithContext(err, errors.KeyPath, p)
	}

	switch v := c.(type) {
	case Link:
		return m.link(p, v)
	case Symlink:
		target := v.path
		if source != "" {
			target = Rebase(source, name, v.path, absPath(m.fsys, dir))
		}
		return m.symlink(p, target, v)
	case *Tree:
		if v == nil {
			break
		}
		return m.dir(p, v, meta)
	case Primitive:
		return m.file(p, v, meta)
	}
	return errors.WithContextMap(
		errors.Newf(errors.CodeInvalidInput, "unsupported content %T", c),
		map[string]interface{}{errors.KeyPath: p},
	)
}

func (m *materializer) file(p string, v Primitive, meta *Metadata) error {
	if err := m.mkdirParent(p); err != nil {
		return err
	}
	mode := defaultFileMode
	if meta != nil {
		mode = meta.perm()
	}
	if err := m.fsys.WriteFile(p, v.Data(), mode); err != nil {
		return errors.WrapFS(err, "write", p, "failed to write file")
	}
	return m.chmod(p, meta)
}

func (m *materializer) dir(p string, t *Tree, meta *Metadata) error {
	if err := m.mkdirParent(p); err != nil {
		return err
	}
	mode := defaultDirMode
	if meta != nil {
		mode = meta.perm()
	}
	if err := m.fsys.Mkdir(p, mode); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return errors.WrapFS(err, "mkdir", p, "failed to create directory")
		}
		if info, serr := m.fsys.Stat(p); serr != nil || !info.IsDir() {
			return errors.WrapFS(err, "mkdir", p, "path exists and is not a directory")
		}
	}
	// The mode is applied before children are written so a read-only
	// directory rejects them.
	if err := m.chmod(p, meta); err != nil {
		return err
	}
	return m.writeTree(p, t)
}

func (m *materializer) link(p string, l Link) error {
	if l.path == "" {
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "hard link marker has no target"), errors.KeyPath, p)
	}
	lfs, ok := m.fsys.(core.LinkFS)
	if !ok {
		return unsupported("link", p)
	}
	if err := m.mkdirParent(p); err != nil {
		return err
	}
	target := l.path
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(p), target)
	}
	if err := lfs.Link(target, p); err != nil {
		return errors.WithContext(errors.WrapFS(err, "link", p, "failed to create hard link"), errors.KeyTarget, target)
	}
	return nil
}

func (m *materializer) symlink(p, target string, s Symlink) error {
	if s.path == "" {
		return errors.WithContext(errors.New(errors.CodeInvalidInput, "symlink marker has no target"), errors.KeyPath, p)
	}
	sfs, ok := m.fsys.(core.SymlinkFS)
	if !ok {
		return unsupported("symlink", p)
	}
	if err := m.mkdirParent(p); err != nil {
		return err
	}
	if err := sfs.Symlink(target, p); err != nil {
		return errors.WithContext(errors.WrapFS(err, "symlink", p, "failed to create symbolic link"), errors.KeyTarget, target)
	}
	return nil
}

func (m *materializer) mkdirParent(p string) error {
	parent := filepath.Dir(p)
	if err := m.fsys.MkdirAll(parent, defaultDirMode); err != nil {
		return errors.WrapFS(err, "mkdir", parent, "failed to create parent directory")
	}
	return nil
}

// chmod applies meta to p. Providers without chmod support already
// received the mode at creation time.
func (m *materializer) chmod(p string, meta *Metadata) error {
	if meta == nil {
		return nil
	}
	mfs, ok := m.fsys.(core.MetadataFS)
	if !ok {
		return nil
	}
	if err := mfs.Chmod(p, meta.perm()); err != nil && !errors.Is(err, core.ErrUnsupported) {
		return errors.WrapFS(err, "chmod", p, "failed to apply permissions")
	}
	return nil
}

// validateName rejects entry names that do not name a path strictly below
// the directory being written.
func validateName(name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidInput, "entry name must not be empty")
	}
	if filepath.Clean(filepath.FromSlash(name)) == "." {
		return errors.Newf(errors.CodeInvalidInput, "entry name %q names the directory itself", name)
	}
	native := filepath.FromSlash(name)
	if filepath.IsAbs(native) || filepath.VolumeName(native) != "" {
		return errors.Newf(errors.CodeInvalidInput, "entry name %q must be relative", name)
	}
	if !filepath.IsLocal(native) {
		return errors.Newf(errors.CodeInvalidInput, "entry name %q escapes its directory", name)
	}
	return nil
}

func unsupported(op, p string) error {
	return errors.WrapFS(
		&fs.PathError{Op: op, Path: p, Err: core.ErrUnsupported},
		op, p, "filesystem does not support "+op,
	)
}
