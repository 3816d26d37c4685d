package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// LocalFS wraps billy's osfs for disk access.
type LocalFS struct {
	base
}

// MemoryFS wraps billy's memfs for in-memory access.
type MemoryFS struct {
	base
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots a LocalFS at dir. Paths given to the filesystem are then
// interpreted relative to dir.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

// NewLocal creates a go-billy-backed local filesystem.
// Without WithRoot the filesystem addresses the host directly: absolute
// paths work unchanged and relative paths resolve against the current
// working directory.
func NewLocal(opts ...Option) *LocalFS {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.root == "" {
		return &LocalFS{base{bfs: osfs.New(string(filepath.Separator)), cwd: true}}
	}
	return &LocalFS{base{bfs: osfs.New(cfg.root)}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(_ ...Option) *MemoryFS {
	return &MemoryFS{base{bfs: memfs.New()}}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}

// base holds the operations LocalFS and MemoryFS share.
type base struct {
	bfs billy.Filesystem
	cwd bool
}

// normalize converts paths to use forward slashes consistently.
// Billy handles containment, so this only cleans.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// path maps name onto the underlying billy filesystem. When cwd is set,
// relative names are made absolute against the working directory.
func (b *base) path(name string) string {
	if b.cwd && !filepath.IsAbs(name) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
	}
	return normalize(name)
}

// Abs returns the absolute path name addresses. Chrooted and in-memory
// filesystems root relative names at "/".
func (b *base) Abs(name string) (string, error) {
	if b.cwd {
		return filepath.Abs(name)
	}
	return filepath.Join(string(filepath.Separator), filepath.FromSlash(name)), nil
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (b *base) Open(name string) (fs.File, error) {
	name = b.path(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symlinks.
func (b *base) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(b.path(name))
}

// Lstat returns file metadata without following symlinks.
func (b *base) Lstat(name string) (fs.FileInfo, error) {
	return b.bfs.Lstat(b.path(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (b *base) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(b.path(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *base) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(b.bfs, b.path(name))
}

// Exists reports whether the named file or directory exists.
func (b *base) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(b.path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(b.bfs, b.path(name), data, perm)
}

// Mkdir creates a new directory. Unlike MkdirAll, it fails if the
// directory already exists or its parent does not.
func (b *base) Mkdir(name string, perm fs.FileMode) error {
	name = b.path(name)
	if _, err := b.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		info, err := b.bfs.Stat(parent)
		if err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: err}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}
		}
	}
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *base) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(b.path(path), perm)
}

// Remove removes the named file or empty directory.
func (b *base) Remove(name string) error {
	return b.bfs.Remove(b.path(name))
}

// RemoveAll removes path and any children it contains. Symbolic links are
// removed, never followed.
func (b *base) RemoveAll(path string) error {
	return util.RemoveAll(b.bfs, b.path(path))
}

// Symlink creates newname as a symbolic link to oldname.
func (b *base) Symlink(oldname, newname string) error {
	return b.bfs.Symlink(oldname, b.path(newname))
}

// Readlink returns the raw destination of the named symbolic link.
func (b *base) Readlink(name string) (string, error) {
	return b.bfs.Readlink(b.path(name))
}

// Walk walks the file tree rooted at root, calling walkFn for each file or
// directory in the tree, including root. Paths passed to walkFn start with
// root as given.
func (b *base) Walk(root string, walkFn fs.WalkDirFunc) error {
	resolved := b.path(root)
	root = normalize(root)
	info, err := b.bfs.Stat(resolved)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(resolved, root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

// walk visits path on the billy filesystem and reports it to walkFn as
// display.
func (b *base) walk(path, display string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(display, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		err = walkFn(display, d, err)
		if err != nil {
			return err
		}
	}

	for _, entry := range entries {
		newPath := normalize(filepath.Join(path, entry.Name()))
		newDisplay := normalize(filepath.Join(display, entry.Name()))
		if err := b.walk(newPath, newDisplay, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// hostPath returns the OS path backing name on a disk-backed filesystem.
func (b *base) hostPath(name string) string {
	return filepath.Join(b.bfs.Root(), filepath.FromSlash(b.path(name)))
}

// Chmod changes the permission bits of the named file.
func (lfs *LocalFS) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(lfs.hostPath(name), mode)
}

// Link creates newname as a hard link to oldname.
func (lfs *LocalFS) Link(oldname, newname string) error {
	return os.Link(lfs.hostPath(oldname), lfs.hostPath(newname))
}

// Chroot returns a filesystem scoped to the given directory.
func (lfs *LocalFS) Chroot(dir string) (core.FS, error) {
	chrootFS, err := chroot(lfs.bfs, lfs.path(dir))
	if err != nil {
		return nil, err
	}
	return &LocalFS{base{bfs: chrootFS}}, nil
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Chmod changes the permission bits of the named file when the
// underlying memfs supports it.
func (mfs *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	if ch, ok := mfs.bfs.(billy.Change); ok {
		return ch.Chmod(normalize(name), mode)
	}
	return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
}

// Chroot returns a filesystem scoped to the given directory.
func (mfs *MemoryFS) Chroot(dir string) (core.FS, error) {
	chrootFS, err := chroot(mfs.bfs, dir)
	if err != nil {
		return nil, err
	}
	return &MemoryFS{base{bfs: chrootFS}}, nil
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

func chroot(bfs billy.Filesystem, dir string) (billy.Filesystem, error) {
	dir = normalize(dir)
	info, err := bfs.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "chroot", Path: dir, Err: syscall.ENOTDIR}
	}
	return bfs.Chroot(dir)
}

// Compile-time interface checks.
var (
	_ core.FS         = (*LocalFS)(nil)
	_ core.MetadataFS = (*LocalFS)(nil)
	_ core.SymlinkFS  = (*LocalFS)(nil)
	_ core.LinkFS     = (*LocalFS)(nil)
	_ core.ChrootFS   = (*LocalFS)(nil)
	_ core.AbsFS      = (*LocalFS)(nil)
	_ core.FS         = (*MemoryFS)(nil)
	_ core.MetadataFS = (*MemoryFS)(nil)
	_ core.SymlinkFS  = (*MemoryFS)(nil)
	_ core.ChrootFS   = (*MemoryFS)(nil)
	_ core.AbsFS      = (*MemoryFS)(nil)
)
