package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the capability every provider implements.
// FS embeds fs.FS for stdlib compatibility.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS
	WalkFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Stat returns file metadata, following symbolic links.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename. Entries describe the directory members themselves; a
	// symbolic link is reported as a link, not as its target.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// WriteFile writes data to the named file, creating it with perm
	// (before umask) if necessary and truncating it otherwise. Whether
	// missing parents are created is provider specific.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory with the specified permission bits.
	// It returns an error wrapping ErrExist if name already exists and an
	// error wrapping ErrNotExist if the parent does not.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory named path, along with any necessary
	// parents. If path is already a directory, MkdirAll does nothing.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines removal operations.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains.
	// If the path does not exist, RemoveAll returns nil.
	RemoveAll(path string) error
}

// WalkFS defines directory tree traversal operations.
type WalkFS interface {
	// Walk walks the file tree rooted at root, calling walkFn for each
	// file or directory in the tree, including root, in lexical order.
	//
	// The listing is flattened: walkFn sees full paths and must recover
	// the parent/child relationship from them. Walk does not follow
	// symbolic links.
	Walk(root string, walkFn fs.WalkDirFunc) error
}

// ChrootFS defines the ability to create scoped filesystem views.
type ChrootFS interface {
	// Chroot returns a filesystem scoped to the given directory.
	// The directory must exist.
	Chroot(dir string) (FS, error)
}

// MetadataFS defines metadata operations.
//
// Use type assertion to check if a filesystem supports metadata operations:
//
//	if mfs, ok := filesystem.(MetadataFS); ok {
//	    err := mfs.Chmod("file.txt", 0o600)
//	}
type MetadataFS interface {
	// Lstat returns file info without following symbolic links.
	Lstat(name string) (fs.FileInfo, error)

	// Chmod changes the permission bits of the named file.
	// Providers that cannot change modes after creation return an error
	// wrapping ErrUnsupported.
	Chmod(name string, mode fs.FileMode) error
}

// AbsFS is implemented by filesystems that can report the absolute path a
// name addresses. Relative names may be resolved against a working
// directory or against the filesystem root, depending on the provider.
type AbsFS interface {
	Abs(name string) (string, error)
}

// SymlinkFS defines symbolic link operations.
type SymlinkFS interface {
	// Symlink creates a symbolic link named newname pointing to oldname.
	// oldname is stored as-is; broken links are valid.
	Symlink(oldname, newname string) error

	// Readlink returns the raw destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// LinkFS defines hard link creation.
type LinkFS interface {
	// Link creates newname as a hard link to the existing file oldname.
	Link(oldname, newname string) error
}
