// Package core defines the I/O capability the testdirs tree codec runs
// against.
//
// The materializer, scanner and snapshot renderer in package tree never
// touch the os package directly. They are written once against the
// interfaces here, and concrete providers (see package
// github.com/jmgilman/go/testdirs/fs/billy) supply disk-backed or in-memory
// implementations.
//
// # Interface Hierarchy
//
// The main FS interface is composed of four sub-interfaces:
//
//   - ReadFS: Open, Stat, ReadDir, ReadFile, Exists
//   - WriteFS: WriteFile, Mkdir, MkdirAll
//   - ManageFS: Remove, RemoveAll
//   - WalkFS: flattened depth-first traversal
//
// Optional capabilities are discovered with type assertions:
//
//   - MetadataFS: Lstat and Chmod, needed for permission metadata
//   - SymlinkFS: Symlink and Readlink
//   - LinkFS: hard links
//   - ChrootFS: scoped views of a subdirectory
//
// A provider that lacks a capability simply does not implement the
// interface; callers report ErrUnsupported in that case.
//
//	if sfs, ok := fsys.(core.SymlinkFS); ok {
//	    err = sfs.Symlink("../shared.txt", "/fixture/a/link.txt")
//	}
//
// # Paths
//
// Paths are host paths. Disk-backed providers rooted at "/" accept
// absolute OS paths unchanged, which is what the tree codec passes.
package core
