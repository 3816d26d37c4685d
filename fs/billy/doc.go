// Package billy provides go-billy-backed implementations of the
// testdirs I/O capability (core.FS and its optional interfaces).
//
// Two providers are available:
//
//	// Disk-backed host view: absolute paths, or paths relative to the
//	// working directory.
//	local := billy.NewLocal()
//
//	// In-memory, initially empty. Useful for exercising the tree codec
//	// without touching disk.
//	mem := billy.NewMemory()
//
// Both implement core.FS, core.MetadataFS, core.SymlinkFS and
// core.ChrootFS. Only LocalFS implements core.LinkFS; go-billy has no hard
// link primitive, so LocalFS creates them through the host OS.
//
// MemoryFS stores the permission bits passed at creation time but does not
// enforce them, and Chmod on it reports core.ErrUnsupported unless the
// underlying memfs supports billy.Change.
//
// # Thread Safety
//
// Providers are safe for concurrent use by multiple goroutines. File
// handles are not.
package billy
