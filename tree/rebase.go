package tree

import (
	"path/filepath"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// Rebase returns the symlink target to write when an entry scanned from
// source is materialized under dest.
//
// name is the entry's name within its tree and target the raw target
// recorded at scan time. The original link lived at source/name, so its
// target resolved to join(dir(source/name), target). The returned path
// reaches that same location from dir(dest/name), whatever the relative
// depth of dest and source.
//
// Absolute targets, and trees without provenance (source == ""), are
// returned unchanged. Relative source and dest paths are taken as rooted
// at the filesystem root, the way core.FS providers address them.
func Rebase(source, name, target, dest string) string {
	if source == "" || target == "" || filepath.IsAbs(target) {
		return target
	}

	name = filepath.FromSlash(name)
	resolved := filepath.Join(filepath.Dir(filepath.Join(anchor(source), name)), target)
	linkDir := filepath.Dir(filepath.Join(anchor(dest), name))

	rel, err := filepath.Rel(linkDir, resolved)
	if err != nil {
		// Different volumes: only an absolute target reaches the file.
		return resolved
	}
	return rel
}

// anchor roots a relative path at the filesystem root.
func anchor(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(string(filepath.Separator), p)
}

// absPath resolves p to the absolute path it addresses on fsys. Providers
// that cannot say are assumed to root relative paths at "/".
func absPath(fsys core.FS, p string) string {
	if afs, ok := fsys.(core.AbsFS); ok {
		if abs, err := afs.Abs(p); err == nil {
			return abs
		}
	}
	return anchor(p)
}
