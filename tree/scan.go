package tree

import (
	"io/fs"
	"path/filepath"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/core"
)

// ScanOptions configures Scan.
type ScanOptions struct {
	// Ignore lists entry names skipped at every directory level.
	Ignore []string

	// FollowLinks makes Scan visit the target of every symbolic link. Links
	// are recorded as Symlink markers either way; with FollowLinks a link
	// whose target does not exist fails the scan.
	FollowLinks bool

	// Encoding picks the encoding for each file from its path. Nil reads
	// every file as UTF-8 text.
	Encoding EncodingFunc

	// Extras are merged into the top-level result after scanning,
	// replacing scanned entries with the same name.
	Extras *Tree
}

// Scan reads the directory source on fsys into a Tree.
//
// Directories become nested trees, symbolic links become Symlink markers
// holding the raw target stored on disk, and regular files become Text or
// Bytes depending on the encoding chosen for them. Sockets, pipes and
// devices are skipped. Every returned tree, nested ones included, records
// the directory it was read from as its Source.
//
// A source that does not exist or is not a directory yields an empty tree
// and no error. Errors reading entries are returned as
// errors.PlatformError.
func Scan(fsys core.FS, source string, opts ScanOptions) (*Tree, error) {
	s := &scanner{
		fsys:   fsys,
		opts:   opts,
		ignore: make(map[string]struct{}, len(opts.Ignore)),
	}
	for _, name := range opts.Ignore {
		s.ignore[name] = struct{}{}
	}

	t, err := s.scanRoot(filepath.Clean(source))
	if err != nil {
		return nil, err
	}
	if opts.Extras != nil {
		t = t.Merge(opts.Extras)
	}
	return t, nil
}

type scanner struct {
	fsys   core.FS
	opts   ScanOptions
	ignore map[string]struct{}
}

func (s *scanner) scanRoot(dir string) (*Tree, error) {
	info, err := s.fsys.Stat(dir)
	if err != nil {
		switch errors.FromFS(err) {
		case errors.CodeNotFound, errors.CodeNotDirectory:
			return New(), nil
		}
		return nil, errors.WrapFS(err, "stat", dir, "failed to stat scan root")
	}
	if !info.IsDir() {
		return New(), nil
	}
	return s.scanDir(dir)
}

func (s *scanner) scanDir(dir string) (*Tree, error) {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapFS(err, "readdir", dir, "failed to read directory")
	}

	t := New()
	t.source = absPath(s.fsys, dir)
	for _, entry := range entries {
		if _, skip := s.ignore[entry.Name()]; skip {
			continue
		}
		p := filepath.Join(dir, entry.Name())

		var c Content
		switch typ := entry.Type(); {
		case typ&fs.ModeSymlink != 0:
			c, err = s.readSymlink(p)
		case entry.IsDir():
			c, err = s.scanDir(p)
		case typ.IsRegular():
			c, err = s.readFile(p)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		t.Set(entry.Name(), c)
	}
	return t, nil
}

func (s *scanner) readSymlink(p string) (Content, error) {
	sfs, ok := s.fsys.(core.SymlinkFS)
	if !ok {
		return nil, unsupported("readlink", p)
	}
	target, err := sfs.Readlink(p)
	if err != nil {
		return nil, errors.WrapFS(err, "readlink", p, "failed to read symbolic link")
	}
	if s.opts.FollowLinks {
		if _, err := s.fsys.Stat(p); err != nil {
			return nil, errors.WithContext(
				errors.WrapFS(err, "stat", p, "failed to follow symbolic link"),
				errors.KeyTarget, target,
			)
		}
	}
	return NewSymlink(target), nil
}

func (s *scanner) readFile(p string) (Content, error) {
	data, err := s.fsys.ReadFile(p)
	if err != nil {
		return nil, errors.WrapFS(err, "read", p, "failed to read file")
	}
	encoding := EncodingUTF8
	if s.opts.Encoding != nil {
		encoding = s.opts.Encoding(p)
	}
	c, err := decode(encoding, data)
	if err != nil {
		return nil, errors.WithContext(err, errors.KeyPath, p)
	}
	return c, nil
}
