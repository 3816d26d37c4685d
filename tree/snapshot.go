package tree

import (
	"cmp"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/core"
)

const (
	connectorMid  = "├── "
	connectorLast = "└── "
	indentMid     = "│   "
	indentLast    = "    "
)

type snapshotNode struct {
	name string
	dir  bool
}

// Render returns a deterministic tree view of dir for use in assertions:
//
//	fixture/
//	├── src/
//	│   └── main.go
//	└── README.md
//
// Directories carry a trailing "/" and come before files; both groups are
// sorted by name. Symbolic links are listed as files and never followed.
// A missing dir is an error (CodeNotFound) rather than an empty view.
func Render(fsys core.FS, dir string) (string, error) {
	dir = filepath.Clean(dir)
	info, err := fsys.Stat(dir)
	if err != nil {
		return "", errors.WrapFS(err, "stat", dir, "cannot render missing directory")
	}
	if !info.IsDir() {
		return "", errors.WithContextMap(
			errors.New(errors.CodeNotDirectory, "cannot render a file as a directory tree"),
			map[string]interface{}{errors.KeyOp: "render", errors.KeyPath: dir},
		)
	}

	// Walk yields a flat list of slash paths; children are grouped under
	// their parent's path so any listing order produces the same view.
	rootKey := filepath.ToSlash(dir)
	children := make(map[string][]snapshotNode)
	err = fsys.Walk(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		p = filepath.ToSlash(p)
		if p == rootKey {
			return nil
		}
		parent := path.Dir(p)
		children[parent] = append(children[parent], snapshotNode{name: d.Name(), dir: d.IsDir()})
		return nil
	})
	if err != nil {
		return "", errors.WrapFS(err, "walk", dir, "failed to walk directory")
	}

	lines := []string{filepath.Base(dir) + "/"}
	lines = renderLevel(lines, children, rootKey, "")
	return strings.Join(lines, "\n"), nil
}

func renderLevel(lines []string, children map[string][]snapshotNode, key, prefix string) []string {
	nodes := children[key]
	slices.SortFunc(nodes, func(a, b snapshotNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.name, b.name)
	})

	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, indent := connectorMid, indentMid
		if last {
			connector, indent = connectorLast, indentLast
		}

		name := n.name
		if n.dir {
			name += "/"
		}
		lines = append(lines, prefix+connector+name)

		if n.dir {
			lines = renderLevel(lines, children, path.Join(key, n.name), prefix+indent)
		}
	}
	return lines
}
