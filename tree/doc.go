// Package tree converts between declarative directory descriptions and
// real directory trees.
//
// A Tree maps entry names to Content: primitives written as files
// (Text, Bytes, Int, Float, Bool, Null, Undefined), nested *Tree values
// written as directories, Link and Symlink markers, and Meta wrappers that
// attach permission bits to a file or directory.
//
//	t := tree.New().
//	    Set("README.md", tree.Text("# fixture\n")).
//	    Set("src/main.go", tree.Text("package main\n")).
//	    Set("bin", tree.MustWithMode(tree.New(), 0o555)).
//	    Set("latest", tree.NewSymlink("src/main.go"))
//
//	err := tree.Materialize(billy.NewLocal(), dir, t)
//
// Scan performs the inverse, and its result can be materialized elsewhere
// to clone a directory. Scanned trees remember where they were read from,
// so relative symlink targets still reach the same file after the clone is
// written at a different location or depth (see Rebase).
//
// Render produces a stable text view of a directory for assertions.
//
// All operations run against the core.FS capability; MaterializeAsync and
// ScanAsync run the same algorithms on a background goroutine. Entries are
// always processed sequentially, depth-first.
package tree
