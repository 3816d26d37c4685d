package tree

import (
	"iter"
	"maps"
	"slices"
)

// Tree is a declarative description of a directory: an ordered mapping
// from entry names to Content, plus the provenance of trees produced by
// Scan.
//
// Entry names are relative paths and may contain separators, which imply
// intermediate directories ("a/b.txt" is equivalent to a nested "a"
// directory holding "b.txt").
//
// A *Tree is itself Content, used for nested directories. Trees are values
// by convention: Materialize never modifies one, and the methods that
// derive a new tree copy the entry list.
type Tree struct {
	names   []string
	entries map[string]Content
	source  string

	// origins overrides source for entries merged in from other trees.
	origins map[string]string
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{entries: make(map[string]Content)}
}

// FromMap builds a tree from m, adding entries in lexical name order.
func FromMap(m map[string]Content) *Tree {
	t := New()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		t.Set(name, m[name])
	}
	return t
}

func (*Tree) content() {}

// Set adds or replaces the entry name and returns t for chaining.
// Replacing keeps the entry's original position. Setting on a nil tree
// returns a new tree holding the entry.
func (t *Tree) Set(name string, c Content) *Tree {
	if t == nil {
		t = New()
	}
	delete(t.origins, name)
	if t.entries == nil {
		t.entries = make(map[string]Content)
	}
	if _, ok := t.entries[name]; !ok {
		t.names = append(t.names, name)
	}
	t.entries[name] = c
	return t
}

// Get returns the content stored under name.
func (t *Tree) Get(name string) (Content, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.entries[name]
	return c, ok
}

// Delete removes the entry name if present.
func (t *Tree) Delete(name string) {
	if t == nil {
		return
	}
	if _, ok := t.entries[name]; !ok {
		return
	}
	delete(t.entries, name)
	delete(t.origins, name)
	t.names = slices.DeleteFunc(t.names, func(n string) bool { return n == name })
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the entry names in insertion order.
func (t *Tree) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.names)
}

// All iterates over the entries in insertion order.
func (t *Tree) All() iter.Seq2[string, Content] {
	return func(yield func(string, Content) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name, t.entries[name]) {
				return
			}
		}
	}
}

// Source returns the path the tree was scanned from, or "" for trees built
// by hand. Materialize uses it to re-base relative symlink targets.
func (t *Tree) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// WithSource returns a copy of t whose provenance is source.
func (t *Tree) WithSource(source string) *Tree {
	c := t.clone()
	c.source = source
	return c
}

// Merge returns a copy of t with every entry of other set on it. Entries of
// other replace entries of t with the same name. The copy keeps t's
// provenance, while entries taken from other keep other's: merging a
// hand-built tree into a scanned one leaves its symlinks literal.
func (t *Tree) Merge(other *Tree) *Tree {
	c := t.clone()
	for name, content := range other.All() {
		c.Set(name, content)
		if c.origins == nil {
			c.origins = make(map[string]string)
		}
		c.origins[name] = other.sourceOf(name)
	}
	return c
}

// sourceOf returns the provenance that applies to the entry name.
func (t *Tree) sourceOf(name string) string {
	if t == nil {
		return ""
	}
	if source, ok := t.origins[name]; ok {
		return source
	}
	return t.source
}

func (t *Tree) clone() *Tree {
	c := New()
	if t == nil {
		return c
	}
	c.names = slices.Clone(t.names)
	maps.Copy(c.entries, t.entries)
	c.source = t.source
	if len(t.origins) > 0 {
		c.origins = maps.Clone(t.origins)
	}
	return c
}
