package tree

import (
	"io/fs"
	"math"
	"path/filepath"
	"strconv"

	"github.com/jmgilman/go/testdirs/errors"
)

// Content is the value of a single entry in a Tree.
//
// The interface is sealed: the only implementations are the primitive types
// below, *Tree (a nested directory), Link, Symlink and Meta. A value's
// variant is its Go type, so ordinary file content can never be mistaken for
// a link or a metadata wrapper.
type Content interface {
	content()
}

// Primitive is Content written as a regular file.
type Primitive interface {
	Content

	// Data returns the bytes written to disk for this value.
	Data() []byte
}

// Text is file content given as a string. It is written as UTF-8.
type Text string

// Bytes is file content written verbatim.
type Bytes []byte

// Int is an integer written in decimal.
type Int int64

// Float is a number written in its shortest decimal form.
type Float float64

// Bool is written as "true" or "false".
type Bool bool

// Null is an explicit absence of value. It is written as "null".
type Null struct{}

// Undefined is a missing value. It is written as "undefined".
type Undefined struct{}

func (Text) content()      {}
func (Bytes) content()     {}
func (Int) content()       {}
func (Float) content()     {}
func (Bool) content()      {}
func (Null) content()      {}
func (Undefined) content() {}

// Data implements Primitive.
func (t Text) Data() []byte { return []byte(t) }

// Data implements Primitive.
func (b Bytes) Data() []byte { return b }

// Data implements Primitive.
func (i Int) Data() []byte { return strconv.AppendInt(nil, int64(i), 10) }

// Data implements Primitive.
func (f Float) Data() []byte {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte("NaN")
	case math.IsInf(v, 1):
		return []byte("Infinity")
	case math.IsInf(v, -1):
		return []byte("-Infinity")
	case math.Abs(v) >= 1e21:
		return strconv.AppendFloat(nil, v, 'g', -1, 64)
	default:
		return strconv.AppendFloat(nil, v, 'f', -1, 64)
	}
}

// Data implements Primitive.
func (b Bool) Data() []byte { return strconv.AppendBool(nil, bool(b)) }

// Data implements Primitive.
func (Null) Data() []byte { return []byte("null") }

// Data implements Primitive.
func (Undefined) Data() []byte { return []byte("undefined") }

// Link marks an entry to be created as a hard link.
type Link struct {
	path string
}

// NewLink returns a hard link marker. path is resolved against the
// directory that contains the entry.
func NewLink(path string) Link {
	return Link{path: normalizeLinkPath(path)}
}

// Path returns the link's target path.
func (l Link) Path() string { return l.path }

func (Link) content() {}

// Symlink marks an entry to be created as a symbolic link.
type Symlink struct {
	path string
}

// NewSymlink returns a symbolic link marker. A relative path is resolved
// from the directory the link is written into.
func NewSymlink(path string) Symlink {
	return Symlink{path: normalizeLinkPath(path)}
}

// Path returns the link's target path.
func (s Symlink) Path() string { return s.path }

func (Symlink) content() {}

func normalizeLinkPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p))
}

// Metadata is filesystem metadata applied to a file or directory after it
// is created.
type Metadata struct {
	// Mode holds the permission bits. Setuid, setgid and sticky bits are
	// passed through; type bits are ignored.
	Mode fs.FileMode
}

// perm returns the bits chmod accepts.
func (m Metadata) perm() fs.FileMode {
	return m.Mode & (fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky)
}

// Meta wraps a primitive or a directory together with Metadata.
type Meta struct {
	inner Content
	meta  Metadata
}

// WithMetadata wraps c with meta. c must be a Primitive or a *Tree; links
// and already-wrapped content are rejected with CodeInvalidInput.
func WithMetadata(c Content, meta Metadata) (Meta, error) {
	if err := checkWrappable(c); err != nil {
		return Meta{}, err
	}
	return Meta{inner: c, meta: meta}, nil
}

// WithMode wraps c with the given permission bits.
func WithMode(c Content, mode fs.FileMode) (Meta, error) {
	return WithMetadata(c, Metadata{Mode: mode})
}

// MustWithMode is like WithMode but panics if c cannot be wrapped. It is
// meant for tree literals in tests.
func MustWithMode(c Content, mode fs.FileMode) Meta {
	m, err := WithMode(c, mode)
	if err != nil {
		panic(err)
	}
	return m
}

// Content returns the wrapped content.
func (m Meta) Content() Content { return m.inner }

// Metadata returns the wrapped metadata.
func (m Meta) Metadata() Metadata { return m.meta }

func (Meta) content() {}

func checkWrappable(c Content) error {
	switch v := c.(type) {
	case nil:
		return errors.New(errors.CodeInvalidInput, "metadata cannot wrap nil content")
	case Meta:
		return errors.New(errors.CodeInvalidInput, "metadata cannot wrap another metadata wrapper")
	case Link:
		return errors.New(errors.CodeInvalidInput, "metadata cannot wrap a hard link")
	case Symlink:
		return errors.New(errors.CodeInvalidInput, "metadata cannot wrap a symbolic link")
	case *Tree:
		if v == nil {
			return errors.New(errors.CodeInvalidInput, "metadata cannot wrap a nil tree")
		}
	}
	return nil
}
