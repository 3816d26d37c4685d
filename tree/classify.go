package tree

// IsPrimitive reports whether c is written as a regular file: text, a
// number, a boolean, Null, Undefined or Bytes.
func IsPrimitive(c Content) bool {
	switch c.(type) {
	case Text, Bytes, Int, Float, Bool, Null, Undefined:
		return true
	default:
		return false
	}
}

// IsDir reports whether c is a nested directory.
func IsDir(c Content) bool {
	t, ok := c.(*Tree)
	return ok && t != nil
}

// IsLink reports whether c is a hard link marker built by NewLink.
func IsLink(c Content) bool {
	l, ok := c.(Link)
	return ok && l.path != ""
}

// IsSymlink reports whether c is a symbolic link marker built by
// NewSymlink.
func IsSymlink(c Content) bool {
	s, ok := c.(Symlink)
	return ok && s.path != ""
}

// IsMeta reports whether c is a metadata wrapper built by WithMetadata or
// WithMode.
func IsMeta(c Content) bool {
	m, ok := c.(Meta)
	return ok && m.inner != nil
}

// unwrap strips a metadata wrapper. The returned metadata is nil when c is
// not wrapped.
func unwrap(c Content) (Content, *Metadata, error) {
	m, ok := c.(Meta)
	if !ok {
		return c, nil, nil
	}
	if err := checkWrappable(m.inner); err != nil {
		return nil, nil, err
	}
	meta := m.meta
	return m.inner, &meta, nil
}
