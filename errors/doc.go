// Package errors provides the structured errors surfaced by testdirs.
//
// Every failure produced while materializing, scanning or rendering a
// directory tree is a PlatformError carrying an ErrorCode, a message, and
// context metadata naming the operation and path that failed. The original
// cause stays reachable through Unwrap, so callers can keep using the
// standard library sentinels:
//
//	err := tree.Materialize(fsys, dir, t)
//	if errors.Is(err, fs.ErrPermission) {
//	    // the fixture asked for a read-only directory
//	}
//
// # Error Codes
//
//   - CodeNotFound: a path the operation depends on does not exist
//   - CodeAlreadyExists: an entry collides with an existing path
//   - CodeForbidden: the filesystem denied access
//   - CodeInvalidInput: a malformed tree description or value
//   - CodeInvalidConfig: factory options failed validation
//   - CodeNotImplemented: the filesystem provider lacks a capability
//   - CodeFilesystem: any other I/O failure
//   - CodeInternal, CodeUnknown: everything else
//
// Every code is permanent: nothing in this module retries a failed
// filesystem operation.
//
// # Context
//
//	err = errors.WithContext(err, "path", "/tmp/fixture/a.txt")
//	ctx := err.Context() // map[path:/tmp/fixture/a.txt]
package errors
