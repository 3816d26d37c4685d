package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// FromFS maps a filesystem error onto an ErrorCode.
//
// The io/fs sentinels are checked first, then ENOTDIR, then the standard
// library's errors.ErrUnsupported. Anything else is CodeFilesystem. A PlatformError keeps
// its own code.
func FromFS(err error) ErrorCode {
	var platformErr PlatformError
	switch {
	case err == nil:
		return CodeUnknown
	case stderrors.As(err, &platformErr):
		return platformErr.Code()
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotDirectory
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeNotImplemented
	default:
		return CodeFilesystem
	}
}

// WrapFS wraps a filesystem error with the code FromFS derives for it and
// records the operation and path in the error context.
// Returns nil if err is nil.
func WrapFS(err error, op, path, message string) PlatformError {
	if err == nil {
		return nil
	}
	return WrapWithContext(err, FromFS(err), message, map[string]interface{}{
		KeyOp:   op,
		KeyPath: path,
	})
}
