package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.WriteFile(p, data, 0o644); err != nil {
//	    return errors.WrapWithContext(err, errors.FromFS(err), "failed to write file",
//	        map[string]interface{}{errors.KeyOp: "write", errors.KeyPath: p})
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	return &platformError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
