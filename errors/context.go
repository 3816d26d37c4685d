package errors

import "errors"

// Well-known context keys.
const (
	// KeyOp names the filesystem operation that failed (mkdir, write, ...).
	KeyOp = "op"
	// KeyPath is the path the failing operation acted on.
	KeyPath = "path"
	// KeyTarget is the link target involved in a link operation.
	KeyTarget = "target"
)

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = &platformError{
			code:    CodeUnknown,
			message: err.Error(),
			cause:   err,
		}
	}

	merged := make(map[string]interface{})
	for k, v := range platformErr.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:    platformErr.Code(),
		message: platformErr.Message(),
		context: merged,
		cause:   platformErr.Unwrap(),
	}
}
