package errors

// PlatformError extends the standard error interface with structured information.
//
// PlatformError provides an error code for categorization, contextual
// metadata such as the failing operation and path, and compatibility with
// errors.Is, errors.As and errors.Unwrap.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
