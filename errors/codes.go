package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a path already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotDirectory indicates a path was expected to be a directory.
	CodeNotDirectory ErrorCode = "NOT_DIRECTORY"

	// Permission errors.

	// CodeForbidden indicates the filesystem denied the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeSchemaFailed indicates the data failed schema validation.
	CodeSchemaFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// Infrastructure errors.

	// CodeFilesystem indicates an I/O operation failed for a reason not
	// covered by a more specific code.
	CodeFilesystem ErrorCode = "FILESYSTEM_ERROR"

	// CodeHookFailed indicates a lifecycle hook returned an error.
	CodeHookFailed ErrorCode = "HOOK_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeNotImplemented indicates the filesystem provider does not support
	// the requested operation.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
