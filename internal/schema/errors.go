package schema

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/jmgilman/go/testdirs/errors"
)

// Issue is a single validation error with structured information.
type Issue struct {
	// Path is the field path where the error occurred (e.g., ["prefix"]).
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(i.Path, "."), i.Message)
}

// extractIssues extracts structured validation issues from a CUE error.
func extractIssues(err error) []Issue {
	if err == nil {
		return nil
	}

	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		issues = append(issues, Issue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(format, args...),
			Position: pos,
		})
	}
	return issues
}

// wrapSchemaError wraps a failure to build or look up a schema.
func wrapSchemaError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeSchemaFailed, message, ctx)
}

// wrapValidationError wraps a value that does not satisfy its schema.
func wrapValidationError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeInvalidConfig, message, ctx)
}
