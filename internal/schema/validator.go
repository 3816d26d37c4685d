package schema

import (
	"context"
	_ "embed"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/jmgilman/go/testdirs/errors"
)

// OptionsDefinition names the fixture factory options schema.
const OptionsDefinition = "#Options"

//go:embed options.cue
var optionsSource []byte

// Validator checks Go values against the embedded CUE definitions.
// It is safe for concurrent use.
type Validator struct {
	mu     sync.Mutex
	cueCtx *cue.Context
	schema cue.Value
}

// New compiles the embedded schemas.
// Returns CodeSchemaFailed if they do not compile.
func New() (*Validator, error) {
	cueCtx := cuecontext.New()
	schema := cueCtx.CompileBytes(optionsSource, cue.Filename("options.cue"))
	if err := schema.Err(); err != nil {
		return nil, wrapSchemaError(err, "failed to compile embedded schema", map[string]interface{}{
			"details": cueerrors.Details(err, nil),
		})
	}
	return &Validator{cueCtx: cueCtx, schema: schema}, nil
}

// Validate encodes v into CUE and validates it against definition.
//
// Returns nil if v satisfies the definition, CodeInvalidConfig listing every
// issue if it does not, and CodeSchemaFailed if definition is unknown.
func (v *Validator) Validate(ctx context.Context, definition string, value any) error {
	if err := ctx.Err(); err != nil {
		return wrapValidationError(err, "context cancelled", nil)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	def := v.schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return errors.WithContext(
			errors.Newf(errors.CodeSchemaFailed, "schema definition %s not found", definition),
			"definition", definition,
		)
	}

	data := v.cueCtx.Encode(value)
	if err := data.Err(); err != nil {
		return wrapValidationError(err, "value cannot be encoded", map[string]interface{}{
			"definition": definition,
			"issues":     extractIssues(err),
		})
	}

	unified := def.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return wrapValidationError(err, "validation failed", map[string]interface{}{
			"definition": definition,
			"details":    cueerrors.Details(err, nil),
			"issues":     extractIssues(err),
		})
	}
	return nil
}
