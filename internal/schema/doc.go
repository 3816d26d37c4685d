// Package schema validates configuration values against CUE definitions
// embedded in the binary.
//
// Values are encoded into CUE, unified with the named definition and
// validated with concrete, final and all-errors options, so every
// violation is reported at once:
//
//	v, err := schema.New()
//	if err != nil {
//	    return err
//	}
//	if err := v.Validate(ctx, schema.OptionsDefinition, opts); err != nil {
//	    // errors.GetCode(err) == errors.CodeInvalidConfig
//	}
package schema
