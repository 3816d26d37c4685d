package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/internal/schema"
)

type options struct {
	Dirname      string `json:"dirname,omitempty"`
	Root         string `json:"root"`
	Prefix       string `json:"prefix"`
	AllowOutside bool   `json:"allowOutside"`
	Cleanup      bool   `json:"cleanup"`
}

func validOptions() options {
	return options{Root: "/tmp/testdirs", Prefix: "testdirs-", Cleanup: true}
}

func TestValidate_Valid(t *testing.T) {
	v, err := schema.New()
	require.NoError(t, err)

	require.NoError(t, v.Validate(context.Background(), schema.OptionsDefinition, validOptions()))

	withDir := validOptions()
	withDir.Dirname = "fixtures/a"
	require.NoError(t, v.Validate(context.Background(), schema.OptionsDefinition, withDir))

	noPrefix := validOptions()
	noPrefix.Prefix = ""
	require.NoError(t, v.Validate(context.Background(), schema.OptionsDefinition, noPrefix))
}

func TestValidate_Invalid(t *testing.T) {
	v, err := schema.New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*options)
	}{
		{name: "empty root", mutate: func(o *options) { o.Root = "" }},
		{name: "prefix with slash", mutate: func(o *options) { o.Prefix = "a/b" }},
		{name: "prefix with backslash", mutate: func(o *options) { o.Prefix = `a\b` }},
		{name: "prefix dot dot", mutate: func(o *options) { o.Prefix = ".." }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOptions()
			tt.mutate(&o)

			err := v.Validate(context.Background(), schema.OptionsDefinition, o)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			issues, ok := platformErr.Context()["issues"].([]schema.Issue)
			require.True(t, ok)
			assert.NotEmpty(t, issues)
		})
	}
}

func TestValidate_UnknownField(t *testing.T) {
	v, err := schema.New()
	require.NoError(t, err)

	err = v.Validate(context.Background(), schema.OptionsDefinition, map[string]any{
		"root":         "/tmp",
		"prefix":       "p",
		"allowOutside": false,
		"cleanup":      true,
		"colour":       "blue",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestValidate_UnknownDefinition(t *testing.T) {
	v, err := schema.New()
	require.NoError(t, err)

	err = v.Validate(context.Background(), "#Missing", validOptions())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSchemaFailed, errors.GetCode(err))
}

func TestValidate_CancelledContext(t *testing.T) {
	v, err := schema.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = v.Validate(ctx, schema.OptionsDefinition, validOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "prefix: invalid value", schema.Issue{Path: []string{"prefix"}, Message: "invalid value"}.String())
	assert.Equal(t, "bad", schema.Issue{Message: "bad"}.String())
}
