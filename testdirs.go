package testdirs

import (
	"context"
	"testing"

	"github.com/jmgilman/go/testdirs/tree"
)

// New creates a fixture from t using a one-off Factory built from opts.
func New(ctx context.Context, t *tree.Tree, opts ...Option) (*Fixture, error) {
	f, err := NewFactory(opts...)
	if err != nil {
		return nil, err
	}
	return f.Create(ctx, t)
}

// FromDir copies the directory src into a new fixture using a one-off
// Factory built from opts.
func FromDir(ctx context.Context, src string, scan tree.ScanOptions, opts ...Option) (*Fixture, error) {
	f, err := NewFactory(opts...)
	if err != nil {
		return nil, err
	}
	return f.FromDir(ctx, src, scan)
}

// NewT creates a fixture for the duration of a test. Creation failures end
// the test immediately and the fixture is released by tb.Cleanup.
func NewT(tb testing.TB, t *tree.Tree, opts ...Option) *Fixture {
	tb.Helper()

	f, err := New(tb.Context(), t, opts...)
	if err != nil {
		tb.Fatalf("testdirs: create fixture: %v", err)
	}
	tb.Cleanup(func() {
		if err := f.Release(); err != nil {
			tb.Errorf("testdirs: release fixture %s: %v", f.Path(), err)
		}
	})
	return f
}
