package testdirs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/fs/billy"
	"github.com/jmgilman/go/testdirs/fs/core"
	"github.com/jmgilman/go/testdirs/tree"
)

// DefaultPrefix is prepended to generated fixture directory names.
const DefaultPrefix = "testdirs-"

// Options holds the serializable factory settings. It can be loaded from
// YAML with LoadOptions and applied with WithOptions.
type Options struct {
	// Dirname is an explicit fixture directory. Relative values are joined
	// to Root. Empty means a generated name under Root.
	Dirname string `yaml:"dirname,omitempty" json:"dirname,omitempty"`

	// Root is the base directory for fixtures.
	Root string `yaml:"root,omitempty" json:"root"`

	// Prefix is prepended to generated directory names.
	Prefix string `yaml:"prefix,omitempty" json:"prefix"`

	// AllowOutside permits Dirname to resolve outside Root.
	AllowOutside bool `yaml:"allowOutside,omitempty" json:"allowOutside"`

	// Cleanup removes the fixture directory on Release.
	Cleanup bool `yaml:"cleanup" json:"cleanup"`
}

// DefaultOptions returns the settings used when no option overrides them.
func DefaultOptions() Options {
	return Options{
		Root:    filepath.Join(os.TempDir(), "testdirs"),
		Prefix:  DefaultPrefix,
		Cleanup: true,
	}
}

// LoadOptions reads YAML options from path on fsys. Fields missing from the
// file keep their DefaultOptions values.
func LoadOptions(fsys core.ReadFS, path string) (Options, error) {
	opts := DefaultOptions()

	data, err := fsys.ReadFile(path)
	if err != nil {
		return opts, errors.WrapFS(err, "read", path, "failed to read options file")
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse options file"),
			errors.KeyPath, path,
		)
	}
	return opts, nil
}

// BeforeHook runs after the fixture directory is allocated and before the
// tree is written to it.
type BeforeHook func(ctx context.Context, path string, t *tree.Tree) error

// AfterHook runs once the tree has been written.
type AfterHook func(ctx context.Context, f *Fixture) error

// Option configures a Factory.
type Option func(*config)

type config struct {
	opts   Options
	fsys   core.FS
	logger *slog.Logger
	before []BeforeHook
	after  []AfterHook
}

func newConfig(opts ...Option) config {
	cfg := config{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fsys == nil {
		cfg.fsys = billy.NewLocal()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithOptions replaces all serializable settings, typically with the result
// of LoadOptions.
func WithOptions(o Options) Option {
	return func(c *config) {
		c.opts = o
	}
}

// WithDirname uses dir as the fixture directory instead of a generated name.
func WithDirname(dir string) Option {
	return func(c *config) {
		c.opts.Dirname = dir
	}
}

// WithRoot sets the base directory for fixtures.
func WithRoot(dir string) Option {
	return func(c *config) {
		c.opts.Root = dir
	}
}

// WithPrefix sets the prefix of generated directory names.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.opts.Prefix = prefix
	}
}

// WithAllowOutside permits an explicit dirname outside the root.
func WithAllowOutside(allow bool) Option {
	return func(c *config) {
		c.opts.AllowOutside = allow
	}
}

// WithCleanup controls whether Release removes the fixture directory.
func WithCleanup(cleanup bool) Option {
	return func(c *config) {
		c.opts.Cleanup = cleanup
	}
}

// WithFS sets the filesystem fixtures are created on. Defaults to the local
// disk.
func WithFS(fsys core.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithLogger sets the logger for fixture lifecycle events. Defaults to a
// logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithBeforeHook appends a hook run before each tree is written.
func WithBeforeHook(h BeforeHook) Option {
	return func(c *config) {
		c.before = append(c.before, h)
	}
}

// WithAfterHook appends a hook run after each tree is written.
func WithAfterHook(h AfterHook) Option {
	return func(c *config) {
		c.after = append(c.after, h)
	}
}
