package testdirs

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/internal/schema"
	"github.com/jmgilman/go/testdirs/tree"
)

// maxNameAttempts bounds retries when a generated name is already taken.
const maxNameAttempts = 10

// Factory creates fixtures with a fixed configuration.
// A Factory is safe for concurrent use.
type Factory struct {
	cfg config
}

// NewFactory builds a Factory from opts. The resulting options are
// validated against the embedded schema; invalid settings return
// CodeInvalidConfig.
func NewFactory(opts ...Option) (*Factory, error) {
	cfg := newConfig(opts...)
	if cfg.opts.Root != "" {
		cfg.opts.Root = filepath.Clean(cfg.opts.Root)
	}

	v, err := schema.New()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(context.Background(), schema.OptionsDefinition, cfg.opts); err != nil {
		return nil, err
	}
	return &Factory{cfg: cfg}, nil
}

// Options returns the factory's validated settings.
func (f *Factory) Options() Options {
	return f.cfg.opts
}

// Create allocates a fixture directory and materializes t into it.
//
// Before hooks run between allocation and writing; after hooks run once the
// tree is written. If writing or any hook fails, the directory is removed
// and the error returned.
func (f *Factory) Create(ctx context.Context, t *tree.Tree) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		t = tree.New()
	}

	dir, err := f.allocate()
	if err != nil {
		return nil, err
	}
	log := f.cfg.logger.With("path", dir)
	log.DebugContext(ctx, "fixture allocated", "entries", t.Len())

	fixture := &Fixture{
		path:    dir,
		fsys:    f.cfg.fsys,
		tree:    t,
		cleanup: f.cfg.opts.Cleanup,
		logger:  f.cfg.logger,
	}

	fail := func(err error) (*Fixture, error) {
		log.DebugContext(ctx, "fixture creation failed", "error", err)
		if rerr := remove(f.cfg.fsys, dir); rerr != nil {
			log.DebugContext(ctx, "failed to remove partial fixture", "error", rerr)
		}
		return nil, err
	}

	for i, h := range f.cfg.before {
		if err := h(ctx, dir, t); err != nil {
			return fail(errors.WrapWithContext(err, errors.CodeHookFailed, "before hook failed", map[string]interface{}{
				"hook":         i,
				errors.KeyPath: dir,
			}))
		}
	}

	if err := tree.Materialize(f.cfg.fsys, dir, t); err != nil {
		return fail(err)
	}

	if err := fixture.runAfter(ctx, f.cfg.after); err != nil {
		return fail(err)
	}

	log.DebugContext(ctx, "fixture created")
	return fixture, nil
}

// CreateAsync runs Create in the background.
func (f *Factory) CreateAsync(ctx context.Context, t *tree.Tree) *tree.Pending[*Fixture] {
	return tree.Go(ctx, func() (*Fixture, error) {
		return f.Create(ctx, t)
	})
}

// FromDir scans src and creates a fixture holding a copy of it. Relative
// symbolic links inside the copy are re-based so they still reach what
// they reached in src.
func (f *Factory) FromDir(ctx context.Context, src string, opts tree.ScanOptions) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	scanned, err := tree.Scan(f.cfg.fsys, src, opts)
	if err != nil {
		return nil, err
	}
	return f.Create(ctx, scanned)
}

// allocate creates the fixture directory and returns its path.
func (f *Factory) allocate() (string, error) {
	opts := f.cfg.opts
	fsys := f.cfg.fsys

	if opts.Dirname != "" {
		dir, err := f.resolveDirname()
		if err != nil {
			return "", err
		}
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return "", errors.WrapFS(err, "mkdir", dir, "failed to create fixture directory")
		}
		return dir, nil
	}

	if err := fsys.MkdirAll(opts.Root, 0o755); err != nil {
		return "", errors.WrapFS(err, "mkdir", opts.Root, "failed to create fixture root")
	}

	var lastErr error
	for range maxNameAttempts {
		dir := filepath.Join(opts.Root, opts.Prefix+randomName())
		err := fsys.Mkdir(dir, 0o755)
		if err == nil {
			return dir, nil
		}
		if errors.FromFS(err) != errors.CodeAlreadyExists {
			return "", errors.WrapFS(err, "mkdir", dir, "failed to create fixture directory")
		}
		lastErr = err
	}
	return "", errors.WrapFS(lastErr, "mkdir", opts.Root, "failed to find a free fixture directory name")
}

// resolveDirname joins a relative dirname to the root and enforces
// containment unless AllowOutside is set.
func (f *Factory) resolveDirname() (string, error) {
	opts := f.cfg.opts

	dir := filepath.Clean(opts.Dirname)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(opts.Root, dir)
	}
	if opts.AllowOutside {
		return dir, nil
	}

	rel, err := filepath.Rel(opts.Root, dir)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", errors.WithContextMap(
			errors.Newf(errors.CodeInvalidConfig, "dirname %q is not inside root %q", opts.Dirname, opts.Root),
			map[string]interface{}{"dirname": opts.Dirname, "root": opts.Root},
		)
	}
	return dir, nil
}

func randomName() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
