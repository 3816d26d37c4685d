package tree

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/testdirs/fs/core"
)

// Pending is the result of an operation running in the background.
//
// The operation performs the same sequential I/O as its blocking
// counterpart on its own goroutine. Waiting can be abandoned through a
// context, but the I/O itself is never interrupted.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns a handle to its result. fn is
// not called if ctx is already done when the goroutine starts.
func Go[T any](ctx context.Context, fn func() (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A context cancelled before the goroutine runs means the
		// operation never starts.
		if err := gctx.Err(); err != nil {
			return err
		}
		v, err := fn()
		p.val = v
		return err
	})
	go func() {
		p.err = g.Wait()
		close(p.done)
	}()
	return p
}

// Done is closed once the operation has finished.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation finishes or ctx is done, whichever comes
// first. In the latter case it returns ctx.Err() and the operation keeps
// running.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// MaterializeAsync runs Materialize in the background.
func MaterializeAsync(ctx context.Context, fsys core.FS, dest string, t *Tree) *Pending[struct{}] {
	return Go(ctx, func() (struct{}, error) {
		return struct{}{}, Materialize(fsys, dest, t)
	})
}

// ScanAsync runs Scan in the background.
func ScanAsync(ctx context.Context, fsys core.FS, source string, opts ScanOptions) *Pending[*Tree] {
	return Go(ctx, func() (*Tree, error) {
		return Scan(fsys, source, opts)
	})
}
