package tree_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/testdirs/errors"
	"github.com/jmgilman/go/testdirs/tree"
)

func TestMaterializeAsync(t *testing.T) {
	fsys, dir := localDir(t)
	ctx := context.Background()

	p := tree.MaterializeAsync(ctx, fsys, dir, tree.New().Set("a/b.txt", tree.Text("b")))
	_, err := p.Wait(ctx)
	require.NoError(t, err)

	<-p.Done()
	assert.Equal(t, "b", readFile(t, filepath.Join(dir, "a", "b.txt")))
}

func TestMaterializeAsync_ReportsErrors(t *testing.T) {
	fsys, dir := localDir(t)
	ctx := context.Background()

	_, err := tree.MaterializeAsync(ctx, fsys, dir, tree.New().Set("../x", tree.Text("x"))).Wait(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestScanAsync(t *testing.T) {
	fsys, dir := localDir(t)
	ctx := context.Background()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	got, err := tree.ScanAsync(ctx, fsys, dir, tree.ScanOptions{}).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, got.Names())
}

func TestPending_CancelledBeforeStart(t *testing.T) {
	fsys, dir := localDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := tree.MaterializeAsync(ctx, fsys, filepath.Join(dir, "never"), tree.New().Set("a.txt", tree.Text("a")))
	<-p.Done()

	_, err := p.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(dir, "never"))
}

func TestPending_WaitHonorsContext(t *testing.T) {
	fsys, dir := localDir(t)
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	p := tree.ScanAsync(context.Background(), fsys, dir, tree.ScanOptions{})

	waitCtx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Wait(waitCtx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}

	// The scan itself still completes.
	got, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}
