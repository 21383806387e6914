package capture

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dir := "/captures"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "commit-graph-read.visible.txt"), []byte("usage: a\n\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "commit-graph-read.complete.txt"), []byte("usage: a\n    --x\n\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "stash.visible.txt"), []byte("usage: git stash\n"), 0o644))

	src, err := NewDirSource(fs, dir)
	require.NoError(t, err)

	c, err := src.Capture(context.Background(), "commit-graph read")
	require.NoError(t, err)
	require.Equal(t, []string{"usage: a", ""}, c.Visible)
	require.Equal(t, []string{"usage: a", "    --x", ""}, c.Complete)
	require.True(t, c.HasComplete)
	require.Equal(t, "/captures/commit-graph-read.complete.txt", c.CompleteOrigin)

	c, err = src.Capture(context.Background(), "stash")
	require.NoError(t, err)
	require.False(t, c.HasComplete)
	require.Nil(t, c.Complete)

	_, err = src.Capture(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCaptureNotFound)
}

func TestNewDirSource_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := NewDirSource(afero.NewMemMapFs(), "/nope")
	require.ErrorContains(t, err, "does not exist")
}
