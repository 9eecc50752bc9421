package photostore_test

import (
	"context"
	"io"
	"matchup/pkg/photostore"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFS_PutOpenDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	store, err := photostore.NewFS(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.png", strings.NewReader("png-bytes")))

	rc, err := store.Open(ctx, "a.png")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "png-bytes", string(b))

	_, err = os.Stat(filepath.Join(dir, "a.png.part"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, store.Delete(ctx, "a.png"))
	require.NoError(t, store.Delete(ctx, "a.png"))

	_, err = store.Open(ctx, "a.png")
	require.ErrorIs(t, err, photostore.ErrNotFound)
}

func TestFS_RejectsPathKeys(t *testing.T) {
	store, err := photostore.NewFS(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	for _, key := range []string{"", ".", "..", "../etc/passwd", "a/b.png", `a\b.png`} {
		require.ErrorIs(t, store.Put(ctx, key, strings.NewReader("x")), photostore.ErrInvalidKey, key)
		_, err := store.Open(ctx, key)
		require.ErrorIs(t, err, photostore.ErrInvalidKey, key)
		require.ErrorIs(t, store.Delete(ctx, key), photostore.ErrInvalidKey, key)
	}
}

func TestFS_PutCanceled(t *testing.T) {
	store, err := photostore.NewFS(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "b.png", strings.NewReader("x")), context.Canceled)

	_, err = store.Open(context.Background(), "b.png")
	require.ErrorIs(t, err, photostore.ErrNotFound)
}
