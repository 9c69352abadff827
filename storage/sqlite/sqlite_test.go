package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/arloliu/lencoder/errs"
	"github.com/stretchr/testify/require"
)

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	b, err := Open(filepath.Join(t.TempDir(), "db", "mappings.db"))
	require.NoError(t, err)
	defer b.Close()

	before := time.Now().Add(-time.Second)
	require.NoError(t, b.Put(ctx, "colors", []byte{0x01, 0x00, 0x02}))

	got, err := b.Get(ctx, "colors")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x02}, got)

	updated, err := b.UpdatedAt(ctx, "colors")
	require.NoError(t, err)
	require.True(t, updated.After(before))

	require.NoError(t, b.Put(ctx, "colors", []byte("v2")))
	got, err = b.Get(ctx, "colors")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestBackend_NotFound(t *testing.T) {
	b, err := Open(":memory:")
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Get(context.Background(), "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = b.UpdatedAt(context.Background(), "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBackend_EmptyBlob(t *testing.T) {
	ctx := context.Background()
	b, err := Open(":memory:")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Put(ctx, "empty", nil))
	got, err := b.Get(ctx, "empty")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBackend_PutAfterClose(t *testing.T) {
	b, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, b.Close())

	err = b.Put(context.Background(), "h", []byte("x"))
	require.ErrorIs(t, err, errs.ErrPersistence)
}

func TestBackend_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mappings.db")

	b, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, b.Put(ctx, "h", []byte("persisted")))
	require.NoError(t, b.Close())

	b, err = Open(path)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get(ctx, "h")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), got)
}
