package memory

import (
	"context"
	"testing"

	"github.com/arloliu/lencoder/errs"
	"github.com/stretchr/testify/require"
)

func TestBackend_PutGet(t *testing.T) {
	ctx := context.Background()
	b := New()

	data := []byte("blob")
	require.NoError(t, b.Put(ctx, "h", data))
	data[0] = 'X' // caller buffer reuse must not leak into the store

	got, err := b.Get(ctx, "h")
	require.NoError(t, err)
	require.Equal(t, []byte("blob"), got)

	got[0] = 'Y'
	again, err := b.Get(ctx, "h")
	require.NoError(t, err)
	require.Equal(t, []byte("blob"), again)

	require.NoError(t, b.Put(ctx, "h", []byte("new")))
	got, err = b.Get(ctx, "h")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
	require.Equal(t, 1, b.Len())
}

func TestBackend_NotFound(t *testing.T) {
	_, err := New().Get(context.Background(), "missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBackend_Closed(t *testing.T) {
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Put(ctx, "h", []byte("x")))
	require.NoError(t, b.Close())

	require.ErrorIs(t, b.Put(ctx, "h", []byte("y")), errs.ErrPersistence)
	got, err := b.Get(ctx, "h")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), got)
}
