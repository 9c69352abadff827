package lencoder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/lencoder/codec"
	"github.com/arloliu/lencoder/errs"
	"github.com/arloliu/lencoder/format"
	"github.com/arloliu/lencoder/labelstore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Fit(ctx, Strings("red", "green", "red"), "color.lenc"))
	require.NoError(t, store.Update(ctx, Strings("green", "blue"), "color.lenc"))

	labels, err := store.Transform(ctx, Strings("blue", "red", "green"), "color.lenc")
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, labels)

	values, err := store.InverseTransform(ctx, labels, "color.lenc")
	require.NoError(t, err)
	require.Equal(t, Strings("blue", "red", "green"), values)

	data, err := os.ReadFile(filepath.Join(dir, "color.lenc"))
	require.NoError(t, err)
	header, err := codec.ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, header.Flag.GetCompression())
	require.Equal(t, uint32(3), header.EntryCount)

	// A second store over the same directory sees the same mapping.
	other, err := NewFileStore(dir, labelstore.WithAssignOrder(labelstore.OrderSorted))
	require.NoError(t, err)
	again, err := other.Transform(ctx, Strings("green"), "color.lenc")
	require.NoError(t, err)
	require.Equal(t, []int{1}, again)
}

func TestNewMemoryStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewMemoryStore()
	require.NoError(t, err)

	require.NoError(t, store.Fit(ctx, Ints(10, 20, 10), "m"))
	require.NoError(t, store.Update(ctx, Floats(0.5), "m"))
	require.NoError(t, store.Update(ctx, Bools(true), "m"))

	labels, err := store.Transform(ctx, append(Ints(20), Bools(true)[0], Floats(0.5)[0]), "m")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 2}, labels)

	_, err = store.Transform(ctx, Strings("10"), "m")
	require.ErrorIs(t, err, errs.ErrUnknownCategory)
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	store, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Fit(context.Background(), Strings("a"), "m"))
	require.Equal(t, 1, logs.FilterMessage("fitted mapping").Len())
}
