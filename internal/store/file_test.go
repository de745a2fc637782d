package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/storefront-core/internal/store"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := store.NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := t.Context()

	_, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "cart", []byte(`{"items":[]}`)))

	value, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"items":[]}`, string(value))

	require.NoError(t, s.Delete(ctx, "cart"))
	_, ok, err = s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreDeleteMissingKeyIsNoOp(t *testing.T) {
	s, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete(t.Context(), "never-written"))
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	_, err := store.NewFile(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreEmptyInputs(t *testing.T) {
	_, err := store.NewFile("  ")
	assert.EqualError(t, err, "dir is empty")

	s, err := store.NewFile(t.TempDir())
	require.NoError(t, err)

	_, _, err = s.Get(t.Context(), "")
	assert.EqualError(t, err, "key is empty")

	assert.EqualError(t, s.Set(t.Context(), "", nil), "key is empty")
	assert.EqualError(t, s.Delete(t.Context(), ""), "key is empty")
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := t.Context()

	first, err := store.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "wishlist", []byte(`["a","b"]`)))

	second, err := store.NewFile(dir)
	require.NoError(t, err)

	value, ok, err := second.Get(ctx, "wishlist")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["a","b"]`, string(value))
}
