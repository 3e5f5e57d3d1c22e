package filestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedStoreRoundtrip(t *testing.T) {
	store, err := NewKeyedStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := store.Load(ctx, "telecom_cart:u1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "telecom_cart:u1", []byte(`[{"product_id":"p1"}]`)))

	data, found, err := store.Load(ctx, "telecom_cart:u1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"product_id":"p1"}]`, string(data))

	require.NoError(t, store.Delete(ctx, "telecom_cart:u1"))
	_, found, err = store.Load(ctx, "telecom_cart:u1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeyedStoreOverwrite(t *testing.T) {
	store, err := NewKeyedStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("one")))
	require.NoError(t, store.Save(ctx, "k", []byte("two")))

	data, found, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", string(data))
}

func TestKeyedStoreDeleteMissingKey(t *testing.T) {
	store, err := NewKeyedStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-saved"))
}

func TestKeyedStoreKeysAreIsolated(t *testing.T) {
	store, err := NewKeyedStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "telecom_cart:alice", []byte("a")))
	require.NoError(t, store.Save(ctx, "telecom_cart:bob", []byte("b")))

	data, _, err := store.Load(ctx, "telecom_cart:alice")
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}
