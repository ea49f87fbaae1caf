package blobstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("LocalPath", func(t *testing.T) {
		r := NewResolver()

		store, name, err := r.Resolve(ctx, filepath.Join(dir, "neos.csv"))
		require.NoError(t, err)
		assert.Equal(t, "neos.csv", name)

		local, ok := store.(*LocalStore)
		require.True(t, ok)
		assert.Equal(t, filepath.Clean(dir), filepath.Clean(local.Root()))
	})

	t.Run("RelativePath", func(t *testing.T) {
		store, name, err := NewResolver().Resolve(ctx, "cad.json")
		require.NoError(t, err)
		assert.Equal(t, "cad.json", name)
		assert.Equal(t, ".", store.(*LocalStore).Root())
	})

	t.Run("FileURI", func(t *testing.T) {
		_, name, err := NewResolver().Resolve(ctx, "file:///tmp/data/cad.json")
		require.NoError(t, err)
		assert.Equal(t, "cad.json", name)
	})

	t.Run("RegisteredScheme", func(t *testing.T) {
		r := NewResolver()
		mem := NewMemoryStore()
		calls := 0
		r.Register("mem", func(_ context.Context, bucket string) (BlobStore, error) {
			calls++
			assert.Equal(t, "bucket", bucket)
			return mem, nil
		})

		store, name, err := r.Resolve(ctx, "mem://bucket/out/results.json")
		require.NoError(t, err)
		assert.Same(t, mem, store)
		assert.Equal(t, "out/results.json", name)

		_, _, err = r.Resolve(ctx, "MEM://bucket/other.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, calls, "stores are cached per bucket")
	})

	t.Run("StaticFactory", func(t *testing.T) {
		r := NewResolver()
		mem := NewMemoryStore()
		r.Register("mem", StaticFactory(mem))

		store, _, err := r.Resolve(ctx, "mem://any/x.csv")
		require.NoError(t, err)
		assert.Same(t, mem, store)
	})

	t.Run("Errors", func(t *testing.T) {
		r := NewResolver()
		boom := errors.New("boom")
		r.Register("bad", func(context.Context, string) (BlobStore, error) { return nil, boom })

		_, _, err := r.Resolve(ctx, "s3://bucket/key")
		assert.ErrorIs(t, err, ErrUnsupportedScheme)

		_, _, err = r.Resolve(ctx, "bad://bucket/key")
		assert.ErrorIs(t, err, boom)

		_, _, err = r.Resolve(ctx, "mem://bucket")
		assert.ErrorIs(t, err, ErrInvalidURI)

		_, _, err = r.Resolve(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidURI)
	})
}
