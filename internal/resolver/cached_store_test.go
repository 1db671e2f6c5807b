package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/cache"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/observability"
	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

func TestCachedStore_ServesRepeatedQueries(t *testing.T) {
	rec := record("3d", "romby", "blue", "granatowy")
	inner := &stubStore{fn: func(ctx context.Context, call int, f storage.Filter) ([]storage.Record, error) {
		return []storage.Record{rec}, nil
	}}
	client := cache.NewMemoryClient(100)
	defer client.Close()

	store := NewCachedStore(inner, client, time.Minute, observability.NopLogger())
	ctx := context.Background()
	f := storage.ExactFilter(rec.Canonical())

	for i := 0; i < 3; i++ {
		got, err := store.Query(ctx, f)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rec.ID, got[0].ID)
	}
	assert.EqualValues(t, 1, inner.calls)

	other := f
	other.BorderColors = []string{"granatowe"}
	_, err := store.Query(ctx, other)
	require.NoError(t, err)
	assert.EqualValues(t, 2, inner.calls, "different filters use different keys")

	require.NoError(t, store.Invalidate(ctx))
	_, err = store.Query(ctx, f)
	require.NoError(t, err)
	assert.EqualValues(t, 3, inner.calls)
}

func TestCachedStore_DoesNotCacheErrors(t *testing.T) {
	inner := &stubStore{fn: func(ctx context.Context, call int, f storage.Filter) ([]storage.Record, error) {
		if call == 1 {
			return nil, errors.New("timeout")
		}
		return nil, nil
	}}
	client := cache.NewMemoryClient(100)
	defer client.Close()

	store := NewCachedStore(inner, client, time.Minute, nil)
	f := storage.Filter{MatType: "3d", CellStructure: "romby", MaterialColors: []string{"blue"}, BorderColors: []string{"granatowy"}}

	_, err := store.Query(context.Background(), f)
	require.Error(t, err)

	got, err := store.Query(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, client.Len())
}

func TestCachedStore_DoesNotCacheEmptyResults(t *testing.T) {
	memory := storage.NewMemoryRepository()
	client := cache.NewMemoryClient(100)
	defer client.Close()

	store := NewCachedStore(memory, client, time.Minute, nil)
	rec := record("3d", "romby", "blue", "granatowy")
	f := storage.ExactFilter(rec.Canonical())
	ctx := context.Background()

	got, err := store.Query(ctx, f)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, client.Len())

	// Inserted behind the cache's back, as another process would.
	require.NoError(t, memory.Upsert(ctx, &rec))

	got, err = store.Query(ctx, f)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
}

func TestCachedStore_WithResolver(t *testing.T) {
	memory := storage.NewMemoryRepository(record("3d", "romby", "blue", "bezowy"))
	client := cache.NewMemoryClient(100)
	defer client.Close()

	r := newResolver(NewCachedStore(memory, client, time.Minute, nil))
	form := scenarioA
	form.BorderColor = "beige"

	for i := 0; i < 2; i++ {
		result, err := r.Resolve(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, StatusFoundFallback, result.Status)
	}
	assert.Equal(t, 1, client.Len(), "only the fallback hit is cached")
}
