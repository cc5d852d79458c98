package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	loads int
	err   error
}

func (l *countingLoader) Load(_ context.Context) (*Snapshot, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.loads++
	return NewSnapshot(nil, nil, nil, nil, nil, nil), nil
}

func TestCacheMemoizesWithinTTL(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader, time.Hour)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loader.loads)
}

func TestCacheReloadsAfterTTL(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader, time.Hour)

	now := time.Now()
	cache.now = func() time.Time { return now }

	first, err := cache.Get(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, loader.loads)
}

func TestCacheRefreshForcesLoad(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader, time.Hour)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	_, err = cache.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, loader.loads)
}

func TestCacheInvalidateDropsSnapshot(t *testing.T) {
	loader := &countingLoader{}
	cache := NewCache(loader, time.Hour)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cache.Current())

	cache.Invalidate()
	assert.Nil(t, cache.Current())

	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, loader.loads)
}

func TestCachePropagatesLoaderError(t *testing.T) {
	loader := &countingLoader{err: errors.New("connection refused")}
	cache := NewCache(loader, time.Hour)

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
	assert.Nil(t, cache.Current())
}

func TestCacheDefaultTTL(t *testing.T) {
	cache := NewCache(&countingLoader{}, 0)
	assert.Equal(t, DefaultTTL, cache.ttl)
}
