package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+srv.Addr(), 24*time.Hour, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, srv
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)

	url := "https://example.com/articles/1"
	want := testArticle(url)

	require.NoError(t, store.Put(context.Background(), url, want))

	got, ok := store.Get(context.Background(), url)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestRedisStore_MissForUnknownURL(t *testing.T) {
	store, _ := newRedisStore(t)

	_, ok := store.Get(context.Background(), "https://example.com/never-stored")
	assert.False(t, ok)
}

func TestRedisStore_ServerExpiryIsAMiss(t *testing.T) {
	store, srv := newRedisStore(t)

	url := "https://example.com/articles/2"
	require.NoError(t, store.Put(context.Background(), url, testArticle(url)))

	srv.FastForward(25 * time.Hour)

	_, ok := store.Get(context.Background(), url)
	assert.False(t, ok)
}

func TestRedisStore_CorruptEntryIsAMiss(t *testing.T) {
	store, srv := newRedisStore(t)

	url := "https://example.com/articles/3"
	require.NoError(t, srv.Set(redisKeyPrefix+Key(url), "not json"))

	_, ok := store.Get(context.Background(), url)
	assert.False(t, ok)
}

func TestRedisStore_ClearRemovesOnlyArticleKeys(t *testing.T) {
	store, srv := newRedisStore(t)

	for _, u := range []string{"https://a.example", "https://b.example"} {
		require.NoError(t, store.Put(context.Background(), u, testArticle(u)))
	}
	require.NoError(t, srv.Set("session:abc", "keep me"))

	removed, err := store.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.True(t, srv.Exists("session:abc"))
	_, ok := store.Get(context.Background(), "https://a.example")
	assert.False(t, ok)
}

func TestRedisStore_UnreachableServerIsAMiss(t *testing.T) {
	store, srv := newRedisStore(t)

	url := "https://example.com/articles/4"
	require.NoError(t, store.Put(context.Background(), url, testArticle(url)))

	srv.Close()

	_, ok := store.Get(context.Background(), url)
	assert.False(t, ok)
}

func TestNewRedisStore_RejectsMalformedURL(t *testing.T) {
	_, err := NewRedisStore("not-a-redis-url", time.Hour, testLogger())
	assert.Error(t, err)
}
