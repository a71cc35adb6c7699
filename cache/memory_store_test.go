package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)

	url := "https://example.com/articles/1"
	want := testArticle(url)

	require.NoError(t, store.Put(context.Background(), url, want))

	got, ok := store.Get(context.Background(), url)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemoryStore_ExpiredEntryIsAMiss(t *testing.T) {
	store := NewMemoryStore(time.Nanosecond)

	url := "https://example.com/articles/1"
	require.NoError(t, store.Put(context.Background(), url, testArticle(url)))

	time.Sleep(time.Millisecond)

	_, ok := store.Get(context.Background(), url)
	assert.False(t, ok)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)

	for _, u := range []string{"https://a.example", "https://b.example"} {
		require.NoError(t, store.Put(context.Background(), u, testArticle(u)))
	}

	removed, err := store.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, ok := store.Get(context.Background(), "https://a.example")
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	url := "https://example.com/articles/shared"

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = store.Put(context.Background(), url, testArticle(url))
		}
	}()

	for i := 0; i < 100; i++ {
		if art, ok := store.Get(context.Background(), url); ok {
			// A reader never observes a partially written entry.
			assert.Equal(t, url, art.URL)
		}
	}
	<-done
}
