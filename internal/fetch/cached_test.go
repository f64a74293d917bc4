package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedFetcher_ServesFromCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.PageID, second.PageID)
	assert.Equal(t, int32(1), hits.Load())
}

func TestCachedFetcher_ExpiredEntryRefetches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{CacheTTL: time.Nanosecond})

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, second.FromCache)
	assert.Equal(t, int32(2), hits.Load())
}

func TestCachedFetcher_SkipCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(&CachedFetcherConfig{SkipCache: true})

	for i := 0; i < 3; i++ {
		result, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.False(t, result.FromCache)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestCachedFetcher_Invalidate(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	fetcher.Invalidate(server.URL)

	second, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, second.FromCache)
	assert.Equal(t, int32(2), hits.Load())
}

func TestNewCachedFetcher_Defaults(t *testing.T) {
	fetcher := NewCachedFetcher(nil)
	require.NotNil(t, fetcher)
	assert.Equal(t, DefaultCacheTTL, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)

	fetcher = NewCachedFetcher(&CachedFetcherConfig{})
	assert.Equal(t, DefaultCacheTTL, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}
