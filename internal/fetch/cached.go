package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCacheTTL is how long a fetched page stays fresh.
const DefaultCacheTTL = 1 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory cache keyed by URL.
type CachedFetcher struct {
	mu        sync.Mutex
	pages     map[string]*cachedPage
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
}

type cachedPage struct {
	id        uuid.UUID
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a cached fetcher; a nil config uses defaults.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		pages:     make(map[string]*cachedPage),
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	PageID    uuid.UUID
}

// Fetch retrieves a URL, serving from cache while the entry is within TTL.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if page := f.fresh(urlStr); page != nil {
			return &CachedResult{Result: page.result, FromCache: true, PageID: page.id}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	page := &cachedPage{id: uuid.New(), result: result, fetchedAt: time.Now()}
	f.mu.Lock()
	f.pages[urlStr] = page
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false, PageID: page.id}, nil
}

// Invalidate drops a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}

func (f *CachedFetcher) fresh(urlStr string) *cachedPage {
	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.pages[urlStr]
	if !ok {
		return nil
	}
	if time.Since(page.fetchedAt) > f.cacheTTL {
		delete(f.pages, urlStr)
		return nil
	}
	return page
}
