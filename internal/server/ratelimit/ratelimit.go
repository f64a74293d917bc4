// Package ratelimit throttles API clients with per-endpoint token buckets.
//
// Every client gets an independent bucket per endpoint and method. A bucket
// starts full at the endpoint's burst capacity and refills continuously at
// limit/window, so a client can burst a few expensive requests (document
// uploads, URL fetches) and then settles at the sustained rate.
package ratelimit

import (
	"sync"
	"time"
)

// idleExpiry is how long an untouched bucket survives before eviction.
const idleExpiry = time.Hour

// bucket is a continuously refilling token bucket. Tokens are fractional
// between requests; a request needs a full token to pass.
type bucket struct {
	mu           sync.Mutex
	tokens       float64
	capacity     float64
	refillPerSec float64
	refilledAt   time.Time
	lastSeen     time.Time
}

func newBucket(capacity int, refillPerSec float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:       float64(capacity),
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		refilledAt:   now,
		lastSeen:     now,
	}
}

// take refills for the elapsed time, consumes one token if a full one is
// available, and reports the remaining whole tokens plus the instant the
// bucket is full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.refilledAt).Seconds() * b.refillPerSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		secs := (b.capacity - b.tokens) / b.refillPerSec
		reset = now.Add(time.Duration(secs * float64(time.Second)))
	}
	return allowed, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info carries the limiter's decision and the response header values for it.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter hands out per-client, per-endpoint buckets and evicts idle ones
// in the background.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	done    chan struct{}
}

// NewLimiter creates a limiter. A nil config gets permissive defaults:
// 1000 requests per minute per client and endpoint.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.evictLoop()
	}
	return l
}

// Allow decides whether a request may proceed. Whitelisted clients and
// unlimited endpoints bypass the buckets entirely; blacklisted clients are
// always refused. Info.Limit is zero whenever no limit applied.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	allowed, remaining, reset := l.bucketFor(clientID+"|"+method+"|"+endpoint, cfg).take()

	info := Info{
		Allowed:   allowed,
		Limit:     cfg.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if info.RetryAfter = time.Until(reset); info.RetryAfter < 0 {
			info.RetryAfter = 0
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key string, cfg *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	b := newBucket(burst, float64(cfg.Limit)/cfg.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) evictLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.evictIdle(time.Now().Add(-idleExpiry))
		case <-l.done:
			return
		}
	}
}

// evictIdle drops buckets last used before the cutoff.
func (l *Limiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the eviction goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
