package ledgerly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

// CacheEntry is one cached response.
type CacheEntry struct {
	StatusCode int         `json:"status_code"`
	Status     string      `json:"status"`
	Headers    http.Header `json:"headers,omitempty"`
	Body       []byte      `json:"body"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

// Expired reports whether the entry's TTL has passed.
func (e *CacheEntry) Expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Cache stores successful GET responses for the optional caching
// middleware.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// Cache lookup errors.
var (
	ErrCacheKeyNotFound = errors.New("key not found")
	ErrCacheEntryStale  = errors.New("entry expired")
)

// MemoryCache is an in-process cache with a size bound. Expired entries are
// evicted on read; when full, Set evicts the entry closest to expiry.
type MemoryCache struct {
	mu      sync.RWMutex
	maxSize int
	entries map[string]*CacheEntry
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		maxSize: maxSize,
		entries: make(map[string]*CacheEntry),
	}
}

// Get retrieves an entry; expired entries are evicted and reported stale.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
	}

	if entry.Expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryStale, key)
	}

	return entry, nil
}

// Set stores an entry.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if entry == nil {
		return ErrCacheEntryNil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		if _, exists := c.entries[key]; !exists {
			c.evictOldest()
		}
	}

	c.entries[key] = entry

	return nil
}

// evictOldest removes the entry closest to expiry. Caller holds the lock.
func (c *MemoryCache) evictOldest() {
	var (
		oldestKey  string
		oldestTime time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]*CacheEntry)
	c.mu.Unlock()

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !entry.Expired()
}

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. nats://localhost:4222.
	URL string
	// Bucket is the KV bucket name; created if missing.
	Bucket string
	// TTL is applied to the bucket on creation.
	TTL time.Duration
	// ConnectOptions are passed through to nats.Connect.
	ConnectOptions []nats.Option
}

// NATSKVCache stores entries in a NATS JetStream key-value bucket, letting
// multiple SDK processes share one response cache.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// nats KV keys are limited to a restricted character set.
var natsKeyUnsafe = regexp.MustCompile(`[^-/_=.a-zA-Z0-9]`)

// NewNATSKVCache connects to NATS and binds (or creates) the bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil || config.URL == "" || config.Bucket == "" {
		return nil, ErrNATSConfigNeeded
	}

	conn, err := nats.Connect(config.URL, config.ConnectOptions...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Get retrieves an entry.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(cacheSafeKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
		}

		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	var entry CacheEntry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.kv.Delete(cacheSafeKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryStale, key)
	}

	return &entry, nil
}

// Set stores an entry.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	if entry == nil {
		return ErrCacheEntryNil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	_, err = c.kv.Put(cacheSafeKey(key), data)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(cacheSafeKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache entry: %w", err)
	}

	return nil
}

// Clear removes all entries from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		_ = c.kv.Delete(key)
	}

	return nil
}

// Has reports whether a live entry exists for the key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close closes the NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}

func cacheSafeKey(key string) string {
	return natsKeyUnsafe.ReplaceAllString(key, "_")
}

// NoOpCache is a cache that stores nothing.
type NoOpCache struct{}

// NewNoOpCache creates a no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}

// CachingMiddleware serves successful GET responses from the cache. It is an
// extension link, never attached by default; the stock pipeline stays
// cache-free.
func CachingMiddleware(cache Cache, ttl time.Duration) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next Next) (*Response, error) {
		if req.Method != http.MethodGet {
			return next(ctx, req)
		}

		key := req.Method + " " + req.URL

		if entry, err := cache.Get(ctx, key); err == nil {
			return &Response{
				StatusCode: entry.StatusCode,
				Status:     entry.Status,
				Headers:    entry.Headers,
				Body:       entry.Body,
			}, nil
		}

		resp, err := next(ctx, req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode == http.StatusOK {
			_ = cache.Set(ctx, key, &CacheEntry{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				Headers:    resp.Headers,
				Body:       resp.Body,
				ExpiresAt:  time.Now().Add(ttl),
			})
		}

		return resp, nil
	})
}
