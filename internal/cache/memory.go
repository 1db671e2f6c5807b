package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryClient is an in-process Client for single-instance deployments and tests.
type MemoryClient struct {
	mu      sync.RWMutex
	data    map[string]entry
	maxSize int
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryClient creates an in-memory cache holding at most maxSize entries.
// A background sweep removes expired entries until Close is called.
func NewMemoryClient(maxSize int) *MemoryClient {
	if maxSize <= 0 {
		maxSize = 10000
	}

	c := &MemoryClient{
		data:    make(map[string]entry),
		maxSize: maxSize,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go c.sweep(time.Minute)
	return c
}

// Get retrieves a value from cache.
func (c *MemoryClient) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || e.expired(c.now()) {
		return nil, ErrCacheMiss
	}
	return e.value, nil
}

// Set stores a value with a TTL. A zero TTL keeps the entry until deleted or evicted.
func (c *MemoryClient) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxSize {
		c.evictOne()
	}

	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.data[key] = e
	return nil
}

// DeleteByPrefix removes all keys with the given prefix.
func (c *MemoryClient) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

// Len returns the number of entries, expired ones included.
func (c *MemoryClient) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Close stops the background sweep.
func (c *MemoryClient) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

// evictOne drops an expired entry if there is one, otherwise the entry
// closest to expiry. Entries without expiry go last.
func (c *MemoryClient) evictOne() {
	now := c.now()
	var victim string
	var victimExpiry time.Time

	for key, e := range c.data {
		if e.expired(now) {
			delete(c.data, key)
			return
		}
		if victim == "" || (!e.expiresAt.IsZero() && (victimExpiry.IsZero() || e.expiresAt.Before(victimExpiry))) {
			victim = key
			victimExpiry = e.expiresAt
		}
	}

	if victim != "" {
		delete(c.data, victim)
	}
}

func (c *MemoryClient) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := c.now()
			for key, e := range c.data {
				if e.expired(now) {
					delete(c.data, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
