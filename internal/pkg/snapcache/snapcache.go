// Package snapcache holds a single time-boxed snapshot of a computed payload.
// It exists to keep listing traffic off the high-latency row store: the whole
// payload is replaced on refresh and dropped wholesale on invalidation.
// No per-key granularity is offered on purpose.
package snapcache

import (
	"sync"
	"time"

	"slotbooking/internal/pkg/clock"
)

type Cache[T any] struct {
	mu     sync.Mutex
	value  *T
	expiry time.Time
	ttl    time.Duration
	clock  clock.Clock
}

func New[T any](ttl time.Duration, clk clock.Clock) *Cache[T] {
	return &Cache[T]{ttl: ttl, clock: clk}
}

// Get returns the cached payload, or nil once the TTL window has elapsed
// even if Invalidate was never called.
func (c *Cache[T]) Get() *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.value == nil {
		return nil
	}
	if c.clock.Now().After(c.expiry) {
		c.value = nil
		return nil
	}
	return c.value
}

func (c *Cache[T]) Set(value *T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.expiry = c.clock.Now().Add(c.ttl)
}

func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = nil
}
