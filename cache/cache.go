package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache holds rendered fragments keyed by name.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// New creates a cache whose entries live for ttl; cost weighs each value
// against the 16MB budget.
func New[T any](name string, ttl time.Duration, cost func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // a handful of pages, keep the admission sketch small
		MaxCost:     1 << 24, // 16MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        cost,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's TTL. Cost 0 defers to the cost function.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.impl.SetWithTTL(key, value, 0, c.ttl)
}

// GetOrBuild returns the cached value for key, building and storing it on a miss.
func (c *Cache[T]) GetOrBuild(key string, build func() (T, error)) (T, error) {
	if v, ok := c.impl.Get(key); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats reports hit/miss counters for the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	m := c.impl.Metrics

	hitRate := 0.0
	total := m.Hits() + m.Misses()
	if total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}

	return map[string]interface{}{
		"cache":          c.name,
		"hits":           m.Hits(),
		"misses":         m.Misses(),
		"sets":           m.KeysAdded(),
		"total_requests": total,
		"hit_rate":       hitRate,
		"items":          m.KeysAdded() - m.KeysEvicted(),
		"cost_kb":        float64(m.CostAdded()-m.CostEvicted()) / 1024,
	}
}
