package readcache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoises public read results per resource tag. Every write to a tag
// drops all entries stored under it.
type Cache struct {
	c *gocache.Cache

	mu   sync.Mutex
	gens map[string]uint64
}

func New(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{
		c:    gocache.New(ttl, cleanupInterval),
		gens: make(map[string]uint64),
	}
}

func key(tag, k string) string {
	return tag + "|" + k
}

func (c *Cache) Get(tag, k string) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.c.Get(key(tag, k))
}

func (c *Cache) Set(tag, k string, v any) {
	if c == nil {
		return
	}
	c.c.SetDefault(key(tag, k), v)
}

func (c *Cache) generation(tag string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[tag]
}

// setIfCurrent stores v only when tag has not been invalidated since gen
// was read.
func (c *Cache) setIfCurrent(tag, k string, gen uint64, v any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[tag] != gen {
		return false
	}
	c.c.SetDefault(key(tag, k), v)
	return true
}

// Invalidate removes every entry stored under tag. Loads that started
// before the call will not store their results.
func (c *Cache) Invalidate(tag string) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.gens[tag]++
	c.mu.Unlock()

	prefix := tag + "|"
	for k := range c.c.Items() {
		if strings.HasPrefix(k, prefix) {
			c.c.Delete(k)
		}
	}
}

// Remember returns the cached value for (tag, k) or stores the result of fn.
// Errors are not cached, and neither is a result loaded across an
// Invalidate of the same tag.
func Remember[T any](c *Cache, tag, k string, fn func() (T, error)) (T, error) {
	if c == nil {
		return fn()
	}

	if v, ok := c.Get(tag, k); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.generation(tag)

	v, err := fn()
	if err != nil {
		return v, err
	}

	c.setIfCurrent(tag, k, gen, v)
	return v, nil
}
