package decor

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pthm/decor/lib/cachekey"
)

// Cache defaults, used when no fluent override is given.
const (
	DefaultCacheTTL     = time.Minute
	DefaultCacheMaxSize = 100
)

// CacheKeyer is implemented by components whose render output depends on
// state beyond their identity. The caching decorator consults it on every
// render, so a component can change its key when its props change.
//
// Keys must derive from stable inputs - component identity plus render
// props (see PropsKey) - never from the current time. A key that changes
// every call can never hit.
type CacheKeyer interface {
	CacheKey() string
}

// CacheStats is a point-in-time snapshot of cache effectiveness counters.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
}

type cacheEntry struct {
	output   []byte
	storedAt time.Time
}

// Cache memoizes render output with time-based expiry and a FIFO capacity
// bound.
//
// On a hit (entry exists and its age is within the TTL) the stored bytes are
// written without invoking the wrapped component. On a miss the wrapped
// render runs into a buffer, the result is stored with its insertion time,
// and written out. When an insertion would exceed MaxSize, the
// oldest-inserted entry is evicted first.
//
// Expiry is lazy: no background timer runs, so a stale entry persists until
// the next access replaces it or capacity pressure evicts it.
type Cache struct {
	*Base
	ttl     time.Duration
	maxSize int
	now     func() time.Time
	key     func(ctx context.Context) string

	mu        sync.Mutex
	entries   map[string]cacheEntry
	order     []string // insertion order, oldest first
	hits      uint64
	misses    uint64
	evictions uint64
}

// WithCaching wraps a component with render memoization.
//
// The default key is the wrapped component's CacheKey when it implements
// CacheKeyer (and returns non-empty), otherwise a stable identity derived
// from the construction site. Override with Key for request-scoped keys.
func WithCaching(inner Component) *Cache {
	c := &Cache{
		Base:    NewBase(inner),
		ttl:     DefaultCacheTTL,
		maxSize: DefaultCacheMaxSize,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}

	identity := componentHash("cache", 1)
	if keyer, ok := inner.(CacheKeyer); ok {
		c.key = func(context.Context) string {
			if k := keyer.CacheKey(); k != "" {
				return k
			}
			return identity
		}
	} else {
		c.key = func(context.Context) string { return identity }
	}
	return c
}

// TTL sets the time-to-live after which an entry is considered stale.
func (c *Cache) TTL(d time.Duration) *Cache {
	c.ttl = d
	return c
}

// MaxSize bounds the number of entries. Insertion beyond the bound evicts
// the oldest-inserted entry first.
func (c *Cache) MaxSize(n int) *Cache {
	if n < 1 {
		n = 1
	}
	c.maxSize = n
	return c
}

// Clock overrides the wall-clock source. Test hook.
func (c *Cache) Clock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// Key overrides cache key computation entirely.
func (c *Cache) Key(fn func(ctx context.Context) string) *Cache {
	c.key = fn
	return c
}

// PropsKey derives a stable cache key from a component name and its render
// props. Convenience re-export of cachekey.FromProps for use with Key or
// CacheKeyer implementations.
func PropsKey(name string, props any) (string, error) {
	return cachekey.FromProps(name, props)
}

// Render returns memoized output on a hit; otherwise delegates, stores, and
// returns the fresh output. A failing delegated render stores nothing.
func (c *Cache) Render(ctx context.Context, w io.Writer) error {
	key := c.key(ctx)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Sub(e.storedAt) <= c.ttl {
		c.hits++
		out := e.output
		c.mu.Unlock()
		_, err := w.Write(out)
		return err
	}
	c.misses++
	c.mu.Unlock()

	var buf bytes.Buffer
	if err := c.Base.Render(ctx, &buf); err != nil {
		return err
	}

	c.mu.Lock()
	c.store(key, buf.Bytes())
	c.mu.Unlock()

	_, err := w.Write(buf.Bytes())
	return err
}

// store inserts or replaces an entry, enforcing the capacity bound.
// Caller holds c.mu.
func (c *Cache) store(key string, output []byte) {
	if _, exists := c.entries[key]; exists {
		// Replacement refreshes the insertion position.
		c.removeFromOrder(key)
	} else {
		for len(c.entries) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
			c.evictions++
		}
	}
	c.entries[key] = cacheEntry{output: output, storedAt: c.now()}
	c.order = append(c.order, key)
}

func (c *Cache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// ClearCache atomically drops every entry and the insertion order.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.order = nil
}

// Stats returns a snapshot of hit, miss, and eviction counters along with
// the current entry count.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
	}
}
