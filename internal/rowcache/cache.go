package rowcache

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"marquee/internal/delimited"
	"marquee/internal/logging"
)

// DefaultTTL is the freshness window used when New receives a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Entry is the cached state of one collection.
type Entry struct {
	Key       string
	Rows      []delimited.Row
	FetchedAt time.Time
}

// Age reports how long ago the entry was stored, relative to now.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// Cache provides thread-safe access to cached collection rows.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string]Entry // keyed by collection key
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Tests use it to step past the TTL.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "rowcache")
		}
	}
}

// New creates an empty cache with the given freshness window.
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		logger:  logging.NewNop(),
		entries: make(map[string]Entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Lookup returns the rows for key when an entry exists and is younger than
// the TTL.
func (c *Cache) Lookup(key string) ([]delimited.Row, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false
	}

	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return nil, false
	}
	if age := entry.Age(c.now()); age >= c.ttl {
		c.logger.Debug("cache entry stale",
			logging.String(logging.FieldCollection, key),
			logging.Duration("age", age))
		return nil, false
	}
	return entry.Rows, true
}

// Store replaces the entry for key with rows stamped at the current time.
// Concurrent stores for the same key are last-write-wins.
func (c *Cache) Store(key string, rows []delimited.Row) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	entry := Entry{Key: key, Rows: rows, FetchedAt: c.now()}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	c.logger.Debug("cached collection rows",
		logging.String(logging.FieldCollection, key),
		logging.Int("row_count", len(rows)))
}

// Entry returns the stored entry for key whether or not it is still fresh.
func (c *Cache) Entry(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, found := c.entries[strings.TrimSpace(key)]
	return entry, found
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
