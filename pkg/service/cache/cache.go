// Package cache memoizes dashboard reads per collection until a mutation invalidates them.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/m-mizutani/ctxlog"
	"github.com/mouhcineelarfaoui0-afk/smart-qualiti-flow/pkg/domain/types"
)

// Query keys of the dashboard reads
const (
	KeyNonConformityStats = "dashboard-nc-stats"
	KeyAuditStats         = "dashboard-audit-stats"
	KeyActionStats        = "dashboard-action-stats"
	KeyDocumentStats      = "dashboard-document-stats"
	KeyUserStats          = "dashboard-user-stats"
)

var collectionKeys = map[types.Collection][]string{
	types.CollectionNonConformities: {KeyNonConformityStats},
	types.CollectionAudits:          {KeyAuditStats},
	types.CollectionActions:         {KeyActionStats},
	types.CollectionDocuments:       {KeyDocumentStats},
	types.CollectionProfiles:        {KeyUserStats},
}

// KeysOf returns the query keys that depend on the collection
func KeysOf(c types.Collection) []string {
	return collectionKeys[c]
}

// QueryCache is a size-bounded, TTL-bounded cache of query results. It is safe for
// concurrent use. A nil *QueryCache disables caching.
type QueryCache struct {
	lru *expirable.LRU[string, any]

	// generation of each key, bumped on invalidation. A fetch that started before an
	// invalidation must not store its result.
	mu    sync.Mutex
	gens  map[string]uint64
	epoch uint64
}

type stamp struct {
	gen, epoch uint64
}

func (c *QueryCache) stampOf(key string) stamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stamp{gen: c.gens[key], epoch: c.epoch}
}

// store caches v unless key was invalidated since s was taken
func (c *QueryCache) store(key string, v any, s stamp) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] != s.gen || c.epoch != s.epoch {
		return false
	}
	c.lru.Add(key, v)
	return true
}

// New creates a cache holding at most size entries, each for at most ttl
func New(size int, ttl time.Duration) *QueryCache {
	return &QueryCache{
		lru:  expirable.NewLRU[string, any](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

// Load returns the cached value of key or calls fetch and caches its result.
// Errors are never cached. Cached values are shared; callers must not modify them.
func Load[T any](ctx context.Context, c *QueryCache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return fetch(ctx)
	}

	if v, ok := c.lru.Get(key); ok {
		if typed, ok := v.(T); ok {
			ctxlog.From(ctx).Debug("query cache hit", "key", key)
			return typed, nil
		}
		c.lru.Remove(key)
	}

	s := c.stampOf(key)
	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !c.store(key, v, s) {
		ctxlog.From(ctx).Debug("query invalidated during fetch, not cached", "key", key)
	}
	return v, nil
}

// Invalidate drops the given keys
func (c *QueryCache) Invalidate(keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		c.gens[key]++
		c.lru.Remove(key)
	}
}

// InvalidateCollection drops every key that depends on the collection
func (c *QueryCache) InvalidateCollection(collection types.Collection) {
	c.Invalidate(KeysOf(collection)...)
}

// Purge drops every entry
func (c *QueryCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.lru.Purge()
}

// Len returns the number of live entries
func (c *QueryCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
