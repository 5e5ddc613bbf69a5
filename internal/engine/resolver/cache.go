// Package resolver implements the memoising entity resolution cache.
package resolver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const shardCount = 16

type cacheKey struct {
	typ domain.EntityType
	id  string
}

func (k cacheKey) String() string {
	return string(k.typ) + "/" + k.id
}

type shard struct {
	mu       sync.RWMutex
	entities map[cacheKey]domain.Entity
	// missing holds the expiry of memoised not-found outcomes.
	missing map[cacheKey]time.Time
}

func newShard() *shard {
	return &shard{
		entities: make(map[cacheKey]domain.Entity),
		missing:  make(map[cacheKey]time.Time),
	}
}

func (s *shard) get(k cacheKey) (domain.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[k]
	return e, ok
}

// put stores e unless an entity is already cached under k, and returns the cached value.
func (s *shard) put(k cacheKey, e domain.Entity) domain.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entities[k]; ok {
		return existing
	}
	s.entities[k] = e
	delete(s.missing, k)
	return e
}

func (s *shard) missingUntil(k cacheKey) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	until, ok := s.missing[k]
	return until, ok
}

func (s *shard) markMissing(k cacheKey, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.missing[k] = until
}

// Stats counts cache activity since construction.
type Stats struct {
	Hits     int64
	Fetches  int64
	NotFound int64
	Failures int64
}

// Cache resolves entity identifiers, fetching each (type, id) pair at most once
// on the success path. Failed lookups are not cached unless a not-found TTL is set.
// It is safe for concurrent use.
type Cache struct {
	fetcher ports.EntityFetcher
	logger  ports.Logger
	types   []domain.EntityType
	shards  [shardCount]*shard
	group   singleflight.Group

	lookupTimeout time.Duration
	notFoundTTL   time.Duration
	now           func() time.Time

	hits     atomic.Int64
	fetches  atomic.Int64
	notFound atomic.Int64
	failures atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithLookupTimeout bounds every remote lookup. Zero disables the bound.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.lookupTimeout = d
	}
}

// WithNotFoundTTL memoises not-found outcomes for d. Zero disables memoisation.
func WithNotFoundTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.notFoundTTL = d
	}
}

// WithClock overrides the time source used for not-found expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty Cache for the given entity types.
func New(fetcher ports.EntityFetcher, logger ports.Logger, types []domain.EntityType, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		logger:  logger,
		types:   types,
		now:     time.Now,
	}
	for i := range c.shards {
		c.shards[i] = newShard()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) shardFor(k cacheKey) *shard {
	return c.shards[xxhash.Sum64String(k.String())%shardCount]
}

// Resolve returns the entity referenced by id.
// Empty and nil identifiers resolve to nothing without a lookup.
func (c *Cache) Resolve(ctx context.Context, entityType domain.EntityType, id any) (domain.Entity, bool) {
	key, ok := domain.IDString(id)
	if !ok {
		return nil, false
	}

	k := cacheKey{typ: entityType, id: key}
	s := c.shardFor(k)
	if e, ok := s.get(k); ok {
		c.hits.Add(1)
		return e, true
	}

	if until, ok := s.missingUntil(k); ok && c.now().Before(until) {
		return nil, false
	}

	// Concurrent misses on the same key share one lookup.
	v, _, _ := c.group.Do(k.String(), func() (any, error) {
		if e, ok := s.get(k); ok {
			return e, nil
		}
		return c.fetch(ctx, s, k), nil
	})

	e, _ := v.(domain.Entity)
	return e, e != nil
}

func (c *Cache) fetch(ctx context.Context, s *shard, k cacheKey) domain.Entity {
	if c.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.lookupTimeout)
		defer cancel()
	}

	c.fetches.Add(1)
	res := c.fetcher.Fetch(ctx, k.typ, k.id)

	switch {
	case res.Status == domain.FetchFound && res.Entity != nil:
		c.logger.Debug("fetched " + k.String())
		return s.put(k, res.Entity)
	case res.Status == domain.FetchNotFound:
		c.notFound.Add(1)
		c.logger.Debug("no entity found for " + k.String())
		if c.notFoundTTL > 0 {
			s.markMissing(k, c.now().Add(c.notFoundTTL))
		}
	default:
		c.failures.Add(1)
		c.logger.Warn(fmt.Sprintf("lookup of %s failed: %v", k, res.Err))
	}
	return nil
}

// Seed pre-populates the cache. Entities already cached are kept.
func (c *Cache) Seed(snapshot domain.CacheSnapshot) int {
	n := 0
	for typ, entities := range snapshot {
		for id, e := range entities {
			if id == "" || e == nil {
				continue
			}
			k := cacheKey{typ: typ, id: id}
			c.shardFor(k).put(k, e)
			n++
		}
	}
	return n
}

// Snapshot groups the cached entities by type.
// Every type the cache was created for is present, possibly empty.
func (c *Cache) Snapshot() domain.CacheSnapshot {
	snapshot := make(domain.CacheSnapshot, len(c.types))
	for _, typ := range c.types {
		snapshot[typ] = make(map[string]domain.Entity)
	}
	for _, s := range c.shards {
		s.mu.RLock()
		for k, e := range s.entities {
			if snapshot[k.typ] == nil {
				snapshot[k.typ] = make(map[string]domain.Entity)
			}
			snapshot[k.typ][k.id] = e
		}
		s.mu.RUnlock()
	}
	return snapshot
}

// Len returns the number of cached entities.
func (c *Cache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.entities)
		s.mu.RUnlock()
	}
	return n
}

// Stats returns the activity counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		Fetches:  c.fetches.Load(),
		NotFound: c.notFound.Load(),
		Failures: c.failures.Load(),
	}
}
