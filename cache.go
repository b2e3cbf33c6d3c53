package objcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/achu-1612/objcache/log"
)

// minRearmDelay is the floor for rescheduling the expiry timer, so a
// near-zero or negative delta never turns the timer into a busy loop.
const minRearmDelay = 100 * time.Millisecond

// make sure cache implements the Cache interface
var _ Cache = (*cache)(nil)

// cache is a single-shard read-through cache. One mutex guards the entry
// store, the expiry index and the timer handle; the only unlocked
// suspension point is the backing-store fetch.
type cache struct {
	mu sync.Mutex

	store *entryStore
	index *expiryIndex

	// timer is the single outstanding expiry timer.
	// nil means no entry is pending expiry.
	timer *time.Timer

	ttl      time.Duration
	fetcher  Fetcher
	onExpire func(string)

	l log.Logger // logger specific to cache instance.
}

// newCache returns a new cache instance. index distinguishes shard
// loggers when the cache is sharded.
func newCache(opt Options, index int) *cache {
	return &cache{
		store:    newEntryStore(),
		index:    newExpiryIndex(),
		ttl:      opt.TTL,
		fetcher:  opt.Fetcher,
		onExpire: opt.OnExpire,
		l:        log.New("store-"+fmt.Sprint(index), opt.SuppressLog, opt.DebugLogs),
	}
}

// Get returns a copy of the object with the given identifier. On a miss
// the backing store is queried; its result is cached unless absent.
func (c *cache) Get(ctx context.Context, id string) (Object, error) {
	c.mu.Lock()
	if obj, ok := c.store.get(id); ok {
		c.mu.Unlock()

		c.l.Debugf("get key '%s' from store", id)

		return obj, nil
	}
	c.mu.Unlock()

	// Concurrent misses for the same identifier each fetch on their own;
	// the last store wins.
	obj, err := c.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if obj == nil {
		c.l.Debugf("key '%s' absent in backing store", id)

		// Absence is never cached; the next Get fetches again.
		return nil, nil
	}

	c.put(obj)

	c.l.Debugf("fetched key '%s' into store", id)

	return obj.Clone(), nil
}

// Invalidate removes the entry from the store. The expiry record, if any,
// stays behind; popping it later is a harmless miss.
func (c *cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.remove(id)

	c.l.Debugf("invalidated key '%s'", id)
}

// Update stores the object as if it had been freshly fetched, resetting
// its expiry clock.
func (c *cache) Update(obj Object) {
	c.put(obj)

	c.l.Debugf("updated key '%s'", obj.ID())
}

// Len returns the number of cached entries.
func (c *cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.len()
}

// Dispose cancels any pending timer and empties the cache. Safe to call
// more than once. A fetch already in flight may repopulate the cache
// afterwards; that is accepted rather than guarded against.
func (c *cache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.store.clear()

	// Clearing the index keeps an expire callback that already fired
	// from re-arming the timer.
	c.index.clear()

	c.l.Debugf("cache disposed")
}

func (c *cache) put(obj Object) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.put(obj)

	if c.ttl > 0 {
		c.rememberForExpiry(obj.ID())
	}
}

// rememberForExpiry schedules expiry for the given identifier, replacing
// any record already pending for it. Caller must hold c.mu.
func (c *cache) rememberForExpiry(id string) {
	c.index.removeByID(id)
	c.index.insert(id, time.Now().Add(c.ttl).UnixNano())

	if c.timer == nil {
		// The timer is armed with the new entry's own full TTL. If older
		// records are still pending this can fire early; expire handles a
		// not-yet-due record by reinserting it.
		c.timer = time.AfterFunc(c.ttl, c.expire)
	}
}

// expire is the timer callback: evict the earliest record if due, then
// re-arm for the next one.
func (c *cache) expire() {
	c.mu.Lock()

	c.timer = nil

	var expired string

	if rec := c.index.pop(); rec != nil {
		if rec.expiresAt <= time.Now().UnixNano() {
			// The identifier may have been invalidated already; evicting
			// an absent entry is a no-op.
			if c.store.remove(rec.id) {
				expired = rec.id

				c.l.Debugf("expired key '%s'", rec.id)
			}
		} else {
			// Not due yet: the timer was armed with a non-earliest delay.
			// Put the record back and retry shortly.
			c.index.reinsert(rec)
		}
	}

	if rec := c.index.peek(); rec != nil {
		delay := time.Until(time.Unix(0, rec.expiresAt))
		if delay < minRearmDelay {
			delay = minRearmDelay
		}

		c.timer = time.AfterFunc(delay, c.expire)
	}

	c.mu.Unlock()

	if expired != "" && c.onExpire != nil {
		c.onExpire(expired)
	}
}
