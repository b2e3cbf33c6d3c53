// Package objcache provides a read-through, time-expiring object cache.
//
// The cache fronts a slower backing store. Objects are fetched on first
// access, held as private copies and evicted by a single timer that always
// tracks the earliest pending expiry.
package objcache

// New returns a new object cache backed by opt.Fetcher.
func New(opt Options) (Cache, error) {
	if opt.Fetcher == nil {
		return nil, ErrNoFetcher
	}

	if opt.TTL < 0 {
		return nil, ErrNegativeTTL
	}

	if opt.Sharding {
		return newShardedCache(opt), nil
	}

	return newCache(opt, 0), nil
}
