package objcache

import "time"

// Options represents the options for the cache initialization.
type Options struct {
	// Fetcher resolves cache misses against the backing store. Required.
	Fetcher Fetcher

	// TTL is the expiry duration applied uniformly to every entry.
	// Zero disables expiry; entries then live until invalidated.
	TTL time.Duration

	// OnExpire, if set, is called with the identifier of every entry the
	// expiry timer evicts. It is not called for Invalidate or Dispose.
	OnExpire func(id string)

	// Sharding splits the cache into independently locked shards.
	Sharding bool

	// NumShards is the number of shards when Sharding is set.
	NumShards int

	SuppressLog bool
	DebugLogs   bool
}
