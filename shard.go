package objcache

import (
	"context"
	"hash/fnv"
)

const (
	defaultNumShards = 5
	minNumShards     = 3
)

// make sure shardedCache implements the Cache interface
var _ Cache = (*shardedCache)(nil)

// shardedCache splits identifiers across independent cache instances so
// one shard's lock and timer never block another's.
type shardedCache struct {
	shards    []*cache
	numShards uint32
}

// newShardedCache returns a new sharded cache instance.
func newShardedCache(opt Options) *shardedCache {
	numShards := opt.NumShards
	if numShards < minNumShards {
		numShards = defaultNumShards
	}

	shards := make([]*cache, numShards)
	for i := range shards {
		shards[i] = newCache(opt, i)
	}

	return &shardedCache{
		shards:    shards,
		numShards: uint32(numShards),
	}
}

// getShard returns the shard for a given identifier.
func (sc *shardedCache) getShard(id string) *cache {
	h := fnv.New32a()
	h.Write([]byte(id))

	return sc.shards[h.Sum32()%sc.numShards]
}

// Get returns a copy of the object with the given identifier.
func (sc *shardedCache) Get(ctx context.Context, id string) (Object, error) {
	return sc.getShard(id).Get(ctx, id)
}

// Invalidate removes the entry for the identifier, if any.
func (sc *shardedCache) Invalidate(id string) {
	sc.getShard(id).Invalidate(id)
}

// Update stores the object as if it had been freshly fetched.
func (sc *shardedCache) Update(obj Object) {
	sc.getShard(obj.ID()).Update(obj)
}

// Len returns the total number of cached entries across all shards.
func (sc *shardedCache) Len() int {
	total := 0

	for _, s := range sc.shards {
		total += s.Len()
	}

	return total
}

// Dispose disposes every shard.
func (sc *shardedCache) Dispose() {
	for _, s := range sc.shards {
		s.Dispose()
	}
}
