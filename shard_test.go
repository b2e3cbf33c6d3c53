package objcache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestShardedCache_RoutingIsStable(t *testing.T) {
	sc := newShardedCache(Options{
		Fetcher:     nopFetcher(),
		SuppressLog: true,
	})
	defer sc.Dispose()

	if len(sc.shards) != defaultNumShards {
		t.Fatalf("expected %d shards, got %d", defaultNumShards, len(sc.shards))
	}

	for _, id := range []string{"key1", "key2", "key3"} {
		if sc.getShard(id) != sc.getShard(id) {
			t.Errorf("expected id %s to always resolve to the same shard", id)
		}
	}
}

func TestShardedCache_MinShardCount(t *testing.T) {
	tests := []struct {
		name      string
		numShards int
		expected  int
	}{
		{"zero uses default", 0, defaultNumShards},
		{"below minimum uses default", 2, defaultNumShards},
		{"above minimum is honored", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newShardedCache(Options{
				Fetcher:     nopFetcher(),
				Sharding:    true,
				NumShards:   tt.numShards,
				SuppressLog: true,
			})
			defer sc.Dispose()

			if len(sc.shards) != tt.expected {
				t.Errorf("expected %d shards, got %d", tt.expected, len(sc.shards))
			}
		})
	}
}

func TestShardedCache_Operations(t *testing.T) {
	var fetches int32

	fetcher := FetcherFunc(func(ctx context.Context, id string) (Object, error) {
		atomic.AddInt32(&fetches, 1)

		return &testObject{id: id, v: 1}, nil
	})

	c, err := New(Options{
		Fetcher:     fetcher,
		TTL:         time.Hour,
		Sharding:    true,
		SuppressLog: true,
	})
	if err != nil {
		t.Fatalf("unexpected error creating cache: %v", err)
	}
	defer c.Dispose()

	ctx := context.Background()
	ids := []string{"key1", "key2", "key3", "key4"}

	for _, id := range ids {
		if _, err := c.Get(ctx, id); err != nil {
			t.Fatalf("unexpected error getting %s: %v", id, err)
		}
	}

	if got := atomic.LoadInt32(&fetches); got != int32(len(ids)) {
		t.Errorf("expected %d fetches, got %d", len(ids), got)
	}

	if c.Len() != len(ids) {
		t.Errorf("expected %d entries across shards, got %d", len(ids), c.Len())
	}

	// repeated gets are served from memory
	for _, id := range ids {
		if _, err := c.Get(ctx, id); err != nil {
			t.Fatalf("unexpected error getting %s: %v", id, err)
		}
	}

	if got := atomic.LoadInt32(&fetches); got != int32(len(ids)) {
		t.Errorf("expected no additional fetches, got %d", got)
	}

	// invalidate routes to the owning shard
	c.Invalidate("key2")

	if c.Len() != len(ids)-1 {
		t.Errorf("expected %d entries after invalidate, got %d", len(ids)-1, c.Len())
	}

	if _, err := c.Get(ctx, "key2"); err != nil {
		t.Fatalf("unexpected error re-getting key2: %v", err)
	}

	if got := atomic.LoadInt32(&fetches); got != int32(len(ids)+1) {
		t.Errorf("expected a refetch after invalidate, got %d fetches", got)
	}

	// update routes by the object's own identifier
	c.Update(&testObject{id: "key3", v: 42})

	obj, err := c.Get(ctx, "key3")
	if err != nil {
		t.Fatalf("unexpected error getting key3: %v", err)
	}

	if obj.(*testObject).v != 42 {
		t.Errorf("expected updated value 42, got %d", obj.(*testObject).v)
	}

	c.Dispose()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after dispose, got %d entries", c.Len())
	}
}
