package objcache

import "errors"

var (
	ErrNoFetcher   = errors.New("fetcher is required")
	ErrNegativeTTL = errors.New("ttl must not be negative")
)
