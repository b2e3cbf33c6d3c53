package objcache

import "context"

//go:generate mockgen -destination=mock/fetcher.go -package=mock github.com/achu-1612/objcache Fetcher

// Object is a value the cache can hold. The cache never inspects anything
// beyond the identifier.
type Object interface {
	// ID returns the stable, unique identifier of the object.
	ID() string

	// Clone returns a fully independent copy of the object.
	Clone() Object
}

// Fetcher resolves an identifier against the backing store.
// A missing identifier is reported as (nil, nil), not as an error.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (Object, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, id string) (Object, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, id string) (Object, error) {
	return f(ctx, id)
}
