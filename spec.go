package objcache

import "context"

type Cache interface {
	Get(ctx context.Context, id string) (Object, error)
	Invalidate(id string)
	Update(obj Object)
	Len() int
	Dispose()
}
