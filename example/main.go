package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/achu-1612/objcache"
)

// document is a toy backing-store object.
type document struct {
	id   string
	body string
}

func (d *document) ID() string {
	return d.id
}

func (d *document) Clone() objcache.Object {
	cp := *d

	return &cp
}

func main() {
	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	fetcher := objcache.FetcherFunc(func(ctx context.Context, id string) (objcache.Object, error) {
		fmt.Println("backing store fetch:", id)

		time.Sleep(50 * time.Millisecond)

		return &document{id: id, body: "body of " + id}, nil
	})

	c, err := objcache.New(objcache.Options{
		Fetcher: fetcher,
		TTL:     2 * time.Second,
		OnExpire: func(id string) {
			fmt.Println("expired:", id)
		},
	})
	if err != nil {
		panic(err)
	}
	defer c.Dispose()

	ctx := context.Background()

	for _, id := range ids {
		if _, err := c.Get(ctx, id); err != nil {
			panic(err)
		}
	}

	// served from memory this time, no fetch lines
	for _, id := range ids {
		if _, err := c.Get(ctx, id); err != nil {
			panic(err)
		}
	}

	fmt.Println("cached entries:", c.Len())

	<-time.After(3 * time.Second)

	fmt.Println("cached entries after expiry:", c.Len())
}
