package mocks

import (
	"context"
	"sync/atomic"
)

// BoardCache counts invalidations so tests can assert the board document
// cache gets dropped after a mutation.
type BoardCache struct {
	invalidations atomic.Int64
}

func (c *BoardCache) Invalidate(ctx context.Context) {
	c.invalidations.Add(1)
}

func (c *BoardCache) Invalidations() int64 {
	return c.invalidations.Load()
}
