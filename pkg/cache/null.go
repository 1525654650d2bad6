package cache

import (
	"context"
	"time"
)

// NullCache backs --no-cache and the "none" backend: writes are dropped and
// every lookup misses, so the runner always compiles.
type NullCache struct{}

func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
