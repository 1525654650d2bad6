package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Counters aggregates events. It is safe for concurrent use.
type Counters struct {
	compiles      atomic.Int64
	compileErrors atomic.Int64
	compileNanos  atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	cacheBytes    atomic.Int64
	requests      atomic.Int64
	serverErrors  atomic.Int64

	mu     sync.Mutex
	byType map[string]int64
}

// NewCounters creates zeroed counters.
func NewCounters() *Counters {
	return &Counters{byType: make(map[string]int64)}
}

// Hooks returns hooks feeding c.
func (c *Counters) Hooks() *Hooks {
	return &Hooks{Pipeline: c, Cache: c, HTTP: c}
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Compiles      int64            `json:"compiles"`
	CompileErrors int64            `json:"compile_errors"`
	CompileTime   time.Duration    `json:"compile_time_ns"`
	Classified    map[string]int64 `json:"classified"`
	CacheHits     int64            `json:"cache_hits"`
	CacheMisses   int64            `json:"cache_misses"`
	CacheBytes    int64            `json:"cache_bytes"`
	Requests      int64            `json:"requests"`
	ServerErrors  int64            `json:"server_errors"`
}

// Snapshot copies the current values.
func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	byType := make(map[string]int64, len(c.byType))
	for k, v := range c.byType {
		byType[k] = v
	}
	c.mu.Unlock()

	return Snapshot{
		Compiles:      c.compiles.Load(),
		CompileErrors: c.compileErrors.Load(),
		CompileTime:   time.Duration(c.compileNanos.Load()),
		Classified:    byType,
		CacheHits:     c.cacheHits.Load(),
		CacheMisses:   c.cacheMisses.Load(),
		CacheBytes:    c.cacheBytes.Load(),
		Requests:      c.requests.Load(),
		ServerErrors:  c.serverErrors.Load(),
	}
}

func (c *Counters) OnCompileStart(context.Context, int) {}

func (c *Counters) OnCompileComplete(_ context.Context, _ int, d time.Duration, err error) {
	c.compiles.Add(1)
	c.compileNanos.Add(int64(d))
	if err != nil {
		c.compileErrors.Add(1)
	}
}

func (c *Counters) OnClassify(_ context.Context, layoutType string, _ time.Duration) {
	c.mu.Lock()
	c.byType[layoutType]++
	c.mu.Unlock()
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.cacheMisses.Add(1) }

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.cacheBytes.Add(int64(size))
}

func (c *Counters) OnRequest(context.Context, string, string) { c.requests.Add(1) }

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	if status >= 500 {
		c.serverErrors.Add(1)
	}
}
