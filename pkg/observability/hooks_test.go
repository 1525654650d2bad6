package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	h := Noop()

	h.Pipeline.OnCompileStart(ctx, 4)
	h.Pipeline.OnCompileComplete(ctx, 3, time.Millisecond, nil)
	h.Pipeline.OnClassify(ctx, "split", time.Millisecond)
	h.Cache.OnCacheHit(ctx, "plan")
	h.Cache.OnCacheMiss(ctx, "plan")
	h.Cache.OnCacheSet(ctx, "plan", 1024)
	h.HTTP.OnRequest(ctx, "POST", "/v1/split")
	h.HTTP.OnResponse(ctx, "POST", "/v1/split", 200, time.Millisecond)
}

func TestOrFillsNilFields(t *testing.T) {
	var nilHooks *Hooks
	if h := nilHooks.Or(); h.Pipeline == nil || h.Cache == nil || h.HTTP == nil {
		t.Fatal("Or on nil receiver should return complete no-op hooks")
	}

	c := NewCounters()
	h := (&Hooks{Cache: c}).Or()
	if h.Cache != c {
		t.Error("Or should keep set fields")
	}
	if _, ok := h.Pipeline.(NoopPipelineHooks); !ok {
		t.Error("Or should fill nil Pipeline with a no-op")
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := NewCounters()
	h := c.Hooks()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Pipeline.OnCompileComplete(ctx, 3, time.Millisecond, nil)
			h.Pipeline.OnClassify(ctx, "split", time.Millisecond)
			h.Cache.OnCacheMiss(ctx, "plan")
		}()
	}
	wg.Wait()

	h.Pipeline.OnCompileComplete(ctx, 0, time.Millisecond, errors.New("boom"))
	h.Pipeline.OnClassify(ctx, "tiled", 0)
	h.Cache.OnCacheHit(ctx, "plan")
	h.Cache.OnCacheSet(ctx, "plan", 100)
	h.HTTP.OnRequest(ctx, "GET", "/healthz")
	h.HTTP.OnResponse(ctx, "GET", "/healthz", 500, 0)

	s := c.Snapshot()
	if s.Compiles != 11 || s.CompileErrors != 1 {
		t.Errorf("compiles = %d/%d, want 11/1", s.Compiles, s.CompileErrors)
	}
	if s.CompileTime != 11*time.Millisecond {
		t.Errorf("compile time = %v", s.CompileTime)
	}
	if s.Classified["split"] != 10 || s.Classified["tiled"] != 1 {
		t.Errorf("classified = %v", s.Classified)
	}
	if s.CacheHits != 1 || s.CacheMisses != 10 || s.CacheBytes != 100 {
		t.Errorf("cache = %d/%d/%d", s.CacheHits, s.CacheMisses, s.CacheBytes)
	}
	if s.Requests != 1 || s.ServerErrors != 1 {
		t.Errorf("http = %d/%d", s.Requests, s.ServerErrors)
	}
}

func TestMultiAndLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := NewCounters()

	h := Multi(LogHooks(logger), c.Hooks(), nil)
	h.Pipeline.OnClassify(context.Background(), "layered", time.Millisecond)
	h.Cache.OnCacheHit(context.Background(), "classify")

	if c.Snapshot().Classified["layered"] != 1 {
		t.Error("Multi should forward to counters")
	}
	if !strings.Contains(buf.String(), "classified") || !strings.Contains(buf.String(), "cache hit") {
		t.Errorf("Multi should forward to the logger, got %q", buf.String())
	}
}
