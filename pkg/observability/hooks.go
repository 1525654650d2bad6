// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. A [Hooks] value bundles
// one implementation per event category and is passed explicitly to the
// components that emit events (the pipeline runner and the HTTP API); there
// is no package-level registry.
//
// Three implementations ship with the package:
//   - [Noop]: discards every event
//   - [LogHooks]: writes events to a charmbracelet logger at debug level
//   - [Counters]: aggregates events into atomic counters, served by the API
//
// # Usage
//
//	counters := observability.NewCounters()
//	runner := pipeline.NewRunner(c, nil, logger)
//	runner.Hooks = observability.Multi(observability.LogHooks(logger), counters.Hooks())
package observability

import (
	"context"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// PipelineHooks receives events from the compile and classify pipeline.
type PipelineHooks interface {
	// OnCompileStart fires before a split compilation of a windowgram with
	// the given number of panes.
	OnCompileStart(ctx context.Context, panes int)

	// OnCompileComplete fires after a compilation, cached or not.
	OnCompileComplete(ctx context.Context, splits int, duration time.Duration, err error)

	// OnClassify fires after a classification.
	OnClassify(ctx context.Context, layoutType string, duration time.Duration)
}

// CacheHooks receives events from cache lookups made by the pipeline.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// Hooks bundles the hook implementations used by one component. Nil fields
// behave as no-ops.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	HTTP     HTTPHooks
}

// Noop returns hooks that discard every event.
func Noop() *Hooks {
	return &Hooks{Pipeline: NoopPipelineHooks{}, Cache: NoopCacheHooks{}, HTTP: NoopHTTPHooks{}}
}

// Or returns h with nil fields replaced by no-ops. A nil receiver yields
// [Noop].
func (h *Hooks) Or() *Hooks {
	out := Noop()
	if h == nil {
		return out
	}
	if h.Pipeline != nil {
		out.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		out.Cache = h.Cache
	}
	if h.HTTP != nil {
		out.HTTP = h.HTTP
	}
	return out
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnCompileStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnCompileComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnClassify(context.Context, string, time.Duration)            {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                     {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// Multi returns hooks that forward every event to each of hs in order.
func Multi(hs ...*Hooks) *Hooks {
	var m multi
	for _, h := range hs {
		m = append(m, h.Or())
	}
	return &Hooks{Pipeline: m, Cache: m, HTTP: m}
}

type multi []*Hooks

func (m multi) OnCompileStart(ctx context.Context, panes int) {
	for _, h := range m {
		h.Pipeline.OnCompileStart(ctx, panes)
	}
}

func (m multi) OnCompileComplete(ctx context.Context, splits int, d time.Duration, err error) {
	for _, h := range m {
		h.Pipeline.OnCompileComplete(ctx, splits, d, err)
	}
}

func (m multi) OnClassify(ctx context.Context, layoutType string, d time.Duration) {
	for _, h := range m {
		h.Pipeline.OnClassify(ctx, layoutType, d)
	}
}

func (m multi) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range m {
		h.Cache.OnCacheHit(ctx, keyType)
	}
}

func (m multi) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range m {
		h.Cache.OnCacheMiss(ctx, keyType)
	}
}

func (m multi) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range m {
		h.Cache.OnCacheSet(ctx, keyType, size)
	}
}

func (m multi) OnRequest(ctx context.Context, method, path string) {
	for _, h := range m {
		h.HTTP.OnRequest(ctx, method, path)
	}
}

func (m multi) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	for _, h := range m {
		h.HTTP.OnResponse(ctx, method, path, status, d)
	}
}
