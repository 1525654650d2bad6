package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windowgram/pkg/cache"
	"github.com/matzehuels/windowgram/pkg/observability"
	"github.com/matzehuels/windowgram/pkg/split"
)

// Runner encapsulates compilation and classification with caching.
//
// The Runner holds no per-request state; one Runner may serve many
// goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Hooks  *observability.Hooks

	// Concurrency bounds ClassifyAll. Zero uses DefaultConcurrency.
	Concurrency int

	// TTL overrides the lifetime of cache entries. Zero keeps cache.TTLPlan
	// and cache.TTLClassify.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Hooks:  observability.Noop(),
	}
}

// Compile parses text and compiles it into a split plan, consulting the
// cache first. A plan for a tiled layout is returned without error; check
// Plan.Err. Parse errors and OVERLAP errors are returned as is.
func (r *Runner) Compile(ctx context.Context, text string, opts Options) (*CompileResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := r.Hooks.Or()

	w, err := ParseInput(text)
	if err != nil {
		return nil, err
	}
	canonical := w.String()
	key := r.Keyer.PlanKey(canonical, opts.PlanKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var plan split.Plan
			if err := json.Unmarshal(data, &plan); err == nil {
				hooks.Cache.OnCacheHit(ctx, "plan")
				r.Logger.Debug("plan from cache", "key", key)
				return &CompileResult{Windowgram: canonical, Plan: &plan, Cached: true}, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		hooks.Cache.OnCacheMiss(ctx, "plan")
	}

	hooks.Pipeline.OnCompileStart(ctx, len(w.Panes()))
	start := time.Now()
	plan, err := split.Compile(w, split.Options{
		Canvas:  opts.Canvas(),
		Divider: opts.Divider,
		Logger:  opts.Logger,
	})
	hooks.Pipeline.OnCompileComplete(ctx, splitCount(plan), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(plan); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.TTLPlan)); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			hooks.Cache.OnCacheSet(ctx, "plan", len(data))
		}
	}
	return &CompileResult{Windowgram: canonical, Plan: plan}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) concurrency() int {
	if r.Concurrency > 0 {
		return r.Concurrency
	}
	return DefaultConcurrency
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

func splitCount(p *split.Plan) int {
	if p == nil {
		return 0
	}
	return len(p.Splits)
}
