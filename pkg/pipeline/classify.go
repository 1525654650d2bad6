package pipeline

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/windowgram/pkg/cache"
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/layout"
)

// Classification is the layout type of one input together with the reason
// for non-split types.
type Classification struct {
	Type    layout.Type `json:"type"`
	Code    errors.Code `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Line    int         `json:"line,omitempty"`
	Cached  bool        `json:"cached,omitempty"`
}

// Err rebuilds the structured error behind a non-split classification.
func (c Classification) Err() error {
	if c.Code == "" {
		return nil
	}
	if c.Line > 0 {
		return errors.NewAtLine(c.Code, c.Line, "%s", c.Message)
	}
	return errors.New(c.Code, "%s", c.Message)
}

func newClassification(a layout.Analysis) Classification {
	c := Classification{Type: a.Type}
	if a.Err != nil {
		c.Code = errors.GetCode(a.Err)
		if c.Code == "" {
			c.Code = errors.ErrCodeInternal
		}
		c.Line = errors.GetLine(a.Err)
		c.Message = a.Err.Error()
		var e *errors.Error
		if stderrors.As(a.Err, &e) {
			c.Message = e.Message
		}
	}
	return c
}

// Classify returns the layout type of text. Unparseable text classifies as
// layout.TypeError; the reason is kept in the result rather than returned.
func (r *Runner) Classify(ctx context.Context, text string) Classification {
	hooks := r.Hooks.Or()
	start := time.Now()

	w, err := ParseInput(text)
	if err != nil {
		c := newClassification(layout.Analysis{Type: layout.TypeError, Err: err})
		hooks.Pipeline.OnClassify(ctx, string(c.Type), time.Since(start))
		return c
	}

	key := r.Keyer.ClassifyKey(w.String())
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var c Classification
		if json.Unmarshal(data, &c) == nil {
			hooks.Cache.OnCacheHit(ctx, "classify")
			c.Cached = true
			hooks.Pipeline.OnClassify(ctx, string(c.Type), time.Since(start))
			return c
		}
	}
	hooks.Cache.OnCacheMiss(ctx, "classify")

	c := newClassification(layout.AnalyzeWindowgram(w, nil))
	if data, err := json.Marshal(c); err == nil {
		if r.Cache.Set(ctx, key, data, r.ttl(cache.TTLClassify)) == nil {
			hooks.Cache.OnCacheSet(ctx, "classify", len(data))
		}
	}
	hooks.Pipeline.OnClassify(ctx, string(c.Type), time.Since(start))
	return c
}

// ClassifyAll classifies texts concurrently. Results are in input order. The
// batch stops early only when ctx is cancelled, in which case the context
// error is returned.
func (r *Runner) ClassifyAll(ctx context.Context, texts []string) ([]Classification, error) {
	results := make([]Classification, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.Classify(gctx, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.Logger.Debug("classified batch", "inputs", len(texts))
	return results, nil
}
