package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windowgram/pkg/cache"
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/layout"
	"github.com/matzehuels/windowgram/pkg/observability"
)

func newTestRunner(t *testing.T) (*Runner, *observability.Counters) {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	var logs bytes.Buffer
	r := NewRunner(c, nil, log.New(&logs))
	counters := observability.NewCounters()
	r.Hooks = counters.Hooks()
	return r, counters
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should validate: %v", err)
	}
	if opts.CanvasWidth != DefaultCanvasWidth || opts.CanvasHeight != DefaultCanvasHeight {
		t.Errorf("canvas = %dx%d", opts.CanvasWidth, opts.CanvasHeight)
	}
	if opts.Strategy != DefaultStrategy {
		t.Errorf("Strategy = %q, want %q", opts.Strategy, DefaultStrategy)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil || opts != before {
		t.Error("ValidateAndSetDefaults should be idempotent")
	}
	if opts.ScaleStrategy().Name() != DefaultStrategy {
		t.Errorf("ScaleStrategy() = %s", opts.ScaleStrategy().Name())
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative divider", Options{Divider: -1}},
		{"negative canvas", Options{CanvasWidth: -5}},
		{"huge canvas", Options{CanvasHeight: errors.MaxDimension + 1}},
		{"unknown strategy", Options{Strategy: "nearest"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestCompileCaches(t *testing.T) {
	ctx := context.Background()
	r, counters := newTestRunner(t)

	first, err := r.Compile(ctx, "12\n34", Options{CanvasWidth: 4, CanvasHeight: 4})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if first.Cached {
		t.Error("first compile should not be cached")
	}
	if len(first.Plan.Splits) != 3 || !first.Plan.Complete() {
		t.Fatalf("unexpected plan: %s", first)
	}

	// Same layout with comments and padding hits the same entry.
	second, err := r.Compile(ctx, "# grid\n12  \n34\n", Options{CanvasWidth: 4, CanvasHeight: 4})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !second.Cached {
		t.Error("second compile should come from the cache")
	}
	if len(second.Plan.Links) != len(first.Plan.Links) || second.Plan.Links[1] != first.Plan.Links[1] {
		t.Errorf("cached plan differs: %+v vs %+v", second.Plan.Links, first.Plan.Links)
	}

	// A different canvas is a different entry.
	third, err := r.Compile(ctx, "12\n34", Options{CanvasWidth: 8, CanvasHeight: 8})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if third.Cached {
		t.Error("different canvas should miss the cache")
	}

	refreshed, err := r.Compile(ctx, "12\n34", Options{CanvasWidth: 4, CanvasHeight: 4, Refresh: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if refreshed.Cached {
		t.Error("Refresh should bypass the cache")
	}

	s := counters.Snapshot()
	if s.Compiles != 3 || s.CacheHits != 1 || s.CacheMisses != 2 {
		t.Errorf("counters = %+v", s)
	}
}

func TestCompileErrors(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, nil)

	_, err := r.Compile(ctx, "12\n21", Options{})
	if !errors.Is(err, errors.ErrCodeOverlap) {
		t.Errorf("expected OVERLAP, got %v", err)
	}

	_, err = r.Compile(ctx, "12\n3", Options{})
	if !errors.IsStructural(err) || errors.GetLine(err) != 2 {
		t.Errorf("expected structural error at line 2, got %v", err)
	}

	_, err = r.Compile(ctx, "   ", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}

	res, err := r.Compile(ctx, "112\n452\n433", Options{})
	if err != nil {
		t.Fatalf("tiled layouts compile without error: %v", err)
	}
	if !errors.Is(res.Plan.Err(), errors.ErrCodeUnsupportedLayout) {
		t.Errorf("expected UNSUPPORTED_LAYOUT from plan, got %v", res.Plan.Err())
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t)

	tests := []struct {
		input string
		want  layout.Type
		code  errors.Code
	}{
		{"11\n22", layout.TypeSplit, ""},
		{"12\n21", layout.TypeLayered, errors.ErrCodeOverlap},
		{"112\n452\n433", layout.TypeTiled, errors.ErrCodeUnsupportedLayout},
		{"1!", layout.TypeError, errors.ErrCodeInvalidCharacter},
	}
	for _, tt := range tests {
		c := r.Classify(ctx, tt.input)
		if c.Type != tt.want || c.Code != tt.code {
			t.Errorf("Classify(%q) = %s/%s, want %s/%s", tt.input, c.Type, c.Code, tt.want, tt.code)
		}
	}

	c := r.Classify(ctx, "1!")
	if c.Line != 1 || !errors.Is(c.Err(), errors.ErrCodeInvalidCharacter) {
		t.Errorf("parse error should keep its line: %+v", c)
	}

	c = r.Classify(ctx, "12\n21")
	if !c.Cached || !errors.Is(c.Err(), errors.ErrCodeOverlap) {
		t.Errorf("repeated classification should be cached with its reason: %+v", c)
	}
	if r.Classify(ctx, "11\n22").Err() != nil {
		t.Error("split classification has no error")
	}
}

func TestClassifyAll(t *testing.T) {
	r, _ := newTestRunner(t)
	r.Concurrency = 2

	inputs := []string{"11\n22", "12\n21", "112\n452\n433", "", "1"}
	got, err := r.ClassifyAll(context.Background(), inputs)
	if err != nil {
		t.Fatalf("ClassifyAll: %v", err)
	}
	want := []layout.Type{layout.TypeSplit, layout.TypeLayered, layout.TypeTiled, layout.TypeError, layout.TypeSplit}
	for i := range want {
		if got[i].Type != want[i] {
			t.Errorf("result %d = %s, want %s", i, got[i].Type, want[i])
		}
	}
}

func TestClassifyAllCancelled(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.ClassifyAll(ctx, []string{"1", "2"}); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	res, err := NewRunner(nil, nil, nil).Compile(ctx, "11\n22", Options{})
	if err != nil {
		t.Fatal(err)
	}

	data, err := Render(ctx, res.Plan, FormatJSON)
	if err != nil || !strings.Contains(string(data), `"splits"`) {
		t.Errorf("json render: %v\n%s", err, data)
	}
	data, err = Render(ctx, res.Plan, FormatDOT)
	if err != nil || !strings.HasPrefix(string(data), "digraph split {") {
		t.Errorf("dot render: %v\n%s", err, data)
	}
	if _, err := Render(ctx, res.Plan, "png"); err == nil {
		t.Error("unknown format should fail")
	}
}

// ttlCache records the lifetime and key of every Set.
type ttlCache struct {
	cache.NullCache
	keys []string
	ttls []time.Duration
}

func (c *ttlCache) Set(_ context.Context, key string, _ []byte, ttl time.Duration) error {
	c.keys = append(c.keys, key)
	c.ttls = append(c.ttls, ttl)
	return nil
}

func TestRunnerTTLAndKeyer(t *testing.T) {
	ctx := context.Background()
	store := &ttlCache{}
	r := NewRunner(store, cache.NewScopedKeyer(nil, "team:"), nil)

	if _, err := r.Compile(ctx, "12", Options{}); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	r.TTL = time.Hour
	r.Classify(ctx, "12")

	if len(store.ttls) != 2 {
		t.Fatalf("expected two writes, got %d", len(store.ttls))
	}
	if store.ttls[0] != cache.TTLPlan || store.ttls[1] != time.Hour {
		t.Errorf("ttls = %v", store.ttls)
	}
	for _, k := range store.keys {
		if !strings.HasPrefix(k, "team:") {
			t.Errorf("key %q is not scoped", k)
		}
	}
}
