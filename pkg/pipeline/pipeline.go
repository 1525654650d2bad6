// Package pipeline runs windowgram compilation and classification with
// caching, instrumentation and batch fan-out.
//
// The CLI and the HTTP API both go through a [Runner] so that caching and
// logging behave the same at every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Compile(ctx, "112\n332\n", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	if err := res.Plan.Err(); err != nil {
//	    // not expressible as nested splits
//	}
//
// Classify a batch concurrently, results in input order:
//
//	results, err := runner.ClassifyAll(ctx, texts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windowgram/pkg/cache"
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/scale"
	"github.com/matzehuels/windowgram/pkg/split"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCanvasWidth and DefaultCanvasHeight match split.DefaultCanvas.
	DefaultCanvasWidth  = 1024
	DefaultCanvasHeight = 1024

	// DefaultStrategy is the scale strategy used when none is configured.
	DefaultStrategy = scale.NameCorner

	// DefaultConcurrency bounds ClassifyAll.
	DefaultConcurrency = 8
)

// Format constants for plan output.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported plan output formats.
var ValidFormats = []string{FormatJSON, FormatDOT, FormatSVG}

// =============================================================================
// Options
// =============================================================================

// Options configures compilation and scaling. The zero value is usable after
// ValidateAndSetDefaults.
type Options struct {
	CanvasWidth  int    `json:"canvas_width,omitempty"`
	CanvasHeight int    `json:"canvas_height,omitempty"`
	Divider      int    `json:"divider,omitempty"`
	Strategy     string `json:"strategy,omitempty"`

	// Refresh skips cache reads; results are still written back.
	Refresh bool `json:"-"`

	// Logger receives the compiler's debug trace. Defaults to a discarding
	// logger.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults fills zero fields with defaults and validates the
// rest. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.CanvasWidth == 0 {
		o.CanvasWidth = DefaultCanvasWidth
	}
	if o.CanvasHeight == 0 {
		o.CanvasHeight = DefaultCanvasHeight
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := errors.ValidateDimension("canvas width", o.CanvasWidth); err != nil {
		return err
	}
	if err := errors.ValidateDimension("canvas height", o.CanvasHeight); err != nil {
		return err
	}
	if o.Divider < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "divider cannot be negative, got %d", o.Divider)
	}
	if _, err := scale.StrategyByName(o.Strategy); err != nil {
		return err
	}
	return nil
}

// Canvas returns the compile canvas.
func (o Options) Canvas() split.Canvas {
	return split.Canvas{W: o.CanvasWidth, H: o.CanvasHeight}
}

// ScaleStrategy returns the configured scale strategy, or the default one
// when the name is unknown.
func (o Options) ScaleStrategy() scale.Strategy {
	s, err := scale.StrategyByName(o.Strategy)
	if err != nil {
		return scale.Corner{}
	}
	return s
}

// PlanKeyOpts returns the options that affect the cached plan.
func (o Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{CanvasWidth: o.CanvasWidth, CanvasHeight: o.CanvasHeight, Divider: o.Divider}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// CompileResult is the outcome of Runner.Compile.
type CompileResult struct {
	Windowgram string      `json:"windowgram"`
	Plan       *split.Plan `json:"plan"`
	Cached     bool        `json:"cached"`
}

func (r *CompileResult) String() string {
	return fmt.Sprintf("%d splits, %d panes", len(r.Plan.Splits), len(r.Plan.Assignments))
}
