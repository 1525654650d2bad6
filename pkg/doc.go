// Package pkg provides the libraries behind the windowgram compiler.
//
// # Overview
//
// A windowgram is a rectangular ASCII drawing of terminal panes, one
// character per cell, where every character names the pane that owns the
// cell:
//
//	1112
//	1112
//	3332
//
// The libraries turn such a drawing into the ordered list of splits a
// terminal multiplexer needs to reproduce it, and provide the analyses and
// modifiers around that:
//
//  1. [windowgram] - Parsing, the canonical model, panes and masks
//  2. [split] - Compiling a windowgram into a split plan
//  3. [layout] - Classifying layouts as split, tiled or layered
//  4. [scale], [flex], [group] - Resizing, modifiers and group analysis
//  5. [pipeline], [cache] - Cached compilation and batch classification
//  6. [render], [api] - Terminal rendering and the HTTP API
//
// # Architecture
//
//	windowgram text
//	       ↓
//	  [windowgram] package (parse, validate, canonicalize)
//	       ↓
//	  [layout] package (split, tiled or layered)
//	       ↓
//	  [split] package (decompose into nested splits)
//	       ↓
//	  table, JSON, DOT or SVG output
//
// # Quick Start
//
//	w, err := windowgram.Parse("112\n332\n")
//	if err != nil {
//	    return err
//	}
//	plan, err := split.Compile(w, split.Options{Canvas: split.Canvas{W: 200, H: 50}})
//	if err != nil {
//	    return err
//	}
//	if err := plan.Err(); err != nil {
//	    return err // tiled layout
//	}
//	for _, s := range plan.Splits {
//	    fmt.Printf("split %d off %d along %s at %.1f%%\n", s.LinkID, s.Parent, s.Axis, s.Percent)
//	}
//
// Most callers go through [pipeline.Runner], which adds caching and
// observability hooks:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	res, err := runner.Compile(ctx, text, pipeline.Options{CanvasWidth: 200, CanvasHeight: 50})
//
// # Errors
//
// All packages report failures as [errors.Error] values carrying a
// machine-readable code. Parse errors are structural, layout problems such
// as OVERLAP or UNSUPPORTED_LAYOUT are semantic; see [errors.IsStructural]
// and [errors.IsSemantic].
//
// [windowgram]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/windowgram
// [split]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/split
// [layout]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/layout
// [scale]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/scale
// [flex]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/flex
// [group]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/group
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/render
// [api]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/api
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/pipeline#Runner
// [errors.Error]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/errors#Error
// [errors.IsStructural]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/errors#IsStructural
// [errors.IsSemantic]: https://pkg.go.dev/github.com/matzehuels/windowgram/pkg/errors#IsSemantic
package pkg
