package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/windowgram/pkg/buildinfo"
	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/flex"
	"github.com/matzehuels/windowgram/pkg/group"
	"github.com/matzehuels/windowgram/pkg/pipeline"
	"github.com/matzehuels/windowgram/pkg/scale"
	"github.com/matzehuels/windowgram/pkg/split"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// =============================================================================
// Request and response bodies
// =============================================================================

// ClassifyRequest holds one windowgram or a batch.
type ClassifyRequest struct {
	Windowgram  string   `json:"windowgram,omitempty"`
	Windowgrams []string `json:"windowgrams,omitempty"`
}

// ClassifyBatchResponse is returned for batch requests.
type ClassifyBatchResponse struct {
	Results []pipeline.Classification `json:"results"`
}

// SplitRequest asks for a split plan.
type SplitRequest struct {
	Windowgram   string `json:"windowgram"`
	CanvasWidth  int    `json:"canvas_width,omitempty"`
	CanvasHeight int    `json:"canvas_height,omitempty"`
	Divider      int    `json:"divider,omitempty"`
	Format       string `json:"format,omitempty"`
}

// SplitResponse carries the plan of a split layout.
type SplitResponse struct {
	Windowgram string      `json:"windowgram"`
	Plan       *split.Plan `json:"plan"`
	Cached     bool        `json:"cached"`
}

// ScaleRequest asks for a resized windowgram.
type ScaleRequest struct {
	Windowgram string `json:"windowgram"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Strategy   string `json:"strategy,omitempty"`
	AllowLoss  bool   `json:"allow_loss,omitempty"`
}

// ScaleResponse is the scaled windowgram.
type ScaleResponse struct {
	Windowgram string            `json:"windowgram"`
	Panes      []windowgram.Pane `json:"panes"`
	Lost       string            `json:"lost,omitempty"`
	Strategy   string            `json:"strategy"`
}

// GroupRequest asks whether panes form one rectangle.
type GroupRequest struct {
	Windowgram string `json:"windowgram"`
	Panes      string `json:"panes"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Line    int         `json:"line,omitempty"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.counters.Snapshot())
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Windowgrams) > 0 {
		if req.Windowgram != "" {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "set either windowgram or windowgrams, not both"), 0)
			return
		}
		results, err := s.runner.ClassifyAll(r.Context(), req.Windowgrams)
		if err != nil {
			writeError(w, err, 0)
			return
		}
		writeJSON(w, http.StatusOK, ClassifyBatchResponse{Results: results})
		return
	}

	writeJSON(w, http.StatusOK, s.runner.Classify(r.Context(), req.Windowgram))
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Format == "" {
		req.Format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(req.Format); err != nil {
		writeError(w, err, 0)
		return
	}

	opts := s.defaults
	opts.Logger = nil
	if req.CanvasWidth != 0 {
		opts.CanvasWidth = req.CanvasWidth
	}
	if req.CanvasHeight != 0 {
		opts.CanvasHeight = req.CanvasHeight
	}
	if req.Divider != 0 {
		opts.Divider = req.Divider
	}

	res, err := s.runner.Compile(r.Context(), req.Windowgram, opts)
	if err != nil {
		writeError(w, err, 0)
		return
	}
	if err := res.Plan.Err(); err != nil {
		writeError(w, err, 0)
		return
	}

	if req.Format == pipeline.FormatJSON {
		writeJSON(w, http.StatusOK, SplitResponse{Windowgram: res.Windowgram, Plan: res.Plan, Cached: res.Cached})
		return
	}
	data, err := pipeline.Render(r.Context(), res.Plan, req.Format)
	if err != nil {
		writeError(w, err, 0)
		return
	}
	contentType := "text/vnd.graphviz; charset=utf-8"
	if req.Format == pipeline.FormatSVG {
		contentType = "image/svg+xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	var req ScaleRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Strategy == "" {
		req.Strategy = s.defaults.Strategy
	}
	if req.Strategy == "" {
		req.Strategy = pipeline.DefaultStrategy
	}
	strategy, err := scale.StrategyByName(req.Strategy)
	if err != nil {
		writeError(w, err, 0)
		return
	}

	wg, err := pipeline.ParseInput(req.Windowgram)
	if err != nil {
		writeError(w, err, 0)
		return
	}
	res, err := flex.Scale(wg, req.Width, req.Height, strategy, req.AllowLoss)
	if err != nil {
		writeError(w, err, 0)
		return
	}
	writeJSON(w, http.StatusOK, ScaleResponse{
		Windowgram: res.Windowgram.String(),
		Panes:      res.Windowgram.SortedPanes(),
		Lost:       res.Lost,
		Strategy:   strategy.Name(),
	})
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	var req GroupRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Panes == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "panes cannot be empty"), 0)
		return
	}
	wg, err := pipeline.ParseInput(req.Windowgram)
	if err != nil {
		writeError(w, err, 0)
		return
	}
	writeJSON(w, http.StatusOK, group.Analyze(wg, req.Panes))
}

// =============================================================================
// Helpers
// =============================================================================

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "request body too large (max %d bytes)", MaxBodyBytes),
				http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"), 0)
		return false
	}
	return true
}

// StatusCode maps an error to an HTTP status.
func StatusCode(err error) int {
	code := errors.GetCode(err)
	switch {
	case code.IsStructural(), code == errors.ErrCodeInvalidInput, code == errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case code.IsSemantic():
		return http.StatusUnprocessableEntity
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError writes err as an ErrorResponse. A zero status is derived from
// the error code.
func writeError(w http.ResponseWriter, err error, status int) {
	if status == 0 {
		status = StatusCode(err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: errorMessage(err),
		Line:    errors.GetLine(err),
	})
}

func errorMessage(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
