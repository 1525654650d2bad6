// Package api serves the windowgram pipeline over HTTP.
//
// The API is JSON in, JSON out. Every handler goes through the same
// [pipeline.Runner] as the CLI, so caching and logging behave identically.
//
// # Endpoints
//
//	GET  /healthz        liveness and build information
//	GET  /v1/stats       counters since start
//	POST /v1/classify    {"windowgram"} or {"windowgrams": [...]}
//	POST /v1/split       {"windowgram", "canvas_width", "canvas_height", "divider", "format"}
//	POST /v1/scale       {"windowgram", "width", "height", "strategy", "allow_loss"}
//	POST /v1/group       {"windowgram", "panes"}
//
// Errors are written as {"code", "message", "line"}. Structural and input
// errors map to 400, semantic errors to 422.
package api

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/observability"
	"github.com/matzehuels/windowgram/pkg/pipeline"
)

// MaxBodyBytes bounds request bodies. A batch may hold several windowgrams.
const MaxBodyBytes = 16 * errors.MaxInputBytes

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP API. Create it with NewServer.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	hooks    *observability.Hooks
	counters *observability.Counters
	defaults pipeline.Options
	router   chi.Router
}

// Config holds optional Server settings.
type Config struct {
	// Logger receives request logs. Defaults to a discarding logger.
	Logger *log.Logger

	// Defaults fill zero compile and scale options in requests.
	Defaults pipeline.Options

	// Counters backs /v1/stats. A fresh set is created when nil.
	Counters *observability.Counters
}

// NewServer wires the router around runner. The runner's hooks are extended
// so that its cache and compile events reach the server's counters.
func NewServer(runner *pipeline.Runner, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Counters == nil {
		cfg.Counters = observability.NewCounters()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	hooks := observability.Multi(observability.LogHooks(cfg.Logger), cfg.Counters.Hooks())
	runner.Hooks = observability.Multi(runner.Hooks.Or(), cfg.Counters.Hooks())

	s := &Server{
		runner:   runner,
		logger:   cfg.Logger,
		hooks:    hooks,
		counters: cfg.Counters,
		defaults: cfg.Defaults,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/classify", s.handleClassify)
			r.Post("/split", s.handleSplit)
			r.Post("/scale", s.handleScale)
			r.Post("/group", s.handleGroup)
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "no route for %s %s", r.Method, r.URL.Path), http.StatusNotFound)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Counters returns the counters behind /v1/stats.
func (s *Server) Counters() *observability.Counters {
	return s.counters
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		s.hooks.HTTP.OnRequest(r.Context(), r.Method, r.URL.Path)
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.hooks.HTTP.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
		}()
		next.ServeHTTP(ww, r)
	})
}
