// Package web implements the chart-rendering HTTP service.
//
// The service exposes a single rendering endpoint plus a health check:
//
//	POST /v1/chart   render a task table to svg, text, json, or csv
//	GET  /healthz    liveness probe
//
// Rendering is pure and deterministic, so responses are cached under a
// digest of the request body: identical requests are served from cache
// without recomputing the layout.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ganttgrid/ganttgrid/pkg/cache"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server handles chart rendering requests.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	ttl    time.Duration
}

// NewServer creates a Server. A nil cache disables caching by falling back
// to an empty in-process cache.
func NewServer(logger *log.Logger, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewMemory()
	}
	return &Server{logger: logger, cache: c, ttl: cache.DefaultTTL}
}

// Router builds the chi route tree with request-scoped middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Post("/v1/chart", s.handleChart)
	r.Get("/healthz", s.handleHealth)
	return r
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs one line per request with the chi request ID, so cache
// hits and render times are attributable in multi-instance logs.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
