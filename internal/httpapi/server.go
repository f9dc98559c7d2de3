// Package httpapi serves the search service as a read-only JSON API.
//
// Routes:
//
//	GET /api/search?q=&year=&chamber=&limit=&full=
//	GET /api/rulings/{file}
//	GET /api/filters
//	GET /api/stats
//	GET /healthz
//	GET /metrics
//
// Errors from the search taxonomy map to status codes: an empty query is
// 400, an unknown ruling 404, an unavailable index 503 and a failed search
// 500. Bodies are always JSON.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jpl-au/juris/internal/log"
	"github.com/jpl-au/juris/internal/service"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// Server holds the HTTP handlers for one search service.
type Server struct {
	svc service.Service
}

// New returns a Server over svc.
func New(svc service.Service) *Server {
	return &Server{svc: svc}
}

// Handler returns the router with every route mounted.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(securityHeaders)

	router.Get("/healthz", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/rulings/{file}", s.handleRuling)
		r.Get("/filters", s.handleFilters)
		r.Get("/stats", s.handleStats)
	})
	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, if non-nil, receives the bound address once listening.
func (s *Server) ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error {
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	log.Event("http:serve", "listen").Detail("addr", ln.Addr().String()).Detail("index", s.svc.IndexPath()).Write(nil)
	if ready != nil {
		ready(ln.Addr())
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		log.Event("http:serve", "shutdown").Write(err)
		return err
	}
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
