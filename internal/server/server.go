// Package server exposes separation queries over HTTP.
//
// Routes (all GET):
//
//	/v1/health                   liveness
//	/v1/stats                    catalog size
//	/v1/path?from=A&to=B         shortest actor path
//	/v1/distribution?actor=A     degree histogram (optional bins=N)
//	/v1/actors/random?n=N        uniformly sampled actor names
//	/metrics                     Prometheus exposition
//
// The catalog is built once before the server starts and shared read-only by
// every request.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/sixdegrees/builder"
)

// shutdownTimeout bounds graceful shutdown in Run.
const shutdownTimeout = 10 * time.Second

// ErrNilCatalog is returned by New when no catalog is supplied.
var ErrNilCatalog = errors.New("server: catalog is nil")

// Options tunes a Server. The zero value is usable.
type Options struct {
	// Logger receives request and lifecycle logs; nil discards them.
	Logger *slog.Logger

	// Bins is the minimum histogram width returned by /v1/distribution when
	// the request does not ask for one. Values < 1 mean 1.
	Bins int

	// MaxDegree bounds distribution traversals; 0 means unbounded.
	MaxDegree int

	// Seed makes /v1/actors/random reproducible when non-zero.
	Seed uint64
}

// Server answers separation queries against one catalog.
type Server struct {
	catalog *builder.Catalog
	opts    Options
	logger  *slog.Logger
	metrics *metrics
	engine  *gin.Engine

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New wires routes, middleware and metrics around catalog.
func New(catalog *builder.Catalog, opts Options) (*Server, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Bins < 1 {
		opts.Bins = 1
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	s := &Server{
		catalog: catalog,
		opts:    opts,
		logger:  opts.Logger,
		metrics: newMetrics(),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.metrics.recordGraph(catalog.Stats())

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := r.Group("/v1")
	v1.GET("/health", s.handleHealth)
	v1.GET("/stats", s.handleStats)
	v1.GET("/path", s.handlePath)
	v1.GET("/distribution", s.handleDistribution)
	v1.GET("/actors/random", s.handleRandomActors)

	s.engine = r
	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// sample draws n distinct actors under the shared generator.
func (s *Server) sample(n int) []string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.catalog.RandomActors(s.rng, n)
}
