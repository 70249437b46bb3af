// Package eldlog ties the normalization pipeline and the sheet renderer into
// an HTTP service: normalized day lists as JSON, rendered sheets as SVG, plus
// health and Prometheus metrics endpoints.
package eldlog

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/princesinghrajput/eld-logsheet/config"
	"github.com/princesinghrajput/eld-logsheet/trip"
)

// Server serves normalized daily logs and rendered sheets. It holds no
// normalized state between requests: every request refetches (or falls back
// to the sample timeline) and recomputes in full.
type Server struct {
	cfg    config.AppConfig
	log    zerolog.Logger
	client *trip.Client
	cache  *RenderCache

	httpServer *http.Server
	now        func() time.Time
}

// NewServer wires a server from configuration.
func NewServer(cfg config.AppConfig, logger zerolog.Logger) (*Server, error) {
	cache, err := NewRenderCache(cfg.Render.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:    cfg,
		log:    logger,
		client: trip.NewClient(time.Duration(cfg.Planner.TimeoutMS) * time.Millisecond),
		cache:  cache,
		now:    time.Now,
	}, nil
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/logs", s.handleLogs)
	r.Post("/api/logs", s.handleNormalize)
	r.Get("/api/logs/{id}/sheet.svg", s.handleSheet)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Start begins listening and blocks until a SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", addr).Msg("server listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-sigs:
		s.log.Info().Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.log.Info().Msg("server shut down")
	return nil
}
