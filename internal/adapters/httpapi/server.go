package httpapi

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daehan-dev/fleetworks-go/internal/adapters/metrics"
	"github.com/daehan-dev/fleetworks-go/internal/application/common"
	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/config"
)

// Server serves the game API over HTTP/JSON. All game operations dispatch
// through the mediator; the HTTP layer only translates requests and errors.
type Server struct {
	mediator common.Mediator
	logger   common.Logger
	cfg      *config.Config
	http     *http.Server
}

// NewServer builds the HTTP server with its routes and middleware chain.
func NewServer(cfg *config.Config, mediator common.Mediator, logger common.Logger) *Server {
	s := &Server{
		mediator: mediator,
		logger:   logger,
		cfg:      cfg,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)
	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	}

	api := http.NewServeMux()
	api.HandleFunc("GET /api/factory/docks", s.handleListDocks)
	api.HandleFunc("POST /api/factory/build", s.handleBeginBuild)
	api.HandleFunc("POST /api/factory/instant-complete", s.handleSkipBuild)
	api.HandleFunc("POST /api/factory/complete", s.handleCompleteBuild)
	api.HandleFunc("GET /api/fleets", s.handleListFleets)
	api.HandleFunc("PUT /api/fleets/{fleetNo}", s.handleUpdateFleet)
	api.HandleFunc("GET /api/ships/{shipId}", s.handleGetShip)
	api.HandleFunc("GET /api/wiki/ships", s.handleListTemplates)
	api.HandleFunc("GET /api/player", s.handleGetPlayer)
	api.HandleFunc("POST /api/sortie/start", s.handleStartSortie)

	var apiHandler http.Handler = withAuth(api)
	if cfg.Server.RateLimit.Enabled {
		limiter := newClientLimiter(cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.Burst)
		apiHandler = withRateLimit(limiter, apiHandler)
	}
	mux.Handle("/api/", apiHandler)

	s.http = &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      withLogging(logger, mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Log("INFO", "http server listening", map[string]interface{}{
		"address": s.cfg.Server.Address,
	})
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
