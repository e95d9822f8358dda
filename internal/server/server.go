package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loro-backend/config"
	"loro-backend/internal/metrics"
	"loro-backend/internal/models"
	"loro-backend/internal/server/handlers"
	"loro-backend/internal/service"
)

// HTTPServer represents a HTTP server that handles incoming requests
// and routes them to the appropriate handler functions.
type HTTPServer struct {
	// contains handler functions for handling different routes
	handlers *handlers.Handlers
	// exposes metrics when set
	recorder    *metrics.Recorder
	metricsPath string
	// underlying HTTP server instance
	*http.Server
}

// NewHTTPServer creates a new HTTPServer instance
// and binds it to the configured address. It also initializes
// the routes and registers them to the server.
func NewHTTPServer(
	cfg *config.Scheme,
	srv service.IRepoService,
	recorder *metrics.Recorder,
) *HTTPServer {
	strategy := models.TreeNested
	if cfg.Tree != nil {
		if s, err := models.TreeStrategyFromString(cfg.Tree.Strategy); err == nil {
			strategy = s
		}
	}

	server := &HTTPServer{
		handlers: handlers.NewHandlers(srv, recorder, strategy),
		Server: &http.Server{
			Addr: cfg.HTTP.Addr(),
		},
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled && recorder != nil {
		server.recorder = recorder
		server.metricsPath = cfg.Metrics.Path
	}

	server.registerRoutes()

	return server
}

// registerRoutes registers the routes to
// the HTTPServer instance.
func (s *HTTPServer) registerRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(s.handlers.NotFound())
	r.MethodNotAllowed(s.handlers.MethodNotAllowed())

	r.Get("/repo/{owner}/{repo}", s.handlers.Repository())
	r.Get("/repo/{owner}/{repo}/structure", s.handlers.Structure())

	if s.recorder != nil && s.metricsPath != "" {
		r.Method(http.MethodGet, s.metricsPath, s.recorder.Handler())
	}

	s.Handler = r
}
