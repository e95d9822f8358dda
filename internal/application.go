package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/misnaged/annales/logger"
	version "github.com/misnaged/annales/versioner"
	prom "github.com/prometheus/client_golang/prometheus"

	"loro-backend/config"
	"loro-backend/internal/metrics"
	"loro-backend/internal/server"
	"loro-backend/internal/service"
	"loro-backend/pkg/github"
)

// App is main microservice application instance that
// have all necessary dependencies inside structure
type App struct {
	// application configuration
	config *config.Scheme

	version *version.Version

	httpServer *server.HTTPServer

	recorder *metrics.Recorder

	client *github.Client

	srv service.IRepoService
}

// NewApplication create new App instance
func NewApplication() (app *App, err error) {
	ver, err := version.NewVersion()
	if err != nil {
		return nil, fmt.Errorf("init app version: %w", err)
	}

	return &App{
		config:  &config.Scheme{},
		version: ver,
	}, nil
}

// Init initialize application and all necessary instances.
// It fails before anything is constructed when the
// configuration is unusable.
func (app *App) Init() (err error) {
	if err := app.Config().Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	app.recorder = metrics.NewRecorder(prom.NewRegistry())

	gh := app.Config().GitHub
	app.client, err = github.NewClient(gh.Token, github.Options{
		APIURL:     gh.APIURL,
		GraphQLURL: gh.GraphQLURL,
		Timeout:    gh.Timeout,
		Observer:   app.recorder,
	})
	if err != nil {
		return fmt.Errorf("initialize github client: %w", err)
	}

	app.srv = service.NewRepoService(app.client, app.Config().Tree)

	app.httpServer = server.NewHTTPServer(app.Config(), app.srv, app.recorder)

	return nil
}

// VerifyToken checks the configured credential against the GitHub API.
func (app *App) VerifyToken(ctx context.Context) error {
	login, err := app.client.Viewer(ctx)
	if err != nil {
		if github.IsHTTPUnauthorized(err) {
			return fmt.Errorf("%w: rejected by GitHub", config.ErrMalformedToken)
		}
		return fmt.Errorf("verify github token: %w", err)
	}

	logger.Log().Infof("Authenticated to GitHub as %s", login)
	return nil
}

// Serve start serving Application service
func (app *App) Serve() error {
	ln, err := net.Listen("tcp", app.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", app.httpServer.Addr, err)
	}

	go func() {
		logger.Log().Info(fmt.Sprintf("Listen HTTP Server on %s", ln.Addr()))

		if err := app.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log().Fatal(err)
		}
	}()

	// Gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	<-quit

	if err := app.Stop(); err != nil {
		return fmt.Errorf("error by stopping app: %w", err)
	}
	return nil
}

// Stop shutdown the application
func (app *App) Stop() error {
	if app.httpServer == nil {
		return nil
	}
	if err := app.httpServer.Close(); err != nil {
		return fmt.Errorf("close httpServer listening: %w", err)
	}

	return nil
}

// Config return App config Scheme
func (app *App) Config() *config.Scheme {
	return app.config
}

// Version return application current version
func (app *App) Version() string {
	return app.version.String()
}
