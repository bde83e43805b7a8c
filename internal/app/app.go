package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/realworld/realworld-api/internal/config"
	"github.com/realworld/realworld-api/internal/httpapi"
	"github.com/realworld/realworld-api/internal/httpapi/handlers"
	httpmiddleware "github.com/realworld/realworld-api/internal/httpapi/middleware"
	"github.com/realworld/realworld-api/internal/metrics"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	httpServer *http.Server
}

// New constructs the application.
func New(cfg *config.Config, logger *zap.Logger) *App {
	return newApp(cfg, logger, time.Now)
}

func newApp(cfg *config.Config, logger *zap.Logger, now func() time.Time) *App {
	middlewares := []func(http.Handler) http.Handler{
		httpmiddleware.RequestID,
		httpmiddleware.AccessLog(logger),
	}

	deps := httpapi.RouterDeps{
		HealthHandler:  handlers.NewHealthHandler(now).Health,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	if cfg.Metrics.Enabled {
		m := metrics.New()
		middlewares = append(middlewares, httpmiddleware.Instrument(m))
		deps.MetricsHandler = m.Handler()
	}
	if cfg.Docs.Enabled {
		deps.DocsHandlers = &httpapi.DocsHandlers{
			OpenAPI: handlers.OpenAPIJSON,
			UI:      handlers.SwaggerUI,
		}
	}
	deps.Middlewares = middlewares

	server := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           httpapi.NewRouter(deps),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: server,
	}
}

// Handler exposes the routed handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server with TLS if certificates are configured.
// It returns nil once Shutdown has been called.
func (a *App) Run() error {
	var err error
	if a.cfg.HTTP.TLSEnabled() {
		a.logger.Info("starting HTTPS server",
			zap.String("cert", a.cfg.HTTP.TLSCertFile),
			zap.String("key", a.cfg.HTTP.TLSKeyFile),
			zap.String("addr", a.httpServer.Addr),
		)
		err = a.httpServer.ListenAndServeTLS(a.cfg.HTTP.TLSCertFile, a.cfg.HTTP.TLSKeyFile)
	} else {
		a.logger.Info("starting HTTP server", zap.String("addr", a.httpServer.Addr))
		err = a.httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
