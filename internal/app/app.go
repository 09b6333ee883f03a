// Package app assembles the application: configuration, logger,
// services, WebSocket hub, router and the HTTP server lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parkpulse/internal/config"
	apierrors "parkpulse/internal/errors"
	"parkpulse/internal/infrastructure"
	custommw "parkpulse/internal/middleware"
	"parkpulse/internal/services"
	handlers "parkpulse/internal/transport/http"
	ws "parkpulse/internal/websocket"
)

// Application is the dependency container for the web server.
type Application struct {
	Config           *config.Config
	Router           *chi.Mux
	Server           *http.Server
	WebSocketHub     *ws.Hub
	ScorecardService *services.ScorecardService
	HealthService    *services.HealthService
	Logger           *slog.Logger
}

// NewApplication wires every component together.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.Version),
		slog.Int("scorecards", len(cfg.Scorecards)))

	hub := ws.NewHub(logger)
	scorecardService := services.NewScorecardService(cfg.Scorecards, hub, logger)
	healthService := services.NewHealthService(config.Version, scorecardService, logger)

	app := &Application{
		Config:           cfg,
		WebSocketHub:     hub,
		ScorecardService: scorecardService,
		HealthService:    healthService,
		Logger:           logger,
	}

	app.Router = app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// setupRouter builds the middleware chain and mounts every route.
func (app *Application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.Metrics)
	r.Use(custommw.StructuredLogger(app.Logger))
	r.Use(custommw.Recoverer(app.Logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(custommw.CORS(custommw.CORSConfig{
		AllowedOrigins: app.Config.Security.AllowedOrigins,
	}))

	errorHandler := apierrors.NewErrorHandler(app.Logger)
	dashboardHandler := handlers.NewDashboardHandler(app.ScorecardService, app.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(app.HealthService, app.Logger)
	pageHandler := handlers.NewPageHandler(app.Logger)

	r.Group(func(r chi.Router) {
		if rl := app.Config.Security.RateLimit; rl.Enabled {
			limiter := custommw.NewRateLimiter(rl.RPS, rl.Burst, app.Logger)
			r.Use(limiter.Handler)
		}
		r.Use(custommw.Timeout(app.Config.Server.WriteTimeout, app.Logger))

		r.Mount("/api", app.apiRouter(dashboardHandler, healthHandler))
		r.Get("/", pageHandler.ServePage)
	})

	// Outside the rate-limited group: scrapers and long-lived sockets.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", ws.ServeWS(app.WebSocketHub, app.Logger))

	return r
}

func (app *Application) apiRouter(dashboard *handlers.DashboardHandler, health *handlers.HealthHandler) chi.Router {
	r := chi.NewRouter()
	r.Mount("/", dashboard.Routes())
	r.Mount("/health", health.Routes())
	return r
}

// Run starts the hub and the HTTP server, then blocks until SIGINT or
// SIGTERM triggers a graceful shutdown.
func (app *Application) Run() error {
	app.WebSocketHub.Start()

	// Warm the table so the first page load is instant; a failed warm
	// load is not fatal, the first request retries.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := app.ScorecardService.Table(ctx); err != nil {
			app.Logger.Warn("initial score-card load failed",
				slog.String("error", err.Error()))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("http server listening",
			slog.String("addr", app.Server.Addr))
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case sig := <-quit:
		app.Logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	return app.Shutdown()
}

// Shutdown stops the HTTP server, the hub and the log file in order.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Logger.Error("http server shutdown failed",
			slog.String("error", err.Error()))
		return err
	}

	app.WebSocketHub.Stop()

	app.Logger.Info("application stopped")
	return infrastructure.CloseLogFile()
}
